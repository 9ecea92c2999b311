package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-drift/carousel/pkg/errors"
)

// stateTimeout bounds how long a request waits for the frame loop.
const stateTimeout = time.Second

// StateFunc reports the state served at /state. It runs on the frame
// goroutine, so it may read anything the engine's callbacks touch.
type StateFunc func() any

// DebugServer serves engine state over HTTP:
//
//	/health  liveness
//	/state   the StateFunc result as JSON
//	/frames  recent frame intervals and the frame rate
//	/runtime process memory and GC stats
type DebugServer struct {
	eng   *Engine
	state StateFunc

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// NewDebugServer creates a server for eng. It does not listen until Start.
func NewDebugServer(eng *Engine, state StateFunc) *DebugServer {
	return &DebugServer{eng: eng, state: state}
}

// Start listens on port (0 picks a free one) and returns the bound port.
// Starting a running server returns its port.
func (d *DebugServer) Start(port int) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.listener != nil {
		return d.listener.Addr().(*net.TCPAddr).Port, nil
	}

	// Bind first to fail fast on port conflicts.
	listener, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
	if err != nil {
		return 0, fmt.Errorf("debug server listen: %w", err)
	}

	server := &http.Server{Handler: d.Handler()}
	d.server = server
	d.listener = listener

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			d.mu.Lock()
			d.server = nil
			d.listener = nil
			d.mu.Unlock()
			errors.Report(&errors.CarouselError{
				Op:        "engine.DebugServer",
				Kind:      errors.KindHost,
				Err:       err,
				Timestamp: time.Now(),
			})
		}
	}()

	return listener.Addr().(*net.TCPAddr).Port, nil
}

// Stop shuts the server down. Stopping a stopped server does nothing.
func (d *DebugServer) Stop() {
	d.mu.Lock()
	server := d.server
	d.server = nil
	d.listener = nil
	d.mu.Unlock()

	if server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	server.Shutdown(ctx)
}

// Handler returns the server's routes.
func (d *DebugServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /state", d.handleState)
	mux.HandleFunc("GET /frames", d.handleFrames)
	mux.HandleFunc("GET /runtime", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, ReadRuntimeSample())
	})
	return mux
}

func (d *DebugServer) handleState(w http.ResponseWriter, r *http.Request) {
	if d.state == nil {
		http.Error(w, "no state", http.StatusNotFound)
		return
	}
	result := make(chan any, 1)
	d.eng.Post(func() { result <- d.state() })

	select {
	case v := <-result:
		writeJSON(w, v)
	case <-time.After(stateTimeout):
		http.Error(w, "frame loop not running", http.StatusServiceUnavailable)
	case <-r.Context().Done():
	}
}

// FrameTimeline is the /frames response.
type FrameTimeline struct {
	FPS     float64   `json:"fps"`
	AvgMs   float64   `json:"avgMs"`
	FrameMs []float64 `json:"frameMs"`
}

func (d *DebugServer) handleFrames(w http.ResponseWriter, r *http.Request) {
	timings := d.eng.FrameTimings()
	samples := timings.Samples()
	resp := FrameTimeline{
		AvgMs:   durationMs(timings.Average()),
		FrameMs: make([]float64, len(samples)),
	}
	for i, s := range samples {
		resp.FrameMs[i] = durationMs(s)
	}
	if resp.AvgMs > 0 {
		resp.FPS = 1000 / resp.AvgMs
	}
	writeJSON(w, resp)
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
