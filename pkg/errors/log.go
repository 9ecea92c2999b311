package errors

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// LogHandler is a Handler that writes one line per error to Out. It may
// be shared between goroutines.
type LogHandler struct {
	// Verbose adds timestamps, field names and panic stack traces.
	Verbose bool
	// Out overrides the destination; nil means os.Stderr.
	Out io.Writer

	mu sync.Mutex
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a CarouselError.
func (h *LogHandler) HandleError(err *CarouselError) {
	if err == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[carousel error] %s [%s]", err.Op, err.Kind)
		if err.Field != "" {
			fmt.Fprintf(w, " field=%s", err.Field)
		}
		fmt.Fprintf(w, " at %s: %v\n", err.Timestamp.Format("15:04:05.000"), err.Err)
		return
	}
	fmt.Fprintf(w, "[carousel error] %s: %v\n", err.Op, err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[carousel panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[carousel panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
