package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/carousel/pkg/carousel"
)

func newTestTerminal(t *testing.T, cfg carousel.Config) (*terminal, *manualClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	screen.SetSize(80, 40)
	t.Cleanup(screen.Fini)

	clock := newManualClock()
	term, err := newTerminal(screen, clock, cfg)
	if err != nil {
		t.Fatalf("newTerminal() = %v", err)
	}
	t.Cleanup(term.close)
	return term, clock
}

func testItems() carousel.Config {
	return carousel.Config{Items: []carousel.Item{"first", "second", "third"}}
}

func (term *terminal) tick(clock *manualClock) {
	clock.Advance(frameInterval)
	term.eng.Frame()
}

func (term *terminal) settle(t *testing.T, clock *manualClock) {
	t.Helper()
	for elapsed := time.Duration(0); elapsed < 5*time.Second; elapsed += frameInterval {
		if term.c.Phase() == carousel.PhaseIdle && !term.eng.HasPendingWork() {
			return
		}
		term.tick(clock)
	}
	t.Fatalf("terminal did not settle (phase %s)", term.c.Phase())
}

func TestTerminalLayout(t *testing.T) {
	term, _ := newTestTerminal(t, testItems())
	if term.frame.X != 300 || term.frame.Y != 332 {
		t.Fatalf("frame = %v, want 300x332", term.frame)
	}
	if term.view.Min.X != 7 || term.view.Dx() != 66 || term.view.Dy() != 37 {
		t.Errorf("view = %v, want 66x37 at x=7", term.view)
	}
}

func TestTerminalKeys(t *testing.T) {
	term, clock := newTestTerminal(t, testItems())

	term.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	term.settle(t, clock)
	if got := term.c.Position(); got != 1 {
		t.Fatalf("after Right, Position() = %d, want 1", got)
	}

	term.handle(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone))
	term.settle(t, clock)
	if got := term.c.Position(); got != 0 {
		t.Fatalf("after h, Position() = %d, want 0", got)
	}

	term.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	select {
	case <-term.quit:
	default:
		t.Fatal("q did not stop the terminal")
	}
	// A second quit key must not panic on the closed channel.
	term.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
}

func TestTerminalMouseDrag(t *testing.T) {
	term, clock := newTestTerminal(t, testItems())

	term.handle(tcell.NewEventMouse(40, 15, tcell.Button1, tcell.ModNone))
	for x := 35; x >= 20; x -= 5 {
		term.tick(clock)
		term.handle(tcell.NewEventMouse(x, 15, tcell.Button1, tcell.ModNone))
	}
	if got := term.c.Phase(); got != carousel.PhaseDragging {
		t.Fatalf("while dragging, Phase() = %s", got)
	}
	term.handle(tcell.NewEventMouse(20, 15, tcell.ButtonNone, tcell.ModNone))
	term.settle(t, clock)

	if got := term.c.Position(); got != 1 {
		t.Errorf("Position() = %d, want 1", got)
	}
}

func TestTerminalHover(t *testing.T) {
	cfg := testItems()
	cfg.Autoplay = true
	cfg.PauseOnHover = true
	term, _ := newTestTerminal(t, cfg)

	term.handle(tcell.NewEventMouse(40, 15, tcell.ButtonNone, tcell.ModNone))
	if !term.c.Flags().Hovered {
		t.Fatal("moving over the frame did not set Hovered")
	}
	// The status rows lie below the surface.
	term.handle(tcell.NewEventMouse(40, 38, tcell.ButtonNone, tcell.ModNone))
	if term.c.Flags().Hovered {
		t.Fatal("moving off the frame did not clear Hovered")
	}
}

func TestTerminalDraw(t *testing.T) {
	term, clock := newTestTerminal(t, testItems())
	term.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	term.settle(t, clock)
	term.draw()

	if got := screenRow(term.screen, term.view.Max.Y); !strings.Contains(got, "second") {
		t.Errorf("title row = %q, want it to contain %q", got, "second")
	}
	if got := screenRow(term.screen, term.view.Max.Y+1); !strings.Contains(got, "item 2/3") {
		t.Errorf("status row = %q, want it to contain %q", got, "item 2/3")
	}
	if r, _, _, _ := term.screen.GetContent(term.view.Min.X+term.view.Dx()/2, term.view.Dy()/2); r != '▀' {
		t.Errorf("frame cell = %q, want half block", r)
	}
}

func screenRow(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := range w {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestParseRunArgs(t *testing.T) {
	tests := []struct {
		args    []string
		want    int
		wantErr bool
	}{
		{nil, -1, false},
		{[]string{"--debug-port", "0"}, 0, false},
		{[]string{"--debug-port", "9999"}, 9999, false},
		{[]string{"--debug-port"}, 0, true},
		{[]string{"--debug-port", "http"}, 0, true},
		{[]string{"--debug-port", "70000"}, 0, true},
		{[]string{"extra"}, 0, true},
	}
	for _, tt := range tests {
		got, err := parseRunArgs(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseRunArgs(%q) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseRunArgs(%q) = %d, want %d", tt.args, got, tt.want)
		}
	}
}

func TestTerminalState(t *testing.T) {
	term, clock := newTestTerminal(t, testItems())
	term.handle(tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone))
	term.settle(t, clock)

	got := term.state().(debugState)
	want := debugState{Position: 1, RealIndex: 1, Label: "second", Phase: "idle", Offset: -284, Target: -284}
	if got != want {
		t.Errorf("state() = %+v, want %+v", got, want)
	}
}
