package cmd

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/carousel/pkg/animation"
	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/engine"
	"github.com/go-drift/carousel/pkg/errors"
	"github.com/go-drift/carousel/pkg/gestures"
	"github.com/go-drift/carousel/pkg/rendering"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Show the carousel in the terminal",
		Long: `Show the carousel in the terminal. Drag cards with the mouse, or step with
the arrow keys. Hovering pauses autoplay when pauseOnHover is set.

Keys:
  Left, h     Previous item
  Right, l    Next item
  q, Esc      Quit

Flags:
  --debug-port N   Serve /health, /state, /frames and /runtime on
                   localhost:N (0 picks a free port)`,
		Usage: "carousel run [--debug-port N]",
		Run:   runRun,
	})
}

// statusRows is the number of rows below the frame used for text.
const statusRows = 3

// maxViewCols caps the frame width in cells.
const maxViewCols = 100

// terminal hosts a carousel on a tcell screen. handle, frame and draw run
// on one goroutine; events from PollEvent reach it through engine.Post.
type terminal struct {
	screen  tcell.Screen
	eng     *engine.Engine
	surface *engine.Surface
	c       *carousel.Carousel
	opts    rendering.Options

	frame   image.Point
	view    image.Rectangle
	buttons tcell.ButtonMask
	pointer int64

	// debugPort is the bound debug server port, or 0.
	debugPort int

	quit     chan struct{}
	quitOnce sync.Once
}

func newTerminal(screen tcell.Screen, clock animation.Clock, cfg carousel.Config) (*terminal, error) {
	c, err := carousel.New(cfg)
	if err != nil {
		return nil, err
	}
	eng := engine.New(clock)
	width := c.Config().BaseWidth
	surface := engine.NewSurface(engine.RectFromSize(0, 0, width, width))
	if err := c.Attach(eng, surface); err != nil {
		return nil, err
	}

	opts := rendering.DefaultOptions()
	opts.Scale = 1
	opts.Labels = false
	t := &terminal{
		screen:  screen,
		eng:     eng,
		surface: surface,
		c:       c,
		opts:    opts,
		frame:   rendering.FrameSize(c.Config(), opts),
		quit:    make(chan struct{}),
	}
	t.layout()
	return t, nil
}

// layout fits the frame into the screen, keeping square pixels: one cell
// is one pixel wide and two pixels tall.
func (t *terminal) layout() {
	sw, sh := t.screen.Size()
	rows := max(1, sh-statusRows)
	cols := min(sw, rows*2*t.frame.X/t.frame.Y, maxViewCols)
	cols = max(1, cols)
	viewRows := (cols*t.frame.Y/t.frame.X + 1) / 2
	left := (sw - cols) / 2
	t.view = image.Rect(left, 0, left+cols, max(1, viewRows))
}

// toLogical maps a cell to carousel pixels at the cell's center.
func (t *terminal) toLogical(x, y int) gestures.Offset {
	return gestures.Offset{
		X: (float64(x-t.view.Min.X) + 0.5) * float64(t.frame.X) / float64(t.view.Dx()),
		Y: (float64(y-t.view.Min.Y) + 0.5) * float64(t.frame.Y) / float64(t.view.Dy()),
	}
}

func (t *terminal) stop() {
	t.quitOnce.Do(func() { close(t.quit) })
}

func (t *terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			t.stop()
		case ev.Key() == tcell.KeyRight:
			t.c.Step(1)
		case ev.Key() == tcell.KeyLeft:
			t.c.Step(-1)
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				t.stop()
			case 'l':
				t.c.Step(1)
			case 'h':
				t.c.Step(-1)
			}
		}
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		t.screen.Sync()
		t.layout()
	}
}

// handleMouse turns tcell's button state into pointer phases.
func (t *terminal) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons() & tcell.Button1
	phase := gestures.PointerPhaseMove
	switch {
	case pressed != 0 && t.buttons == 0:
		t.pointer++
		phase = gestures.PointerPhaseDown
	case pressed == 0 && t.buttons != 0:
		phase = gestures.PointerPhaseUp
	}
	t.buttons = pressed
	t.surface.HandlePointer(gestures.PointerEvent{
		PointerID: t.pointer,
		Phase:     phase,
		Position:  t.toLogical(x, y),
	})
}

func (t *terminal) draw() {
	t.screen.Clear()
	img, err := rendering.RenderFrame(t.c, t.opts)
	if err != nil {
		errors.Report(&errors.CarouselError{Op: "run.draw", Kind: errors.KindRender, Err: err})
		return
	}
	cells := rendering.ResizeTo(img, t.view.Dx(), t.view.Dy()*2)
	for cy := range t.view.Dy() {
		for cx := range t.view.Dx() {
			style := tcell.StyleDefault.
				Foreground(cellColor(cells, cx, cy*2)).
				Background(cellColor(cells, cx, cy*2+1))
			t.screen.SetContent(t.view.Min.X+cx, t.view.Min.Y+cy, '▀', nil, style)
		}
	}

	sw, _ := t.screen.Size()
	row := t.view.Max.Y
	title := tcell.StyleDefault.Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	drawCentered(t.screen, sw, row, currentLabel(t.c), title)
	status := fmt.Sprintf("item %d/%d  %s", t.c.RealIndex()+1, len(t.c.Config().Items), t.c.Phase())
	if t.c.Flags().Hovered {
		status += "  paused"
	}
	if fps := t.eng.FPS(); fps > 0 {
		status += fmt.Sprintf("  %.0f fps", fps)
	}
	drawCentered(t.screen, sw, row+1, status, dim)
	hint := "←/h  →/l  drag with mouse  q quit"
	if t.debugPort != 0 {
		hint += fmt.Sprintf("  debug :%d", t.debugPort)
	}
	drawCentered(t.screen, sw, row+2, hint, dim)
	t.screen.Show()
}

// cellColor converts one pixel to a terminal color; transparent pixels
// show the terminal background.
func cellColor(img *image.RGBA, x, y int) tcell.Color {
	p := img.RGBAAt(x, y)
	if p.A < 0x80 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(p.R), int32(p.G), int32(p.B))
}

func drawCentered(screen tcell.Screen, width, y int, s string, style tcell.Style) {
	x := max(0, (width-runewidth.StringWidth(s))/2)
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += max(1, runewidth.RuneWidth(r))
	}
}

// loop runs a frame on every tick until stop is called.
func (t *terminal) loop(ticks <-chan time.Time) {
	for {
		select {
		case <-t.quit:
			return
		case <-ticks:
			t.eng.Frame()
			t.draw()
		}
	}
}

func (t *terminal) close() {
	t.c.Detach()
	t.eng.Close()
}

// debugState is served at /state while running with --debug-port.
type debugState struct {
	Position  int     `json:"position"`
	RealIndex int     `json:"realIndex"`
	Label     string  `json:"label"`
	Phase     string  `json:"phase"`
	Offset    float64 `json:"offset"`
	Target    float64 `json:"target"`
	Dragging  bool    `json:"dragging"`
	Animating bool    `json:"animating"`
	Jumping   bool    `json:"jumping"`
	Hovered   bool    `json:"hovered"`
}

func (t *terminal) state() any {
	flags := t.c.Flags()
	return debugState{
		Position:  t.c.Position(),
		RealIndex: t.c.RealIndex(),
		Label:     currentLabel(t.c),
		Phase:     t.c.Phase().String(),
		Offset:    t.c.Offset(),
		Target:    t.c.Target(),
		Dragging:  flags.Dragging,
		Animating: flags.Animating,
		Jumping:   flags.Jumping,
		Hovered:   flags.Hovered,
	}
}

// parseRunArgs returns the debug port, or -1 when the server is off.
func parseRunArgs(args []string) (int, error) {
	port := -1
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--debug-port":
			v, err := flagValue(args, i, "--debug-port")
			if err != nil {
				return port, err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 || n > 65535 {
				return port, fmt.Errorf("--debug-port must be a port number, got %q", v)
			}
			port = n
			i++
		default:
			return port, fmt.Errorf("unexpected argument %q\n\nUsage: carousel run [--debug-port N]", args[i])
		}
	}
	return port, nil
}

func runRun(args []string) error {
	debugPort, err := parseRunArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)

	// The screen owns stderr until Fini; errors are printed afterwards.
	var logs bytes.Buffer
	errors.SetHandler(&errors.LogHandler{Verbose: globals.verbose, Out: &logs})
	defer func() {
		screen.Fini()
		os.Stderr.Write(logs.Bytes())
	}()

	t, err := newTerminal(screen, animation.SystemClock(), cfg)
	if err != nil {
		return err
	}
	defer t.close()

	if debugPort >= 0 {
		srv := engine.NewDebugServer(t.eng, t.state)
		port, err := srv.Start(debugPort)
		if err != nil {
			return err
		}
		defer srv.Stop()
		t.debugPort = port
	}

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			t.eng.Post(func() { t.handle(ev) })
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	t.draw()
	t.loop(ticker.C)
	return nil
}
