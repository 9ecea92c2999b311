package cmd

import (
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/go-drift/carousel/pkg/rendering"
)

func init() {
	RegisterCommand(&Command{
		Name:  "snapshot",
		Short: "Render a PNG strip of frames",
		Long: `Render the carousel into a PNG strip: the resting frame, then frames taken
every --interval while an action plays out.

Flags:
  --out FILE       Output path (default: carousel.png, "-" for stdout)
  --frames N       Number of frames (default 6)
  --interval MS    Time between frames (default 60)
  --action NAME    Action to animate, as in "carousel simulate" (default next)
  --scale F        Resize the strip by F (default 1)
  --no-labels      Omit card labels`,
		Usage: "carousel snapshot [--out FILE] [--frames N] [--interval MS] [--action NAME] [--scale F] [--no-labels]",
		Run:   runSnapshot,
	})
}

type snapshotOptions struct {
	out      string
	frames   int
	interval time.Duration
	action   string
	scale    float64
	labels   bool
}

func parseSnapshotArgs(args []string) (snapshotOptions, error) {
	opts := snapshotOptions{
		out:      "carousel.png",
		frames:   6,
		interval: 60 * time.Millisecond,
		action:   "next",
		scale:    1,
		labels:   true,
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--no-labels" {
			opts.labels = false
			continue
		}
		v, err := flagValue(args, i, arg)
		if err != nil {
			return opts, err
		}
		i++
		switch arg {
		case "--out":
			opts.out = v
		case "--action":
			opts.action = v
		case "--frames":
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return opts, fmt.Errorf("--frames must be a positive integer, got %q", v)
			}
			opts.frames = n
		case "--interval":
			ms, err := strconv.Atoi(v)
			if err != nil || ms < 0 {
				return opts, fmt.Errorf("--interval must be a non-negative number of milliseconds, got %q", v)
			}
			opts.interval = time.Duration(ms) * time.Millisecond
		case "--scale":
			f, err := strconv.ParseFloat(v, 64)
			if err != nil || f <= 0 {
				return opts, fmt.Errorf("--scale must be positive, got %q", v)
			}
			opts.scale = f
		default:
			return opts, fmt.Errorf("unknown flag %q", arg)
		}
	}
	return opts, nil
}

func runSnapshot(args []string) error {
	opts, err := parseSnapshotArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	h, err := newHeadless(cfg)
	if err != nil {
		return err
	}
	defer h.close()

	strip, err := renderStrip(h, opts)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if opts.out != "-" {
		f, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return rendering.EncodePNG(w, strip)
}

func renderStrip(h *headless, opts snapshotOptions) (image.Image, error) {
	ro := rendering.DefaultOptions()
	ro.Labels = opts.labels

	frames := make([]*image.RGBA, 0, opts.frames)
	capture := func() error {
		img, err := rendering.RenderFrame(h.c, ro)
		if err != nil {
			return err
		}
		frames = append(frames, img)
		return nil
	}

	if err := capture(); err != nil {
		return nil, err
	}
	if opts.frames > 1 {
		if err := apply(h, opts.action); err != nil {
			return nil, err
		}
	}
	for len(frames) < opts.frames {
		h.pump(opts.interval)
		if err := capture(); err != nil {
			return nil, err
		}
	}

	var strip image.Image = rendering.Strip(frames, 8, rendering.ColorBlack)
	if opts.scale != 1 {
		strip = rendering.Resize(strip, opts.scale)
	}
	return strip, nil
}
