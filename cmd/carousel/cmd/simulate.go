package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

func init() {
	RegisterCommand(&Command{
		Name:  "simulate",
		Short: "Run a scripted session headlessly",
		Long: `Run a script of carousel events on a simulated clock and print the state
after each one.

Actions:
  next, prev            Step one item forward or back
  drag:OFFSET[@VEL]     Drag by OFFSET px, released at VEL px/s (default 0)
  hover, leave          Pointer enters or leaves the carousel
  wait:MS               Advance the clock by MS milliseconds

Every action except wait is followed by running frames until the carousel
settles.

Flags:
  --timeout MS   Settle timeout per action (default 5000)

Example:
  carousel simulate next next drag:-80@-900 wait:3000 prev`,
		Usage: "carousel simulate [--timeout MS] <action>...",
		Run:   runSimulate,
	})
}

type simulateOptions struct {
	timeout time.Duration
	actions []string
}

func parseSimulateArgs(args []string) (simulateOptions, error) {
	opts := simulateOptions{timeout: 5 * time.Second}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--timeout":
			v, err := flagValue(args, i, "--timeout")
			if err != nil {
				return opts, err
			}
			ms, err := strconv.Atoi(v)
			if err != nil || ms <= 0 {
				return opts, fmt.Errorf("--timeout must be a positive number of milliseconds, got %q", v)
			}
			opts.timeout = time.Duration(ms) * time.Millisecond
			i++
		default:
			opts.actions = append(opts.actions, args[i])
		}
	}
	return opts, nil
}

func runSimulate(args []string) error {
	opts, err := parseSimulateArgs(args)
	if err != nil {
		return err
	}
	if len(opts.actions) == 0 {
		return fmt.Errorf("at least one action is required\n\nUsage: carousel simulate <action>...")
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
	return simulate(os.Stdout, h, opts)
}

func simulate(w io.Writer, h *headless, opts simulateOptions) error {
	printState(w, h, "start")
	for _, action := range opts.actions {
		if err := apply(h, action); err != nil {
			return err
		}
		if !strings.HasPrefix(action, "wait:") {
			if err := h.settle(opts.timeout); err != nil {
				return fmt.Errorf("%s: %w", action, err)
			}
		}
		printState(w, h, action)
	}
	return nil
}

func apply(h *headless, action string) error {
	name, arg, _ := strings.Cut(action, ":")
	switch name {
	case "next":
		h.c.Step(1)
	case "prev":
		h.c.Step(-1)
	case "hover":
		h.c.PointerEnter()
	case "leave":
		h.c.PointerLeave()
	case "wait":
		ms, err := strconv.Atoi(arg)
		if err != nil || ms < 0 {
			return fmt.Errorf("wait: invalid duration %q", arg)
		}
		h.pump(time.Duration(ms) * time.Millisecond)
	case "drag":
		offsetText, velocityText, hasVelocity := strings.Cut(arg, "@")
		offset, err := strconv.ParseFloat(offsetText, 64)
		if err != nil {
			return fmt.Errorf("drag: invalid offset %q", offsetText)
		}
		var velocity float64
		if hasVelocity {
			if velocity, err = strconv.ParseFloat(velocityText, 64); err != nil {
				return fmt.Errorf("drag: invalid velocity %q", velocityText)
			}
		}
		h.c.DragStart()
		h.c.DragUpdate(offset)
		h.c.DragEnd(offset, velocity)
	default:
		return fmt.Errorf("unknown action %q", action)
	}
	return nil
}

func printState(w io.Writer, h *headless, action string) {
	c := h.c
	fmt.Fprintf(w, "%-14s position=%d item=%d label=%q offset=%.1f phase=%s\n",
		action, c.Position(), c.RealIndex(), currentLabel(c), c.Offset(), c.Phase())
}
