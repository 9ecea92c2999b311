package cmd

import (
	"testing"
	"time"
)

func TestParseSnapshotArgs(t *testing.T) {
	opts, err := parseSnapshotArgs(nil)
	if err != nil {
		t.Fatalf("parseSnapshotArgs(nil) = %v", err)
	}
	if opts.out != "carousel.png" || opts.frames != 6 || opts.interval != 60*time.Millisecond ||
		opts.action != "next" || opts.scale != 1 || !opts.labels {
		t.Errorf("defaults = %+v", opts)
	}

	opts, err = parseSnapshotArgs([]string{"--out", "-", "--frames", "3", "--no-labels", "--interval", "0", "--action", "prev", "--scale", "0.5"})
	if err != nil {
		t.Fatalf("parseSnapshotArgs() = %v", err)
	}
	if opts.out != "-" || opts.frames != 3 || opts.interval != 0 || opts.action != "prev" || opts.scale != 0.5 || opts.labels {
		t.Errorf("opts = %+v", opts)
	}

	bad := [][]string{
		{"--frames", "0"},
		{"--interval", "-5"},
		{"--scale", "0"},
		{"--bogus", "1"},
		{"--out"},
	}
	for _, args := range bad {
		if _, err := parseSnapshotArgs(args); err == nil {
			t.Errorf("parseSnapshotArgs(%q) succeeded, want error", args)
		}
	}
}

func TestRenderStrip(t *testing.T) {
	tests := []struct {
		name  string
		opts  snapshotOptions
		w, h  int
		final int
	}{
		{"single", snapshotOptions{frames: 1, action: "next", scale: 1}, 300, 332, 0},
		{"three", snapshotOptions{frames: 3, interval: 60 * time.Millisecond, action: "next", scale: 1}, 916, 332, 1},
		{"scaled", snapshotOptions{frames: 3, interval: 60 * time.Millisecond, action: "next", scale: 0.5}, 458, 166, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHeadless(t, testItems())
			img, err := renderStrip(h, tt.opts)
			if err != nil {
				t.Fatalf("renderStrip() = %v", err)
			}
			if b := img.Bounds(); b.Dx() != tt.w || b.Dy() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.w, tt.h)
			}
			if got := h.c.Position(); got != tt.final {
				t.Errorf("Position() = %d, want %d", got, tt.final)
			}
		})
	}
}

func TestRenderStripBadAction(t *testing.T) {
	h := newTestHeadless(t, testItems())
	if _, err := renderStrip(h, snapshotOptions{frames: 2, action: "spin", scale: 1}); err == nil {
		t.Fatal("renderStrip() succeeded with unknown action")
	}
}
