package testing

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/carousel/pkg/carousel"
)

// UpdateEnv is the environment variable that makes MatchesFile rewrite
// golden files instead of comparing against them.
const UpdateEnv = "CAROUSEL_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the observable state of a carousel at one instant.
type Snapshot struct {
	Position           int            `yaml:"position"`
	RealIndex          int            `yaml:"realIndex"`
	Phase              string         `yaml:"phase"`
	Offset             float64        `yaml:"offset"`
	Target             float64        `yaml:"target"`
	PerspectiveOriginX float64        `yaml:"perspectiveOriginX"`
	Flags              FlagsSnapshot  `yaml:"flags"`
	Items              []ItemSnapshot `yaml:"items,omitempty"`
}

// FlagsSnapshot mirrors carousel.Flags.
type FlagsSnapshot struct {
	Dragging  bool `yaml:"dragging"`
	Animating bool `yaml:"animating"`
	Jumping   bool `yaml:"jumping"`
	Hovered   bool `yaml:"hovered"`
}

// ItemSnapshot is one rendered item's projection.
type ItemSnapshot struct {
	Index   int     `yaml:"index"`
	RotateY float64 `yaml:"rotateY"`
	ZIndex  float64 `yaml:"zIndex"`
}

// CaptureSnapshot records the carousel's current state. Floats are rounded
// to two decimals so snapshots are stable across integrators.
func CaptureSnapshot(c *carousel.Carousel) *Snapshot {
	f := c.Flags()
	snap := &Snapshot{
		Position:           c.Position(),
		RealIndex:          c.RealIndex(),
		Phase:              c.Phase().String(),
		Offset:             round2(c.Offset()),
		Target:             round2(c.Target()),
		PerspectiveOriginX: round2(c.PerspectiveOriginX()),
		Flags: FlagsSnapshot{
			Dragging:  f.Dragging,
			Animating: f.Animating,
			Jumping:   f.Jumping,
			Hovered:   f.Hovered,
		},
	}
	for _, p := range c.Projections() {
		snap.Items = append(snap.Items, ItemSnapshot{
			Index:   p.Index,
			RotateY: round2(p.RotateY),
			ZIndex:  round2(p.ZIndex),
		})
	}
	return snap
}

// CaptureSnapshot records the state of the carousel under test.
func (ct *CarouselTester) CaptureSnapshot() *Snapshot {
	return CaptureSnapshot(ct.carousel)
}

// MatchesFile compares this snapshot against a golden YAML file. On
// mismatch it reports a diff and instructions for updating. When
// CAROUSEL_UPDATE_SNAPSHOTS=1 is set, the file is rewritten instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := LoadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other, or "" if they
// are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

// LoadSnapshot reads a snapshot from a YAML file.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot YAML: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// round2 rounds to two decimals and folds negative zero into zero.
func round2(v float64) float64 {
	return math.Round(v*100)/100 + 0
}

// lineDiff produces a simple line-oriented diff.
func lineDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}
	return buf.String()
}
