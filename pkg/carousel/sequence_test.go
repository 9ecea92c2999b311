package carousel

import (
	"reflect"
	"testing"
)

func TestPadSequence(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		loop  bool
		want  []Item
	}{
		{"no loop copies", []Item{"a", "b", "c"}, false, []Item{"a", "b", "c"}},
		{"loop pads both ends", []Item{"a", "b", "c"}, true, []Item{"c", "a", "b", "c", "a"}},
		{"loop single", []Item{"a"}, true, []Item{"a", "a", "a"}},
		{"loop empty", nil, true, []Item{}},
		{"no loop empty", nil, false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PadSequence(tt.items, tt.loop)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			if len(got) > 0 && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PadSequence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPadSequence_NoLoopIsIdempotent(t *testing.T) {
	items := []Item{1, 2, 3, 4, 5}
	once := PadSequence(items, false)
	twice := PadSequence(once, false)
	if !reflect.DeepEqual(once, twice) || !reflect.DeepEqual(once, items) {
		t.Errorf("PadSequence not idempotent: %v then %v", once, twice)
	}
}

func TestPadSequence_DoesNotAlias(t *testing.T) {
	items := []Item{"a", "b"}
	got := PadSequence(items, false)
	got[0] = "z"
	if items[0] != "a" {
		t.Errorf("input mutated: items[0] = %v", items[0])
	}
}

func TestRealIndexRoundTrip(t *testing.T) {
	for _, loop := range []bool{false, true} {
		for real := range 4 {
			pos := renderIndex(real, 4, loop)
			if got := realIndex(pos, 4, loop); got != real {
				t.Errorf("loop=%v: realIndex(renderIndex(%d)) = %d", loop, real, got)
			}
		}
	}
}

func TestRealIndex_PaddingCopies(t *testing.T) {
	if got := realIndex(0, 3, true); got != 2 {
		t.Errorf("realIndex(0) = %d, want 2", got)
	}
	if got := realIndex(4, 3, true); got != 0 {
		t.Errorf("realIndex(4) = %d, want 0", got)
	}
}

func TestInitialPosition(t *testing.T) {
	tests := []struct {
		n    int
		loop bool
		want int
	}{
		{3, true, 1},
		{3, false, 0},
		{0, true, 0},
		{1, true, 1},
	}
	for _, tt := range tests {
		if got := initialPosition(tt.n, tt.loop); got != tt.want {
			t.Errorf("initialPosition(%d, %v) = %d, want %d", tt.n, tt.loop, got, tt.want)
		}
	}
}
