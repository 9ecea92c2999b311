package carousel

// PadSequence returns the render sequence for items. Without loop it is a
// copy of items. With loop and at least one item it is items with a copy of
// the last item prepended and a copy of the first appended.
func PadSequence(items []Item, loop bool) []Item {
	n := len(items)
	if !loop {
		return append([]Item(nil), items...)
	}
	if n == 0 {
		return []Item{}
	}
	seq := make([]Item, 0, n+2)
	seq = append(seq, items[n-1])
	seq = append(seq, items...)
	seq = append(seq, items[0])
	return seq
}

// initialPosition is 1 when looping over a non-empty list, else 0.
func initialPosition(n int, loop bool) int {
	if loop && n > 0 {
		return 1
	}
	return 0
}

// realIndex maps a render position to the index of the real item it shows.
func realIndex(position, n int, loop bool) int {
	if n == 0 {
		return 0
	}
	if !loop {
		return clampInt(position, 0, n-1)
	}
	switch {
	case position <= 0:
		return n - 1
	case position >= n+1:
		return 0
	default:
		return position - 1
	}
}

// renderIndex maps a real item index to its render position.
func renderIndex(real, n int, loop bool) int {
	if n == 0 {
		return 0
	}
	real = clampInt(real, 0, n-1)
	if loop {
		return real + 1
	}
	return real
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
