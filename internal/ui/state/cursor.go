package state

// MoveDown advances the cursor by one entry. The cursor stops at the last
// entry instead of wrapping.
func (n *Navigator) MoveDown() bool {
	return n.moveCursorBy(1)
}

// MoveUp moves the cursor back by one entry, stopping at the first.
func (n *Navigator) MoveUp() bool {
	return n.moveCursorBy(-1)
}

func (n *Navigator) moveCursorBy(delta int) bool {
	count := n.tree.ChildCount(n.current)
	if count == 0 {
		n.cursor = 0
		return false
	}
	old := n.cursor
	n.cursor = clamp(n.cursor+delta, 0, count-1)
	return n.cursor != old
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
