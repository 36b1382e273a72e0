package state

// Offset returns the index of the first child inside the viewport.
func (n *Navigator) Offset() int {
	return n.offset
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays within
// a window of maxVisible entries. A non-positive maxVisible shows everything.
func (n *Navigator) EnsureCursorVisible(maxVisible int) {
	count := n.tree.ChildCount(n.current)
	if count == 0 || maxVisible <= 0 {
		n.offset = 0
		return
	}
	maxOffset := max(count-maxVisible, 0)
	n.offset = clamp(n.offset, 0, maxOffset)
	if n.cursor < n.offset {
		n.offset = n.cursor
	}
	if upper := n.offset + maxVisible - 1; n.cursor > upper {
		n.offset = clamp(n.cursor-maxVisible+1, 0, maxOffset)
	}
}
