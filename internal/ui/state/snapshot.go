package state

import "strings"

const (
	selectedPrefix   = "> "
	unselectedPrefix = "  "
)

// Snapshot is a read-only view of the navigator at one point in time.
type Snapshot struct {
	Title  string
	Items  []string
	Cursor int
	// Offset is the index of the first item inside the viewport.
	Offset int
	Path   []string
}

// Snapshot captures the current node, its children, and the cursor.
func (n *Navigator) Snapshot() Snapshot {
	return Snapshot{
		Title:  n.tree.Name(n.current),
		Items:  n.tree.ChildNames(n.current),
		Cursor: n.cursor,
		Offset: n.offset,
		Path:   n.tree.Path(n.current),
	}
}

// Render returns the textual form of the current snapshot.
func (n *Navigator) Render() string {
	return n.Snapshot().String()
}

// Visible returns at most maxVisible items starting at the viewport offset,
// along with the index of the first one. A non-positive maxVisible returns
// every item.
func (s Snapshot) Visible(maxVisible int) (int, []string) {
	if maxVisible <= 0 || len(s.Items) <= maxVisible {
		return 0, s.Items
	}
	start := clamp(s.Offset, 0, len(s.Items)-maxVisible)
	return start, s.Items[start : start+maxVisible]
}

// String renders the title followed by one line per item, marking the item
// under the cursor.
func (s Snapshot) String() string {
	var b strings.Builder
	b.WriteString(s.Title)
	b.WriteByte(':')
	for i, item := range s.Items {
		b.WriteByte('\n')
		if i == s.Cursor {
			b.WriteString(selectedPrefix)
		} else {
			b.WriteString(unselectedPrefix)
		}
		b.WriteString(item)
	}
	return b.String()
}
