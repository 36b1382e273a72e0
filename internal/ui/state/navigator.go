package state

import (
	"errors"
	"fmt"
	"slices"

	"github.com/atomicstack/infotainment-menu/internal/menu"
)

var (
	// ErrNoSubmenu reports an attempt to enter a submenu from a leaf entry.
	ErrNoSubmenu = errors.New("no submenu to enter")
	// ErrAlreadyAtRoot reports an attempt to go back with no history.
	ErrAlreadyAtRoot = errors.New("already at the root menu")
)

// Navigator tracks the active menu node, the cursor among its children, and
// the ancestors visited on the way down. The tree is shared and never
// modified; the navigator only holds identifiers into it.
type Navigator struct {
	tree    *menu.Tree
	current menu.NodeID
	cursor  int
	offset  int
	history []menu.NodeID
}

// NewNavigator positions a navigator at the root of tree. A nil tree falls
// back to the default hierarchy.
func NewNavigator(tree *menu.Tree) *Navigator {
	if tree == nil {
		tree = menu.Build()
	}
	return &Navigator{tree: tree, current: menu.Root}
}

// Tree returns the menu tree being navigated.
func (n *Navigator) Tree() *menu.Tree {
	return n.tree
}

// Current returns the node whose children are displayed.
func (n *Navigator) Current() menu.NodeID {
	return n.current
}

// CurrentName returns the display label of the current node.
func (n *Navigator) CurrentName() string {
	return n.tree.Name(n.current)
}

// Cursor returns the index of the highlighted child.
func (n *Navigator) Cursor() int {
	return n.cursor
}

// History returns the visited ancestors, most recent last.
func (n *Navigator) History() []menu.NodeID {
	return slices.Clone(n.history)
}

// Depth returns the number of entries on the history stack.
func (n *Navigator) Depth() int {
	return len(n.history)
}

// AtRoot reports whether there is nothing to go back to.
func (n *Navigator) AtRoot() bool {
	return len(n.history) == 0
}

// Selected returns the child under the cursor.
func (n *Navigator) Selected() (menu.NodeID, bool) {
	return n.tree.Child(n.current, n.cursor)
}

// EnterSubmenu descends into the child under the cursor and resets the
// cursor to the first entry. Leaf entries leave the state untouched.
func (n *Navigator) EnterSubmenu() error {
	child, ok := n.Selected()
	if !ok {
		return ErrNoSubmenu
	}
	n.history = append(n.history, n.current)
	n.current = child
	n.cursor = 0
	n.offset = 0
	return nil
}

// GoBack returns to the most recently visited ancestor. The cursor always
// restarts at the first entry rather than where it was left.
func (n *Navigator) GoBack() error {
	if len(n.history) == 0 {
		return ErrAlreadyAtRoot
	}
	last := len(n.history) - 1
	n.current = n.history[last]
	n.history = n.history[:last]
	n.cursor = 0
	n.offset = 0
	return nil
}

// Follow enters the child at each index in turn, starting from the current
// node. On failure the navigator is left where it was.
func (n *Navigator) Follow(indices []int) error {
	next := n.Clone()
	for _, idx := range indices {
		count := next.tree.ChildCount(next.current)
		if idx < 0 || idx >= count {
			return fmt.Errorf("child %d out of range under %q (%d entries)", idx, next.CurrentName(), count)
		}
		next.cursor = idx
		if err := next.EnterSubmenu(); err != nil {
			return err
		}
	}
	*n = *next
	return nil
}

// Clone returns an independent navigator sharing the same tree.
func (n *Navigator) Clone() *Navigator {
	return &Navigator{
		tree:    n.tree,
		current: n.current,
		cursor:  n.cursor,
		offset:  n.offset,
		history: slices.Clone(n.history),
	}
}
