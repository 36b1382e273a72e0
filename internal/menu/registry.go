package menu

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// NodeID identifies a node within a Tree.
type NodeID int

const (
	// Root is the identifier of every tree's root node.
	Root NodeID = 0
	// NoParent is the parent of the root node.
	NoParent NodeID = -1
)

var (
	ErrEmptyName   = errors.New("menu entry name is empty")
	ErrUnknownPath = errors.New("unknown menu path")
)

// Node is a single menu entry. Children are listed in display order.
type Node struct {
	ID       NodeID
	Name     string
	Parent   NodeID
	Depth    int
	Children []NodeID
}

// Tree is an arena of menu nodes. It is never modified after construction,
// so any number of readers may share it.
type Tree struct {
	nodes    []Node
	maxDepth int
}

// FromDefinition builds a tree from a declarative definition.
func FromDefinition(def Definition) (*Tree, error) {
	t := &Tree{}
	if err := t.add(def, NoParent); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree) add(def Definition, parent NodeID) error {
	name := strings.TrimSpace(def.Name)
	if name == "" {
		if parent == NoParent {
			return fmt.Errorf("%w: root", ErrEmptyName)
		}
		return fmt.Errorf("%w: under %q", ErrEmptyName, strings.Join(t.Path(parent), "/"))
	}
	id := NodeID(len(t.nodes))
	depth := 0
	if parent != NoParent {
		depth = t.nodes[parent].Depth + 1
		t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	}
	t.nodes = append(t.nodes, Node{ID: id, Name: name, Parent: parent, Depth: depth})
	if depth > t.maxDepth {
		t.maxDepth = depth
	}
	for _, child := range def.Children {
		if err := t.add(child, id); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// MaxDepth returns the depth of the deepest node; the root has depth 0.
func (t *Tree) MaxDepth() int {
	return t.maxDepth
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Node returns a copy of the node with the given identifier.
func (t *Tree) Node(id NodeID) (Node, bool) {
	if !t.valid(id) {
		return Node{}, false
	}
	node := t.nodes[id]
	node.Children = slices.Clone(node.Children)
	return node, true
}

// Name returns the display label of a node, or "" for unknown identifiers.
func (t *Tree) Name(id NodeID) string {
	if !t.valid(id) {
		return ""
	}
	return t.nodes[id].Name
}

// Children returns the ordered children of a node.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.valid(id) {
		return nil
	}
	return slices.Clone(t.nodes[id].Children)
}

// ChildCount returns the number of children of a node.
func (t *Tree) ChildCount(id NodeID) int {
	if !t.valid(id) {
		return 0
	}
	return len(t.nodes[id].Children)
}

// Child resolves the child at index under the given parent.
func (t *Tree) Child(id NodeID, index int) (NodeID, bool) {
	if !t.valid(id) {
		return 0, false
	}
	children := t.nodes[id].Children
	if index < 0 || index >= len(children) {
		return 0, false
	}
	return children[index], true
}

// ChildNames returns the display labels of a node's children.
func (t *Tree) ChildNames(id NodeID) []string {
	if !t.valid(id) {
		return nil
	}
	children := t.nodes[id].Children
	names := make([]string, len(children))
	for i, child := range children {
		names[i] = t.nodes[child].Name
	}
	return names
}

// IsLeaf reports whether a node has no children.
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.ChildCount(id) == 0
}

// Path returns the labels from the root down to the given node.
func (t *Tree) Path(id NodeID) []string {
	if !t.valid(id) {
		return nil
	}
	path := make([]string, t.nodes[id].Depth+1)
	for cur := id; cur != NoParent; cur = t.nodes[cur].Parent {
		path[t.nodes[cur].Depth] = t.nodes[cur].Name
	}
	return path
}

// Resolve maps label segments to the child indices that lead from the root
// to the named node. Each segment is matched case-insensitively against the
// children of the previous node, falling back to the closest fuzzy match.
// Blank segments are skipped.
func (t *Tree) Resolve(segments []string) ([]int, error) {
	current := Root
	indices := make([]int, 0, len(segments))
	for _, raw := range segments {
		segment := strings.TrimSpace(raw)
		if segment == "" {
			continue
		}
		idx := matchIndex(t.ChildNames(current), segment)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q under %q", ErrUnknownPath, segment, t.Name(current))
		}
		indices = append(indices, idx)
		current = t.nodes[current].Children[idx]
	}
	return indices, nil
}

func matchIndex(names []string, query string) int {
	for i, name := range names {
		if strings.EqualFold(name, query) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	return best.OriginalIndex
}
