package menu

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildWiresDefaultHierarchy(t *testing.T) {
	tree := Build()

	if got := tree.Name(Root); got != "Main Menu" {
		t.Fatalf("expected root name Main Menu, got %q", got)
	}
	if diff := cmp.Diff([]string{"Settings", "Media"}, tree.ChildNames(Root)); diff != "" {
		t.Fatalf("root children mismatch (-want +got):\n%s", diff)
	}

	settings, _ := tree.Child(Root, 0)
	if diff := cmp.Diff([]string{"Display Settings", "Audio Settings"}, tree.ChildNames(settings)); diff != "" {
		t.Fatalf("settings children mismatch (-want +got):\n%s", diff)
	}
	display, _ := tree.Child(settings, 0)
	if diff := cmp.Diff([]string{"Change Theme"}, tree.ChildNames(display)); diff != "" {
		t.Fatalf("display children mismatch (-want +got):\n%s", diff)
	}
	audio, _ := tree.Child(settings, 1)
	want := []string{"Volume Control", "Equalizer Settings", "Bluetooth Audio"}
	if diff := cmp.Diff(want, tree.ChildNames(audio)); diff != "" {
		t.Fatalf("audio children mismatch (-want +got):\n%s", diff)
	}
	media, _ := tree.Child(Root, 1)
	if diff := cmp.Diff([]string{"Radio", "Bluetooth Audio"}, tree.ChildNames(media)); diff != "" {
		t.Fatalf("media children mismatch (-want +got):\n%s", diff)
	}

	if tree.Len() != 11 {
		t.Fatalf("expected 11 nodes, got %d", tree.Len())
	}
	if tree.MaxDepth() != 3 {
		t.Fatalf("expected max depth 3, got %d", tree.MaxDepth())
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a, b := Build(), Build()
	for id := NodeID(0); int(id) < a.Len(); id++ {
		na, _ := a.Node(id)
		nb, _ := b.Node(id)
		if diff := cmp.Diff(na, nb); diff != "" {
			t.Fatalf("node %d differs between builds:\n%s", id, diff)
		}
	}
}

func TestChildrenReturnsCopy(t *testing.T) {
	tree := Build()
	children := tree.Children(Root)
	children[0] = 99
	if got, _ := tree.Child(Root, 0); got == 99 {
		t.Fatal("expected tree to be unaffected by caller mutation")
	}
	node, _ := tree.Node(Root)
	node.Children[1] = 42
	if got, _ := tree.Child(Root, 1); got == 42 {
		t.Fatal("expected Node to return an independent copy")
	}
}

func TestLeafLookups(t *testing.T) {
	tree := Build()
	media, _ := tree.Child(Root, 1)
	radio, ok := tree.Child(media, 0)
	if !ok {
		t.Fatal("expected radio child")
	}
	if !tree.IsLeaf(radio) {
		t.Fatal("expected Radio to be a leaf")
	}
	if got := tree.Children(radio); len(got) != 0 {
		t.Fatalf("expected no children for leaf, got %v", got)
	}
	if _, ok := tree.Child(radio, 0); ok {
		t.Fatal("expected no child at index 0 of a leaf")
	}
	if _, ok := tree.Child(media, 2); ok {
		t.Fatal("expected out-of-range child lookup to fail")
	}
	if tree.Name(NodeID(500)) != "" {
		t.Fatal("expected empty name for unknown node")
	}
}

func TestPath(t *testing.T) {
	tree := Build()
	settings, _ := tree.Child(Root, 0)
	audio, _ := tree.Child(settings, 1)
	eq, _ := tree.Child(audio, 1)

	want := []string{"Main Menu", "Settings", "Audio Settings", "Equalizer Settings"}
	if diff := cmp.Diff(want, tree.Path(eq)); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Main Menu"}, tree.Path(Root)); diff != "" {
		t.Fatalf("root path mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve(t *testing.T) {
	tree := Build()
	tests := []struct {
		name     string
		segments []string
		want     []int
	}{
		{name: "empty", segments: nil, want: []int{}},
		{name: "exact", segments: []string{"Media", "Radio"}, want: []int{1, 0}},
		{name: "case insensitive", segments: []string{"settings", "audio settings"}, want: []int{0, 1}},
		{name: "fuzzy", segments: []string{"sett", "disp", "theme"}, want: []int{0, 0, 0}},
		{name: "blank segments skipped", segments: []string{" ", "Media", ""}, want: []int{1}},
		{name: "exact before fuzzy", segments: []string{"Settings", "Audio Settings", "Bluetooth Audio"}, want: []int{0, 1, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tree.Resolve(tc.segments)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("indices mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveUnknownSegment(t *testing.T) {
	tree := Build()
	_, err := tree.Resolve([]string{"Media", "Navigation"})
	if !errors.Is(err, ErrUnknownPath) {
		t.Fatalf("expected ErrUnknownPath, got %v", err)
	}
	_, err = tree.Resolve([]string{"Media", "Radio", "Presets"})
	if !errors.Is(err, ErrUnknownPath) {
		t.Fatalf("expected ErrUnknownPath below a leaf, got %v", err)
	}
}

func TestFromDefinitionRejectsBlankNames(t *testing.T) {
	_, err := FromDefinition(Definition{Name: "  "})
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName for root, got %v", err)
	}

	def := Definition{
		Name: "Main Menu",
		Children: []Definition{
			{Name: "Media", Children: []Definition{{Name: ""}}},
		},
	}
	_, err = FromDefinition(def)
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if got := err.Error(); got != `menu entry name is empty: under "Main Menu/Media"` {
		t.Fatalf("unexpected error text %q", got)
	}
}

func TestFromDefinitionTrimsNames(t *testing.T) {
	tree, err := FromDefinition(Definition{Name: " Home ", Children: []Definition{{Name: "\tRadio "}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"Home", "Radio"}, tree.Path(NodeID(1))); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitPath(t *testing.T) {
	got := SplitPath(" Settings / Audio Settings// ")
	if diff := cmp.Diff([]string{"Settings", "Audio Settings"}, got); diff != "" {
		t.Fatalf("segments mismatch (-want +got):\n%s", diff)
	}
	if got := SplitPath(""); len(got) != 0 {
		t.Fatalf("expected no segments, got %v", got)
	}
}
