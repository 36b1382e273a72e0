package state

import (
	"math/rand/v2"
	"testing"

	"github.com/atomicstack/infotainment-menu/internal/menu"
)

func newTestNavigator(t *testing.T, names ...string) *Navigator {
	t.Helper()
	def := menu.Definition{Name: "Test"}
	for _, name := range names {
		def.Children = append(def.Children, menu.Definition{Name: name})
	}
	tree, err := menu.FromDefinition(def)
	if err != nil {
		t.Fatalf("build tree: %v", err)
	}
	return NewNavigator(tree)
}

func TestMoveDownStopsAtLastItem(t *testing.T) {
	nav := newTestNavigator(t, "a", "b", "c")
	if !nav.MoveDown() || nav.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", nav.Cursor())
	}
	if !nav.MoveDown() || nav.Cursor() != 2 {
		t.Fatalf("expected cursor 2, got %d", nav.Cursor())
	}
	if nav.MoveDown() {
		t.Fatal("expected no movement past the last item")
	}
	if nav.Cursor() != 2 {
		t.Fatalf("expected cursor to stay at 2, got %d", nav.Cursor())
	}
}

func TestMoveUpStopsAtFirstItem(t *testing.T) {
	nav := newTestNavigator(t, "a", "b")
	if nav.MoveUp() {
		t.Fatal("expected no movement above the first item")
	}
	if nav.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", nav.Cursor())
	}
	nav.MoveDown()
	if !nav.MoveUp() || nav.Cursor() != 0 {
		t.Fatalf("expected cursor back at 0, got %d", nav.Cursor())
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	sequences := []string{
		"",
		"u",
		"d",
		"dddddddd",
		"uuuuuuuu",
		"dudududu",
		"ddduuuuuuddd",
		"dddddduuddduuuuuuuudduddddd",
	}
	for n := 1; n <= 5; n++ {
		for _, moves := range sequences {
			checkCursorWalk(t, n, []byte(moves))
		}
	}
}

func TestCursorRandomWalkStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		n := 1 + rng.IntN(6)
		moves := make([]byte, rng.IntN(40))
		for i := range moves {
			moves[i] = "ud"[rng.IntN(2)]
		}
		checkCursorWalk(t, n, moves)
	}
}

// checkCursorWalk applies moves ('d' down, 'u' up) to a navigator with n
// children, comparing each step against a clamped reference cursor.
func checkCursorWalk(t *testing.T, n int, moves []byte) {
	t.Helper()
	names := make([]string, n)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	nav := newTestNavigator(t, names...)
	want := 0
	for i, m := range moves {
		prev := want
		var moved bool
		if m == 'd' {
			moved = nav.MoveDown()
			want = min(want+1, n-1)
		} else {
			moved = nav.MoveUp()
			want = max(want-1, 0)
		}
		if nav.Cursor() != want {
			t.Fatalf("n=%d moves=%q step %d: cursor %d, want %d", n, moves, i, nav.Cursor(), want)
		}
		if nav.Cursor() < 0 || nav.Cursor() > n-1 {
			t.Fatalf("n=%d moves=%q step %d: cursor %d out of [0,%d]", n, moves, i, nav.Cursor(), n-1)
		}
		if moved != (want != prev) {
			t.Fatalf("n=%d moves=%q step %d: moved=%v with cursor %d -> %d", n, moves, i, moved, prev, want)
		}
	}
}

func TestCursorMovesAreNoOpsOnLeaf(t *testing.T) {
	nav := newTestNavigator(t)
	if nav.MoveDown() {
		t.Fatal("expected no movement on a childless node")
	}
	if nav.MoveUp() {
		t.Fatal("expected no movement on a childless node")
	}
	if nav.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", nav.Cursor())
	}
}
