package theme

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"classic", "Sport", " ECO "} {
		s, ok := Lookup(name)
		if !ok {
			t.Fatalf("expected theme %q", name)
		}
		if s.Header == nil || s.SelectedItem == nil || s.Indicator == "" {
			t.Fatalf("theme %q is incomplete: %#v", name, s)
		}
	}
	if _, ok := Lookup("neon"); ok {
		t.Fatal("expected unknown theme to be rejected")
	}
}

func TestDefaultIsClassic(t *testing.T) {
	if Default().Name != "Classic" {
		t.Fatalf("expected Classic, got %q", Default().Name)
	}
}

func TestNames(t *testing.T) {
	if diff := cmp.Diff([]string{"Classic", "Eco", "Sport"}, Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}
