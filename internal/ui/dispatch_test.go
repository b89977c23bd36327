package ui

import (
	"testing"

	"github.com/five82/projnav/internal/state"
	"github.com/five82/projnav/internal/terminal"
)

func apply(s state.Screen, keys ...terminal.Key) (state.Screen, Action) {
	km := DefaultKeyMap()
	action := Continue
	for _, k := range keys {
		s, action = Dispatch(s, k, km)
		if action == Quit {
			break
		}
	}
	return s, action
}

func TestDispatch_NormalNavigation(t *testing.T) {
	projects := []string{"one", "two", "three", "four"}
	tests := []struct {
		name string
		keys []terminal.Key
		want int
	}{
		{"j twice", []terminal.Key{runeKey('j'), runeKey('j')}, 2},
		{"down twice", []terminal.Key{downKey, downKey}, 2},
		{"up at top", []terminal.Key{upKey, runeKey('k')}, 0},
		{"down past end", []terminal.Key{downKey, downKey, downKey, downKey, downKey}, 3},
		{"down then up", []terminal.Key{runeKey('j'), runeKey('j'), runeKey('k')}, 1},
		{"unbound keys ignored", []terminal.Key{runeKey('x'), terminal.Key{Kind: terminal.KeyLeft}, escKey}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, action := apply(state.New(projects), tt.keys...)
			if action != Continue {
				t.Fatalf("action = %v, want Continue", action)
			}
			if got.Selected != tt.want {
				t.Fatalf("Selected = %d, want %d", got.Selected, tt.want)
			}
			if got.Inserting() {
				t.Fatalf("Inserting = true, want Normal mode")
			}
		})
	}
}

func TestDispatch_EmptyListNavigation(t *testing.T) {
	got, _ := apply(state.New(nil), downKey, upKey, downKey, runeKey('j'))
	if got.Selected != 0 {
		t.Fatalf("Selected = %d, want 0", got.Selected)
	}
}

func TestDispatch_SearchRoundTrip(t *testing.T) {
	start, _ := apply(state.New([]string{"one", "two", "three"}), downKey)

	got, _ := apply(start, runeKey('i'), runeKey('a'), runeKey('b'))
	insert, ok := got.Mode.(state.Insert)
	if !ok {
		t.Fatalf("Mode = %T, want Insert", got.Mode)
	}
	if insert.Buffer != "ab" {
		t.Fatalf("Buffer = %q, want %q", insert.Buffer, "ab")
	}

	got, _ = apply(got, escKey)
	if got.Inserting() {
		t.Fatalf("Inserting = true after esc")
	}
	if got.Selected != start.Selected {
		t.Fatalf("Selected = %d, want %d", got.Selected, start.Selected)
	}
	if got.Mode.SearchText() != "ab" {
		t.Fatalf("SearchText = %q, want %q", got.Mode.SearchText(), "ab")
	}

	got, _ = apply(got, runeKey('s'), runeKey('c'))
	if got.Mode.SearchText() != "abc" {
		t.Fatalf("SearchText after re-entering = %q, want %q", got.Mode.SearchText(), "abc")
	}
}

func TestDispatch_InsertTreatsCommandKeysAsText(t *testing.T) {
	got, action := apply(state.New([]string{"one", "two"}), runeKey('i'), runeKey('q'), runeKey('j'), runeKey('k'))
	if action != Continue {
		t.Fatalf("action = %v, want Continue", action)
	}
	if got.Mode.SearchText() != "qjk" {
		t.Fatalf("SearchText = %q, want %q", got.Mode.SearchText(), "qjk")
	}
	if got.Selected != 0 {
		t.Fatalf("Selected = %d, want 0", got.Selected)
	}
}

func TestDispatch_InsertIgnoresNonPrintable(t *testing.T) {
	start, _ := apply(state.New([]string{"one", "two"}), runeKey('i'), runeKey('a'))
	got, _ := apply(start,
		downKey,
		upKey,
		terminal.Key{Kind: terminal.KeyEnter},
		terminal.Key{Kind: terminal.KeyTab},
		terminal.Key{Kind: terminal.KeyCtrl, Rune: 'c'},
		terminal.Key{Kind: terminal.KeyAlt, Rune: 'x'},
		terminal.Key{Kind: terminal.KeyOther},
	)
	if got.Mode != start.Mode || got.Selected != start.Selected {
		t.Fatalf("screen = %+v, want unchanged %+v", got, start)
	}
}

func TestDispatch_BackspaceLaws(t *testing.T) {
	start, _ := apply(state.New(nil), runeKey('i'))
	got, _ := apply(start, backspaceKey)
	if got.Mode.SearchText() != "" || !got.Inserting() {
		t.Fatalf("backspace on empty = %#v, want empty Insert", got.Mode)
	}

	withText, _ := apply(start, runeKey('h'), runeKey('é'))
	got, _ = apply(withText, runeKey('z'), backspaceKey)
	if got.Mode != withText.Mode {
		t.Fatalf("append then backspace = %#v, want %#v", got.Mode, withText.Mode)
	}
}

func TestDispatch_QuitOnlyInNormal(t *testing.T) {
	s := state.New([]string{"one"})
	if _, action := apply(s, runeKey('q')); action != Quit {
		t.Fatalf("action = %v, want Quit", action)
	}
	if _, action := apply(s, runeKey('i'), runeKey('q')); action != Continue {
		t.Fatalf("action in Insert = %v, want Continue", action)
	}
}
