package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/projnav/internal/state"
	"github.com/five82/projnav/internal/terminal"
)

// Action tells the event loop whether to keep going.
type Action int

const (
	Continue Action = iota
	Quit
)

// Dispatch applies one key press to s. It has no side effects; unbound keys
// return s unchanged.
func Dispatch(s state.Screen, k terminal.Key, keys keyMap) (state.Screen, Action) {
	if s.Inserting() {
		return dispatchInsert(s, k, keys), Continue
	}
	return dispatchNormal(s, k, keys)
}

func dispatchNormal(s state.Screen, k terminal.Key, keys keyMap) (state.Screen, Action) {
	switch {
	case key.Matches(k, keys.Up):
		return s.MoveUp(), Continue
	case key.Matches(k, keys.Down):
		return s.MoveDown(), Continue
	case key.Matches(k, keys.Search):
		return s.StartSearch(), Continue
	case key.Matches(k, keys.Quit):
		return s, Quit
	}
	return s, Continue
}

func dispatchInsert(s state.Screen, k terminal.Key, keys keyMap) state.Screen {
	switch {
	case key.Matches(k, keys.Escape):
		return s.StopSearch()
	case key.Matches(k, keys.Backspace):
		return s.DeleteRune()
	case k.Printable():
		return s.AppendRune(k.Rune)
	}
	return s
}
