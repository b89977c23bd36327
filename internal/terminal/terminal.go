package terminal

import "github.com/charmbracelet/lipgloss"

// Position is a 1-based terminal cell address.
type Position struct {
	Col int
	Row int
}

// Terminal is the set of control operations the renderer draws with.
//
// Output is buffered until Flush. Implementations keep the first write error
// and return it from Flush, so callers check once per frame.
type Terminal interface {
	MoveTo(p Position)
	ClearBelow()
	SetForeground(c lipgloss.Color)
	ResetForeground()
	HideCursor()
	ShowCursor()
	WriteString(s string)
	Flush() error
}
