package app

import (
	"fmt"

	"github.com/five82/projnav/internal/terminal"
	"github.com/five82/projnav/internal/ui"
)

// reserveLines is how many blank lines to print before anchoring so a frame
// for count projects fits without scrolling the terminal. A height of zero
// means the size is unknown.
func reserveLines(count, height int) int {
	lines := ui.FrameHeight(count)
	if height > 1 && lines > height-1 {
		lines = height - 1
	}
	return lines
}

// reserve scrolls lines blank rows into view below the prompt, then returns
// the position those rows start at. Every frame is drawn from there.
func reserve(t terminal.Terminal, cursor func() (terminal.Position, error), lines int) (terminal.Position, error) {
	for range lines {
		t.WriteString("\r\n")
	}
	if err := t.Flush(); err != nil {
		return terminal.Position{}, fmt.Errorf("reserve drawing area: %w", err)
	}

	pos, err := cursor()
	if err != nil {
		return terminal.Position{}, fmt.Errorf("detect cursor position: %w", err)
	}
	return terminal.Position{Col: pos.Col, Row: max(1, pos.Row-lines)}, nil
}
