package ui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/projnav/internal/state"
	"github.com/five82/projnav/internal/terminal"
)

// lineEnd returns to the left margin explicitly; raw mode does not translate \n.
const lineEnd = "\r\n"

const (
	selectedMarker   = "→ "
	unselectedMarker = "  "
	insertHint       = "type to search"
)

// FrameHeight is the number of rows a frame listing count projects occupies.
func FrameHeight(count int) int {
	return 2 + count
}

// Renderer redraws the whole view from a fixed anchor on every frame.
type Renderer struct {
	term   terminal.Terminal
	anchor terminal.Position
	theme  Theme
	header string
	width  int

	normalHint string
}

func newRenderer(term terminal.Terminal, anchor terminal.Position, theme Theme, header string, width int, keys keyMap) *Renderer {
	if header == "" {
		header = "projects"
	}
	return &Renderer{
		term:       term,
		anchor:     anchor,
		theme:      theme,
		header:     header,
		width:      width,
		normalHint: fmt.Sprintf("press %s to search", keys.Search.Help().Key),
	}
}

// Render draws s and flushes. Clearing below the anchor first removes rows
// left over from a longer previous frame.
func (r *Renderer) Render(s state.Screen) error {
	r.term.MoveTo(r.anchor)
	r.term.ClearBelow()

	r.renderHeader()
	r.renderSearch(s)
	r.renderList(s)

	if err := r.term.Flush(); err != nil {
		return fmt.Errorf("%w: flush frame: %w", ErrWrite, err)
	}
	return nil
}

func (r *Renderer) renderHeader() {
	r.term.WriteString(r.fit(fmt.Sprintf("  ---------- %s ----------", r.header), 0))
	r.term.WriteString(lineEnd)
}

func (r *Renderer) renderSearch(s state.Screen) {
	prefix := fmt.Sprintf("  [%s] ", s.Mode.Indicator())
	r.term.WriteString(prefix)

	if text := s.Mode.SearchText(); text != "" {
		r.term.WriteString(r.fit(text, len(prefix)))
	} else {
		hint := r.normalHint
		if s.Inserting() {
			hint = insertHint
		}
		r.term.SetForeground(r.theme.Hint)
		r.term.WriteString(r.fit(hint, len(prefix)))
		r.term.ResetForeground()
	}
	r.term.WriteString(lineEnd)
}

func (r *Renderer) renderList(s state.Screen) {
	for i, name := range s.Projects {
		label := r.fit(name, ansi.StringWidth(selectedMarker))
		if i == s.Selected {
			r.term.WriteString(selectedMarker)
			r.term.SetForeground(r.theme.Selected)
		} else {
			r.term.WriteString(unselectedMarker)
			r.term.ResetForeground()
		}
		r.term.WriteString(label)
		r.term.ResetForeground()
		r.term.WriteString(lineEnd)
	}
}

// fit truncates text so that it fits after used cells without wrapping.
// A width of zero means the terminal size is unknown.
func (r *Renderer) fit(text string, used int) string {
	if r.width <= 0 {
		return text
	}
	avail := r.width - used
	if avail < 1 {
		return ""
	}
	return ansi.Truncate(text, avail, "…")
}
