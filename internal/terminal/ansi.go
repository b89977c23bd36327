package terminal

import (
	"bufio"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

const resetForeground = termenv.CSI + "39m"

// ANSI writes VT100/xterm control sequences to an underlying writer.
// It is safe for concurrent use so the signal watcher can restore the
// cursor while a frame is being drawn.
type ANSI struct {
	mu      sync.Mutex
	w       *bufio.Writer
	profile termenv.Profile
	hidden  bool
}

var _ Terminal = (*ANSI)(nil)

// NewANSI returns a Terminal writing to w. Colours are converted to the
// nearest match in profile; termenv.Ascii drops them entirely.
func NewANSI(w io.Writer, profile termenv.Profile) *ANSI {
	return &ANSI{w: bufio.NewWriter(w), profile: profile}
}

func (t *ANSI) MoveTo(p Position) {
	t.write(ansi.CursorPosition(p.Col, p.Row))
}

func (t *ANSI) ClearBelow() {
	t.write(ansi.EraseScreenBelow)
}

func (t *ANSI) SetForeground(c lipgloss.Color) {
	color := t.profile.Color(string(c))
	if color == nil {
		return
	}
	if seq := color.Sequence(false); seq != "" {
		t.write(termenv.CSI + seq + "m")
	}
}

func (t *ANSI) ResetForeground() {
	t.write(resetForeground)
}

func (t *ANSI) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = t.w.WriteString(ansi.HideCursor)
	t.hidden = true
}

func (t *ANSI) ShowCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = t.w.WriteString(ansi.ShowCursor)
	t.hidden = false
}

// CursorHidden reports whether the last visibility change hid the cursor.
func (t *ANSI) CursorHidden() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hidden
}

func (t *ANSI) WriteString(s string) {
	t.write(s)
}

func (t *ANSI) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.w.Flush()
}

// bufio.Writer keeps the first error and Flush reports it.
func (t *ANSI) write(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = t.w.WriteString(s)
}
