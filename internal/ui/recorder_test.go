package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/projnav/internal/terminal"
)

type op struct {
	kind string
	arg  string
}

// recorder is an in-memory terminal.Terminal that remembers every call.
type recorder struct {
	ops      []op
	flushErr error
}

var _ terminal.Terminal = (*recorder)(nil)

func (r *recorder) MoveTo(p terminal.Position) {
	r.ops = append(r.ops, op{kind: "move", arg: fmt.Sprintf("%d,%d", p.Col, p.Row)})
}
func (r *recorder) ClearBelow() { r.ops = append(r.ops, op{kind: "clear"}) }
func (r *recorder) SetForeground(c lipgloss.Color) {
	r.ops = append(r.ops, op{kind: "fg", arg: string(c)})
}
func (r *recorder) ResetForeground()     { r.ops = append(r.ops, op{kind: "reset"}) }
func (r *recorder) HideCursor()          { r.ops = append(r.ops, op{kind: "hide"}) }
func (r *recorder) ShowCursor()          { r.ops = append(r.ops, op{kind: "show"}) }
func (r *recorder) WriteString(s string) { r.ops = append(r.ops, op{kind: "text", arg: s}) }
func (r *recorder) Flush() error {
	r.ops = append(r.ops, op{kind: "flush"})
	return r.flushErr
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

// lastFrame returns the text lines written after the most recent clear.
func (r *recorder) lastFrame() []string {
	start := -1
	for i, o := range r.ops {
		if o.kind == "clear" {
			start = i
		}
	}
	if start < 0 {
		return nil
	}
	var text strings.Builder
	for _, o := range r.ops[start+1:] {
		if o.kind == "text" {
			text.WriteString(o.arg)
		}
	}
	lines := strings.Split(text.String(), lineEnd)
	return lines[:len(lines)-1]
}

// scriptedKeys replays a fixed key sequence, then reports io.EOF.
type scriptedKeys struct {
	keys []terminal.Key
}

func (s *scriptedKeys) ReadKey() (terminal.Key, error) {
	if len(s.keys) == 0 {
		return terminal.Key{}, io.EOF
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, nil
}

func runeKey(r rune) terminal.Key {
	return terminal.Key{Kind: terminal.KeyRune, Rune: r}
}

var (
	upKey        = terminal.Key{Kind: terminal.KeyUp}
	downKey      = terminal.Key{Kind: terminal.KeyDown}
	escKey       = terminal.Key{Kind: terminal.KeyEsc}
	backspaceKey = terminal.Key{Kind: terminal.KeyBackspace}
)
