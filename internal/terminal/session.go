package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Open when input is not an interactive terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// Session owns the controlling terminal while projnav runs: raw input mode,
// the ANSI output writer, and the key decoder reading the same input.
type Session struct {
	fd    int
	saved *term.State
	out   *ANSI
	keys  *KeyReader

	closeOnce sync.Once
	closeErr  error
}

// Open switches the terminal to raw mode. The caller must Close the session on every
// exit path to restore the previous mode.
func Open(in *os.File, out io.Writer, profile termenv.Profile) (*Session, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("set terminal raw mode: %w", err)
	}
	return &Session{
		fd:    fd,
		saved: saved,
		out:   NewANSI(out, profile),
		keys:  NewKeyReader(in),
	}, nil
}

// Terminal returns the session's output side.
func (s *Session) Terminal() *ANSI {
	return s.out
}

// Keys returns the session's input side.
func (s *Session) Keys() *KeyReader {
	return s.keys
}

// Size returns the terminal width and height in cells.
func (s *Session) Size() (width, height int, err error) {
	return term.GetSize(s.fd)
}

// CursorPosition asks the terminal where the cursor is and waits for the answer.
func (s *Session) CursorPosition() (Position, error) {
	s.out.WriteString(ansi.RequestCursorPositionReport)
	if err := s.out.Flush(); err != nil {
		return Position{}, fmt.Errorf("request cursor position: %w", err)
	}
	pos, err := s.keys.ReadCursorReport()
	if err != nil {
		return Position{}, fmt.Errorf("read cursor position: %w", err)
	}
	return pos, nil
}

// Close shows the cursor if it is still hidden and restores the terminal mode.
// It is safe to call more than once and from another goroutine.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if s.out.CursorHidden() {
			s.out.ShowCursor()
		}
		flushErr := s.out.Flush()
		restoreErr := term.Restore(s.fd, s.saved)
		s.closeErr = errors.Join(flushErr, restoreErr)
	})
	return s.closeErr
}
