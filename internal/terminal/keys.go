package terminal

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// ErrUndecodable is returned when input bytes do not form a key event.
var ErrUndecodable = errors.New("undecodable input")

// KeyKind classifies a decoded key event.
type KeyKind int

const (
	KeyRune KeyKind = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyBackspace
	KeyEsc
	KeyEnter
	KeyTab
	KeyCtrl
	KeyAlt
	KeyOther
)

// Key is one decoded key press. Rune is set for KeyRune, KeyCtrl and KeyAlt.
type Key struct {
	Kind KeyKind
	Rune rune
}

// String names the key the way bubbles/key bindings spell it.
func (k Key) String() string {
	switch k.Kind {
	case KeyRune:
		return string(k.Rune)
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyBackspace:
		return "backspace"
	case KeyEsc:
		return "esc"
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeyCtrl:
		return "ctrl+" + string(k.Rune)
	case KeyAlt:
		return "alt+" + string(k.Rune)
	default:
		return "unknown"
	}
}

// Printable reports whether k inserts text.
func (k Key) Printable() bool {
	return k.Kind == KeyRune
}

const (
	esc = 0x1b
	del = 0x7f
)

var escapeKeys = map[string]KeyKind{
	"\x1b":   KeyEsc,
	"\x1b[A": KeyUp,
	"\x1b[B": KeyDown,
	"\x1b[C": KeyRight,
	"\x1b[D": KeyLeft,
	"\x1bOA": KeyUp,
	"\x1bOB": KeyDown,
	"\x1bOC": KeyRight,
	"\x1bOD": KeyLeft,
	"\x1bOP": KeyOther, // F1
	"\x1bOQ": KeyOther, // F2
	"\x1bOR": KeyOther, // F3
	"\x1bOS": KeyOther, // F4
}

// KeyReader decodes raw terminal input into key events.
type KeyReader struct {
	r       io.Reader
	buf     []byte
	pending []byte
	queued  []Key
}

// NewKeyReader returns a KeyReader over r, which should be a terminal in raw mode.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: r, buf: make([]byte, 256)}
}

type token struct {
	key      Key
	report   Position
	isReport bool
}

// ReadKey blocks until the next key event is available.
// Cursor position reports arriving outside ReadCursorReport are dropped.
func (k *KeyReader) ReadKey() (Key, error) {
	if len(k.queued) > 0 {
		key := k.queued[0]
		k.queued = k.queued[1:]
		return key, nil
	}
	for {
		tok, err := k.next()
		if err != nil {
			return Key{}, err
		}
		if !tok.isReport {
			return tok.key, nil
		}
	}
}

// ReadCursorReport blocks until a cursor position report arrives. Keys typed
// before the report are kept for later ReadKey calls.
func (k *KeyReader) ReadCursorReport() (Position, error) {
	for {
		tok, err := k.next()
		if err != nil {
			return Position{}, err
		}
		if tok.isReport {
			return tok.report, nil
		}
		k.queued = append(k.queued, tok.key)
	}
}

func (k *KeyReader) next() (token, error) {
	for len(k.pending) == 0 || incompleteRune(k.pending) || incompleteEscape(k.pending) {
		n, err := k.r.Read(k.buf)
		k.pending = append(k.pending, k.buf[:n]...)
		if err != nil && n == 0 {
			return token{}, fmt.Errorf("read key: %w", err)
		}
	}

	tok, n, err := decode(k.pending)
	if err != nil {
		return token{}, err
	}
	k.pending = k.pending[n:]
	return tok, nil
}

// decode consumes one event from the front of b and returns how many bytes it used.
func decode(b []byte) (token, int, error) {
	switch c := b[0]; {
	case c == esc && len(b) >= 3 && b[1] == 'O' && b[2] > ' ' && b[2] < del:
		// DecodeSequence stops after "ESC O"; SS3 keys carry one more byte.
		return decodeEscape(string(b[:3])), 3, nil
	case c == esc:
		seq, _, n, _ := ansi.DecodeSequence(string(b), 0, nil)
		if n <= 0 {
			n, seq = 1, "\x1b"
		}
		return decodeEscape(seq), n, nil
	case c == del || c == '\b':
		return token{key: Key{Kind: KeyBackspace}}, 1, nil
	case c == '\r' || c == '\n':
		return token{key: Key{Kind: KeyEnter}}, 1, nil
	case c == '\t':
		return token{key: Key{Kind: KeyTab}}, 1, nil
	case c == 0:
		return token{key: Key{Kind: KeyCtrl, Rune: '@'}}, 1, nil
	case c <= 0x1a:
		return token{key: Key{Kind: KeyCtrl, Rune: rune('a' + c - 1)}}, 1, nil
	case c < 0x20:
		return token{key: Key{Kind: KeyOther}}, 1, nil
	}

	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return token{}, 0, fmt.Errorf("%w: byte %#x", ErrUndecodable, b[0])
	}
	if !unicode.IsPrint(r) {
		return token{key: Key{Kind: KeyOther}}, size, nil
	}
	return token{key: Key{Kind: KeyRune, Rune: r}}, size, nil
}

func decodeEscape(seq string) token {
	if kind, ok := escapeKeys[seq]; ok {
		return token{key: Key{Kind: kind}}
	}
	if pos, ok := parseCursorReport(seq); ok {
		return token{report: pos, isReport: true}
	}
	if len(seq) == 2 && seq[1] >= 0x20 && seq[1] < del {
		return token{key: Key{Kind: KeyAlt, Rune: rune(seq[1])}}
	}
	return token{key: Key{Kind: KeyOther}}
}

// parseCursorReport parses "ESC [ row ; col R".
func parseCursorReport(seq string) (Position, bool) {
	body, ok := strings.CutPrefix(seq, "\x1b[")
	if !ok {
		return Position{}, false
	}
	body, ok = strings.CutSuffix(body, "R")
	if !ok {
		return Position{}, false
	}
	rowText, colText, ok := strings.Cut(body, ";")
	if !ok {
		return Position{}, false
	}
	row, err := strconv.Atoi(rowText)
	if err != nil || row < 1 {
		return Position{}, false
	}
	col, err := strconv.Atoi(colText)
	if err != nil || col < 1 {
		return Position{}, false
	}
	return Position{Col: col, Row: row}, true
}

func incompleteRune(b []byte) bool {
	return b[0] >= utf8.RuneSelf && !utf8.FullRune(b)
}

// incompleteEscape reports whether b starts with a CSI or SS3 sequence whose
// final byte has not arrived yet. A lone ESC is complete: it is the Esc key.
func incompleteEscape(b []byte) bool {
	if len(b) < 2 || b[0] != esc {
		return false
	}
	switch b[1] {
	case 'O':
		return len(b) == 2
	case '[':
		for _, c := range b[2:] {
			if c < 0x20 || c > 0x3f {
				// final byte, or not a parameter/intermediate byte
				return false
			}
		}
		return true
	}
	return false
}
