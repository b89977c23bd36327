package ui

import (
	"fmt"
	"log/slog"

	"github.com/five82/projnav/internal/state"
	"github.com/five82/projnav/internal/terminal"
)

// KeySource delivers key presses. ReadKey may block indefinitely.
type KeySource interface {
	ReadKey() (terminal.Key, error)
}

// Options configure the event loop.
type Options struct {
	Projects []string
	Terminal terminal.Terminal
	Keys     KeySource
	Anchor   terminal.Position
	Width    int // terminal width in cells; zero disables truncation
	Theme    string
	Header   string
	Logger   *slog.Logger
}

// Run draws the list and processes keys until the user quits. It returns the
// final screen. Any read, decode or write failure ends the loop with an error
// wrapping ErrInput or ErrWrite.
func Run(opts Options) (state.Screen, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	keys := DefaultKeyMap()
	renderer := newRenderer(opts.Terminal, opts.Anchor, GetTheme(opts.Theme), opts.Header, opts.Width, keys)
	screen := state.New(opts.Projects)

	opts.Terminal.HideCursor()
	if err := renderer.Render(screen); err != nil {
		return screen, err
	}

	for {
		k, err := opts.Keys.ReadKey()
		if err != nil {
			return screen, fmt.Errorf("%w: %w", ErrInput, err)
		}

		next, action := Dispatch(screen, k, keys)
		if action == Quit {
			name, _ := next.SelectedProject()
			logger.Info("quit", "selected", next.Selected, "project", name)
			opts.Terminal.ShowCursor()
			if err := opts.Terminal.Flush(); err != nil {
				return next, fmt.Errorf("%w: restore cursor: %w", ErrWrite, err)
			}
			return next, nil
		}
		if next.Inserting() != screen.Inserting() {
			logger.Debug("mode changed", "key", k.String(), "from", screen.Mode, "to", next.Mode)
		}
		screen = next

		if err := renderer.Render(screen); err != nil {
			return screen, err
		}
	}
}
