package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/muesli/termenv"

	"github.com/five82/projnav/internal/config"
	"github.com/five82/projnav/internal/projects"
	"github.com/five82/projnav/internal/terminal"
	"github.com/five82/projnav/internal/ui"
)

// ErrStartup marks failures before the first frame is drawn.
var ErrStartup = errors.New("startup failed")

// ExitInterrupted is the process status used when a signal ends the session.
const ExitInterrupted = 130

// Options configure the projnav application.
type Options struct {
	ConfigPath   string
	ProjectsPath string // overrides projects_file from the config when set
}

// Run loads the project list and runs the list view on the controlling
// terminal until the user quits. Cancelling ctx restores the terminal and
// exits the process with ExitInterrupted, since the key read cannot be
// interrupted.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("%w: load config: %w", ErrStartup, err)
	}
	cfg = cfg.WithProjectsFile(opts.ProjectsPath)

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStartup, err)
	}
	defer closeLog()

	names, err := projects.Read(cfg.ProjectsFile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStartup, err)
	}
	logger.Info("loaded projects", "path", cfg.ProjectsFile, "count", len(names))
	checkTheme(logger, cfg.Theme)

	profile := termenv.NewOutput(os.Stdout).EnvColorProfile()
	session, err := terminal.Open(os.Stdin, os.Stdout, profile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStartup, err)
	}
	defer session.Close()

	stop := watchInterrupt(ctx, session.Close, os.Exit, logger)
	defer stop()

	width, height, err := session.Size()
	if err != nil {
		logger.Warn("terminal size unavailable", "error", err)
		width, height = 0, 0
	}

	lines := reserveLines(len(names), height)
	anchor, err := reserve(session.Terminal(), session.CursorPosition, lines)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStartup, err)
	}
	logger.Info("anchored", "col", anchor.Col, "row", anchor.Row, "reserved", lines)

	_, err = ui.Run(ui.Options{
		Projects: names,
		Terminal: session.Terminal(),
		Keys:     session.Keys(),
		Anchor:   anchor,
		Width:    width,
		Theme:    cfg.Theme,
		Header:   cfg.Header,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("session ended", "error", err)
		return err
	}
	return nil
}

// watchInterrupt restores the terminal through closer and ends the process
// with ExitInterrupted once ctx is cancelled. Calling the returned stop
// function before then disarms it.
func watchInterrupt(ctx context.Context, closer func() error, exit func(int), logger *slog.Logger) (stop func() bool) {
	return context.AfterFunc(ctx, func() {
		logger.Info("interrupted")
		if err := closer(); err != nil {
			logger.Warn("restore terminal", "error", err)
		}
		exit(ExitInterrupted)
	})
}

// checkTheme warns when the configured theme is unknown; GetTheme falls back
// to the default palette.
func checkTheme(logger *slog.Logger, name string) {
	if names := ui.ThemeNames(); !slices.Contains(names, name) {
		logger.Warn("unknown theme, using default", "theme", name, "available", names)
	}
}
