package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything projnav reads from its config file.
type Config struct {
	ProjectsFile string
	Theme        string
	Header       string
	LogFile      string
}

const (
	defaultConfigPath   = "~/.config/projnav/config.toml"
	defaultProjectsFile = "~/.config/projnav/projects.txt"
	defaultTheme        = "Default"
	defaultHeader       = "projects"
)

// Load locates and parses the projnav config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		ProjectsFile: mustExpand(defaultProjectsFile),
		Theme:        defaultTheme,
		Header:       defaultHeader,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ProjectsFile string `toml:"projects_file"`
		Theme        string `toml:"theme"`
		Header       string `toml:"header"`
		LogFile      string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if projects := strings.TrimSpace(raw.ProjectsFile); projects != "" {
		cfg.ProjectsFile = mustExpand(projects)
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	if header := strings.TrimSpace(raw.Header); header != "" {
		cfg.Header = header
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
}

// WithProjectsFile returns a copy of c reading projects from path instead.
// A blank path leaves c unchanged.
func (c Config) WithProjectsFile(path string) Config {
	if strings.TrimSpace(path) == "" {
		return c
	}
	c.ProjectsFile = mustExpand(path)
	return c
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
