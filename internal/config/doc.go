// Package config loads projnav's TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/projnav/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// A file that exists but cannot be read or parsed is an error; projnav
// refuses to start rather than guessing.
//
// # Default Values
//
//   - Config file: ~/.config/projnav/config.toml
//   - Projects file: ~/.config/projnav/projects.txt
//   - Theme: Default
//   - Header: projects
//   - Log file: none (logging disabled)
//
// # TOML Format
//
//	projects_file = "~/dev/PROJECTS.txt"
//	theme = "Dracula"
//	header = "projects"
//	log_file = "~/.local/state/projnav/projnav.log"
//
// All fields are optional. Tilde expansion is performed on path fields and
// relative paths are made absolute against the current directory.
package config
