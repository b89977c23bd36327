// Package projects reads the list of project names projnav browses.
package projects

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// Read returns the project names listed in the file at path, one per line,
// in file order. Blank lines are skipped and surrounding whitespace trimmed.
// Escape sequences and control characters are removed so a name cannot move
// the cursor or recolour the list; a line left empty by that is skipped too.
// Unlike a missing config, a missing projects file is an error.
func Read(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open projects: %w", err)
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		name := strings.TrimSpace(sanitize(scanner.Text()))
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read projects: %w", err)
	}
	return names, nil
}

func sanitize(line string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, ansi.Strip(line))
}
