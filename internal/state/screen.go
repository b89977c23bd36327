package state

import "unicode/utf8"

// Screen is the complete UI model. Projects is shared between copies and must
// not be modified after New.
type Screen struct {
	Mode     Mode
	Selected int
	Projects []string
}

// New returns the initial screen: Normal mode, empty search, first row selected.
func New(projects []string) Screen {
	return Screen{Mode: Normal{}, Projects: projects}
}

// HasSelection reports whether a row is highlighted.
func (s Screen) HasSelection() bool {
	return len(s.Projects) > 0
}

// SelectedProject returns the highlighted project name, if any.
func (s Screen) SelectedProject() (string, bool) {
	if !s.HasSelection() {
		return "", false
	}
	return s.Projects[s.Selected], true
}

// Inserting reports whether the screen is in Insert mode.
func (s Screen) Inserting() bool {
	_, ok := s.Mode.(Insert)
	return ok
}

// MoveUp selects the previous row, stopping at the first.
func (s Screen) MoveUp() Screen {
	s.Selected = clamp(s.Selected-1, len(s.Projects))
	return s
}

// MoveDown selects the next row, stopping at the last.
func (s Screen) MoveDown() Screen {
	s.Selected = clamp(s.Selected+1, len(s.Projects))
	return s
}

// StartSearch enters Insert mode seeded with the last search text.
// Already in Insert mode, it returns s unchanged.
func (s Screen) StartSearch() Screen {
	if normal, ok := s.Mode.(Normal); ok {
		s.Mode = Insert{Buffer: normal.LastSearch}
	}
	return s
}

// StopSearch returns to Normal mode, keeping the buffer as the last search.
func (s Screen) StopSearch() Screen {
	if insert, ok := s.Mode.(Insert); ok {
		s.Mode = Normal{LastSearch: insert.Buffer}
	}
	return s
}

// AppendRune adds r to the search buffer. Outside Insert mode it is a no-op.
func (s Screen) AppendRune(r rune) Screen {
	if insert, ok := s.Mode.(Insert); ok {
		s.Mode = Insert{Buffer: insert.Buffer + string(r)}
	}
	return s
}

// DeleteRune removes the last character of the search buffer, if any.
func (s Screen) DeleteRune() Screen {
	insert, ok := s.Mode.(Insert)
	if !ok || insert.Buffer == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(insert.Buffer)
	s.Mode = Insert{Buffer: insert.Buffer[:len(insert.Buffer)-size]}
	return s
}

func clamp(index, length int) int {
	if length == 0 || index < 0 {
		return 0
	}
	if index >= length {
		return length - 1
	}
	return index
}
