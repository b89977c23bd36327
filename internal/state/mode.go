package state

// Mode is the active UI mode. The only implementations are Normal and Insert.
type Mode interface {
	// Indicator is the single-letter tag shown on the status line.
	Indicator() string
	// SearchText is the search text this mode carries.
	SearchText() string

	isMode()
}

// Normal is navigation mode. LastSearch keeps the text from the most recent
// Insert session.
type Normal struct {
	LastSearch string
}

// Insert is text-entry mode. Buffer is the in-progress search text.
type Insert struct {
	Buffer string
}

func (Normal) Indicator() string { return "n" }
func (Insert) Indicator() string { return "i" }

func (m Normal) SearchText() string { return m.LastSearch }
func (m Insert) SearchText() string { return m.Buffer }

func (Normal) isMode() {}
func (Insert) isMode() {}

// String returns the human-readable mode name.
func (Normal) String() string { return "NORMAL" }

// String returns the human-readable mode name.
func (Insert) String() string { return "INSERT" }
