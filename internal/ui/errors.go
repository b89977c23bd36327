package ui

import "errors"

var (
	// ErrWrite marks a failure writing or flushing terminal output mid-session.
	ErrWrite = errors.New("terminal write failed")
	// ErrInput marks a failure reading or decoding a key press.
	ErrInput = errors.New("terminal input failed")
)
