// Package terminal is projnav's thin layer over the controlling terminal.
//
// It provides three pieces:
//
//   - Terminal, the small drawing interface the renderer depends on (move to
//     a cell, clear below, set/reset the foreground colour, hide/show the
//     cursor, write text, flush), and ANSI, its escape-sequence implementation.
//   - KeyReader, which turns raw input bytes into Key events and picks cursor
//     position reports out of the same stream.
//   - Session, which holds the terminal in raw mode for the life of the
//     program and restores it on Close.
//
// Tests elsewhere substitute an in-memory Terminal, so nothing outside
// Session needs a real TTY.
package terminal
