// Package ui implements projnav's list view: key dispatch, frame rendering and
// the event loop.
//
// # Architecture Overview
//
// The view is drawn in place, below wherever the shell prompt left the
// cursor, rather than on the alternate screen. The caller captures that
// position once (the anchor) and every frame starts there:
//
//  1. move the cursor to the anchor
//  2. clear from the cursor to the end of the screen
//  3. header line
//  4. search line: mode tag, then the search text or a dimmed hint
//  5. one row per project, the selected row marked and coloured
//
// There is no diffing. Clearing below the anchor is what removes rows from a
// previous, longer frame. All lines end in "\r\n" because the terminal is in
// raw mode.
//
// # Event Flow
//
//  1. Run hides the cursor and draws the first frame
//  2. ReadKey blocks until a key arrives
//  3. Dispatch returns the next state.Screen and an Action
//  4. The frame is redrawn and flushed
//  5. On Quit the cursor is shown again and Run returns
//
// Everything happens on the caller's goroutine.
//
// # Key Bindings
//
// Normal mode:
//   - j / down: Move down
//   - k / up: Move up
//   - i / s: Start searching
//   - q: Quit
//
// Insert mode:
//   - printable characters: Append to the search text
//   - backspace: Delete the last character
//   - esc: Return to normal mode, keeping the search text
//
// The search text is displayed only; the list is never filtered.
package ui
