// Package app is the composition root for projnav.
//
// # Startup Sequence
//
// Run performs these steps in order. Each one is fatal on failure and is
// reported wrapped in ErrStartup:
//
//  1. Load the TOML config (missing file means defaults)
//  2. Open the log file, if one is configured
//  3. Read the project list
//  4. Put the terminal in raw mode
//  5. Print enough blank lines for one frame, then ask the terminal for the
//     cursor position; the frame anchor is that row minus the blank lines
//  6. Hand over to ui.Run, which hides the cursor and draws the first frame
//
// # Shutdown
//
// The terminal session is closed by a deferred call on every return path:
// the cursor is shown if it is still hidden and the saved terminal mode is
// restored. A cancelled context (SIGINT/SIGTERM from cmd/projnav) closes the
// session from a watcher goroutine and exits with status 130, because the
// blocking key read has no other way out.
//
// # Error Handling
//
// Errors from ui.Run wrap ui.ErrInput (read or decode failure) or ui.ErrWrite
// (output failure). Nothing is retried.
package app
