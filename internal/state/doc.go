// Package state holds the screen model driven by projnav's key handling.
//
// # Overview
//
// A Screen is a plain value: the project list, the selection index, and the
// active Mode. Every transition is a method returning a new Screen, so the
// dispatcher can be a pure function and tests can replay arbitrary key
// sequences without a terminal.
//
// # Modes
//
// Mode is a closed sum type with two variants:
//
//	Normal{LastSearch}  ──i/s──→  Insert{Buffer}
//	       ↑                            │
//	       └──────────── esc ───────────┘
//
// Each variant owns its own text. Leaving Insert hands the buffer back to
// Normal as LastSearch, and entering Insert again starts from it, so the
// search text survives a round trip.
//
// # Selection Invariant
//
// Selected always satisfies 0 <= Selected < max(1, len(Projects)). An empty
// list keeps Selected at 0 and HasSelection reports false. The renderer relies
// on this holding before every frame, so no transition may break it, even
// transiently.
//
// # Concurrency Model
//
// None. A Screen is owned by the event loop goroutine and never shared.
package state
