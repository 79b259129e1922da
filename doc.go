// Package cursor tracks the location of the pointer across the windows and
// cameras of an interactive application.
//
// # Overview
//
// Once per update cycle, a [Tracker] resolves which window contains the
// pointer, which camera viewport on that window is visually topmost under it,
// and what the pointer position means in that camera's world space. The
// result is published as a single [Location] that any later stage of the
// cycle can query.
//
// # Quick Start
//
//	import "github.com/gogpu/cursor"
//
//	tracker := cursor.NewTracker()
//
//	// Once per frame, early in the cycle:
//	tracker.Update(cursor.Snapshot{Windows: windows, Cameras: cameras})
//
//	// Anywhere later in the frame:
//	if pos, ok := tracker.World(); ok {
//	    fmt.Println("cursor over world position", pos)
//	}
//
// # Resolution
//
// Resolution scans the open windows for one that reports a pointer position,
// gathers the cameras rendering into that window, and tries them from the
// highest draw order down. The first camera whose viewport contains the
// pointer and whose matrices unproject it successfully wins. Overlapping
// viewports (split screen, picture in picture) therefore resolve to the
// camera the user actually sees on top.
//
// There is no error surface: a pointer outside every window, outside every
// viewport, or over a camera with a degenerate transform all simply leave the
// tracker empty for that cycle.
//
// # Projection Modes
//
// A tracker is built for either planar output (the default, for 2D cameras)
// or ray output (for 3D cameras):
//
//	t2 := cursor.NewTracker()                          // Location carries a world point
//	t3 := cursor.NewTracker(cursor.WithProjection3D()) // Location carries a world ray
//
// The mode is fixed at construction.
//
// # Scheduling
//
// The package does no locking and spawns no goroutines. The host is expected
// to call Update exactly once per cycle, before any consumer reads the
// tracker; writer and readers are ordered by the host's schedule, not by
// synchronization.
package cursor
