package cursor

import "github.com/go-gl/mathgl/mgl32"

// WindowID identifies a window. IDs are opaque handles assigned by the host
// windowing layer; the zero value is reserved and never names a real window.
type WindowID uint64

// Window is the per-cycle snapshot of one open window, as reported by the
// host windowing layer. The tracker never creates, moves, or closes windows;
// it only reads these records.
type Window struct {
	// ID is the handle of the window.
	ID WindowID

	// Cursor is the pointer position in logical pixels, relative to the
	// top-left corner of the window's client area. Nil when the pointer is
	// not inside this window.
	Cursor *mgl32.Vec2

	// PhysicalCursor is the pointer position in physical (device) pixels.
	// Nil under the same condition as Cursor. Viewport containment is tested
	// against this position, since camera viewports are declared in physical
	// pixels.
	PhysicalCursor *mgl32.Vec2

	// Primary marks the application's primary window. Cameras targeting
	// [PrimaryWindow] resolve only to a window with this flag set.
	Primary bool

	// ScaleFactor is the logical-to-physical pixel ratio of the window.
	// Hosts that only track one of the two cursor positions can derive the
	// other with it; a zero value is treated as 1.
	ScaleFactor float32
}

// CursorPosition returns the pointer position in logical pixels and whether
// the pointer is currently inside the window.
func (w *Window) CursorPosition() (mgl32.Vec2, bool) {
	if w.Cursor == nil {
		return mgl32.Vec2{}, false
	}
	return *w.Cursor, true
}

// PhysicalCursorPosition returns the pointer position in physical pixels and
// whether the pointer is currently inside the window.
func (w *Window) PhysicalCursorPosition() (mgl32.Vec2, bool) {
	if w.PhysicalCursor == nil {
		return mgl32.Vec2{}, false
	}
	return *w.PhysicalCursor, true
}

// Snapshot is the input to one resolution cycle: the open windows and active
// cameras as collected by the host at the start of the cycle.
type Snapshot struct {
	Windows []Window
	Cameras []Camera
}

// Source produces a Snapshot for the current cycle. It is implemented by the
// host windowing/rendering layer; see [Tracker.Step].
type Source interface {
	Snapshot() Snapshot
}
