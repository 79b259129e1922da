package cursor

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Tracker resolves and publishes the cursor location, once per update cycle.
//
// The host calls [Tracker.Update] (or [Tracker.Step]) exactly once per
// cycle, early, before any consumer runs; every read accessor then returns
// the same value until the next cycle. The tracker holds either nothing or
// one fully resolved [Location], never a partial record.
//
// A Tracker is not safe for concurrent use. The intended discipline is a
// single writer and any number of readers, strictly ordered by the host's
// cycle schedule.
type Tracker struct {
	mode   Projection
	logger *slog.Logger

	loc     Location
	ok      bool
	changed bool
}

// NewTracker creates an empty tracker. By default it produces planar world
// coordinates; see [WithProjection3D].
func NewTracker(opts ...TrackerOption) *Tracker {
	o := defaultTrackerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Tracker{mode: o.mode, logger: o.logger}
}

// Mode returns the projection mode the tracker was built with.
func (t *Tracker) Mode() Projection { return t.mode }

// Update runs one resolution cycle over the snapshot and publishes the
// result. The publish is change-suppressed: Changed reports true only when
// the new value differs from the previous one, so consumers gated on "did
// the cursor location change this cycle" do not re-trigger while the pointer
// is stationary.
func (t *Tracker) Update(snap Snapshot) {
	loc, ok := Resolve(t.mode, snap.Windows, snap.Cameras)
	t.publish(loc, ok)
}

// Step pulls the current cycle's snapshot from src and updates the tracker.
func (t *Tracker) Step(src Source) {
	t.Update(src.Snapshot())
}

func (t *Tracker) publish(loc Location, ok bool) {
	t.changed = ok != t.ok || (ok && loc != t.loc)
	t.loc = loc
	t.ok = ok

	if !t.changed {
		return
	}
	logger := t.logger
	if logger == nil {
		logger = Logger()
	}
	if ok {
		logger.Debug("cursor location changed",
			"window", uint64(loc.Window),
			"camera", uint64(loc.Camera),
			"x", loc.Position.X(),
			"y", loc.Position.Y(),
		)
	} else {
		logger.Debug("cursor left all windows")
	}
}

// Changed reports whether the last Update actually changed the published
// value, including the transitions between empty and non-empty. Publishing
// an equal value, or staying empty, does not count as a change.
func (t *Tracker) Changed() bool { return t.changed }

// Get returns the current location. It reports false when the cursor has no
// meaningful location this cycle.
func (t *Tracker) Get() (Location, bool) {
	return t.loc, t.ok
}

// Position returns the pointer position in the resolved window, in logical
// pixels.
func (t *Tracker) Position() (mgl32.Vec2, bool) {
	if !t.ok {
		return mgl32.Vec2{}, false
	}
	return t.loc.Position, true
}

// Window returns the window that contains the pointer.
func (t *Tracker) Window() (WindowID, bool) {
	if !t.ok {
		return 0, false
	}
	return t.loc.Window, true
}

// Camera returns the camera used to project the pointer into world space.
func (t *Tracker) Camera() (CameraID, bool) {
	if !t.ok {
		return 0, false
	}
	return t.loc.Camera, true
}

// World returns the planar world coordinate of the pointer. It reports false
// when the tracker is empty or was built in 3D mode.
func (t *Tracker) World() (mgl32.Vec2, bool) {
	if !t.ok {
		return mgl32.Vec2{}, false
	}
	return t.loc.World.Plane()
}

// Ray returns the world ray cast through the pointer. It reports false when
// the tracker is empty or was built in 2D mode.
func (t *Tracker) Ray() (Ray, bool) {
	if !t.ok {
		return Ray{}, false
	}
	return t.loc.World.Ray()
}
