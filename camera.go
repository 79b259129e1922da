package cursor

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraID identifies a camera. IDs are opaque handles assigned by the host
// rendering layer; the zero value is reserved and never names a real camera.
type CameraID uint64

// Camera is the per-cycle snapshot of one active camera, as reported by the
// host rendering layer.
type Camera struct {
	// ID is the handle of the camera.
	ID CameraID

	// View is the world-to-view matrix (the inverse of the camera's world
	// transform).
	View mgl32.Mat4

	// Projection is the view-to-clip matrix, e.g. [mgl32.Ortho] for a 2D
	// camera or [mgl32.Perspective] for a 3D one.
	Projection mgl32.Mat4

	// Target is where the camera renders. Nil means the primary window.
	Target RenderTarget

	// Viewport restricts the camera to a sub-rectangle of its window, in
	// physical pixels. Nil means the camera covers the whole window.
	Viewport *Viewport

	// Order is the draw order among cameras sharing a window. Cameras with a
	// higher order render later and therefore on top; the topmost camera
	// containing the pointer wins resolution.
	Order int

	// LogicalOrigin is the top-left corner of the camera's render region
	// within its window, in logical pixels. Zero for full-window cameras.
	LogicalOrigin mgl32.Vec2

	// LogicalSize is the size of the camera's render region in logical
	// pixels: the whole window for full-window cameras, the viewport
	// rectangle otherwise.
	LogicalSize mgl32.Vec2
}

// ViewportToWorld2D unprojects a window position (logical pixels, top-left
// origin) onto the camera's near plane and returns the planar world
// coordinate. It reports false when the camera's matrices are degenerate
// (non-invertible, or a zero-size render region) and the position cannot be
// computed.
func (c *Camera) ViewportToWorld2D(pos mgl32.Vec2) (mgl32.Vec2, bool) {
	world, ok := c.unproject(pos, 0)
	if !ok {
		return mgl32.Vec2{}, false
	}
	return mgl32.Vec2{world.X(), world.Y()}, true
}

// ViewportToWorld casts a ray from the camera through a window position
// (logical pixels, top-left origin). The ray origin lies on the camera's
// near plane. It reports false when the camera's matrices are degenerate and
// the ray cannot be computed.
func (c *Camera) ViewportToWorld(pos mgl32.Vec2) (Ray, bool) {
	near, ok := c.unproject(pos, 0)
	if !ok {
		return Ray{}, false
	}
	far, ok := c.unproject(pos, 1)
	if !ok {
		return Ray{}, false
	}
	dir := far.Sub(near)
	if dir.Len() == 0 {
		return Ray{}, false
	}
	return Ray{Origin: near, Direction: dir.Normalize()}, true
}

// unproject maps a window position and a depth (0 = near plane, 1 = far
// plane) to world space through the camera's combined matrices, converting
// from the window's top-left pixel coordinates to GL's bottom-left
// convention first.
func (c *Camera) unproject(pos mgl32.Vec2, depth float32) (mgl32.Vec3, bool) {
	width := c.LogicalSize.X()
	height := c.LogicalSize.Y()
	if width <= 0 || height <= 0 {
		return mgl32.Vec3{}, false
	}

	// Position relative to the camera's render region, y measured upward.
	rel := pos.Sub(c.LogicalOrigin)
	win := mgl32.Vec3{rel.X(), height - rel.Y(), depth}

	world, err := mgl32.UnProject(win, c.View, c.Projection, 0, 0, int(width), int(height))
	if err != nil || !finite(world) {
		return mgl32.Vec3{}, false
	}
	return world, true
}

// finite reports whether every component of v is a finite number. UnProject
// divides by the clip-space w component, which a degenerate projection can
// drive to zero.
func finite(v mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		f := float64(v[i])
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
