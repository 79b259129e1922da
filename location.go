package cursor

import "github.com/go-gl/mathgl/mgl32"

// Projection selects the world-space representation a tracker produces for
// the pointer: a planar coordinate for 2D cameras, or a ray for 3D cameras.
// The mode is chosen once, at tracker construction, and every resolved
// [Location] of that tracker carries the matching representation.
type Projection int

const (
	// Projection2D unprojects the pointer onto the camera's near plane and
	// reports the planar world coordinate.
	Projection2D Projection = iota

	// Projection3D casts a ray from the camera through the pointer.
	Projection3D
)

// String returns the name of the projection mode.
func (p Projection) String() string {
	switch p {
	case Projection2D:
		return "2d"
	case Projection3D:
		return "3d"
	default:
		return "unknown"
	}
}

// Ray is a half-line in world space, cast from a camera through the pointer.
// Direction is unit length.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// WorldPosition is the world-space meaning of the pointer under the resolved
// camera: either a planar coordinate (2D mode) or a ray (3D mode). Exactly
// one representation is present, matching the tracker's projection mode.
type WorldPosition struct {
	mode  Projection
	plane mgl32.Vec2
	ray   Ray
}

// PlanarPosition wraps a 2D world coordinate as a WorldPosition.
func PlanarPosition(p mgl32.Vec2) WorldPosition {
	return WorldPosition{mode: Projection2D, plane: p}
}

// RayPosition wraps a world ray as a WorldPosition.
func RayPosition(r Ray) WorldPosition {
	return WorldPosition{mode: Projection3D, ray: r}
}

// Mode returns which representation the position carries.
func (w WorldPosition) Mode() Projection { return w.mode }

// Plane returns the planar world coordinate. It reports false when the
// position was produced in 3D mode.
func (w WorldPosition) Plane() (mgl32.Vec2, bool) {
	if w.mode != Projection2D {
		return mgl32.Vec2{}, false
	}
	return w.plane, true
}

// Ray returns the world ray. It reports false when the position was produced
// in 2D mode.
func (w WorldPosition) Ray() (Ray, bool) {
	if w.mode != Projection3D {
		return Ray{}, false
	}
	return w.ray, true
}

// Location is one fully resolved cursor location: the window under the
// pointer, the topmost camera whose viewport contains it, the pointer
// position in that window's logical pixels, and the world-space position the
// camera implies. Locations are immutable values; two Locations compare
// equal exactly when every field matches.
type Location struct {
	// Window is the window that contains the pointer.
	Window WindowID

	// Camera is the camera used to project the pointer into world space.
	Camera CameraID

	// Position is the pointer position in the window, in logical pixels.
	Position mgl32.Vec2

	// World is the pointer position in world space, as a planar coordinate
	// or a ray depending on the tracker's projection mode.
	World WorldPosition
}
