package cursor

import "github.com/go-gl/mathgl/mgl32"

// Viewport is the sub-rectangle of a window a camera renders into, in
// physical pixels. A camera without a viewport covers the whole window.
type Viewport struct {
	// Position is the top-left corner of the rectangle within the window.
	Position mgl32.Vec2

	// Size is the width and height of the rectangle.
	Size mgl32.Vec2
}

// Contains reports whether the physical-pixel position p lies within the
// viewport. Bounds are inclusive on all four edges, so a point exactly on
// the seam between two adjacent viewports is inside both; draw order decides
// which camera wins in that case.
func (v *Viewport) Contains(p mgl32.Vec2) bool {
	return p.X() >= v.Position.X() && p.X() <= v.Position.X()+v.Size.X() &&
		p.Y() >= v.Position.Y() && p.Y() <= v.Position.Y()+v.Size.Y()
}
