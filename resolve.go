package cursor

import "sort"

// Resolve computes the cursor location for one cycle from a snapshot of the
// open windows and active cameras. It reports false when the pointer is
// outside every window, outside every eligible camera's viewport, or only
// over cameras whose transforms cannot be inverted; none of these are
// errors, they are ordinary steady-state conditions.
//
// Among several cameras on the same window whose viewports all contain the
// pointer, the one with the highest draw order wins: it rendered last and is
// what the user sees on top. Containment is decided first, order second; a
// high-order camera whose viewport does not contain the pointer never shadows
// a lower one that does. A camera whose projection fails is skipped and the
// next candidate tried, so a transiently degenerate camera (say, mid
// animation with zero scale) does not blank the whole resolution.
//
// Resolution is deterministic: the first window/camera pair that both
// contains the pointer and projects successfully ends the scan.
func Resolve(mode Projection, windows []Window, cameras []Camera) (Location, bool) {
	for i := range windows {
		win := &windows[i]

		pos, ok := win.CursorPosition()
		if !ok {
			continue
		}
		phys, ok := win.PhysicalCursorPosition()
		if !ok {
			continue
		}

		// Gather the cameras that render into this window. A window rarely
		// has more than a handful.
		candidates := make([]*Camera, 0, 4)
		for j := range cameras {
			if targetsWindow(cameras[j].Target, win) {
				candidates = append(candidates, &cameras[j])
			}
		}

		// Higher order renders later, on top of lower order. Try topmost
		// first.
		sort.SliceStable(candidates, func(a, b int) bool {
			return candidates[a].Order < candidates[b].Order
		})

		for j := len(candidates) - 1; j >= 0; j-- {
			cam := candidates[j]

			if cam.Viewport != nil && !cam.Viewport.Contains(phys) {
				continue
			}

			var world WorldPosition
			switch mode {
			case Projection3D:
				ray, ok := cam.ViewportToWorld(pos)
				if !ok {
					continue
				}
				world = RayPosition(ray)
			default:
				pt, ok := cam.ViewportToWorld2D(pos)
				if !ok {
					continue
				}
				world = PlanarPosition(pt)
			}

			return Location{
				Window:   win.ID,
				Camera:   cam.ID,
				Position: pos,
				World:    world,
			}, true
		}
	}

	return Location{}, false
}
