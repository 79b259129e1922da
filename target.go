package cursor

import "github.com/gogpu/gputypes"

// RenderTarget describes where a camera's output goes: the primary window, a
// specific window, or an off-screen image. Only window targets can contain
// the pointer; off-screen targets are never eligible during resolution.
//
// The three implementations are [PrimaryWindow], [WindowTarget] and
// [ImageTarget]. A nil RenderTarget is treated as [PrimaryWindow], matching
// the common case of a single-window application.
type RenderTarget interface {
	// window reports whether the target resolves to the given window.
	window(w *Window) bool
}

// PrimaryWindow targets the application's primary window, whichever window
// currently carries the primary flag.
type PrimaryWindow struct{}

func (PrimaryWindow) window(w *Window) bool { return w.Primary }

// WindowTarget targets one specific window by handle.
type WindowTarget struct {
	ID WindowID
}

func (t WindowTarget) window(w *Window) bool { return w.ID == t.ID }

// ImageTarget targets an off-screen texture. The pointer can never hover an
// off-screen target, so cameras rendering to one are skipped during
// resolution. Format records the texture format of the destination for hosts
// that key their off-screen surfaces by it.
type ImageTarget struct {
	Format gputypes.TextureFormat
}

func (ImageTarget) window(*Window) bool { return false }

// targetsWindow reports whether target t resolves to window w, treating nil
// as the primary window.
func targetsWindow(t RenderTarget, w *Window) bool {
	if t == nil {
		t = PrimaryWindow{}
	}
	return t.window(w)
}
