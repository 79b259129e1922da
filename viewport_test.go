package cursor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestViewportContains(t *testing.T) {
	vp := Viewport{Position: mgl32.Vec2{100, 50}, Size: mgl32.Vec2{300, 200}}

	tests := []struct {
		name string
		p    mgl32.Vec2
		want bool
	}{
		{"center", mgl32.Vec2{250, 150}, true},
		{"top-left corner", mgl32.Vec2{100, 50}, true},
		{"bottom-right corner", mgl32.Vec2{400, 250}, true},
		{"left edge", mgl32.Vec2{100, 150}, true},
		{"right edge", mgl32.Vec2{400, 150}, true},
		{"top edge", mgl32.Vec2{250, 50}, true},
		{"bottom edge", mgl32.Vec2{250, 250}, true},
		{"just outside left", mgl32.Vec2{99.5, 150}, false},
		{"just outside right", mgl32.Vec2{400.5, 150}, false},
		{"just outside top", mgl32.Vec2{250, 49.5}, false},
		{"just outside bottom", mgl32.Vec2{250, 250.5}, false},
		{"far away", mgl32.Vec2{-1000, -1000}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vp.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
