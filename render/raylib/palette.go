package raylib

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// paletteColor assigns pane i of n a fallback fill, spreading hues evenly
// across the rect buffer so unstyled panes stay distinguishable. Index
// derived, like the original grayscale ramp, so it is stable across
// layout passes for a fixed tree shape.
func paletteColor(i, n int) rl.Color {
	if n < 1 {
		n = 1
	}
	hue := 360 * float32(i) / float32(n)
	return hsvColor(hue, 0.55, 0.85)
}

// hsvColor converts HSV (h in degrees, s and v in [0, 1]) to an opaque
// rl.Color.
func hsvColor(h, s, v float32) rl.Color {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	c := v * s
	x := c * (1 - math32.Abs(math32.Mod(h/60, 2)-1))
	m := v - c

	var rf, gf, bf float32
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	return rl.NewColor(uint8((rf+m)*255), uint8((gf+m)*255), uint8((bf+m)*255), 255)
}
