package hud

import (
	"spaceship/internal/render"
)

// FlashBorder is the thickness of the collision flash in pixels
const FlashBorder = 10

// FlashColor is the border color for a collision cooldown: red fading
// from 127 at a full second to black.
func FlashColor(cooldown float32) render.Color {
	v := cooldown * 127.5
	if !(v > 0) {
		return render.Color{}
	}
	return render.NewColor(uint8(min(v, 255)), 0, 0)
}

// DrawCollisionFlash paints a red frame around the screen while the ship's
// collision cooldown is running. It does nothing once cooldown reaches zero.
func DrawCollisionFlash(fb *render.Framebuffer, cooldown float32) {
	if cooldown <= 0 {
		return
	}
	c := FlashColor(cooldown)
	w, h := fb.Width(), fb.Height()
	t := min(FlashBorder, w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < t; x++ {
			fb.Point(x, y, render.NearestDepth, c)
			fb.Point(w-1-x, y, render.NearestDepth, c)
		}
	}
	for x := 0; x < w; x++ {
		for y := 0; y < t; y++ {
			fb.Point(x, y, render.NearestDepth, c)
			fb.Point(x, h-1-y, render.NearestDepth, c)
		}
	}
}
