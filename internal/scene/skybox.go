package scene

import (
	"spaceship/internal/render"
)

// StarDepth is the depth stars are written at: behind anything inside the
// view frustum.
const StarDepth = 1.0

// Star is a fixed point of the background, in normalized screen coordinates.
type Star struct {
	X, Y       float32
	Brightness uint8
}

// Skybox is a screen-space star field
type Skybox struct {
	Stars []Star
}

// lcg is the classic ANSI C linear congruential generator.
type lcg uint32

func (g *lcg) next() float32 {
	*g = *g*1103515245 + 12345
	return float32(uint32(*g)>>16) / 65536
}

// NewSkybox generates count stars from a fixed seed, so every run shows the
// same sky.
func NewSkybox(count int) *Skybox {
	g := lcg(12345)
	stars := make([]Star, 0, count)
	for i := 0; i < count; i++ {
		x := g.next()
		y := g.next()
		b := g.next()

		var brightness uint8
		switch {
		case b > 0.9:
			brightness = 255
		case b > 0.7:
			brightness = 200
		case b > 0.4:
			brightness = 150
		default:
			brightness = 100
		}
		stars = append(stars, Star{X: x, Y: y, Brightness: brightness})
	}
	return &Skybox{Stars: stars}
}

// Draw writes the stars at StarDepth. Stars brighter than 200 get a
// four-pixel halo at half brightness.
func (s *Skybox) Draw(fb *render.Framebuffer) {
	w, h := fb.Width(), fb.Height()
	for _, star := range s.Stars {
		x := int(star.X * float32(w))
		y := int(star.Y * float32(h))
		if !fb.InBounds(x, y) {
			continue
		}

		b := star.Brightness
		fb.Point(x, y, StarDepth, render.NewColor(b, b, b))

		if b > 200 {
			d := uint8(float32(b) * 0.5)
			halo := render.NewColor(d, d, d)
			for _, p := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
				if fb.InBounds(p[0], p[1]) {
					fb.Point(p[0], p[1], StarDepth, halo)
				}
			}
		}
	}
}
