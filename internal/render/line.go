package render

import (
	"iter"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Line yields the Bresenham approximation of the segment between the screen
// positions of v0 and v1, endpoints included. Depth and color are
// interpolated along the major axis. Fragments are not clipped.
func Line(v0, v1 Vertex) iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		p0, p1 := v0.TransformedPosition, v1.TransformedPosition
		x0 := int(math.Round(float64(p0.X())))
		y0 := int(math.Round(float64(p0.Y())))
		x1 := int(math.Round(float64(p1.X())))
		y1 := int(math.Round(float64(p1.Y())))

		dx := abs(x1 - x0)
		dy := -abs(y1 - y0)
		sx, sy := 1, 1
		if x0 > x1 {
			sx = -1
		}
		if y0 > y1 {
			sy = -1
		}

		steps := max(dx, -dy)
		err := dx + dy
		x, y := x0, y0
		for i := 0; ; i++ {
			var t float32
			if steps > 0 {
				t = float32(i) / float32(steps)
			}
			frag := Fragment{
				Position: mgl32.Vec3{float32(x), float32(y), p0.Z() + (p1.Z()-p0.Z())*t},
				Color:    v0.Color.Lerp(v1.Color, t),
			}
			if !yield(frag) {
				return
			}
			if x == x1 && y == y1 {
				return
			}

			e2 := 2 * err
			if e2 >= dy {
				err += dy
				x += sx
			}
			if e2 <= dx {
				err += dx
				y += sy
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
