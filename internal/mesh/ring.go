package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"spaceship/internal/render"
)

// Ring builds a flat annulus in the XZ plane facing +Y, two triangles per segment.
func Ring(inner, outer float32, segments int) []render.Vertex {
	if segments <= 0 {
		return nil
	}

	up := mgl32.Vec3{0, 1, 0}
	point := func(radius, theta float32) render.Vertex {
		p := mgl32.Vec3{
			radius * float32(math.Cos(float64(theta))),
			0,
			radius * float32(math.Sin(float64(theta))),
		}
		return render.NewVertex(p, up, mgl32.Vec2{})
	}

	out := make([]render.Vertex, 0, segments*6)
	for i := 0; i < segments; i++ {
		theta1 := float32(i) / float32(segments) * math.Pi * 2
		theta2 := float32(i+1) / float32(segments) * math.Pi * 2

		inner1, outer1 := point(inner, theta1), point(outer, theta1)
		inner2, outer2 := point(inner, theta2), point(outer, theta2)

		out = append(out,
			inner1, outer1, inner2,
			inner2, outer1, outer2,
		)
	}
	return out
}
