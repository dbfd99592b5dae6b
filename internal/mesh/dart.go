package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"spaceship/internal/render"
)

// Dart builds a small closed arrowhead pointing along -Z in model space,
// with flat per-face normals. It stands in for the ship when no model file
// is available. The scale matches typical OBJ ship models (about 10 units long).
func Dart(hull, fin render.Color) []render.Vertex {
	nose := mgl32.Vec3{0, 0, -6}
	tail := mgl32.Vec3{0, 0, 4}
	left := mgl32.Vec3{-5, 0, 4}
	right := mgl32.Vec3{5, 0, 4}
	top := mgl32.Vec3{0, -1.5, 3}
	bottom := mgl32.Vec3{0, 1, 3}

	faces := []struct {
		a, b, c mgl32.Vec3
		color   render.Color
	}{
		{nose, left, top, hull},
		{nose, top, right, hull},
		{nose, bottom, left, fin},
		{nose, right, bottom, fin},
		{left, tail, top, hull},
		{top, tail, right, hull},
		{left, bottom, tail, fin},
		{tail, bottom, right, fin},
	}

	out := make([]render.Vertex, 0, len(faces)*3)
	for _, f := range faces {
		n := f.b.Sub(f.a).Cross(f.c.Sub(f.a)).Normalize()
		for _, p := range [3]mgl32.Vec3{f.a, f.b, f.c} {
			v := render.NewVertex(p, n, mgl32.Vec2{})
			v.Color = f.color
			out = append(out, v)
		}
	}
	return out
}
