package render

import (
	"image"
	"iter"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// minArea is the smallest doubled screen-space area a triangle may have.
const minArea = 1e-6

// edge is the edge function of a->b evaluated at p: twice the signed area
// of (a, b, p). Screen Y grows downward.
func edge(a, b mgl32.Vec3, px, py float32) float32 {
	return (b.X()-a.X())*(py-a.Y()) - (b.Y()-a.Y())*(px-a.X())
}

// topLeft reports whether the edge a->b of a positively wound triangle is a
// top or a left edge. Samples lying exactly on such an edge are owned by
// the triangle; samples on any other edge belong to the neighbour.
func topLeft(a, b mgl32.Vec3) bool {
	dx := b.X() - a.X()
	dy := b.Y() - a.Y()
	return (dy == 0 && dx > 0) || dy < 0
}

func covers(w float32, owned bool) bool {
	return w > 0 || (w == 0 && owned)
}

// Triangle scan-converts a screen-space triangle and yields one shaded
// fragment for every pixel center inside it. Coverage is restricted to
// bounds. Zero-area triangles yield nothing.
//
// All attributes are interpolated linearly in screen space.
func Triangle(v0, v1, v2 Vertex, u *Uniforms, bounds image.Rectangle, shade FragmentShader) iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		a, b, c := v0.TransformedPosition, v1.TransformedPosition, v2.TransformedPosition

		area := edge(a, b, c.X(), c.Y())
		if area < 0 {
			v1, v2 = v2, v1
			b, c = c, b
			area = -area
		}
		if area < minArea || isBad(area) {
			return
		}

		minX := max(int(math.Floor(float64(min(a.X(), b.X(), c.X())))), bounds.Min.X)
		minY := max(int(math.Floor(float64(min(a.Y(), b.Y(), c.Y())))), bounds.Min.Y)
		maxX := min(int(math.Ceil(float64(max(a.X(), b.X(), c.X())))), bounds.Max.X)
		maxY := min(int(math.Ceil(float64(max(a.Y(), b.Y(), c.Y())))), bounds.Max.Y)

		ownBC := topLeft(b, c)
		ownCA := topLeft(c, a)
		ownAB := topLeft(a, b)
		inv := 1 / area

		for y := minY; y < maxY; y++ {
			py := float32(y) + 0.5
			for x := minX; x < maxX; x++ {
				px := float32(x) + 0.5

				e0 := edge(b, c, px, py)
				if !covers(e0, ownBC) {
					continue
				}
				e1 := edge(c, a, px, py)
				if !covers(e1, ownCA) {
					continue
				}
				e2 := edge(a, b, px, py)
				if !covers(e2, ownAB) {
					continue
				}

				w0, w1, w2 := e0*inv, e1*inv, e2*inv
				depth := a.Z()*w0 + b.Z()*w1 + c.Z()*w2

				in := ShadeInput{
					Screen:   mgl32.Vec3{px, py, depth},
					Position: blend3(v0.Position, v1.Position, v2.Position, w0, w1, w2),
					Normal:   blend3(v0.TransformedNormal, v1.TransformedNormal, v2.TransformedNormal, w0, w1, w2),
					Color:    blendColor(v0.Color, v1.Color, v2.Color, w0, w1, w2),
				}
				if in.Normal.Len() > 0 {
					in.Normal = in.Normal.Normalize()
				}

				frag := Fragment{
					Position: mgl32.Vec3{float32(x), float32(y), depth},
					Color:    shade(in, u),
				}
				if !yield(frag) {
					return
				}
			}
		}
	}
}

func blend3(a, b, c mgl32.Vec3, w0, w1, w2 float32) mgl32.Vec3 {
	return a.Mul(w0).Add(b.Mul(w1)).Add(c.Mul(w2))
}

func blendColor(a, b, c Color, w0, w1, w2 float32) Color {
	return Color{
		R: clampChannel(float32(a.R)*w0 + float32(b.R)*w1 + float32(c.R)*w2 + 0.5),
		G: clampChannel(float32(a.G)*w0 + float32(b.G)*w1 + float32(c.G)*w2 + 0.5),
		B: clampChannel(float32(a.B)*w0 + float32(b.B)*w1 + float32(c.B)*w2 + 0.5),
	}
}
