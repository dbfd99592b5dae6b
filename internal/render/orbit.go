package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	orbitMinW   = 0.001
	orbitMargin = 2.0 // NDC units a guide point may sit off screen
)

// DrawOrbit draws a circle of the given radius in the XZ plane around center
// as a polyline of segments lines. Segments with an endpoint that cannot be
// projected, or that falls far off screen, are skipped.
//
// Guides are written at NearestDepth and therefore stay on top of everything
// drawn before them in the frame.
func DrawOrbit(fb *Framebuffer, center mgl32.Vec3, radius float32, segments int, c Color, view, projection, viewport mgl32.Mat4) int {
	if segments <= 0 {
		return 0
	}

	vp := projection.Mul4(view)
	project := func(i int) (Vertex, bool) {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		p := center.Add(mgl32.Vec3{
			radius * float32(math.Cos(angle)),
			0,
			radius * float32(math.Sin(angle)),
		})

		clip := vp.Mul4x1(p.Vec4(1))
		w := clip.W()
		if w < orbitMinW || isBad(w) {
			return Vertex{}, false
		}
		ndc := mgl32.Vec4{clip.X() / w, clip.Y() / w, clip.Z() / w, 1}
		if math.Abs(float64(ndc.X())) > orbitMargin || math.Abs(float64(ndc.Y())) > orbitMargin {
			return Vertex{}, false
		}
		screen := viewport.Mul4x1(ndc)
		if isBad(screen.X()) || isBad(screen.Y()) {
			return Vertex{}, false
		}
		return Vertex{TransformedPosition: screen.Vec3(), Color: c}, true
	}

	written := 0
	prev, prevOK := project(0)
	for i := 1; i <= segments; i++ {
		next, nextOK := project(i)
		if prevOK && nextOK {
			for frag := range Line(prev, next) {
				x, y := frag.X(), frag.Y()
				if !fb.InBounds(x, y) {
					continue
				}
				fb.Point(x, y, NearestDepth, c)
				written++
			}
		}
		prev, prevOK = next, nextOK
	}
	return written
}
