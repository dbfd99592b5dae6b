package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// clipEpsilon bounds |w| below which a vertex cannot be perspective-divided.
const clipEpsilon = 1e-4

// TransformVertex runs the model, view, projection, perspective divide and
// viewport stages on v. It reports false when the vertex has no usable
// projection (w near zero or behind the eye); callers drop the primitive.
//
// The normal is rotated by the upper-left 3x3 of the model matrix only. That
// is exact for rotation plus uniform scale, which is all the scene uses; it is
// not an inverse-transpose and misrepresents normals under non-uniform scale.
func TransformVertex(v Vertex, u *Uniforms) (Vertex, bool) {
	mvp := u.Projection.Mul4(u.View).Mul4(u.Model)
	clip := mvp.Mul4x1(v.Position.Vec4(1))

	w := clip.W()
	if w < clipEpsilon || isBad(w) {
		return v, false
	}

	ndc := mgl32.Vec4{clip.X() / w, clip.Y() / w, clip.Z() / w, 1}
	screen := u.Viewport.Mul4x1(ndc)
	if isBad(screen.X()) || isBad(screen.Y()) || isBad(screen.Z()) {
		return v, false
	}

	normal := u.Model.Mat3().Mul3x1(v.Normal)
	if normal.Len() > 0 {
		normal = normal.Normalize()
	}

	out := v
	out.TransformedPosition = screen.Vec3()
	out.TransformedNormal = normal
	return out, true
}

func isBad(f float32) bool {
	v := float64(f)
	return math.IsNaN(v) || math.IsInf(v, 0)
}
