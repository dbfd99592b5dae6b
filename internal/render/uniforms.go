package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projection parameters shared by every draw call
const (
	FieldOfView = 45.0 // degrees, vertical
	NearPlane   = 0.1
	FarPlane    = 100.0
)

// Uniforms is the read-only transform bundle of one draw call.
type Uniforms struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Viewport   mgl32.Mat4
	Time       uint32 // Frame counter
}

// ModelMatrix builds translation * uniform scale * Rz * Ry * Rx.
func ModelMatrix(translation mgl32.Vec3, scale float32, rotation mgl32.Vec3) mgl32.Mat4 {
	rot := mgl32.HomogRotate3DZ(rotation.Z()).
		Mul4(mgl32.HomogRotate3DY(rotation.Y())).
		Mul4(mgl32.HomogRotate3DX(rotation.X()))

	return mgl32.Translate3D(translation.X(), translation.Y(), translation.Z()).
		Mul4(mgl32.Scale3D(scale, scale, scale)).
		Mul4(rot)
}

// ViewMatrix is a right-handed look-at transform
func ViewMatrix(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, center, up)
}

// PerspectiveMatrix returns the projection used for a width x height target.
func PerspectiveMatrix(width, height float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), width/height, NearPlane, FarPlane)
}

// ViewportMatrix maps NDC to pixel coordinates with Y pointing down.
// Z passes through untouched, so depth stays in NDC units.
func ViewportMatrix(width, height float32) mgl32.Mat4 {
	return mgl32.Translate3D(width/2, height/2, 0).
		Mul4(mgl32.Scale3D(width/2, -height/2, 1))
}
