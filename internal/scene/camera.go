package scene

import "github.com/go-gl/mathgl/mgl32"

// Chase camera placement relative to the ship
const (
	ChaseDistance = 2.5
	ChaseHeight   = 0.8
)

// Up is the world up vector used by the view matrix
var Up = mgl32.Vec3{0, 1, 0}

// ChaseCamera returns the eye and target of a camera trailing the ship
// along its heading.
func ChaseCamera(s *Ship) (eye, target mgl32.Vec3) {
	eye = s.Position.
		Sub(s.Heading().Mul(ChaseDistance)).
		Add(mgl32.Vec3{0, ChaseHeight, 0})
	return eye, s.Position
}
