package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch bounds the ship's nose up/down tilt
const MaxPitch = math.Pi / 6

// CollisionCooldown is how long, in seconds, a collision stays reported
const CollisionCooldown = 1.0

// Intent is the set of ship controls held during one frame
type Intent struct {
	Forward, Backward bool
	YawLeft, YawRight bool
	PitchUp, PitchDown bool
	Ascend, Descend   bool
}

// Ship is the player's craft. Rotation holds pitch in X and yaw in Y.
type Ship struct {
	Position      mgl32.Vec3
	Rotation      mgl32.Vec3
	Scale         float32
	Speed         float32 // units per frame
	RotationSpeed float32 // radians per frame

	// Seconds left before another collision is reported
	CollisionCooldown float32
}

// Heading is the unit thrust direction in the XZ plane
func (s *Ship) Heading() mgl32.Vec3 {
	yaw := float64(s.Rotation.Y())
	return mgl32.Vec3{float32(math.Sin(yaw)), 0, float32(math.Cos(yaw))}
}

// Apply moves and turns the ship by one frame of input. Thrust uses the
// heading from before this frame's turn.
func (s *Ship) Apply(in Intent) {
	heading := s.Heading().Mul(s.Speed)

	if in.Forward {
		s.Position = s.Position.Add(heading)
	}
	if in.Backward {
		s.Position = s.Position.Sub(heading)
	}

	if in.YawLeft {
		s.Rotation[1] += s.RotationSpeed
	}
	if in.YawRight {
		s.Rotation[1] -= s.RotationSpeed
	}

	if in.PitchUp {
		s.Rotation[0] = min(s.Rotation[0]+s.RotationSpeed*0.5, MaxPitch)
	}
	if in.PitchDown {
		s.Rotation[0] = max(s.Rotation[0]-s.RotationSpeed*0.5, -MaxPitch)
	}

	if in.Ascend {
		s.Position[1] += s.Speed
	}
	if in.Descend {
		s.Position[1] -= s.Speed
	}
}

// CollisionRadius is the ship's bounding sphere radius
func (s *Ship) CollisionRadius() float32 {
	return s.Scale * 5
}

// Cool counts the collision cooldown down by dt seconds
func (s *Ship) Cool(dt float32) {
	if s.CollisionCooldown > 0 {
		s.CollisionCooldown -= dt
	}
}

// ModelRotation is the Euler rotation for the ship's model matrix. Ship
// models are authored upside down relative to the engine, hence the half
// turn about X.
func (s *Ship) ModelRotation() mgl32.Vec3 {
	return mgl32.Vec3{s.Rotation.X() + math.Pi, s.Rotation.Y(), s.Rotation.Z()}
}
