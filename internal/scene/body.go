// Package scene holds the simulated solar system: orbiting bodies, the
// player's ship, the chase camera and the star field.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"spaceship/internal/shaders"
)

const twoPi = 2 * math.Pi

// Body is a celestial body on a circular orbit in the XZ plane. A body owns
// at most one moon, whose orbit is centered on the body.
type Body struct {
	Name   string
	Shader shaders.Type

	Position      mgl32.Vec3
	Scale         float32
	OrbitRadius   float32
	OrbitSpeed    float32 // radians per second
	RotationSpeed float32 // radians per second, about the body's Y axis

	OrbitAngle    float32
	RotationAngle float32

	HasRings bool
	Moon     *Body
}

// NewBody creates a body at orbit angle zero.
func NewBody(name string, shader shaders.Type, orbitRadius, scale, orbitSpeed, rotationSpeed float32) *Body {
	return &Body{
		Name:          name,
		Shader:        shader,
		Position:      mgl32.Vec3{orbitRadius, 0, 0},
		Scale:         scale,
		OrbitRadius:   orbitRadius,
		OrbitSpeed:    orbitSpeed,
		RotationSpeed: rotationSpeed,
	}
}

// WithRings marks the body as ringed
func (b *Body) WithRings() *Body {
	b.HasRings = true
	return b
}

// WithMoon attaches moon to the body, replacing any previous one
func (b *Body) WithMoon(moon *Body) *Body {
	b.Moon = moon
	return b
}

// Update advances the orbit and spin by dt seconds. Angles wrap at 2π.
// A moon is placed relative to the body's new position.
func (b *Body) Update(dt float32) {
	b.OrbitAngle = wrapAngle(b.OrbitAngle + b.OrbitSpeed*dt)
	b.Position[0] = b.OrbitRadius * cos(b.OrbitAngle)
	b.Position[2] = b.OrbitRadius * sin(b.OrbitAngle)

	b.RotationAngle = wrapAngle(b.RotationAngle + b.RotationSpeed*dt)

	if m := b.Moon; m != nil {
		m.Update(dt)
		m.Position[0] = b.Position.X() + m.OrbitRadius*cos(m.OrbitAngle)
		m.Position[2] = b.Position.Z() + m.OrbitRadius*sin(m.OrbitAngle)
	}
}

// CollisionRadius is the body's visual radius; the unit sphere is scaled by Scale.
func (b *Body) CollisionRadius() float32 {
	return b.Scale
}

// Rotation is the Euler rotation used for the body's model matrix
func (b *Body) Rotation() mgl32.Vec3 {
	return mgl32.Vec3{0, b.RotationAngle, 0}
}

func wrapAngle(a float32) float32 {
	if a > twoPi {
		a -= twoPi
	}
	return a
}

func sin(v float32) float32 { return float32(math.Sin(float64(v))) }
func cos(v float32) float32 { return float32(math.Cos(float64(v))) }
