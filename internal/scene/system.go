package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// System is the sun and its planets. Planets own their moons.
type System struct {
	Sun     *Body
	Planets []*Body
}

// Update advances every body by dt seconds
func (s *System) Update(dt float32) {
	s.Sun.Update(dt)
	for _, p := range s.Planets {
		p.Update(dt)
	}
}

// Bodies calls fn for the sun, then each planet followed by its moon.
func (s *System) Bodies(fn func(*Body)) {
	fn(s.Sun)
	for _, p := range s.Planets {
		fn(p)
		if p.Moon != nil {
			fn(p.Moon)
		}
	}
}

// Collision describes a resolved overlap between the ship and a body.
type Collision struct {
	Body     string
	Position mgl32.Vec3 // Corrected position, on the surface of the inflated body
}

// ResolveCollision checks a sphere of the given radius at pos against the
// bodies in Bodies order and pushes it out of the first one it overlaps.
func (s *System) ResolveCollision(pos mgl32.Vec3, radius float32) (Collision, bool) {
	var (
		hit   Collision
		found bool
	)
	s.Bodies(func(b *Body) {
		if found {
			return
		}
		if p, ok := pushOut(pos, radius, b); ok {
			hit = Collision{Body: b.Name, Position: p}
			found = true
		}
	})
	return hit, found
}

func pushOut(pos mgl32.Vec3, radius float32, b *Body) (mgl32.Vec3, bool) {
	offset := pos.Sub(b.Position)
	dist := offset.Len()
	minDist := b.CollisionRadius() + radius
	if dist >= minDist {
		return pos, false
	}

	dir := mgl32.Vec3{0, 1, 0}
	if dist > 0 {
		dir = offset.Mul(1 / dist)
	}
	return b.Position.Add(dir.Mul(minDist)), true
}
