// Package game ties the scene simulation to the software renderer. It is
// backend-free: windowing front ends feed it input and present its
// framebuffer.
package game

import (
	"log/slog"

	"spaceship/internal/config"
	"spaceship/internal/input"
	"spaceship/internal/scene"
)

// DeltaTime is the fixed simulation step in seconds
const DeltaTime = 0.016

// Controls is the read side of an input.InputManager
type Controls interface {
	IsActive(action input.Action) bool
	JustPressed(action input.Action) bool
}

// IntentFrom reads the held ship controls
func IntentFrom(c Controls) scene.Intent {
	return scene.Intent{
		Forward:   c.IsActive(input.ActionThrustForward),
		Backward:  c.IsActive(input.ActionThrustBackward),
		YawLeft:   c.IsActive(input.ActionYawLeft),
		YawRight:  c.IsActive(input.ActionYawRight),
		PitchUp:   c.IsActive(input.ActionPitchUp),
		PitchDown: c.IsActive(input.ActionPitchDown),
		Ascend:    c.IsActive(input.ActionAscend),
		Descend:   c.IsActive(input.ActionDescend),
	}
}

// Session is the simulation state of one run.
type Session struct {
	System *scene.System
	Ship   *scene.Ship
	Skybox *scene.Skybox
	Orbits []scene.Orbit

	// Frame counter fed to the shaders; it keeps counting while paused
	Time uint32

	// Paused freezes the orbits; the ship still flies
	Paused bool

	LastCollision string
}

// NewSession builds the system and ship described by cfg.
func NewSession(cfg scene.Config) *Session {
	return &Session{
		System: cfg.NewSystem(),
		Ship:   cfg.NewShip(),
		Skybox: scene.NewSkybox(cfg.Stars),
		Orbits: cfg.Orbits(),
	}
}

// Update handles this frame's toggles and advances the simulation by dt.
// It returns true when the player asked to quit.
func (s *Session) Update(c Controls, dt float32) (quit bool) {
	if c.JustPressed(input.ActionQuit) {
		return true
	}

	if c.JustPressed(input.ActionPause) {
		s.Paused = !s.Paused
		slog.Info("orbits", "paused", s.Paused)
	}
	if c.JustPressed(input.ActionToggleOrbits) {
		slog.Info("orbit guides", "visible", config.ToggleShowOrbits())
	}
	if c.JustPressed(input.ActionToggleProfiling) {
		slog.Info("profiling overlay", "visible", config.ToggleShowProfiling())
	}

	s.Step(IntentFrom(c), dt)
	return false
}

// Step runs one frame of simulation: ship input, orbits (unless paused),
// collision response, then the frame counter. It reports whether a new
// collision was registered this frame.
func (s *Session) Step(in scene.Intent, dt float32) (scene.Collision, bool) {
	s.Ship.Apply(in)

	if !s.Paused {
		s.System.Update(dt)
	}

	s.Ship.Cool(dt)

	var (
		hit      scene.Collision
		reported bool
	)
	if c, ok := s.System.ResolveCollision(s.Ship.Position, s.Ship.CollisionRadius()); ok {
		s.Ship.Position = c.Position
		if s.Ship.CollisionCooldown <= 0 {
			slog.Info("collision", "body", c.Body)
			s.Ship.CollisionCooldown = scene.CollisionCooldown
			s.LastCollision = c.Body
			hit, reported = c, true
		}
	}

	s.Time++
	return hit, reported
}
