package game

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"spaceship/internal/config"
	"spaceship/internal/hud"
	"spaceship/internal/mesh"
	"spaceship/internal/profiling"
	"spaceship/internal/render"
	"spaceship/internal/scene"
	"spaceship/internal/shaders"
)

// Renderer composes one frame of the scene into its framebuffer
type Renderer struct {
	fb  *render.Framebuffer
	hud *hud.HUD

	sphere []render.Vertex
	ring   []render.Vertex
	ship   []render.Vertex

	ringTilt   float32
	projection mgl32.Mat4
	viewport   mgl32.Mat4

	// Stats of the last frame
	Stats render.Stats
}

// NewRenderer builds the shared meshes for cfg. shipModel is drawn for
// the player's ship.
func NewRenderer(cfg scene.Config, shipModel []render.Vertex) *Renderer {
	r := &Renderer{
		hud:      hud.New(),
		sphere:   mesh.Sphere(1, cfg.SphereDetail, cfg.SphereDetail),
		ring:     mesh.Ring(cfg.Rings.Inner, cfg.Rings.Outer, cfg.Rings.Segments),
		ship:     shipModel,
		ringTilt: cfg.Rings.Tilt,
	}
	r.Resize(cfg.Width, cfg.Height)
	return r
}

// Resize reallocates the framebuffer and rebuilds the screen matrices
func (r *Renderer) Resize(width, height int) {
	if r.fb != nil && r.fb.Width() == width && r.fb.Height() == height {
		return
	}
	r.fb = render.NewFramebuffer(width, height)
	r.projection = render.PerspectiveMatrix(float32(width), float32(height))
	r.viewport = render.ViewportMatrix(float32(width), float32(height))
}

// Framebuffer returns the target of the last Render.
func (r *Renderer) Framebuffer() *render.Framebuffer { return r.fb }

// HUD returns the overlay drawn on top of every frame.
func (r *Renderer) HUD() *hud.HUD { return r.hud }

// Render draws the session's current state: stars, orbit guides, the sun,
// each planet with its rings and moon, the ship, then the overlay.
func (r *Renderer) Render(s *Session) *render.Framebuffer {
	start := time.Now()
	r.Stats = render.Stats{}

	func() { defer profiling.Track("render.Clear")(); r.fb.Clear() }()
	func() { defer profiling.Track("render.Skybox")(); s.Skybox.Draw(r.fb) }()

	eye, target := scene.ChaseCamera(s.Ship)
	view := render.ViewMatrix(eye, target, scene.Up)

	if config.GetShowOrbits() {
		func() {
			defer profiling.Track("render.Orbits")()
			center := s.System.Sun.Position
			for _, o := range s.Orbits {
				render.DrawOrbit(r.fb, center, o.Radius, o.Segments, o.Color, view, r.projection, r.viewport)
			}
		}()
	}

	func() {
		defer profiling.Track("render.Sun")()
		r.drawBody(s.System.Sun, view, s.Time)
	}()

	func() {
		defer profiling.Track("render.Planets")()
		for _, p := range s.System.Planets {
			r.drawBody(p, view, s.Time)
			if p.HasRings {
				rot := mgl32.Vec3{r.ringTilt, p.RotationAngle, 0}
				r.draw(r.ring, render.ModelMatrix(p.Position, p.Scale, rot), view, s.Time, shaders.Rings)
			}
			if p.Moon != nil {
				r.drawBody(p.Moon, view, s.Time)
			}
		}
	}()

	func() {
		defer profiling.Track("render.Ship")()
		model := render.ModelMatrix(s.Ship.Position, s.Ship.Scale, s.Ship.ModelRotation())
		r.draw(r.ship, model, view, s.Time, shaders.Spaceship)
	}()

	r.hud.SetRenderDuration(time.Since(start))
	r.hud.Draw(r.fb, hud.Status{
		Position:      s.Ship.Position,
		Paused:        s.Paused,
		ShowOrbits:    config.GetShowOrbits(),
		ShowProfiling: config.GetShowProfiling(),
		Cooldown:      s.Ship.CollisionCooldown,
		Collision:     s.LastCollision,
	})

	return r.fb
}

func (r *Renderer) drawBody(b *scene.Body, view mgl32.Mat4, t uint32) {
	r.draw(r.sphere, render.ModelMatrix(b.Position, b.Scale, b.Rotation()), view, t, b.Shader)
}

func (r *Renderer) draw(verts []render.Vertex, model, view mgl32.Mat4, t uint32, shader shaders.Type) {
	u := render.Uniforms{
		Model:      model,
		View:       view,
		Projection: r.projection,
		Viewport:   r.viewport,
		Time:       t,
	}
	r.Stats.Add(render.Draw(r.fb, &u, verts, shader.Shade))
}
