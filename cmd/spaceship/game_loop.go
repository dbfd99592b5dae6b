package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"spaceship/internal/game"
	"spaceship/internal/input"
	"spaceship/internal/present"
	"spaceship/internal/profiling"
	"spaceship/internal/scene"
)

// GameLoop drives a session on a glfw window
type GameLoop struct {
	window    *glfw.Window
	input     *input.InputManager[glfw.Key]
	session   *game.Session
	renderer  *game.Renderer
	presenter *present.GLPresenter

	fpsLimiter *game.FPSLimiter
}

func newGameLoop(window *glfw.Window, cfg scene.Config) (*GameLoop, error) {
	presenter, err := present.NewGLPresenter()
	if err != nil {
		return nil, err
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	return &GameLoop{
		window:     window,
		input:      newInputManager(),
		session:    game.NewSession(cfg),
		renderer:   game.NewRenderer(cfg, game.LoadShipModel(cfg.Ship.Model)),
		presenter:  presenter,
		fpsLimiter: game.NewFPSLimiter(),
	}, nil
}

// Run ticks until the window closes or the player quits
func (l *GameLoop) Run() {
	for !l.window.ShouldClose() {
		l.tick()
	}
}

func (l *GameLoop) tick() {
	profiling.ResetFrame()
	start := time.Now()

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	func() {
		defer profiling.Track("session.Update")()
		if l.session.Update(l.input, game.DeltaTime) {
			l.window.SetShouldClose(true)
		}
	}()

	fb := l.renderer.Render(l.session)
	func() { defer profiling.Track("present.Blit")(); l.presenter.Present(fb) }()
	func() { defer profiling.Track("glfw.SwapBuffers")(); l.window.SwapBuffers() }()

	if l.renderer.HUD().Tick(time.Now()) {
		fmt.Printf("FPS: %d\n", l.renderer.HUD().FPS())
	}

	// Check if frame took too long
	if d := time.Since(start); d > 50*time.Millisecond {
		slog.Debug("slow frame", "duration", d, "top", profiling.TopN(5))
	}

	// Clear edge flags at end of frame
	l.input.PostUpdate()

	l.fpsLimiter.Wait()
}
