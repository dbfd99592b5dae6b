package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"spaceship/internal/input"
)

var glfwLayout = input.Layout[glfw.Key]{
	Forward:         glfw.KeyW,
	Backward:        glfw.KeyS,
	YawLeft:         glfw.KeyA,
	YawRight:        glfw.KeyD,
	PitchUp:         glfw.KeyUp,
	PitchDown:       glfw.KeyDown,
	Ascend:          glfw.KeyQ,
	Descend:         glfw.KeyE,
	Pause:           glfw.KeySpace,
	ToggleOrbits:    glfw.KeyO,
	ToggleProfiling: glfw.KeyV,
	Quit:            glfw.KeyEscape,
}

func newInputManager() *input.InputManager[glfw.Key] {
	im := input.NewInputManager[glfw.Key]()
	im.BindLayout(glfwLayout)
	return im
}

func setupInputHandlers(window *glfw.Window, im *input.InputManager[glfw.Key]) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			im.HandleKeyEvent(key, true)
		case glfw.Release:
			im.HandleKeyEvent(key, false)
		}
	})

	// The software framebuffer keeps its size; GL stretches it to the window
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	})

	// Drop held keys when the window loses focus
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if focused {
			return
		}
		for _, k := range im.BoundKeys() {
			im.HandleKeyEvent(k, false)
		}
	})
}
