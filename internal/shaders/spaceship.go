package shaders

import (
	"github.com/go-gl/mathgl/mgl32"

	"spaceship/internal/render"
)

var shipLight = mgl32.Vec3{0.5, 0.7, -0.3}.Normalize()

// spaceship keeps the authored mesh color and applies a floored Lambert
// term so the hull is never fully dark.
func spaceship(in render.ShadeInput) render.Color {
	return in.Color.Mul(lambert(in.Normal, shipLight, 0.2, 0.8, 0.2))
}
