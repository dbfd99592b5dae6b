package shaders

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"spaceship/internal/render"
)

func sin(v float32) float32  { return float32(math.Sin(float64(v))) }
func cos(v float32) float32  { return float32(math.Cos(float64(v))) }
func abs(v float32) float32  { return float32(math.Abs(float64(v))) }
func sqrt(v float32) float32 { return float32(math.Sqrt(float64(v))) }

// lambert returns max(dot(n, l), floor) * scale + bias.
func lambert(normal, light mgl32.Vec3, floor, scale, bias float32) float32 {
	return max(normal.Dot(light), floor)*scale + bias
}

type band struct {
	above float32
	color render.Color
}

// pick returns the color of the first band whose threshold v exceeds, or fallback.
func pick(v float32, bands []band, fallback render.Color) render.Color {
	for _, b := range bands {
		if v > b.above {
			return b.color
		}
	}
	return fallback
}
