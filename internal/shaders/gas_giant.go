package shaders

import (
	"github.com/go-gl/mathgl/mgl32"

	"spaceship/internal/render"
)

var (
	gasLight = mgl32.Vec3{0.3, 0.7, -0.6}.Normalize()

	gasWhite = render.NewColor(200, 220, 255)
	gasBands = []band{
		{0.75, gasWhite},
		{0.6, render.NewColor(120, 160, 230)},
		{0.4, render.NewColor(80, 120, 200)},
		{0.25, render.NewColor(45, 80, 160)},
	}
	gasDeepBlue = render.NewColor(15, 40, 100)
)

const (
	stormX      = 0.3
	stormY      = 0.0
	stormRadius = 0.4
)

// gasGiant draws latitude bands with a storm spot. The final intensity is
// deliberately unclamped before the color multiply saturates it.
func gasGiant(in render.ShadeInput, frame uint32) render.Color {
	time := float32(frame) * 0.2
	x, y, z := in.Position.X(), in.Position.Y(), in.Position.Z()

	bands := (sin(y*10+time*0.5) + 1) * 0.5
	bands2 := (sin(y*15-time*0.3) + 1) * 0.5
	swirl := (sin(x*15+z*8+y*20-time*3) + 1) * 0.5
	turbulence := cos(x*25) * sin(z*20) * cos(y*10) * 0.3

	var storm float32
	dx, dy := x-stormX, y-stormY
	if d := sqrt(dx*dx + dy*dy); d < stormRadius {
		storm = (stormRadius - d) / stormRadius * 0.6
	}

	combined := mgl32.Clamp(bands*0.6+bands2*0.4+turbulence, 0, 1)

	base := gasWhite
	if storm <= 0.3 {
		base = pick(combined, gasBands, gasDeepBlue)
	}

	intensity := lambert(in.Normal, gasLight, 0, 0.6, 0.4)
	return base.Mul(intensity + storm + swirl*0.15)
}
