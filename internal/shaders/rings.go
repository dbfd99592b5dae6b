package shaders

import (
	"github.com/go-gl/mathgl/mgl32"

	"spaceship/internal/render"
)

var (
	ringLight = mgl32.Vec3{0.3, 0.7, -0.6}.Normalize()

	ringBands = []band{
		{0.8, render.NewColor(240, 235, 220)},
		{0.6, render.NewColor(230, 220, 200)},
		{0.4, render.NewColor(200, 190, 170)},
		{0.25, render.NewColor(150, 140, 120)},
	}
	ringDark = render.NewColor(100, 90, 80)
)

// ringGap returns the opacity multiplier of the two empty divisions.
func ringGap(distance float32) float32 {
	switch {
	case distance > 1.3 && distance < 1.4:
		return 0.2
	case distance > 1.7 && distance < 1.75:
		return 0.3
	default:
		return 1
	}
}

func rings(in render.ShadeInput, frame uint32) render.Color {
	time := float32(frame) * 0.1
	x, z := in.Position.X(), in.Position.Z()
	distance := sqrt(x*x + z*z)

	bands := (sin(distance*50) + 1) * 0.5
	bands2 := (cos(distance*80+time) + 1) * 0.5
	particles := (sin(x*100)*cos(z*100) + 1) * 0.5
	density := (cos(distance*30) + 1) * 0.5

	combined := bands*0.4 + bands2*0.3 + particles*0.2 + density*0.1
	color := pick(combined, ringBands, ringDark)

	return color.Mul(lambert(in.Normal, ringLight, 0, 0.5, 0.5)).Mul(ringGap(distance))
}
