package shaders

import (
	"github.com/go-gl/mathgl/mgl32"

	"spaceship/internal/render"
)

var (
	iceLight = mgl32.Vec3{0.4, 0.8, -0.4}.Normalize()

	deepIce  = render.NewColor(60, 100, 150)
	iceBands = []band{
		{0.75, render.NewColor(245, 250, 255)},
		{0.6, render.NewColor(200, 235, 255)},
		{0.45, render.NewColor(170, 220, 245)},
		{0.3, render.NewColor(130, 200, 230)},
		{0.2, render.NewColor(100, 150, 200)},
	}
	auroraCyan = render.NewColor(100, 255, 220)
)

const (
	crackThreshold = 0.3
	auroraLatitude = 0.6
)

func ice(in render.ShadeInput, frame uint32) render.Color {
	const zoom = 45
	time := float32(frame) * 0.15
	x, y, z := in.Position.X(), in.Position.Y(), in.Position.Z()

	crystals := sin(x*zoom*1.5+time*0.5) * cos(z*zoom*1.3-time*0.3)
	cracks := abs(sin(x*zoom*4)*cos(z*zoom*3.5) + sin(y*zoom*3.8))
	waves := (sin(y*zoom*2) + cos(x*zoom*1.8)) * 0.5
	frost := cos(x*zoom*3) * sin(z*zoom*2.5) * cos(y*zoom*2.8)

	var aurora float32
	if polar := abs(y); polar > auroraLatitude {
		aurora = (sin(x*zoom*5+time*2)*cos(z*zoom*5-time*2) + 1) * 0.5 * (polar - auroraLatitude) * 3
	}

	haze := sin((x+y+z)*zoom*0.8+time) * 0.3

	combined := crystals*0.3 + waves*0.25 + frost*0.2 + haze*0.15 + cracks*0.1
	brightness := (combined + 1) * 0.5

	color := deepIce
	if cracks >= crackThreshold {
		color = pick(brightness, iceBands, deepIce)
	}
	if aurora > 0.1 {
		color = color.Lerp(auroraCyan, min(aurora, 0.6))
	}

	reflection := float32(1)
	if brightness > 0.7 {
		reflection = 1.2
	}

	return color.Mul(lambert(in.Normal, iceLight, 0, 0.6, 0.4)).Mul(reflection)
}
