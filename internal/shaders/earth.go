package shaders

import (
	"github.com/go-gl/mathgl/mgl32"

	"spaceship/internal/render"
)

var (
	earthLight = mgl32.Vec3{0.5, 0.7, -0.5}.Normalize()

	earthBands = []band{
		{0.6, render.NewColor(240, 240, 255)}, // snow
		{0.4, render.NewColor(100, 90, 70)},   // mountain
		{0.15, render.NewColor(60, 120, 40)},  // land
		{0, render.NewColor(200, 180, 120)},   // beach
		{-0.3, render.NewColor(40, 120, 180)}, // shallow water
		{-0.6, render.NewColor(20, 80, 150)},  // ocean
	}
	earthDeepOcean = render.NewColor(10, 40, 100)
	cloudWhite     = render.NewColor(255, 255, 255)
)

const cloudThreshold = 0.7

func earth(in render.ShadeInput, frame uint32) render.Color {
	const zoom = 30
	time := float32(frame) * 0.03
	x, y, z := in.Position.X(), in.Position.Y(), in.Position.Z()

	continent := sin(x*zoom*0.5+time*0.1) * cos(z*zoom*0.5) * sin(y*zoom*0.3)
	ocean := cos((x+0.5)*zoom*0.8) * sin((z-0.3)*zoom*0.7)
	vegetation := (sin(x*zoom*1.5) + cos(z*zoom*1.3) + sin(y*zoom*1.1)) * 0.3
	clouds := sin(x*zoom*2+time*2) * cos(y*zoom*2.5-time*1.5) * sin(z*zoom*2.2+time)
	cloudFactor := (clouds + 1) * 0.5

	color := pick(continent+ocean*0.3+vegetation*0.2, earthBands, earthDeepOcean)
	if cloudFactor > cloudThreshold {
		color = color.Lerp(cloudWhite, (cloudFactor-cloudThreshold)/0.3)
	}

	return color.Mul(lambert(in.Normal, earthLight, 0, 0.7, 0.3))
}
