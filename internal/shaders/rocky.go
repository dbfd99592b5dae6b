package shaders

import (
	"github.com/go-gl/mathgl/mgl32"

	"spaceship/internal/render"
)

// craterParams describes the cratered terrain family; rocky planets and
// moons differ only in these constants.
type craterParams struct {
	zoom       float32
	timeScale  float32
	drift      float32 // Phase of the first octave per unit of time, 0 freezes the surface
	bands      []band
	darkest    render.Color
	craterFreq float32
	craterDim  float32
	light      mgl32.Vec3
}

var rockyParams = craterParams{
	zoom:      40,
	timeScale: 0.05,
	drift:     0.1,
	bands: []band{
		{0.5, render.NewColor(190, 160, 120)},
		{0.2, render.NewColor(160, 130, 90)},
		{-0.1, render.NewColor(120, 90, 65)},
		{-0.4, render.NewColor(80, 60, 45)},
	},
	darkest:    render.NewColor(40, 30, 25),
	craterFreq: 25,
	craterDim:  0.7,
	light:      mgl32.Vec3{0.5, 0.8, -0.5}.Normalize(),
}

var moonParams = craterParams{
	zoom:      50,
	timeScale: 0.02,
	bands: []band{
		{0.5, render.NewColor(160, 160, 165)},
		{0.2, render.NewColor(130, 130, 135)},
		{-0.1, render.NewColor(100, 100, 105)},
		{-0.4, render.NewColor(70, 70, 75)},
	},
	darkest:    render.NewColor(40, 40, 45),
	craterFreq: 30,
	craterDim:  0.6,
	light:      mgl32.Vec3{0.5, 0.7, -0.5}.Normalize(),
}

func rockyTerrain(p mgl32.Vec3, zoom, phase float32) float32 {
	x, y, z := p.X(), p.Y(), p.Z()

	n1 := sin(x*zoom+phase) * cos(y*zoom) * sin(z*zoom)
	n2 := cos((x+0.3)*zoom*0.7) * sin((y+0.7)*zoom*0.9)
	n3 := sin((z+0.5)*zoom*1.3) * cos((x-0.2)*zoom*0.5)
	n4 := (sin(x*y*zoom*0.3) + cos(z*y*zoom*0.4)) * 0.5

	return n1*0.4 + n2*0.3 + n3*0.2 + n4*0.1
}

func rocky(in render.ShadeInput, frame uint32, p *craterParams) render.Color {
	time := float32(frame) * p.timeScale
	phase := time * p.drift
	base := pick(rockyTerrain(in.Position, p.zoom, phase), p.bands, p.darkest)

	x, z := in.Position.X(), in.Position.Z()
	crater := (sin(x*p.craterFreq)*cos(z*p.craterFreq) + 1) * 0.5
	shadow := float32(1)
	if crater > 0.85 {
		shadow = p.craterDim
	}

	intensity := lambert(in.Normal, p.light, 0, 0.7, 0.3)
	return base.Mul(intensity).Mul(shadow)
}
