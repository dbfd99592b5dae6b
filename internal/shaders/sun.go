package shaders

import "spaceship/internal/render"

var sunBands = []band{
	{0.85, render.NewColor(255, 255, 240)},
	{0.7, render.NewColor(255, 220, 100)},
	{0.5, render.NewColor(255, 180, 50)},
	{0.3, render.NewColor(255, 100, 0)},
}

var sunDeepRed = render.NewColor(200, 30, 0)

// sunBrightness layers three interference patterns over the normal's X/Y
// and maps the result to [0,1].
func sunBrightness(in render.ShadeInput, frame uint32) float32 {
	const zoom = 100
	time := float32(frame) * 0.5
	x, y := in.Normal.X(), in.Normal.Y()

	n1 := sin(x*zoom+time) * cos(y*zoom+time)
	n2 := sin((x+0.5)*zoom*1.5-time*0.8) * cos((y+0.5)*zoom*1.5+time*0.8)
	n3 := sin((x*0.7+y*0.3)*zoom*0.8 + time*1.2)

	return ((n1+n2+n3)/3 + 1) * 0.5
}

// sun is self-luminous: no lighting term.
func sun(in render.ShadeInput, frame uint32) render.Color {
	return pick(sunBrightness(in, frame), sunBands, sunDeepRed)
}
