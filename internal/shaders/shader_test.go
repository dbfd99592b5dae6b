package shaders

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"spaceship/internal/render"
)

func randomInput(rng *rand.Rand) render.ShadeInput {
	p := mgl32.Vec3{rng.Float32()*2 - 1, rng.Float32()*2 - 1, rng.Float32()*2 - 1}
	n := p
	if n.Len() == 0 {
		n = mgl32.Vec3{0, 1, 0}
	}
	return render.ShadeInput{
		Position: p,
		Normal:   n.Normalize(),
		Color:    render.NewColor(uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256))),
	}
}

func TestShadeDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for typ := Type(0); typ < TypeCount; typ++ {
		for i := 0; i < 200; i++ {
			in := randomInput(rng)
			u := &render.Uniforms{Time: uint32(rng.Intn(10000))}
			a := typ.Shade(in, u)
			b := typ.Shade(in, u)
			if a != b {
				t.Fatalf("%v: same input shaded %v then %v", typ, a, b)
			}
		}
	}
}

func TestSunUsesOnlyPaletteColors(t *testing.T) {
	palette := map[render.Color]bool{sunDeepRed: true}
	for _, b := range sunBands {
		palette[b.color] = true
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		c := Sun.Shade(randomInput(rng), &render.Uniforms{Time: uint32(i)})
		if !palette[c] {
			t.Fatalf("sun produced %v outside its palette", c)
		}
	}
}

func TestSunBandBoundaries(t *testing.T) {
	tests := []struct {
		brightness float32
		want       render.Color
	}{
		{0.86, render.NewColor(255, 255, 240)},
		{0.85, render.NewColor(255, 220, 100)},
		{0.7, render.NewColor(255, 180, 50)},
		{0.5, render.NewColor(255, 100, 0)},
		{0.3, sunDeepRed},
		{0, sunDeepRed},
	}
	for _, tt := range tests {
		if got := pick(tt.brightness, sunBands, sunDeepRed); got != tt.want {
			t.Errorf("brightness %v: got %v, want %v", tt.brightness, got, tt.want)
		}
	}
}

func TestSunIgnoresLighting(t *testing.T) {
	// Position does not feed the sun; only the normal's X/Y and time do.
	in := render.ShadeInput{Normal: mgl32.Vec3{0.3, 0.4, 0.866}}
	a := Sun.Shade(in, &render.Uniforms{Time: 42})
	in.Position = mgl32.Vec3{9, 9, 9}
	in.Normal = mgl32.Vec3{0.3, 0.4, -0.866}
	if b := Sun.Shade(in, &render.Uniforms{Time: 42}); a != b {
		t.Errorf("sun depends on position or normal Z: %v vs %v", a, b)
	}
}

func TestRingGapDarker(t *testing.T) {
	up := mgl32.Vec3{0, 1, 0}
	for frame := uint32(0); frame < 50; frame++ {
		u := &render.Uniforms{Time: frame}
		gap := Rings.Shade(render.ShadeInput{Position: mgl32.Vec3{1.35, 0, 0}, Normal: up}, u)
		solid := Rings.Shade(render.ShadeInput{Position: mgl32.Vec3{1.5, 0, 0}, Normal: up}, u)
		if gap.R >= solid.R || gap.G >= solid.G || gap.B >= solid.B {
			t.Fatalf("frame %d: gap %v not darker than ring %v", frame, gap, solid)
		}
	}
}

func TestRingGapMultiplier(t *testing.T) {
	tests := []struct {
		distance float32
		want     float32
	}{
		{1.2, 1},
		{1.35, 0.2},
		{1.4, 1},
		{1.72, 0.3},
		{1.75, 1},
	}
	for _, tt := range tests {
		if got := ringGap(tt.distance); got != tt.want {
			t.Errorf("ringGap(%v) = %v, want %v", tt.distance, got, tt.want)
		}
	}
}

func TestMoonSurfaceIsStatic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		in := randomInput(rng)
		if a, b := Moon.Shade(in, &render.Uniforms{Time: 0}), Moon.Shade(in, &render.Uniforms{Time: 5000}); a != b {
			t.Fatalf("moon changed over time at %v: %v vs %v", in.Position, a, b)
		}
	}
}

func TestGasGiantStormBrightens(t *testing.T) {
	in := render.ShadeInput{Position: mgl32.Vec3{0.3, 0, 0.9}, Normal: mgl32.Vec3{0, 0, 1}}
	c := GasGiant.Shade(in, &render.Uniforms{})
	// The storm core alone contributes 0.6 on top of the 0.4 ambient floor.
	if c.R < 200 || c.G < 220 || c.B < 255 {
		t.Errorf("storm core = %v, want at least the storm white", c)
	}
}

func TestSpaceshipFloor(t *testing.T) {
	base := render.NewColor(100, 200, 50)
	away := render.ShadeInput{Normal: shipLight.Mul(-1), Color: base}
	c := Spaceship.Shade(away, &render.Uniforms{})
	// max(dot, 0.2) * 0.8 + 0.2 = 0.36
	if c.R < 35 || c.R > 36 || c.G < 71 || c.G > 72 || c.B < 17 || c.B > 18 {
		t.Errorf("unlit hull = %v, want about 36%% of %v", c, base)
	}

	lit := render.ShadeInput{Normal: shipLight, Color: base}
	if c := Spaceship.Shade(lit, &render.Uniforms{}); c.R < 99 || c.G < 199 {
		t.Errorf("fully lit hull = %v, want about %v", c, base)
	}
}

func TestParseType(t *testing.T) {
	for typ := Type(0); typ < TypeCount; typ++ {
		got, err := ParseType(typ.String())
		if err != nil {
			t.Fatalf("ParseType(%q): %v", typ.String(), err)
		}
		if got != typ {
			t.Errorf("ParseType(%q) = %v", typ.String(), got)
		}
	}
	if got, err := ParseType("  Gas_Giant "); err != nil || got != GasGiant {
		t.Errorf("ParseType is not case/space tolerant: %v, %v", got, err)
	}
	if _, err := ParseType("plasma"); err == nil {
		t.Error("expected error for unknown shader")
	}
	if s := Type(99).String(); s != "Type(99)" {
		t.Errorf("String() of invalid type = %q", s)
	}
}

func TestShadeUnknownTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an invalid shader type")
		}
	}()
	Type(99).Shade(render.ShadeInput{}, &render.Uniforms{})
}

func BenchmarkShade(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	inputs := make([]render.ShadeInput, 256)
	for i := range inputs {
		inputs[i] = randomInput(rng)
	}
	u := &render.Uniforms{Time: 100}

	for typ := Type(0); typ < TypeCount; typ++ {
		b.Run(typ.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				typ.Shade(inputs[i%len(inputs)], u)
			}
		})
	}
}
