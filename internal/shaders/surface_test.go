package shaders

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"spaceship/internal/render"
)

// colorWithin allows one step of truncation difference per channel.
func colorWithin(a, b render.Color) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 1 && d(a.G, b.G) <= 1 && d(a.B, b.B) <= 1
}

func TestBandCutoffs(t *testing.T) {
	tests := []struct {
		name     string
		bands    []band
		fallback render.Color
		v        float32
		want     render.Color
	}{
		{"rocky highland", rockyParams.bands, rockyParams.darkest, 0.51, render.NewColor(190, 160, 120)},
		{"rocky at 0.5", rockyParams.bands, rockyParams.darkest, 0.5, render.NewColor(160, 130, 90)},
		{"rocky at -0.1", rockyParams.bands, rockyParams.darkest, -0.1, render.NewColor(80, 60, 45)},
		{"rocky basin", rockyParams.bands, rockyParams.darkest, -0.4, render.NewColor(40, 30, 25)},
		{"moon at 0.2", moonParams.bands, moonParams.darkest, 0.2, render.NewColor(100, 100, 105)},
		{"moon lowland", moonParams.bands, moonParams.darkest, -0.39, render.NewColor(70, 70, 75)},
		{"moon basin", moonParams.bands, moonParams.darkest, -0.5, render.NewColor(40, 40, 45)},
		{"gas at 0.75", gasBands, gasDeepBlue, 0.75, render.NewColor(120, 160, 230)},
		{"gas at 0.6", gasBands, gasDeepBlue, 0.6, render.NewColor(80, 120, 200)},
		{"gas dark band", gasBands, gasDeepBlue, 0.26, render.NewColor(45, 80, 160)},
		{"gas at 0.25", gasBands, gasDeepBlue, 0.25, render.NewColor(15, 40, 100)},
		{"earth snow", earthBands, earthDeepOcean, 0.61, render.NewColor(240, 240, 255)},
		{"earth at 0.4", earthBands, earthDeepOcean, 0.4, render.NewColor(60, 120, 40)},
		{"earth beach", earthBands, earthDeepOcean, 0.1, render.NewColor(200, 180, 120)},
		{"earth at 0", earthBands, earthDeepOcean, 0, render.NewColor(40, 120, 180)},
		{"earth ocean", earthBands, earthDeepOcean, -0.5, render.NewColor(20, 80, 150)},
		{"earth at -0.6", earthBands, earthDeepOcean, -0.6, render.NewColor(10, 40, 100)},
		{"ice glare", iceBands, deepIce, 0.76, render.NewColor(245, 250, 255)},
		{"ice at 0.45", iceBands, deepIce, 0.45, render.NewColor(130, 200, 230)},
		{"ice at 0.3", iceBands, deepIce, 0.3, render.NewColor(100, 150, 200)},
		{"ice at 0.2", iceBands, deepIce, 0.2, render.NewColor(60, 100, 150)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pick(tt.v, tt.bands, tt.fallback); got != tt.want {
				t.Errorf("pick(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

// Each case sits well inside its bands so that only a changed constant,
// threshold or multiply order can move the result.
func TestSurfaceColors(t *testing.T) {
	up := mgl32.Vec3{0, 1, 0}
	east := mgl32.Vec3{1, 0, 0}
	front := mgl32.Vec3{0, 0, 1}

	tests := []struct {
		name   string
		typ    Type
		pos    mgl32.Vec3
		normal mgl32.Vec3
		frame  uint32
		want   render.Color
	}{
		{"rocky plain", RockyPlanet, mgl32.Vec3{0.1, 0.2, 0.3}, up, 0, render.NewColor(98, 74, 53)},
		{"rocky crater shadow", RockyPlanet, mgl32.Vec3{-0.55, 0.25, 0.9}, up, 0, render.NewColor(68, 51, 37)},
		{"moon plain", Moon, mgl32.Vec3{0.1, 0.2, 0.3}, up, 0, render.NewColor(79, 79, 83)},
		{"moon crater shadow", Moon, mgl32.Vec3{-0.88, 0.01, -0.93}, up, 0, render.NewColor(47, 47, 49)},
		{"gas storm forces white", GasGiant, mgl32.Vec3{0.36, -0.14, -0.37}, up, 0, render.NewColor(250, 255, 255)},
		{"gas storm rim keeps band", GasGiant, mgl32.Vec3{0.21, 0.25, -0.87}, up, 0, render.NewColor(94, 141, 235)},
		{"earth land", EarthLike, mgl32.Vec3{0.63, -0.64, 0.16}, up, 120, render.NewColor(47, 95, 31)},
		{"earth deep ocean", EarthLike, mgl32.Vec3{-0.74, -0.5, -0.22}, up, 120, render.NewColor(7, 31, 79)},
		{"earth cloud blend", EarthLike, mgl32.Vec3{0.1, 0.2, 0.3}, front, 120, render.NewColor(30, 47, 60)},
		{"ice band", IcePlanet, mgl32.Vec3{0.1, 0.2, 0.3}, front, 0, render.NewColor(68, 88, 98)},
		{"ice crack override", IcePlanet, mgl32.Vec3{-0.7, -0.02, -0.92}, east, 0, render.NewColor(38, 64, 96)},
		{"ice reflection", IcePlanet, mgl32.Vec3{0.87, -0.13, 0.74}, front, 0, render.NewColor(96, 112, 122)},
		{"ice aurora", IcePlanet, mgl32.Vec3{-0.35, -0.7, 0.3}, up, 120, render.NewColor(63, 129, 151)},
		{"ice aurora capped", IcePlanet, mgl32.Vec3{0.29, 0.99, 0.64}, up, 0, render.NewColor(124, 219, 208)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := render.ShadeInput{Position: tt.pos, Normal: tt.normal}
			got := tt.typ.Shade(in, &render.Uniforms{Time: tt.frame})
			if !colorWithin(got, tt.want) {
				t.Errorf("%v at %v = %v, want %v", tt.typ, tt.pos, got, tt.want)
			}
		})
	}
}

func TestIceCrackIgnoresBrightness(t *testing.T) {
	// Low crack values pin the color to deep ice whatever the brightness band.
	in := render.ShadeInput{Position: mgl32.Vec3{-0.7, -0.02, -0.92}, Normal: mgl32.Vec3{0, -1, 0}}
	got := IcePlanet.Shade(in, &render.Uniforms{})
	if want := deepIce.Mul(0.4); !colorWithin(got, want) {
		t.Errorf("cracked ice = %v, want ambient deep ice %v", got, want)
	}
}
