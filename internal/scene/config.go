package scene

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"spaceship/internal/render"
	"spaceship/internal/shaders"
)

// Config describes a solar system scene. It is loaded from YAML; fields
// missing from the file keep their DefaultConfig values.
type Config struct {
	Width        int            `yaml:"width"`
	Height       int            `yaml:"height"`
	Stars        int            `yaml:"stars"`
	SphereDetail int            `yaml:"sphere_detail"` // rings and sectors of the body mesh
	Sun          BodyConfig     `yaml:"sun"`
	Planets      []PlanetConfig `yaml:"planets"`
	Rings        RingConfig     `yaml:"rings"`
	Ship         ShipConfig     `yaml:"ship"`
}

// BodyConfig describes one celestial body.
type BodyConfig struct {
	Name          string  `yaml:"name"`
	Shader        string  `yaml:"shader"`
	OrbitRadius   float32 `yaml:"orbit_radius"`
	Scale         float32 `yaml:"scale"`
	OrbitSpeed    float32 `yaml:"orbit_speed"`
	RotationSpeed float32 `yaml:"rotation_speed"`
}

// PlanetConfig is a body orbiting the sun, with optional rings and moon.
type PlanetConfig struct {
	BodyConfig `yaml:",inline"`
	Rings      bool        `yaml:"rings"`
	Moon       *BodyConfig `yaml:"moon"`
	Orbit      OrbitConfig `yaml:"orbit"`
}

// OrbitConfig styles the guide line drawn along a planet's orbit
type OrbitConfig struct {
	Color    string `yaml:"color"` // "#rrggbb"
	Segments int    `yaml:"segments"`
}

// RingConfig shapes the ring mesh shared by every ringed planet.
type RingConfig struct {
	Inner    float32 `yaml:"inner"`
	Outer    float32 `yaml:"outer"`
	Segments int     `yaml:"segments"`
	Tilt     float32 `yaml:"tilt"` // radians about X
}

// ShipConfig sets the ship model and its starting state.
type ShipConfig struct {
	Model         string    `yaml:"model"`
	Position      []float32 `yaml:"position"`
	Yaw           float32   `yaml:"yaw"`
	Scale         float32   `yaml:"scale"`
	Speed         float32   `yaml:"speed"`
	RotationSpeed float32   `yaml:"rotation_speed"`
}

// Orbit is a resolved orbit guide
type Orbit struct {
	Radius   float32
	Segments int
	Color    render.Color
}

// DefaultConfig is the stock three-planet system.
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       800,
		Stars:        800,
		SphereDetail: 50,
		Sun: BodyConfig{
			Name: "Sol", Shader: "sun", Scale: 2, RotationSpeed: 0.1,
		},
		Planets: []PlanetConfig{
			{
				BodyConfig: BodyConfig{Name: "Planeta Tierra", Shader: "earth", OrbitRadius: 8, Scale: 0.8, OrbitSpeed: 0.5, RotationSpeed: 1.0},
				Moon:       &BodyConfig{Name: "Luna", Shader: "moon", OrbitRadius: 1.5, Scale: 0.3, OrbitSpeed: 2.0, RotationSpeed: 0.5},
				Orbit:      OrbitConfig{Color: "#00ff64", Segments: 100},
			},
			{
				BodyConfig: BodyConfig{Name: "Planeta Gaseoso", Shader: "gas_giant", OrbitRadius: 15, Scale: 1.5, OrbitSpeed: 0.3, RotationSpeed: 0.8},
				Rings:      true,
				Orbit:      OrbitConfig{Color: "#c864ff", Segments: 120},
			},
			{
				BodyConfig: BodyConfig{Name: "Planeta Helado", Shader: "ice", OrbitRadius: 22, Scale: 0.6, OrbitSpeed: 0.2, RotationSpeed: 0.9},
				Orbit:      OrbitConfig{Color: "#64c8ff", Segments: 140},
			},
		},
		Rings: RingConfig{Inner: 1.3, Outer: 2.0, Segments: 100, Tilt: math.Pi / 6},
		Ship: ShipConfig{
			Model:         "assets/ship.obj",
			Position:      []float32{0, 8, 35},
			Yaw:           math.Pi,
			Scale:         0.08,
			Speed:         0.15,
			RotationSpeed: 0.03,
		},
	}
}

// LoadConfig reads a YAML scene description on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read scene file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse scene yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid scene: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem found, joined.
func (c Config) Validate() error {
	var errs []error

	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("resolution %dx%d must be positive", c.Width, c.Height))
	}
	if c.Stars < 0 {
		errs = append(errs, fmt.Errorf("stars must not be negative"))
	}
	if c.SphereDetail < 3 {
		errs = append(errs, fmt.Errorf("sphere_detail %d must be at least 3", c.SphereDetail))
	}

	errs = append(errs, c.Sun.validate("sun"))
	for i, p := range c.Planets {
		where := fmt.Sprintf("planets[%d]", i)
		errs = append(errs, p.validate(where))
		if p.Moon != nil {
			errs = append(errs, p.Moon.validate(where+".moon"))
		}
		if p.Orbit.Segments <= 0 {
			errs = append(errs, fmt.Errorf("%s.orbit: segments must be positive", where))
		}
		if _, err := ParseColor(p.Orbit.Color); err != nil {
			errs = append(errs, fmt.Errorf("%s.orbit: %w", where, err))
		}
	}

	if c.Rings.Segments <= 0 {
		errs = append(errs, fmt.Errorf("rings: segments must be positive"))
	}
	if c.Rings.Inner <= 0 || c.Rings.Outer <= c.Rings.Inner {
		errs = append(errs, fmt.Errorf("rings: need 0 < inner < outer, got %v and %v", c.Rings.Inner, c.Rings.Outer))
	}

	if len(c.Ship.Position) != 3 {
		errs = append(errs, fmt.Errorf("ship: position needs 3 components, got %d", len(c.Ship.Position)))
	}
	if c.Ship.Scale <= 0 {
		errs = append(errs, fmt.Errorf("ship: scale must be positive"))
	}

	return errors.Join(errs...)
}

func (b *BodyConfig) validate(where string) error {
	var errs []error
	if b.Name == "" {
		errs = append(errs, fmt.Errorf("%s: name is required", where))
	}
	if b.Scale <= 0 {
		errs = append(errs, fmt.Errorf("%s: scale must be positive", where))
	}
	if _, err := shaders.ParseType(b.Shader); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", where, err))
	}
	return errors.Join(errs...)
}

func (b *BodyConfig) build() *Body {
	shader, _ := shaders.ParseType(b.Shader)
	return NewBody(b.Name, shader, b.OrbitRadius, b.Scale, b.OrbitSpeed, b.RotationSpeed)
}

// NewSystem builds the bodies. The config must be valid.
func (c Config) NewSystem() *System {
	sys := &System{Sun: c.Sun.build()}
	for _, p := range c.Planets {
		body := p.build()
		if p.Rings {
			body.WithRings()
		}
		if p.Moon != nil {
			body.WithMoon(p.Moon.build())
		}
		sys.Planets = append(sys.Planets, body)
	}
	return sys
}

// NewShip places the ship at its configured start
func (c Config) NewShip() *Ship {
	var pos mgl32.Vec3
	copy(pos[:], c.Ship.Position)
	return &Ship{
		Position:      pos,
		Rotation:      mgl32.Vec3{0, c.Ship.Yaw, 0},
		Scale:         c.Ship.Scale,
		Speed:         c.Ship.Speed,
		RotationSpeed: c.Ship.RotationSpeed,
	}
}

// Orbits returns the guides of every planet, centered on the sun
func (c Config) Orbits() []Orbit {
	out := make([]Orbit, 0, len(c.Planets))
	for _, p := range c.Planets {
		col, _ := ParseColor(p.Orbit.Color)
		out = append(out, Orbit{Radius: p.OrbitRadius, Segments: p.Orbit.Segments, Color: col})
	}
	return out
}

// ParseColor reads "#rrggbb" or "rrggbb".
func ParseColor(s string) (render.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return render.Color{}, fmt.Errorf("color %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return render.Color{}, fmt.Errorf("color %q is not #rrggbb: %w", s, err)
	}
	return render.FromHex(uint32(v)), nil
}
