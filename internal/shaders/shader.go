// Package shaders holds the procedural surface shaders of the celestial
// bodies and the ship. Every shader is a pure function of the fragment's
// interpolated position, normal and the frame counter.
package shaders

import (
	"fmt"
	"strings"

	"spaceship/internal/render"
)

// Type selects the shader applied to a whole draw call.
type Type int

const (
	Sun Type = iota
	RockyPlanet
	GasGiant
	EarthLike
	IcePlanet
	Moon
	Rings
	Spaceship

	TypeCount // Sentinel
)

var typeNames = [TypeCount]string{
	Sun:         "sun",
	RockyPlanet: "rocky",
	GasGiant:    "gas_giant",
	EarthLike:   "earth",
	IcePlanet:   "ice",
	Moon:        "moon",
	Rings:       "rings",
	Spaceship:   "spaceship",
}

func (t Type) String() string {
	if t < 0 || t >= TypeCount {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType maps a configuration name (case-insensitive) to a Type.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range typeNames {
		if n == name {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("unknown shader %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if t < 0 || t >= TypeCount {
		return nil, fmt.Errorf("invalid shader type %d", int(t))
	}
	return []byte(typeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Shade computes the color of one fragment. The method value t.Shade is a
// render.FragmentShader.
func (t Type) Shade(in render.ShadeInput, u *render.Uniforms) render.Color {
	switch t {
	case Sun:
		return sun(in, u.Time)
	case RockyPlanet:
		return rocky(in, u.Time, &rockyParams)
	case GasGiant:
		return gasGiant(in, u.Time)
	case EarthLike:
		return earth(in, u.Time)
	case IcePlanet:
		return ice(in, u.Time)
	case Moon:
		return rocky(in, u.Time, &moonParams)
	case Rings:
		return rings(in, u.Time)
	case Spaceship:
		return spaceship(in)
	default:
		panic(fmt.Sprintf("shaders: unknown type %d", int(t)))
	}
}
