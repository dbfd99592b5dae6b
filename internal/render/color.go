package render

// Color is an opaque 8-bit-per-channel RGB value.
// Operations never mutate the receiver; they return a new Color.
type Color struct {
	R, G, B uint8
}

// NewColor creates a color from its channels
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromHex unpacks a 0xRRGGBB value. Bits above 24 are ignored.
func FromHex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
	}
}

// Hex packs the color as (R<<16)|(G<<8)|B
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Mul scales every channel by k, clamping to [0,255] instead of wrapping.
func (c Color) Mul(k float32) Color {
	return Color{
		R: clampChannel(float32(c.R) * k),
		G: clampChannel(float32(c.G) * k),
		B: clampChannel(float32(c.B) * k),
	}
}

// Lerp blends from c toward to by t (0 keeps c, 1 yields to).
func (c Color) Lerp(to Color, t float32) Color {
	return Color{
		R: clampChannel(float32(c.R)*(1-t) + float32(to.R)*t),
		G: clampChannel(float32(c.G)*(1-t) + float32(to.G)*t),
		B: clampChannel(float32(c.B)*(1-t) + float32(to.B)*t),
	}
}

// RGBA implements color.Color. The color is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// clampChannel truncates toward zero after clamping. NaN maps to 0.
func clampChannel(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
