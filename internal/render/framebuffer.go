package render

import (
	"image"
	"image/color"
	"math"
)

var (
	// FarDepth is stored by Clear; every finite depth passes the test against it.
	FarDepth = float32(math.Inf(1))
	// NearestDepth passes the depth test against anything, overlays use it.
	NearestDepth = float32(math.Inf(-1))
)

// ColorModel converts any color.Color to an opaque Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
})

// Framebuffer holds packed 0xRRGGBB pixels and a parallel depth buffer.
// It is owned by a single render loop and is not safe for concurrent use.
type Framebuffer struct {
	width, height int
	pixels        []uint32
	depth         []float32
	background    Color
}

// NewFramebuffer allocates a cleared width x height framebuffer with a black background.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]uint32, width*height),
		depth:  make([]float32, width*height),
	}
	fb.Clear()
	return fb
}

// Width returns the framebuffer width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// SetBackgroundColor changes the color written by the next Clear.
func (fb *Framebuffer) SetBackgroundColor(c Color) {
	fb.background = c
}

// Clear resets every pixel to the background color and every depth to FarDepth.
func (fb *Framebuffer) Clear() {
	bg := fb.background.Hex()
	for i := range fb.pixels {
		fb.pixels[i] = bg
		fb.depth[i] = FarDepth
	}
}

// InBounds reports whether (x, y) addresses a pixel.
func (fb *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < fb.width && y < fb.height
}

// Point writes c at (x, y) when depth is nearer than or equal to the stored
// depth. Ties go to the latest write. (x, y) must be in bounds.
func (fb *Framebuffer) Point(x, y int, depth float32, c Color) {
	i := y*fb.width + x
	if depth <= fb.depth[i] {
		fb.pixels[i] = c.Hex()
		fb.depth[i] = depth
	}
}

// Pixel returns the color stored at (x, y).
func (fb *Framebuffer) Pixel(x, y int) Color {
	return FromHex(fb.pixels[y*fb.width+x])
}

// Depth returns the depth stored at (x, y).
func (fb *Framebuffer) Depth(x, y int) float32 {
	return fb.depth[y*fb.width+x]
}

// Buffer exposes the row-major packed pixels for presentation.
// The slice aliases the framebuffer and is overwritten by the next frame.
func (fb *Framebuffer) Buffer() []uint32 {
	return fb.pixels
}

// ColorModel implements image.Image.
func (fb *Framebuffer) ColorModel() color.Model { return ColorModel }

// Bounds implements image.Image.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

// At implements image.Image. Out-of-range coordinates read as the background.
func (fb *Framebuffer) At(x, y int) color.Color {
	if !fb.InBounds(x, y) {
		return fb.background
	}
	return fb.Pixel(x, y)
}

// Set implements draw.Image as an overlay write at NearestDepth.
// Out-of-range coordinates are ignored.
func (fb *Framebuffer) Set(x, y int, c color.Color) {
	if !fb.InBounds(x, y) {
		return
	}
	fb.Point(x, y, NearestDepth, ColorModel.Convert(c).(Color))
}

// RGBA copies the pixels into dst as opaque 8-bit RGBA. dst is reused
// when its bounds match, otherwise a new image is allocated.
func (fb *Framebuffer) RGBA(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Rect != fb.Bounds() {
		dst = image.NewRGBA(fb.Bounds())
	}
	for y := 0; y < fb.height; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x, p := range fb.pixels[y*fb.width : (y+1)*fb.width] {
			j := x * 4
			row[j+0] = uint8(p >> 16)
			row[j+1] = uint8(p >> 8)
			row[j+2] = uint8(p)
			row[j+3] = 0xFF
		}
	}
	return dst
}
