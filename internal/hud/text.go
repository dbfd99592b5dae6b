// Package hud draws the 2D overlay on top of the rendered scene: the
// collision flash, status text and the profiling lines. Everything is
// written straight into the framebuffer, past the depth test.
package hud

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"spaceship/internal/render"
)

// Face is the overlay font: a fixed 7x13 bitmap face
var Face font.Face = basicfont.Face7x13

// LineHeight is the vertical step between overlay lines in pixels
const LineHeight = 15

// DrawText writes text with its top-left corner at (x, y).
func DrawText(dst draw.Image, x, y int, text string, c render.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: Face,
		Dot:  fixed.P(x, y+Face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// DrawLines writes one line per entry starting at (x, y)
func DrawLines(dst draw.Image, x, y int, lines []string, c render.Color) {
	for i, line := range lines {
		DrawText(dst, x, y+i*LineHeight, line, c)
	}
}

// TextWidth returns the advance of text in pixels
func TextWidth(text string) int {
	return font.MeasureString(Face, text).Ceil()
}
