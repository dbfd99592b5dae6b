package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(16, 9)
	fb.SetBackgroundColor(NewColor(10, 20, 30))
	fb.Point(3, 3, 0, NewColor(255, 255, 255))
	fb.Clear()

	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if got := fb.Pixel(x, y); got != NewColor(10, 20, 30) {
				t.Fatalf("pixel (%d,%d) = %v after clear", x, y, got)
			}
			if fb.Depth(x, y) != FarDepth {
				t.Fatalf("depth (%d,%d) = %v after clear", x, y, fb.Depth(x, y))
			}
		}
	}
}

func TestFramebufferDepthTest(t *testing.T) {
	near := NewColor(0, 255, 0)
	far := NewColor(255, 0, 0)

	fb := NewFramebuffer(4, 4)
	fb.Point(1, 1, 5, far)
	fb.Point(1, 1, 3, near)
	if got := fb.Pixel(1, 1); got != near {
		t.Errorf("far then near: pixel = %v, want %v", got, near)
	}

	fb.Clear()
	fb.Point(1, 1, 3, near)
	fb.Point(1, 1, 5, far)
	if got := fb.Pixel(1, 1); got != near {
		t.Errorf("near then far: pixel = %v, want %v", got, near)
	}
	if fb.Depth(1, 1) != 3 {
		t.Errorf("depth = %v, want 3", fb.Depth(1, 1))
	}

	// Equal depth goes to the latest write
	fb.Point(1, 1, 3, far)
	if got := fb.Pixel(1, 1); got != far {
		t.Errorf("tie: pixel = %v, want %v", got, far)
	}
}

func TestFramebufferBufferLayout(t *testing.T) {
	fb := NewFramebuffer(5, 3)
	fb.Point(4, 2, 0, NewColor(0xAB, 0xCD, 0xEF))

	buf := fb.Buffer()
	if len(buf) != 15 {
		t.Fatalf("len(Buffer()) = %d, want 15", len(buf))
	}
	if buf[2*5+4] != 0xABCDEF {
		t.Errorf("buf[14] = %#x, want 0xabcdef", buf[14])
	}
}

func TestFramebufferDrawImage(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.Point(2, 2, -1, NewColor(1, 2, 3))

	var img draw.Image = fb
	draw.Draw(img, image.Rect(0, 0, 4, 4), image.NewUniform(color.RGBA{R: 255, A: 255}), image.Point{}, draw.Src)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := fb.Pixel(x, y); got != NewColor(255, 0, 0) {
				t.Fatalf("pixel (%d,%d) = %v, want red overlay", x, y, got)
			}
		}
	}
	if got := fb.Pixel(5, 5); got != NewColor(0, 0, 0) {
		t.Errorf("pixel outside the drawn rect = %v", got)
	}

	// Out of range writes are dropped rather than panicking
	img.Set(-1, 0, color.White)
	img.Set(8, 8, color.White)
}

func TestFramebufferRGBA(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Point(2, 1, 0, NewColor(10, 20, 30))

	img := fb.RGBA(nil)
	if img.Bounds() != fb.Bounds() {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	i := img.PixOffset(2, 1)
	if got := img.Pix[i : i+4]; got[0] != 10 || got[1] != 20 || got[2] != 30 || got[3] != 255 {
		t.Errorf("pixel = %v, want [10 20 30 255]", got)
	}
	if img.Pix[3] != 255 {
		t.Error("background not opaque")
	}

	if again := fb.RGBA(img); again != img {
		t.Error("matching image was not reused")
	}
}
