package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func flatUniforms(w, h int) *Uniforms {
	return &Uniforms{
		Model:      mgl32.Ident4(),
		View:       mgl32.Ident4(),
		Projection: mgl32.Ident4(),
		Viewport:   ViewportMatrix(float32(w), float32(h)),
	}
}

// vecNear compares component-wise with an absolute tolerance.
func vecNear(a, b mgl32.Vec3, eps float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}

func TestViewportMatrix(t *testing.T) {
	vp := ViewportMatrix(800, 600)
	cases := []struct{ in, want mgl32.Vec3 }{
		{mgl32.Vec3{-1, 1, 0.25}, mgl32.Vec3{0, 0, 0.25}},
		{mgl32.Vec3{1, -1, -0.5}, mgl32.Vec3{800, 600, -0.5}},
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{400, 300, 0}},
	}
	for _, c := range cases {
		got := vp.Mul4x1(c.in.Vec4(1)).Vec3()
		if !vecNear(got, c.want, 1e-4) {
			t.Errorf("viewport(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestModelMatrixOrder(t *testing.T) {
	m := ModelMatrix(mgl32.Vec3{1, 2, 3}, 2, mgl32.Vec3{0, math.Pi / 2, 0})
	// +X rotated a quarter turn about Y lands on -Z, then scale, then translate.
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	want := mgl32.Vec3{1, 2, 1}
	if !vecNear(got, want, 1e-5) {
		t.Errorf("model * +X = %v, want %v", got, want)
	}
}

func TestTransformVertexNormalRotationOnly(t *testing.T) {
	u := flatUniforms(100, 100)
	u.Model = ModelMatrix(mgl32.Vec3{5, 5, 5}, 3, mgl32.Vec3{0, 0, math.Pi / 2})

	v := NewVertex(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec2{})
	out, ok := TransformVertex(v, u)
	if !ok {
		t.Fatal("vertex unexpectedly discarded")
	}
	if !vecNear(out.TransformedNormal, mgl32.Vec3{0, 1, 0}, 1e-5) {
		t.Errorf("normal = %v, want unit +Y", out.TransformedNormal)
	}
}

func TestTransformVertexRejectsBehindEye(t *testing.T) {
	u := flatUniforms(100, 100)
	u.Projection = PerspectiveMatrix(100, 100)

	if _, ok := TransformVertex(NewVertex(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{}), u); ok {
		t.Error("vertex behind the eye was accepted")
	}
	if _, ok := TransformVertex(NewVertex(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{}), u); ok {
		t.Error("vertex at the eye (w = 0) was accepted")
	}
	out, ok := TransformVertex(NewVertex(mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{}), u)
	if !ok {
		t.Fatal("vertex in front of the eye was rejected")
	}
	if !out.TransformedPosition.Vec2().ApproxEqualThreshold(mgl32.Vec2{50, 50}, 1e-3) {
		t.Errorf("screen position = %v, want center", out.TransformedPosition)
	}
}

func TestDrawHalfScreen(t *testing.T) {
	fb := NewFramebuffer(100, 100)
	u := flatUniforms(100, 100)

	white := NewColor(255, 255, 255)
	verts := []Vertex{
		NewVertex(mgl32.Vec3{-1, -1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{}),
		NewVertex(mgl32.Vec3{1, -1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{}),
		NewVertex(mgl32.Vec3{-1, 1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{}),
		// trailing partial triangle
		NewVertex(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{}),
	}

	stats := Draw(fb, u, verts, Unshaded)
	if stats.Triangles != 1 || stats.Skipped != 0 {
		t.Fatalf("stats = %+v, want one drawn triangle", stats)
	}
	// Screen Y is flipped, so the triangle is x < y; the diagonal is a right edge.
	if stats.Fragments != 4950 {
		t.Errorf("fragments = %d, want 4950", stats.Fragments)
	}
	if fb.Pixel(0, 99) != white || fb.Pixel(99, 0) == white || fb.Pixel(50, 50) == white {
		t.Errorf("unexpected coverage: (0,99)=%v (99,0)=%v (50,50)=%v", fb.Pixel(0, 99), fb.Pixel(99, 0), fb.Pixel(50, 50))
	}
}

func TestDrawSkipsUnprojectable(t *testing.T) {
	fb := NewFramebuffer(32, 32)
	u := flatUniforms(32, 32)
	u.Projection = PerspectiveMatrix(32, 32)

	verts := []Vertex{
		NewVertex(mgl32.Vec3{-1, -1, -3}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{}),
		NewVertex(mgl32.Vec3{1, -1, -3}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{}),
		NewVertex(mgl32.Vec3{0, 1, 2}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{}),
	}
	stats := Draw(fb, u, verts, Unshaded)
	if stats.Skipped != 1 || stats.Fragments != 0 {
		t.Errorf("stats = %+v, want the triangle skipped", stats)
	}
}

func TestDrawOrbitOnTop(t *testing.T) {
	const size = 128
	fb := NewFramebuffer(size, size)
	view := ViewMatrix(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1})
	proj := PerspectiveMatrix(size, size)
	vp := ViewportMatrix(size, size)

	green := NewColor(0, 255, 100)
	n := DrawOrbit(fb, mgl32.Vec3{}, 2, 64, green, view, proj, vp)
	if n == 0 {
		t.Fatal("orbit wrote no pixels")
	}

	found := false
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if fb.Pixel(x, y) == green {
				found = true
				if fb.Depth(x, y) != NearestDepth {
					t.Fatalf("guide pixel (%d,%d) depth = %v", x, y, fb.Depth(x, y))
				}
			}
		}
	}
	if !found {
		t.Error("no guide pixels in the framebuffer")
	}
	if fb.Pixel(size/2, size/2) == green {
		t.Error("guide drawn at the circle center")
	}
}

func TestDrawOrbitBehindCamera(t *testing.T) {
	fb := NewFramebuffer(64, 64)
	view := ViewMatrix(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 20}, mgl32.Vec3{0, 1, 0})

	if n := DrawOrbit(fb, mgl32.Vec3{}, 2, 32, NewColor(255, 0, 0), view, PerspectiveMatrix(64, 64), ViewportMatrix(64, 64)); n != 0 {
		t.Errorf("orbit behind the camera wrote %d pixels", n)
	}
}
