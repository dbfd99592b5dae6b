package render

import "github.com/go-gl/mathgl/mgl32"

// Fragment is a single candidate pixel write, prior to the depth test.
type Fragment struct {
	// Position holds the pixel coordinates in X/Y and the interpolated depth in Z.
	// Smaller depth is nearer to the viewer.
	Position mgl32.Vec3
	Color    Color
}

// X returns the pixel column
func (f Fragment) X() int { return int(f.Position.X()) }

// Y returns the pixel row
func (f Fragment) Y() int { return int(f.Position.Y()) }

// Depth returns the interpolated depth
func (f Fragment) Depth() float32 { return f.Position.Z() }

// ShadeInput holds the per-pixel attributes handed to a fragment shader.
type ShadeInput struct {
	Screen   mgl32.Vec3 // Pixel center and interpolated depth
	Position mgl32.Vec3 // Interpolated object-space position
	Normal   mgl32.Vec3 // Interpolated transformed normal, renormalized
	Color    Color      // Interpolated authored vertex color
}

// FragmentShader computes the color of one covered pixel.
// It must be a pure function of its arguments.
type FragmentShader func(in ShadeInput, u *Uniforms) Color
