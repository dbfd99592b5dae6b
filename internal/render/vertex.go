package render

import "github.com/go-gl/mathgl/mgl32"

// DefaultVertexColor is the authored color given to generated geometry.
var DefaultVertexColor = Color{R: 255, G: 255, B: 255}

// Vertex carries object-space attributes and the outputs of the vertex stage.
type Vertex struct {
	Position  mgl32.Vec3 // Object space
	Normal    mgl32.Vec3 // Object space, not necessarily unit length
	TexCoords mgl32.Vec2
	Color     Color // Authored color, only read by the unshaded path

	TransformedPosition mgl32.Vec3 // Screen space (pixels, depth in Z)
	TransformedNormal   mgl32.Vec3 // Rotated by the model matrix, unit length
}

// NewVertex creates a vertex with the default authored color
func NewVertex(position, normal mgl32.Vec3, texCoords mgl32.Vec2) Vertex {
	return Vertex{
		Position:            position,
		Normal:              normal,
		TexCoords:           texCoords,
		Color:               DefaultVertexColor,
		TransformedPosition: position,
		TransformedNormal:   normal,
	}
}
