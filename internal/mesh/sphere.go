// Package mesh produces flattened triangle lists for the renderer: the
// procedural sphere and ring primitives and Wavefront OBJ models.
package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"spaceship/internal/render"
)

// Sphere builds a UV sphere with rings latitude rows and sectors longitude
// columns, index-expanded into a triangle list. The pole rows produce
// zero-area triangles; the rasterizer drops them.
func Sphere(radius float32, rings, sectors int) []render.Vertex {
	if rings < 2 || sectors < 2 {
		return nil
	}

	r := 1 / float32(rings-1)
	s := 1 / float32(sectors-1)

	grid := make([]render.Vertex, 0, rings*sectors)
	for ring := 0; ring < rings; ring++ {
		for sector := 0; sector < sectors; sector++ {
			theta := math.Pi * float32(ring) * r
			phi := 2 * math.Pi * float32(sector) * s

			sinTheta := float32(math.Sin(float64(theta)))
			dir := mgl32.Vec3{
				sinTheta * float32(math.Cos(float64(phi))),
				float32(math.Cos(float64(theta))),
				sinTheta * float32(math.Sin(float64(phi))),
			}

			grid = append(grid, render.NewVertex(
				dir.Mul(radius),
				dir.Normalize(),
				mgl32.Vec2{float32(sector) * s, float32(ring) * r},
			))
		}
	}

	out := make([]render.Vertex, 0, (rings-1)*(sectors-1)*6)
	for ring := 0; ring < rings-1; ring++ {
		current := ring * sectors
		next := (ring + 1) * sectors
		for sector := 0; sector < sectors-1; sector++ {
			out = append(out,
				grid[current+sector], grid[next+sector], grid[next+sector+1],
				grid[current+sector], grid[next+sector+1], grid[current+sector+1],
			)
		}
	}
	return out
}
