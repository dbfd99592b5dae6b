package render

// Stats summarises one draw call.
type Stats struct {
	Triangles int // Triangles submitted
	Skipped   int // Triangles dropped because a vertex had no usable projection
	Fragments int // Fragments handed to the depth test
}

// Add accumulates s2 into s
func (s *Stats) Add(s2 Stats) {
	s.Triangles += s2.Triangles
	s.Skipped += s2.Skipped
	s.Fragments += s2.Fragments
}

// Draw runs one draw call: every vertex goes through the vertex stage, each
// run of three consecutive vertices forms a triangle, and every fragment is
// depth tested into fb. A trailing partial triangle is ignored.
func Draw(fb *Framebuffer, u *Uniforms, vertices []Vertex, shade FragmentShader) Stats {
	var stats Stats

	transformed := make([]Vertex, len(vertices))
	valid := make([]bool, len(vertices))
	for i, v := range vertices {
		transformed[i], valid[i] = TransformVertex(v, u)
	}

	bounds := fb.Bounds()
	for i := 0; i+2 < len(transformed); i += 3 {
		stats.Triangles++
		if !valid[i] || !valid[i+1] || !valid[i+2] {
			stats.Skipped++
			continue
		}

		for frag := range Triangle(transformed[i], transformed[i+1], transformed[i+2], u, bounds, shade) {
			x, y := frag.X(), frag.Y()
			if !fb.InBounds(x, y) {
				continue
			}
			stats.Fragments++
			fb.Point(x, y, frag.Depth(), frag.Color)
		}
	}

	return stats
}

// Unshaded passes the interpolated authored color through.
func Unshaded(in ShadeInput, _ *Uniforms) Color {
	return in.Color
}
