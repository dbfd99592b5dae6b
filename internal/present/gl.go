// Package present puts a software framebuffer on screen: as an OpenGL
// texture on a glfw window, or through ebiten.
package present

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"spaceship/internal/render"
)

// Full-screen triangle generated from gl_VertexID; no vertex buffer needed.
const blitVertexSrc = `#version 410 core
out vec2 uv;
void main() {
	vec2 p = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2);
	// framebuffer rows run top to bottom
	uv = vec2(p.x, 1.0 - p.y);
	gl_Position = vec4(p * 2.0 - 1.0, 0.0, 1.0);
}`

const blitFragmentSrc = `#version 410 core
in vec2 uv;
uniform sampler2D frame;
out vec4 fragColor;
void main() {
	fragColor = vec4(texture(frame, uv).rgb, 1.0);
}`

// GLPresenter streams a framebuffer into a texture and draws it over the
// whole viewport. It needs a current OpenGL 4.1 context.
type GLPresenter struct {
	program uint32
	vao     uint32
	texture uint32

	width, height int
}

// NewGLPresenter compiles the blit program. A GL context must be current.
func NewGLPresenter() (*GLPresenter, error) {
	program, err := compileProgram(blitVertexSrc, blitFragmentSrc)
	if err != nil {
		return nil, err
	}

	p := &GLPresenter{program: program}

	// Core profile refuses draws without a bound VAO, even an empty one
	gl.GenVertexArrays(1, &p.vao)

	gl.GenTextures(1, &p.texture)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.UseProgram(program)
	gl.Uniform1i(gl.GetUniformLocation(program, gl.Str("frame\x00")), 0)
	gl.UseProgram(0)

	return p, nil
}

// Present uploads fb and draws it. The packed 0x00RRGGBB words are read as
// BGRA with reversed byte order, so no conversion happens on the CPU.
func (p *GLPresenter) Present(fb *render.Framebuffer) {
	buf := fb.Buffer()
	if len(buf) == 0 {
		return
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	w, h := fb.Width(), fb.Height()
	if w != p.width || h != p.height {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(w), int32(h), 0,
			gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV, gl.Ptr(buf))
		p.width, p.height = w, h
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h),
			gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV, gl.Ptr(buf))
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.UseProgram(p.program)
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Delete frees the GL objects
func (p *GLPresenter) Delete() {
	gl.DeleteTextures(1, &p.texture)
	gl.DeleteVertexArrays(1, &p.vao)
	gl.DeleteProgram(p.program)
}
