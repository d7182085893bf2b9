// Package opengl provides an OpenGL 4.1 backend for bough.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/phanxgames/bough"
)

// floatsPerVertex is position (2) plus color (4).
const floatsPerVertex = 6

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    Color = aColor;
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core
in vec4 Color;

out vec4 FragColor;

void main() {
    FragColor = Color;
}
` + "\x00"

// Renderer implements bough.Renderer with OpenGL. GUI space and GL window
// space share a bottom-left origin, so scissor rectangles pass through
// unchanged.
type Renderer struct {
	shader   uint32
	vao, vbo uint32
	projLoc  int32
	width    int
	height   int

	verts []float32

	// GL state saved by Begin and restored by End.
	lastProgram    int32
	lastBlendSrc   int32
	lastBlendDst   int32
	lastScissorBox [4]int32
	blendEnabled   bool
	depthEnabled   bool
	cullEnabled    bool
	scissorEnabled bool
}

var _ bough.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer for a viewport of the given size. A GL
// context must be current and gl.Init must have succeeded.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
		verts:  make([]float32, 0, 4*6*floatsPerVertex),
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}
	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return r, nil
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Begin saves the GL state the GUI touches and sets up the GUI pipeline.
// Call before System.Render and pair with End.
func (r *Renderer) Begin() {
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &r.lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &r.lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &r.lastBlendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &r.lastScissorBox[0])
	r.blendEnabled = gl.IsEnabled(gl.BLEND)
	r.depthEnabled = gl.IsEnabled(gl.DEPTH_TEST)
	r.cullEnabled = gl.IsEnabled(gl.CULL_FACE)
	r.scissorEnabled = gl.IsEnabled(gl.SCISSOR_TEST)

	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)
	proj := orthoMatrix(0, float32(r.width), 0, float32(r.height), -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
}

// End restores the GL state saved by Begin.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(uint32(r.lastProgram))
	gl.BlendFunc(uint32(r.lastBlendSrc), uint32(r.lastBlendDst))
	setEnabled(gl.BLEND, r.blendEnabled)
	setEnabled(gl.DEPTH_TEST, r.depthEnabled)
	setEnabled(gl.CULL_FACE, r.cullEnabled)
	setEnabled(gl.SCISSOR_TEST, r.scissorEnabled)
	gl.Scissor(r.lastScissorBox[0], r.lastScissorBox[1], r.lastScissorBox[2], r.lastScissorBox[3])
}

// SetScissor implements bough.Renderer.
func (r *Renderer) SetScissor(rect bough.Rect) {
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(int32(rect.X), int32(rect.Y), int32(rect.Width+0.5), int32(rect.Height+0.5))
}

// DisableScissor implements bough.Renderer.
func (r *Renderer) DisableScissor() {
	gl.Disable(gl.SCISSOR_TEST)
}

// SetBlending implements bough.Renderer.
func (r *Renderer) SetBlending(enabled bool) {
	if enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}
}

// DrawQuad implements bough.Renderer.
func (r *Renderer) DrawQuad(corners [4]bough.Vec2, colors [4]bough.Color) {
	r.verts = r.verts[:0]
	r.appendQuad(corners, colors)
	r.flush()
}

// DrawQuadOutline implements bough.Renderer. Core profiles cap line width at
// 1, so edges are drawn as quads.
func (r *Renderer) DrawQuadOutline(corners [4]bough.Vec2, c bough.Color, width float64) {
	r.verts = r.verts[:0]
	colors := [4]bough.Color{c, c, c, c}
	for _, q := range bough.OutlineQuads(corners, width) {
		r.appendQuad(q, colors)
	}
	r.flush()
}

// appendQuad appends the quad as two triangles.
func (r *Renderer) appendQuad(corners [4]bough.Vec2, colors [4]bough.Color) {
	for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
		p, c := corners[i], colors[i]
		r.verts = append(r.verts,
			float32(p.X), float32(p.Y),
			float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	}
}

func (r *Renderer) flush() {
	if len(r.verts) == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(r.verts)*4, gl.Ptr(r.verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.verts)/floatsPerVertex))
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

func setEnabled(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}
	return program, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", string(log))
	}
	return shader, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
