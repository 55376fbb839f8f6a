// Package opengl implements the rasterlab surface and device on top of GLFW
// and OpenGL 4.1 core.
package opengl

import (
	"errors"
	"image"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/rasterlab"
)

// Device implements rasterlab.Device with the current OpenGL context.
type Device struct {
	logger *slog.Logger
}

// NewDevice creates a device for the context current on this thread.
func NewDevice(logger *slog.Logger) *Device {
	if logger == nil {
		logger = slog.Default()
	}
	return &Device{logger: logger}
}

// NewPipeline compiles and links src. Failures are logged only.
func (d *Device) NewPipeline(src rasterlab.ShaderSource) rasterlab.Pipeline {
	p := &pipeline{
		program: rasterlab.BuildProgram(compiler{}, src, d.logger),
		projLoc: -1,
		colLoc:  -1,
	}
	if src.Uses(rasterlab.UniformProjection) {
		p.projLoc = gl.GetUniformLocation(p.program, gl.Str(rasterlab.UniformProjection+"\x00"))
	}
	if src.Uses(rasterlab.UniformColor) {
		p.colLoc = gl.GetUniformLocation(p.program, gl.Str(rasterlab.UniformColor+"\x00"))
	}
	return p
}

// NewMesh creates a VAO and VBO, uploads b and binds its attributes.
func (d *Device) NewMesh(b *rasterlab.Batch, usage rasterlab.BufferUsage) rasterlab.Mesh {
	m := &mesh{layout: b.Layout, usage: glUsage(usage), logger: d.logger}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	m.upload(b)

	for _, a := range b.Layout.Attribs {
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, b.Layout.Stride, a.Offset)
		gl.EnableVertexAttribArray(a.Location)
	}

	gl.BindVertexArray(0)
	return m
}

// SetClearColor sets the color used by Clear.
func (d *Device) SetClearColor(c rasterlab.Color) {
	gl.ClearColor(c.R, c.G, c.B, 1.0)
}

// Clear clears the color buffer and optionally the depth buffer.
func (d *Device) Clear(depth bool) {
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

// SetDepthTest toggles depth testing with the default LESS comparison.
func (d *Device) SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

// SetWireframe switches polygon rasterization between fill and line.
func (d *Device) SetWireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// SetLineWidth sets the rasterized line width.
func (d *Device) SetLineWidth(width float32) {
	gl.LineWidth(width)
}

// ReadPixels reads the back buffer into an upright RGBA image.
func (d *Device) ReadPixels() (*image.RGBA, error) {
	var viewport [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &viewport[0])
	w, h := int(viewport[2]), int(viewport[3])
	if w <= 0 || h <= 0 {
		return nil, errors.New("empty viewport")
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(viewport[0], viewport[1], int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	if code := gl.GetError(); code != gl.NO_ERROR {
		return nil, glError("read pixels", code)
	}

	// OpenGL returns rows bottom-up.
	flipRows(img)
	return img, nil
}

type pipeline struct {
	program uint32
	projLoc int32
	colLoc  int32
}

func (p *pipeline) Use() {
	gl.UseProgram(p.program)
}

func (p *pipeline) SetProjection(m rasterlab.Mat4) {
	if p.projLoc < 0 {
		return
	}
	gl.UseProgram(p.program)
	gl.UniformMatrix4fv(p.projLoc, 1, false, &m[0])
}

func (p *pipeline) SetColor(c rasterlab.Color) {
	if p.colLoc < 0 {
		return
	}
	gl.UseProgram(p.program)
	gl.Uniform3f(p.colLoc, c.R, c.G, c.B)
}

func (p *pipeline) Delete() {
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}

type mesh struct {
	vao, vbo uint32
	layout   rasterlab.Layout
	usage    uint32
	logger   *slog.Logger
}

func (m *mesh) upload(b *rasterlab.Batch) {
	data := b.Floats()
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, m.usage)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), m.usage)
}

func (m *mesh) Update(b *rasterlab.Batch) {
	if !rasterlab.MatchLayout(m.logger, m.layout, b.Layout) {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	m.upload(b)
	gl.BindVertexArray(0)
}

func (m *mesh) Draw(cmd rasterlab.DrawCmd) {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(glPrimitive(cmd.Mode), cmd.First, cmd.Count)
}

func (m *mesh) Delete() {
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}

// compiler implements rasterlab.ShaderCompiler with GL calls.
type compiler struct{}

func (compiler) CompileShader(stage rasterlab.ShaderStage, source string) (uint32, bool, string) {
	kind := uint32(gl.VERTEX_SHADER)
	if stage == rasterlab.FragmentStage {
		kind = gl.FRAGMENT_SHADER
	}
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source + "\x00")
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
		return shader, false, string(log)
	}
	return shader, true, ""
}

func (compiler) LinkProgram(shaders ...uint32) (uint32, bool, string) {
	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return program, false, string(log)
	}
	return program, true, ""
}

func (compiler) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func glPrimitive(p rasterlab.Primitive) uint32 {
	switch p {
	case rasterlab.TriangleFan:
		return gl.TRIANGLE_FAN
	case rasterlab.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case rasterlab.Lines:
		return gl.LINES
	case rasterlab.LineLoop:
		return gl.LINE_LOOP
	default:
		return gl.TRIANGLES
	}
}

func glUsage(u rasterlab.BufferUsage) uint32 {
	if u == rasterlab.DynamicDraw {
		return gl.DYNAMIC_DRAW
	}
	return gl.STATIC_DRAW
}
