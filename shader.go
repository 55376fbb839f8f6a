package rasterlab

import (
	_ "embed"
	"log/slog"
	"strings"
)

// Uniform names understood by the built-in shaders.
const (
	UniformProjection = "projection"
	UniformColor      = "color"
)

var (
	//go:embed shaders/passthrough.vert
	passthroughVert string
	//go:embed shaders/projected.vert
	projectedVert string
	//go:embed shaders/vertex_color.frag
	vertexColorFrag string
	//go:embed shaders/flat.vert
	flatVert string
	//go:embed shaders/flat.frag
	flatFrag string
)

// ShaderSource is a vertex/fragment pair together with the vertex layout and
// uniforms the pair expects.
type ShaderSource struct {
	Name     string
	Vertex   string
	Fragment string
	Layout   Layout
	Uniforms []string
}

// Uses reports whether the source declares the named uniform.
func (s ShaderSource) Uses(uniform string) bool {
	for _, u := range s.Uniforms {
		if u == uniform {
			return true
		}
	}
	return false
}

// Built-in shader sources.
var (
	// DefaultShader forwards the per-vertex color unchanged.
	DefaultShader = ShaderSource{
		Name:     "default",
		Vertex:   passthroughVert,
		Fragment: vertexColorFrag,
		Layout:   LayoutPosColor,
	}

	// ProjectedShader applies a projection uniform and keeps per-vertex color.
	ProjectedShader = ShaderSource{
		Name:     "projected",
		Vertex:   projectedVert,
		Fragment: vertexColorFrag,
		Layout:   LayoutPosColor,
		Uniforms: []string{UniformProjection},
	}

	// FlatShader applies a projection and fills every fragment of a draw
	// call with one uniform color.
	FlatShader = ShaderSource{
		Name:     "flat",
		Vertex:   flatVert,
		Fragment: flatFrag,
		Layout:   LayoutPos,
		Uniforms: []string{UniformProjection, UniformColor},
	}
)

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

// String returns the stage name used in diagnostics.
func (s ShaderStage) String() string {
	if s == VertexStage {
		return "vertex"
	}
	return "fragment"
}

// ShaderCompiler is the part of a graphics API needed to build a program.
// ok reports success; infoLog carries the driver diagnostic when !ok.
type ShaderCompiler interface {
	CompileShader(stage ShaderStage, source string) (id uint32, ok bool, infoLog string)
	LinkProgram(shaders ...uint32) (id uint32, ok bool, infoLog string)
	DeleteShader(id uint32)
}

// BuildProgram compiles both stages of src and links them.
//
// Compile and link failures are logged and otherwise ignored: the program
// handle is returned regardless and may render nothing. The stage objects are
// deleted once linking has been attempted.
func BuildProgram(c ShaderCompiler, src ShaderSource, logger *slog.Logger) uint32 {
	if logger == nil {
		logger = slog.Default()
	}

	vs := compileStage(c, VertexStage, src, logger)
	fs := compileStage(c, FragmentStage, src, logger)

	program, ok, infoLog := c.LinkProgram(vs, fs)
	if !ok {
		logger.Error("shader program linking failed", "shader", src.Name, "log", trimLog(infoLog))
	}

	c.DeleteShader(vs)
	c.DeleteShader(fs)

	logger.Debug("shader program built", "shader", src.Name, "program", program)
	return program
}

func compileStage(c ShaderCompiler, stage ShaderStage, src ShaderSource, logger *slog.Logger) uint32 {
	text := src.Vertex
	if stage == FragmentStage {
		text = src.Fragment
	}
	id, ok, infoLog := c.CompileShader(stage, text)
	if !ok {
		logger.Error("shader compilation failed", "shader", src.Name, "stage", stage, "log", trimLog(infoLog))
	}
	return id
}

func trimLog(s string) string {
	return strings.TrimRight(s, "\x00\r\n ")
}
