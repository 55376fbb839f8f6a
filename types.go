package rasterlab

import "unsafe"

// Vec3 represents a 3D position.
type Vec3 struct {
	X, Y, Z float32
}

// WindowSpec describes the window an activity asks for.
type WindowSpec struct {
	Title  string
	Width  int
	Height int
}

// Color is a linear RGB color with float components.
// Components are not clamped; the GPU does that on output.
type Color struct {
	R, G, B float32
}

// Vertex is one record of a vertex buffer.
// Memory layout matches LayoutPosColor: 3 position floats then 3 color floats.
type Vertex struct {
	Pos   Vec3
	Color Color
}

// V builds a Vertex from six floats in buffer order.
func V(x, y, z, r, g, b float32) Vertex {
	return Vertex{Pos: Vec3{x, y, z}, Color: Color{r, g, b}}
}

// Primitive is the kind of primitive a draw command assembles.
type Primitive int

const (
	Triangles Primitive = iota
	TriangleFan
	TriangleStrip
	Lines
	LineLoop
)

// String returns the primitive name.
func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case TriangleFan:
		return "triangle-fan"
	case TriangleStrip:
		return "triangle-strip"
	case Lines:
		return "lines"
	case LineLoop:
		return "line-loop"
	default:
		return "unknown"
	}
}

// DrawCmd represents a single glDrawArrays call over a range of a batch.
type DrawCmd struct {
	Mode      Primitive
	First     int32   // Offset into the vertex buffer, in vertices
	Count     int32   // Number of vertices to draw
	LineWidth float32 // 0 = leave the current width untouched
}

// Attrib describes one float vertex attribute inside a Layout.
type Attrib struct {
	Location uint32
	Size     int32   // Number of float components
	Offset   uintptr // Byte offset inside the vertex
}

// Layout is the stride and attribute table shared by whoever fills a vertex
// buffer and whoever binds it.
type Layout struct {
	Name    string
	Stride  int32
	Attribs []Attrib
}

// Floats returns how many float32 values one vertex occupies.
func (l Layout) Floats() int {
	return int(l.Stride) / 4
}

var (
	// LayoutPosColor is position (location 0) followed by color (location 1).
	LayoutPosColor = Layout{
		Name:   "pos3-color3",
		Stride: int32(unsafe.Sizeof(Vertex{})),
		Attribs: []Attrib{
			{Location: 0, Size: 3, Offset: unsafe.Offsetof(Vertex{}.Pos)},
			{Location: 1, Size: 3, Offset: unsafe.Offsetof(Vertex{}.Color)},
		},
	}

	// LayoutPos is position only; color comes from a uniform.
	LayoutPos = Layout{
		Name:   "pos3",
		Stride: int32(unsafe.Sizeof(Vec3{})),
		Attribs: []Attrib{
			{Location: 0, Size: 3, Offset: 0},
		},
	}
)

// Color constants used by the activities.
var (
	ColorWhite   = Color{1, 1, 1}
	ColorRed     = Color{1, 0, 0}
	ColorGreen   = Color{0, 1, 0}
	ColorBlue    = Color{0, 0, 1}
	ColorYellow  = Color{1, 1, 0}
	ColorCyan    = Color{0, 1, 1}
	ColorMagenta = Color{1, 0, 1}
)
