package rasterlab

import "image"

// Surface is a window with a current rendering context.
type Surface interface {
	ShouldClose() bool
	SetShouldClose(value bool)
	// SetKeyHandler replaces the activity key handler. Escape keeps closing
	// the surface regardless of the handler installed.
	SetKeyHandler(h KeyHandler)
	SwapBuffers()
	PollEvents()
	Destroy()
}

// BufferUsage hints how often a mesh is re-uploaded.
type BufferUsage int

const (
	StaticDraw BufferUsage = iota
	DynamicDraw
)

// Device issues draw work against the current context.
type Device interface {
	// NewPipeline builds a program from src. It never fails; compile and link
	// errors are logged and the returned pipeline may draw nothing.
	NewPipeline(src ShaderSource) Pipeline
	// NewMesh uploads b and binds its attributes from b.Layout.
	NewMesh(b *Batch, usage BufferUsage) Mesh
	SetClearColor(c Color)
	// Clear clears the color buffer, and the depth buffer when depth is set.
	Clear(depth bool)
	SetDepthTest(enabled bool)
	SetWireframe(enabled bool)
	// SetLineWidth sets the rasterized width of line primitives.
	SetLineWidth(width float32)
	// ReadPixels returns the current framebuffer, top row first.
	ReadPixels() (*image.RGBA, error)
}

// Pipeline is a linked shader program and its uniform locations.
type Pipeline interface {
	Use()
	SetProjection(m Mat4)
	SetColor(c Color)
	Delete()
}

// Mesh is a vertex buffer with its attribute bindings.
type Mesh interface {
	// Update re-uploads the mesh from b, which must share the mesh's layout.
	Update(b *Batch)
	Draw(cmd DrawCmd)
	Delete()
}

// DefaultLineWidth is the width restored at the start of every frame.
const DefaultLineWidth = 1

// DrawAll issues every command of b against m in order. Commands with a line
// width set it on dev before drawing.
func DrawAll(dev Device, m Mesh, b *Batch) {
	for _, cmd := range b.CmdBuffer {
		if cmd.Count == 0 {
			continue
		}
		if cmd.LineWidth > 0 {
			dev.SetLineWidth(cmd.LineWidth)
		}
		m.Draw(cmd)
	}
}
