package rasterlab

import "log/slog"

// Batch accumulates the vertices of one or more shapes together with the draw
// commands that render them. Shapes are concatenated into one buffer and each
// command records where its shape starts.
type Batch struct {
	Layout    Layout
	VtxBuffer []Vertex  // Vertex data
	CmdBuffer []DrawCmd // Draw commands, in submission order
}

// NewBatch creates an empty batch using the given vertex layout.
func NewBatch(layout Layout) *Batch {
	return &Batch{
		Layout:    layout,
		VtxBuffer: make([]Vertex, 0, 64),
		CmdBuffer: make([]DrawCmd, 0, 4),
	}
}

// Clear resets the batch and keeps its capacity.
func (b *Batch) Clear() {
	b.VtxBuffer = b.VtxBuffer[:0]
	b.CmdBuffer = b.CmdBuffer[:0]
}

// Add appends a shape and records a command that draws exactly its vertices.
// It returns the index of the new command.
func (b *Batch) Add(mode Primitive, verts ...Vertex) int {
	b.CmdBuffer = append(b.CmdBuffer, DrawCmd{
		Mode:  mode,
		First: int32(len(b.VtxBuffer)),
		Count: int32(len(verts)),
	})
	b.VtxBuffer = append(b.VtxBuffer, verts...)
	return len(b.CmdBuffer) - 1
}

// AddLines is Add with a line width applied to the command.
func (b *Batch) AddLines(mode Primitive, width float32, verts ...Vertex) int {
	i := b.Add(mode, verts...)
	b.CmdBuffer[i].LineWidth = width
	return i
}

// Len returns the number of vertices in the batch.
func (b *Batch) Len() int {
	return len(b.VtxBuffer)
}

// Floats flattens the vertices in the batch's layout, ready for upload.
// Position-only layouts drop the color components.
func (b *Batch) Floats() []float32 {
	n := b.Layout.Floats()
	out := make([]float32, 0, len(b.VtxBuffer)*n)
	for _, v := range b.VtxBuffer {
		out = append(out, v.Pos.X, v.Pos.Y, v.Pos.Z)
		if n >= 6 {
			out = append(out, v.Color.R, v.Color.G, v.Color.B)
		}
	}
	return out
}

// MatchLayout reports whether a batch in layout got can be uploaded into a
// mesh created with layout want. A mismatch is logged on logger.
func MatchLayout(logger *slog.Logger, want, got Layout) bool {
	if want.Stride == got.Stride {
		return true
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("mesh update ignored: layout mismatch", "mesh", want.Name, "batch", got.Name)
	return false
}
