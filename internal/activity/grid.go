package activity

import "github.com/go-theft-auto/rasterlab"

func init() {
	register(Activity{
		Number:  8,
		Name:    "Undistorted Cray 2",
		Summary: "Reference grid for distortion experiments",
		Window:  rasterlab.WindowSpec{Title: "Activity 8: Undistorted Cray 2", Width: 800, Height: 800},
		Clear:   rasterlab.Color{R: 0.1, G: 0.1, B: 0.1},
		Intro: []string{
			"Activity 8: Undistorted Cray 2",
			"An undistorted grid with a reference square.",
		},
		New: func() Scene {
			return &staticScene{shader: rasterlab.DefaultShader, build: gridBatch}
		},
	})
}

const gridSize = 20

// gridBatch covers the whole device range with gridSize+1 horizontal and
// gridSize+1 vertical lines, then outlines a centered square.
func gridBatch() *rasterlab.Batch {
	lineColor := rasterlab.Color{R: 0, G: 0.8, B: 1}
	lines := make([]rasterlab.Vertex, 0, 4*(gridSize+1))
	for i := 0; i <= gridSize; i++ {
		y := -1 + 2*float32(i)/gridSize
		lines = append(lines,
			rasterlab.Vertex{Pos: rasterlab.Vec3{X: -1, Y: y}, Color: lineColor},
			rasterlab.Vertex{Pos: rasterlab.Vec3{X: 1, Y: y}, Color: lineColor},
		)
	}
	for i := 0; i <= gridSize; i++ {
		x := -1 + 2*float32(i)/gridSize
		lines = append(lines,
			rasterlab.Vertex{Pos: rasterlab.Vec3{X: x, Y: -1}, Color: lineColor},
			rasterlab.Vertex{Pos: rasterlab.Vec3{X: x, Y: 1}, Color: lineColor},
		)
	}

	b := rasterlab.NewBatch(rasterlab.LayoutPosColor)
	b.AddLines(rasterlab.Lines, 1, lines...)
	b.AddLines(rasterlab.LineLoop, 2, rasterlab.Rect(-0.3, -0.3, 0.3, 0.3, 0, rasterlab.Color{R: 1, G: 0.5, B: 0})...)
	return b
}
