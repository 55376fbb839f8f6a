package activity

import "github.com/go-theft-auto/rasterlab"

func init() {
	register(Activity{
		Number:  2,
		Name:    "Clipping",
		Summary: "Show line segments against a clip region",
		Window:  rasterlab.WindowSpec{Title: "Activity 2: Clipping", Width: 800, Height: 600},
		Clear:   rasterlab.Color{R: 0.1, G: 0.1, B: 0.1},
		Intro: []string{
			"Activity 2: Clipping",
			"Red line crosses the clip region, green line lies inside it.",
			"The blue square marks the clip region boundary.",
		},
		New: func() Scene {
			return &staticScene{shader: rasterlab.DefaultShader, build: clippingBatch}
		},
	})
}

const clippingLineWidth = 2

func clippingBatch() *rasterlab.Batch {
	red := rasterlab.ColorRed
	green := rasterlab.ColorGreen

	b := rasterlab.NewBatch(rasterlab.LayoutPosColor)
	b.AddLines(rasterlab.Lines, clippingLineWidth,
		// partially outside the region
		rasterlab.Vertex{Pos: rasterlab.Vec3{X: -0.9, Y: -0.5}, Color: red},
		rasterlab.Vertex{Pos: rasterlab.Vec3{X: 0.9, Y: 0.5}, Color: red},
		// fully inside
		rasterlab.Vertex{Pos: rasterlab.Vec3{X: -0.3, Y: -0.3}, Color: green},
		rasterlab.Vertex{Pos: rasterlab.Vec3{X: 0.3, Y: 0.3}, Color: green},
	)
	b.AddLines(rasterlab.LineLoop, clippingLineWidth,
		rasterlab.Rect(-0.5, -0.5, 0.5, 0.5, 0, rasterlab.ColorBlue)...)
	return b
}
