package activity

import "github.com/go-theft-auto/rasterlab"

func init() {
	register(Activity{
		Number:  3,
		Name:    "Color Interpolation",
		Summary: "Show smooth color gradients across a square",
		Window:  rasterlab.WindowSpec{Title: "square.cpp", Width: 500, Height: 500},
		Clear:   rasterlab.ColorWhite,
		Intro: []string{
			"Activity 3: Color Interpolation (Experiment 2.7)",
			"Bilinear color interpolation across a square.",
			"Corner colors: Red (BL), Green (BR), Yellow (TL), Blue (TR)",
			"The rasterizer interpolates colors between vertices.",
		},
		New: func() Scene {
			return &staticScene{
				shader:     rasterlab.ProjectedShader,
				projection: rasterlab.Ortho100,
				build:      gradientQuadBatch,
			}
		},
	})
}

// gradientQuadBatch is a square in 0..100 space split into two triangles.
func gradientQuadBatch() *rasterlab.Batch {
	bl := rasterlab.V(20, 20, 0, 1, 0, 0)
	br := rasterlab.V(80, 20, 0, 0, 1, 0)
	tl := rasterlab.V(20, 80, 0, 1, 1, 0)
	tr := rasterlab.V(80, 80, 0, 0, 0, 1)

	b := rasterlab.NewBatch(rasterlab.LayoutPosColor)
	b.Add(rasterlab.Triangles, bl, br, tl, br, tr, tl)
	return b
}
