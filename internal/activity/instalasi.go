package activity

import "github.com/go-theft-auto/rasterlab"

func init() {
	register(Activity{
		Number:  1,
		Name:    "Instalasi",
		Summary: "Verify the OpenGL installation with a colored triangle",
		Window:  rasterlab.WindowSpec{Title: "Activity 1: Instalasi", Width: 640, Height: 480},
		Clear:   rasterlab.Color{R: 0.2, G: 0.3, B: 0.3},
		Intro: []string{
			"Activity 1: Installation Test",
			"A colored triangle should appear on screen.",
		},
		New: func() Scene {
			return &staticScene{shader: rasterlab.DefaultShader, build: triangleBatch}
		},
	})
}

func triangleBatch() *rasterlab.Batch {
	b := rasterlab.NewBatch(rasterlab.LayoutPosColor)
	b.Add(rasterlab.Triangles,
		rasterlab.V(-0.5, -0.5, 0, 1, 0, 0), // bottom left
		rasterlab.V(0.5, -0.5, 0, 0, 1, 0),  // bottom right
		rasterlab.V(0.0, 0.5, 0, 0, 0, 1),   // top
	)
	return b
}
