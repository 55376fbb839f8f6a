package activity

import "github.com/go-theft-auto/rasterlab"

func init() {
	register(Activity{
		Number:  6,
		Name:    "Bola Merah Kuning Biru",
		Summary: "Three overlapping colored balls sorted by the depth test",
		Window:  rasterlab.WindowSpec{Title: "Activity 6: Bola Merah Kuning Biru", Width: 900, Height: 400},
		Clear:   rasterlab.Color{R: 0.9, G: 0.9, B: 0.9},
		Depth:   true,
		Intro: []string{
			"Activity 6: Bola Merah Kuning Biru",
			"Three colored balls: Red, Yellow, Blue.",
			"Yellow is drawn first but sits nearest, so the depth test keeps it on top.",
		},
		New: func() Scene {
			return &staticScene{shader: rasterlab.DefaultShader, build: ballsBatch}
		},
	})
}

const (
	ballRadius   = 0.3
	ballSegments = 50
)

// ballsBatch draws the nearest ball first. Smaller z is nearer with the
// default LESS depth comparison.
func ballsBatch() *rasterlab.Batch {
	b := rasterlab.NewBatch(rasterlab.LayoutPosColor)
	b.Add(rasterlab.TriangleFan, rasterlab.Disc(rasterlab.Vec3{X: 0, Y: 0, Z: -0.5}, ballRadius, rasterlab.ColorYellow, ballSegments)...)
	b.Add(rasterlab.TriangleFan, rasterlab.Disc(rasterlab.Vec3{X: -0.45, Y: 0, Z: 0.2}, ballRadius, rasterlab.ColorRed, ballSegments)...)
	b.Add(rasterlab.TriangleFan, rasterlab.Disc(rasterlab.Vec3{X: 0.45, Y: 0, Z: 0.2}, ballRadius, rasterlab.ColorBlue, ballSegments)...)
	return b
}
