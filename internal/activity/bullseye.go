package activity

import "github.com/go-theft-auto/rasterlab"

func init() {
	register(Activity{
		Number:  4,
		Name:    "Bull's Eye Target",
		Summary: "Draw concentric circles forming a target pattern",
		Window:  rasterlab.WindowSpec{Title: "Activity 4: Bull's Eye Target", Width: 800, Height: 800},
		Clear:   rasterlab.ColorWhite,
		Intro: []string{
			"Activity 4: Bull's Eye Target",
			"Concentric rings drawn as triangle strips around a triangle-fan center.",
			"Press " + rasterlab.KeyName(rasterlab.KeyW) + " to toggle wireframe.",
		},
		New: func() Scene { return &bullseyeScene{} },
	})
}

const bullseyeSegments = 50

var bullseyeCenter = rasterlab.Vec3{X: 50, Y: 50}

// bullseyeBands lists the rings from the outside in. The last band has no
// inner radius and is drawn as a disc.
var bullseyeBands = []struct {
	inner, outer float32
	color        rasterlab.Color
}{
	{30, 40, rasterlab.ColorRed},
	{20, 30, rasterlab.ColorWhite},
	{10, 20, rasterlab.ColorRed},
	{4, 10, rasterlab.ColorWhite},
	{0, 4, rasterlab.ColorRed},
}

// bullseyeBatch builds the target in 0..100 space. Command i has the color of
// band i.
func bullseyeBatch() (*rasterlab.Batch, []rasterlab.Color) {
	b := rasterlab.NewBatch(rasterlab.LayoutPos)
	colors := make([]rasterlab.Color, 0, len(bullseyeBands))
	for _, band := range bullseyeBands {
		if band.inner == 0 {
			b.Add(rasterlab.TriangleFan, rasterlab.Disc(bullseyeCenter, band.outer, band.color, bullseyeSegments)...)
		} else {
			b.Add(rasterlab.TriangleStrip, rasterlab.Ring(bullseyeCenter, band.inner, band.outer, band.color, bullseyeSegments)...)
		}
		colors = append(colors, band.color)
	}
	return b, colors
}

type bullseyeScene struct {
	batch     *rasterlab.Batch
	colors    []rasterlab.Color
	pipe      rasterlab.Pipeline
	mesh      rasterlab.Mesh
	wireframe bool
}

func (s *bullseyeScene) Setup(dev rasterlab.Device) {
	s.batch, s.colors = bullseyeBatch()
	s.mesh = dev.NewMesh(s.batch, rasterlab.StaticDraw)
	s.pipe = dev.NewPipeline(rasterlab.FlatShader)
	s.pipe.SetProjection(rasterlab.Ortho100)
}

func (s *bullseyeScene) Draw(dev rasterlab.Device) {
	drawTarget(dev, s.pipe, s.mesh, s.batch, s.colors, s.wireframe)
}

// drawTarget draws every band with its own uniform color. Wireframe mode is
// set explicitly every frame and reset to fill afterwards.
func drawTarget(dev rasterlab.Device, pipe rasterlab.Pipeline, mesh rasterlab.Mesh, b *rasterlab.Batch, colors []rasterlab.Color, wireframe bool) {
	dev.SetWireframe(wireframe)
	pipe.Use()
	for i, cmd := range b.CmdBuffer {
		pipe.SetColor(colors[i])
		mesh.Draw(cmd)
	}
	if wireframe {
		dev.SetWireframe(false)
	}
}

func (s *bullseyeScene) HandleInput(in *rasterlab.InputState) {
	if in.KeyPressed(rasterlab.KeyW) {
		s.wireframe = !s.wireframe
	}
}

func (s *bullseyeScene) Teardown() {
	s.mesh.Delete()
	s.pipe.Delete()
}
