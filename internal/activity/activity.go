// Package activity contains the numbered rendering activities and the runner
// that drives one of them from window creation to teardown.
package activity

import (
	"sort"

	"github.com/go-theft-auto/rasterlab"
)

// Scene is the draw logic of one activity.
type Scene interface {
	// Setup creates pipelines and meshes. It runs once after the surface
	// opened and before the first frame.
	Setup(dev rasterlab.Device)
	// Draw issues the draw calls of one frame.
	Draw(dev rasterlab.Device)
	// Teardown releases everything Setup created.
	Teardown()
}

// Animator is implemented by scenes whose state advances once per frame,
// after drawing and before presenting.
type Animator interface {
	Advance()
}

// InputHandler is implemented by scenes that react to keys. It is called
// once per frame with the events polled for that frame.
type InputHandler interface {
	HandleInput(in *rasterlab.InputState)
}

// Activity is one entry of the launcher.
type Activity struct {
	Number  int
	Name    string
	Summary string // One-line description for the usage text
	Window  rasterlab.WindowSpec
	Clear   rasterlab.Color
	Depth   bool     // Enable depth testing and clear the depth buffer
	Intro   []string // Printed when the activity starts
	New     func() Scene
}

var catalog = map[int]Activity{}

func register(a Activity) {
	catalog[a.Number] = a
}

// Lookup returns the activity with the given number.
func Lookup(number int) (Activity, bool) {
	a, ok := catalog[number]
	return a, ok
}

// All returns every activity ordered by number.
func All() []Activity {
	out := make([]Activity, 0, len(catalog))
	for _, a := range catalog {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// staticScene draws one immutable batch with one pipeline.
type staticScene struct {
	shader     rasterlab.ShaderSource
	projection rasterlab.Mat4
	build      func() *rasterlab.Batch

	batch *rasterlab.Batch
	pipe  rasterlab.Pipeline
	mesh  rasterlab.Mesh
}

func (s *staticScene) Setup(dev rasterlab.Device) {
	s.batch = s.build()
	s.mesh = dev.NewMesh(s.batch, rasterlab.StaticDraw)
	s.pipe = dev.NewPipeline(s.shader)
	if s.shader.Uses(rasterlab.UniformProjection) {
		s.pipe.SetProjection(s.projection)
	}
}

func (s *staticScene) Draw(dev rasterlab.Device) {
	s.pipe.Use()
	rasterlab.DrawAll(dev, s.mesh, s.batch)
}

func (s *staticScene) Teardown() {
	s.mesh.Delete()
	s.pipe.Delete()
}
