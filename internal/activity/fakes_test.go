package activity

import (
	"errors"
	"image"
	"strings"

	"github.com/go-theft-auto/rasterlab"
)

// fakeSurface closes itself after closeAfter swaps. Key events scheduled for
// a frame are delivered during that frame's PollEvents.
type fakeSurface struct {
	closeAfter int
	keys       map[int][]rasterlab.Key
	handler    rasterlab.KeyHandler

	swaps     int
	polls     int
	close     bool
	destroyed bool
	log       *[]string
}

func (s *fakeSurface) ShouldClose() bool { return s.close }

func (s *fakeSurface) SetShouldClose(v bool) { s.close = v }

func (s *fakeSurface) SetKeyHandler(h rasterlab.KeyHandler) { s.handler = h }

func (s *fakeSurface) SwapBuffers() {
	s.swaps++
	s.record("swap")
}

func (s *fakeSurface) PollEvents() {
	s.polls++
	s.record("poll")
	for _, k := range s.keys[s.polls] {
		if k == rasterlab.KeyEscape {
			s.close = true
		}
		if s.handler != nil {
			s.handler(k, rasterlab.Press)
			s.handler(k, rasterlab.Release)
		}
	}
	if s.closeAfter > 0 && s.swaps >= s.closeAfter {
		s.close = true
	}
}

func (s *fakeSurface) Destroy() {
	s.destroyed = true
	s.record("destroy")
}

func (s *fakeSurface) record(op string) {
	if s.log != nil {
		*s.log = append(*s.log, op)
	}
}

type fakeDevice struct {
	log        *[]string
	clearColor rasterlab.Color
	depthTest  bool
	wireframe  []bool
	clears     []bool
	pipelines  []*fakePipeline
	meshes     []*fakeMesh
	lineWidths []float32
	readErr    error
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{log: new([]string)}
}

func (d *fakeDevice) record(op string) { *d.log = append(*d.log, op) }

func (d *fakeDevice) NewPipeline(src rasterlab.ShaderSource) rasterlab.Pipeline {
	p := &fakePipeline{dev: d, src: src}
	d.pipelines = append(d.pipelines, p)
	d.record("pipeline:" + src.Name)
	return p
}

func (d *fakeDevice) NewMesh(b *rasterlab.Batch, usage rasterlab.BufferUsage) rasterlab.Mesh {
	m := &fakeMesh{dev: d, layout: b.Layout, usage: usage, vertices: b.Len()}
	d.meshes = append(d.meshes, m)
	d.record("mesh")
	return m
}

func (d *fakeDevice) SetClearColor(c rasterlab.Color) { d.clearColor = c }

func (d *fakeDevice) Clear(depth bool) {
	d.clears = append(d.clears, depth)
	d.record("clear")
}

func (d *fakeDevice) SetDepthTest(enabled bool) { d.depthTest = enabled }

func (d *fakeDevice) SetWireframe(enabled bool) { d.wireframe = append(d.wireframe, enabled) }

func (d *fakeDevice) SetLineWidth(w float32) { d.lineWidths = append(d.lineWidths, w) }

func (d *fakeDevice) ReadPixels() (*image.RGBA, error) {
	if d.readErr != nil {
		return nil, d.readErr
	}
	d.record("read")
	return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
}

func (d *fakeDevice) draws() []string {
	var out []string
	for _, op := range *d.log {
		if strings.HasPrefix(op, "draw:") {
			out = append(out, op)
		}
	}
	return out
}

type fakePipeline struct {
	dev        *fakeDevice
	src        rasterlab.ShaderSource
	projection *rasterlab.Mat4
	colors     []rasterlab.Color
	deleted    bool
}

func (p *fakePipeline) Use() { p.dev.record("use:" + p.src.Name) }

func (p *fakePipeline) SetProjection(m rasterlab.Mat4) { p.projection = &m }

func (p *fakePipeline) SetColor(c rasterlab.Color) { p.colors = append(p.colors, c) }

func (p *fakePipeline) Delete() { p.deleted = true }

type fakeMesh struct {
	dev      *fakeDevice
	layout   rasterlab.Layout
	usage    rasterlab.BufferUsage
	vertices int
	updates  int
	cmds     []rasterlab.DrawCmd
	deleted  bool
}

func (m *fakeMesh) Update(b *rasterlab.Batch) {
	if !rasterlab.MatchLayout(nil, m.layout, b.Layout) {
		return
	}
	m.updates++
	m.vertices = b.Len()
}

func (m *fakeMesh) Draw(cmd rasterlab.DrawCmd) {
	if cmd.First+cmd.Count > int32(m.vertices) {
		panic("draw command exceeds mesh")
	}
	m.cmds = append(m.cmds, cmd)
	m.dev.record("draw:" + cmd.Mode.String())
}

func (m *fakeMesh) Delete() { m.deleted = true }

type fakeCapturer struct {
	saved []int
	err   error
}

func (c *fakeCapturer) Save(activity int, img image.Image) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	c.saved = append(c.saved, activity)
	return "shot.png", nil
}

func openerFor(s *fakeSurface, d *fakeDevice) Opener {
	return func(rasterlab.WindowSpec) (rasterlab.Surface, rasterlab.Device, error) {
		if s.log == nil {
			s.log = d.log
		}
		return s, d, nil
	}
}

var errNoDisplay = errors.New("no display")

func failingOpener(calls *int) Opener {
	return func(rasterlab.WindowSpec) (rasterlab.Surface, rasterlab.Device, error) {
		*calls++
		return nil, nil, errNoDisplay
	}
}
