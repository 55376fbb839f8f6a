package activity

import (
	"math"

	"github.com/go-theft-auto/rasterlab"
)

func init() {
	register(Activity{
		Number:  7,
		Name:    "Satelite Duo",
		Summary: "Two satellites orbiting a central planet",
		Window:  rasterlab.WindowSpec{Title: "Activity 7: Satelite Duo", Width: 800, Height: 800},
		Clear:   rasterlab.Color{R: 0.05, G: 0.05, B: 0.15},
		Intro: []string{
			"Activity 7: Satelite Duo",
			"Two satellites orbiting a central planet",
			"Satellite 1 (Cyan): Inner orbit, faster",
			"Satellite 2 (Magenta): Outer orbit, slower",
		},
		New: func() Scene { return newSatelliteScene() },
	})
}

// angleStep is the per-frame angle increment for speed 1. The step is tied
// to the frame rate, there is no delta time.
const angleStep = 0.02

const (
	planetRadius    = 0.15
	planetSegments  = 30
	orbitSegments   = 100
	orbitLineWidth  = 1.5
	satelliteRadius = 0.05
	satelliteSegs   = 30
)

type satellite struct {
	orbit float32 // Orbit radius
	speed float32
	color rasterlab.Color
	angle float32
}

func (s satellite) position() rasterlab.Vec3 {
	return rasterlab.Vec3{
		X: s.orbit * float32(math.Cos(float64(s.angle))),
		Y: s.orbit * float32(math.Sin(float64(s.angle))),
	}
}

type satelliteScene struct {
	satellites [2]satellite

	static *rasterlab.Batch
	moving *rasterlab.Batch
	pipe   rasterlab.Pipeline
	world  rasterlab.Mesh
	bodies rasterlab.Mesh
}

func newSatelliteScene() *satelliteScene {
	return &satelliteScene{
		satellites: [2]satellite{
			{orbit: 0.5, speed: 1.0, color: rasterlab.ColorCyan},
			{orbit: 0.7, speed: 0.6, color: rasterlab.ColorMagenta},
		},
		moving: rasterlab.NewBatch(rasterlab.LayoutPosColor),
	}
}

// worldBatch holds the orbit paths and the planet, in drawing order.
func (s *satelliteScene) worldBatch() *rasterlab.Batch {
	pathColor := rasterlab.Color{R: 0.3, G: 0.3, B: 0.4}
	b := rasterlab.NewBatch(rasterlab.LayoutPosColor)
	for _, sat := range s.satellites {
		b.AddLines(rasterlab.LineLoop, orbitLineWidth, rasterlab.Orbit(rasterlab.Vec3{}, sat.orbit, pathColor, orbitSegments)...)
	}
	b.Add(rasterlab.TriangleFan, rasterlab.Disc(rasterlab.Vec3{}, planetRadius, rasterlab.Color{R: 1, G: 0.8, B: 0}, planetSegments)...)
	return b
}

// rebuildBodies regenerates the satellite discs at their current angles.
func (s *satelliteScene) rebuildBodies() {
	s.moving.Clear()
	for _, sat := range s.satellites {
		s.moving.Add(rasterlab.TriangleFan, rasterlab.Disc(sat.position(), satelliteRadius, sat.color, satelliteSegs)...)
	}
}

func (s *satelliteScene) Setup(dev rasterlab.Device) {
	s.static = s.worldBatch()
	s.world = dev.NewMesh(s.static, rasterlab.StaticDraw)
	s.rebuildBodies()
	s.bodies = dev.NewMesh(s.moving, rasterlab.DynamicDraw)
	s.pipe = dev.NewPipeline(rasterlab.DefaultShader)
}

func (s *satelliteScene) Draw(dev rasterlab.Device) {
	s.pipe.Use()
	rasterlab.DrawAll(dev, s.world, s.static)

	s.rebuildBodies()
	s.bodies.Update(s.moving)
	rasterlab.DrawAll(dev, s.bodies, s.moving)
}

// Advance moves both satellites by one frame's worth of angle.
func (s *satelliteScene) Advance() {
	for i := range s.satellites {
		s.satellites[i].angle += s.satellites[i].speed * angleStep
	}
}

func (s *satelliteScene) Teardown() {
	s.world.Delete()
	s.bodies.Delete()
	s.pipe.Delete()
}
