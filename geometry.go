package rasterlab

import "math"

// circlePoint returns the i-th of n evenly spaced points on a circle.
// n == 0 collapses every index onto angle 0.
func circlePoint(center Vec3, radius float32, i, n int) Vec3 {
	var angle float64
	if n > 0 {
		angle = 2 * math.Pi * float64(i) / float64(n)
	}
	return Vec3{
		X: center.X + radius*float32(math.Cos(angle)),
		Y: center.Y + radius*float32(math.Sin(angle)),
		Z: center.Z,
	}
}

// Disc returns a filled circle for a triangle fan: the center followed by
// segments+1 boundary vertices, the last one closing the loop.
func Disc(center Vec3, radius float32, color Color, segments int) []Vertex {
	if segments < 0 {
		segments = 0
	}
	verts := make([]Vertex, 0, segments+2)
	verts = append(verts, Vertex{Pos: center, Color: color})
	for i := 0; i <= segments; i++ {
		verts = append(verts, Vertex{Pos: circlePoint(center, radius, i, segments), Color: color})
	}
	return verts
}

// Ring returns an annulus for a triangle strip as (inner, outer) pairs at
// segments+1 angles.
func Ring(center Vec3, inner, outer float32, color Color, segments int) []Vertex {
	if segments < 0 {
		segments = 0
	}
	verts := make([]Vertex, 0, 2*(segments+1))
	for i := 0; i <= segments; i++ {
		verts = append(verts,
			Vertex{Pos: circlePoint(center, inner, i, segments), Color: color},
			Vertex{Pos: circlePoint(center, outer, i, segments), Color: color},
		)
	}
	return verts
}

// Orbit returns the boundary of a circle with the same sampling as Disc,
// without the center vertex. Draw it as a line loop.
func Orbit(center Vec3, radius float32, color Color, segments int) []Vertex {
	if segments < 0 {
		segments = 0
	}
	verts := make([]Vertex, 0, segments+1)
	for i := 0; i <= segments; i++ {
		verts = append(verts, Vertex{Pos: circlePoint(center, radius, i, segments), Color: color})
	}
	return verts
}

// Rect returns the four corners of an axis-aligned rectangle in
// counter-clockwise order starting at the bottom-left.
func Rect(x0, y0, x1, y1, z float32, color Color) []Vertex {
	return []Vertex{
		{Pos: Vec3{x0, y0, z}, Color: color},
		{Pos: Vec3{x1, y0, z}, Color: color},
		{Pos: Vec3{x1, y1, z}, Color: color},
		{Pos: Vec3{x0, y1, z}, Color: color},
	}
}
