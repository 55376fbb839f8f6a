/*
Package rasterlab holds the renderer-independent pieces of a small set of
numbered OpenGL activities: vertex data, draw batches, circle geometry,
projection matrices, embedded shader sources and the Surface/Device
interfaces a graphics backend implements.

# Overview

Every activity is a static or animated scene drawn into its own window.
Geometry is built on the CPU into a Batch, uploaded once as a Mesh and drawn
with one DrawCmd per shape. Each command covers exactly the vertices that
were added for it, so fans, strips and loops never read past their shape.

	b := rasterlab.NewBatch(rasterlab.LayoutPosColor)
	b.Add(rasterlab.TriangleFan, rasterlab.Disc(center, 0.3, rasterlab.ColorRed, 50)...)

	pipe := dev.NewPipeline(rasterlab.DefaultShader)
	mesh := dev.NewMesh(b, rasterlab.StaticDraw)

	// per frame
	pipe.Use()
	rasterlab.DrawAll(dev, mesh, b)

# Activities

	1  Instalasi               RGB triangle with interpolated vertex colors
	2  Clipping                Two lines and the clipping region outline
	3  Color Interpolation     Quad with a different color at each corner
	4  Bull's Eye Target       Concentric rings, W toggles wireframe
	6  Bola Merah Kuning Biru  Three overlapping balls, yellow in front
	7  Satelite Duo            Two satellites orbiting a planet
	8  Undistorted Cray 2      A 20x20 grid with a highlighted square

Activity 5 is not part of the set.

# Keyboard

	ESC    Close the window
	W      Toggle wireframe (activity 4)
	F12    Save a screenshot

# Shaders

Shader sources are embedded GLSL 4.10 core. BuildProgram compiles and links
a ShaderSource through any ShaderCompiler; compile and link errors are logged
with the driver's info log and do not abort the activity.

# Backends

The backend/opengl package implements Surface with GLFW and Device with
go-gl. Tests use in-memory fakes of the same interfaces.
*/
package rasterlab
