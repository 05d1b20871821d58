package mesh

import (
	"render-demo/gpu"
	"render-demo/math"
)

// Quad returns a unit square facing +Z at z = 0.5, with texture coordinates
// spanning [0,1].
func Quad() *Mesh[VertexUV] {
	return &Mesh[VertexUV]{
		Vertices: []VertexUV{
			{Pos: math.NewVec3(-0.5, -0.5, 0.5), UV: math.NewVec2(0, 0)},
			{Pos: math.NewVec3(0.5, -0.5, 0.5), UV: math.NewVec2(1, 0)},
			{Pos: math.NewVec3(-0.5, 0.5, 0.5), UV: math.NewVec2(0, 1)},
			{Pos: math.NewVec3(0.5, 0.5, 0.5), UV: math.NewVec2(1, 1)},
		},
		Indices:  []uint32{0, 1, 2, 2, 1, 3},
		Topology: gpu.Triangles,
	}
}

// cubePositions holds the 36 corners of a [-1,1] cube, wound
// counter-clockwise as seen from inside.
var cubePositions = [36][3]float32{
	{-1, 1, -1}, {-1, -1, -1}, {1, -1, -1},
	{1, -1, -1}, {1, 1, -1}, {-1, 1, -1},

	{-1, -1, 1}, {-1, -1, -1}, {-1, 1, -1},
	{-1, 1, -1}, {-1, 1, 1}, {-1, -1, 1},

	{1, -1, -1}, {1, -1, 1}, {1, 1, 1},
	{1, 1, 1}, {1, 1, -1}, {1, -1, -1},

	{-1, -1, 1}, {-1, 1, 1}, {1, 1, 1},
	{1, 1, 1}, {1, -1, 1}, {-1, -1, 1},

	{-1, 1, -1}, {1, 1, -1}, {1, 1, 1},
	{1, 1, 1}, {-1, 1, 1}, {-1, 1, -1},

	{-1, -1, -1}, {-1, -1, 1}, {1, -1, -1},
	{1, -1, -1}, {-1, -1, 1}, {1, -1, 1},
}

// Cube returns the inward-facing cube used to draw a skybox. Every corner
// is its own vertex, indexed 0 through 35.
func Cube() *Mesh[VertexP] {
	m := &Mesh[VertexP]{
		Vertices: make([]VertexP, len(cubePositions)),
		Indices:  make([]uint32, len(cubePositions)),
		Topology: gpu.Triangles,
	}
	for i, p := range cubePositions {
		m.Vertices[i] = VertexP{Pos: math.NewVec3(p[0], p[1], p[2])}
		m.Indices[i] = uint32(i)
	}
	return m
}
