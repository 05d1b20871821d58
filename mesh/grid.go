package mesh

import (
	"fmt"

	"render-demo/gpu"
	"render-demo/math"
)

// neighbours lists the 8 grid offsets (row, col) around a sample, in
// counter-clockwise order starting at +col.
var neighbours = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// DepthGrid builds a unit-sized height field from a row-major grid of depth
// samples. Depth grows downwards: sample (i, j) sits at
// (i/rows-0.5, -depth, j/cols-0.5). Normals average the faces spanned by the
// 8 neighbours, clamping at the border. The mesh is a single triangle strip
// with a degenerate link between rows.
func DepthGrid[V gpu.Vertex, PV Vertex[V]](depth []float32, rows, cols int) (*Mesh[V], error) {
	if err := checkResolution("depth grid", "rows", rows, 2); err != nil {
		return nil, err
	}
	if err := checkResolution("depth grid", "cols", cols, 2); err != nil {
		return nil, err
	}
	if len(depth) != rows*cols {
		return nil, fmt.Errorf("%w: %d samples for a %dx%d grid", ErrDepthSize, len(depth), rows, cols)
	}

	g := grid{rows: rows, cols: cols, pos: make([]math.Vec3, rows*cols)}
	for i := range rows {
		for j := range cols {
			g.pos[i*cols+j] = math.NewVec3(
				float32(i)/float32(rows)-0.5,
				-depth[i*cols+j],
				float32(j)/float32(cols)-0.5,
			)
		}
	}

	vertices := make([]V, rows*cols)
	for i := range rows {
		for j := range cols {
			uv := math.NewVec2(float32(j)/float32(cols-1), float32(i)/float32(rows-1))
			PV(&vertices[i*cols+j]).SetAttribs(g.at(i, j), g.normal(i, j), uv)
		}
	}

	indices := make([]uint32, 0, (rows-1)*(2*cols+2))
	for i := 0; i < rows-1; i++ {
		for j := cols - 1; j >= 0; j-- {
			indices = append(indices, g.index(i, j), g.index(i+1, j))
		}
		indices = append(indices, g.index(i+1, 0), g.index(i+1, cols-1))
	}

	return &Mesh[V]{Vertices: vertices, Indices: indices, Topology: gpu.TriangleStrip}, nil
}

type grid struct {
	rows, cols int
	pos        []math.Vec3
}

func (g grid) index(i, j int) uint32 { return uint32(i*g.cols + j) }

// at returns the sample at (i, j), clamped to the grid.
func (g grid) at(i, j int) math.Vec3 {
	i = min(max(i, 0), g.rows-1)
	j = min(max(j, 0), g.cols-1)
	return g.pos[i*g.cols+j]
}

func (g grid) normal(i, j int) math.Vec3 {
	p := g.at(i, j)
	var sum math.Vec3
	for k, a := range neighbours {
		b := neighbours[(k+1)%len(neighbours)]
		e0 := g.at(i+a[0], j+a[1]).Sub(p)
		e1 := g.at(i+b[0], j+b[1]).Sub(p)
		sum = sum.Add(e0.Cross(e1))
	}
	return sum.Normalize()
}
