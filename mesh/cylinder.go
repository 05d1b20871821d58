package mesh

import (
	"github.com/chewxy/math32"

	"render-demo/gpu"
)

// Cylinder tessellates a closed cylinder of height 2*Radius. Each of the
// slices+1 columns (the seam is duplicated) walks the top disk from the
// centre outwards, down the side, and across the bottom disk back to the
// centre, with strips+1 samples per section.
func Cylinder[V gpu.Vertex, PV Vertex[V]](strips, slices int) (*Mesh[V], error) {
	if err := checkResolution("cylinder", "strips", strips, 1); err != nil {
		return nil, err
	}
	if err := checkResolution("cylinder", "slices", slices, 3); err != nil {
		return nil, err
	}

	thetaStep := 2 * math32.Pi / float32(slices)
	rStep := Radius / float32(strips)
	sideStep := 2 * Radius / float32(strips)

	vertices := make([]V, 0, (slices+1)*3*(strips+1))
	for t := 0; t <= slices; t++ {
		theta := -thetaStep * float32(t)
		for r := 0; r <= strips; r++ {
			vertices = append(vertices, fromPoint[V, PV](NewDiskPoint(rStep*float32(r), theta, Radius)))
		}
		for y := 0; y <= strips; y++ {
			vertices = append(vertices, fromPoint[V, PV](NewCylinderPoint(Radius, theta, Radius-sideStep*float32(y))))
		}
		for r := strips; r >= 0; r-- {
			vertices = append(vertices, fromPoint[V, PV](NewDiskPoint(rStep*float32(r), theta, -Radius)))
		}
	}

	stride := uint32(3 * (strips + 1))
	indices := make([]uint32, 0, 3*slices*2*int(stride-1))
	for slice := uint32(0); slice < uint32(slices); slice++ {
		s := slice * stride
		indices = append(indices, s, s+1, s+stride+1)
		for step := uint32(1); step < stride-1; step++ {
			i := s + step
			indices = append(indices,
				i, i+1, i+stride,
				i+1, i+stride+1, i+stride,
			)
		}
		// Closes the column against the first vertex of the next one.
		i := s + stride - 1
		indices = append(indices, i, i+1, i+stride)
	}

	return &Mesh[V]{Vertices: vertices, Indices: indices, Topology: gpu.Triangles}, nil
}
