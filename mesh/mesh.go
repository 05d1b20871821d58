package mesh

import (
	"fmt"

	"render-demo/gpu"
)

// Mesh is indexed vertex data ready for upload.
type Mesh[V gpu.Vertex] struct {
	Vertices []V
	Indices  []uint32
	Topology gpu.Topology
}

// Validate reports ErrIndexOutOfRange if any index does not address a vertex.
func (m *Mesh[V]) Validate() error {
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: index %d at position %d, %d vertices", ErrIndexOutOfRange, idx, i, n)
		}
	}
	return nil
}

// Triangles returns the number of triangles the indices describe.
func (m *Mesh[V]) Triangles() int {
	switch m.Topology {
	case gpu.Triangles:
		return len(m.Indices) / 3
	case gpu.TriangleStrip, gpu.TriangleFan:
		return max(len(m.Indices)-2, 0)
	}
	return 0
}

// Upload validates the mesh and creates a GPU shape from it.
func (m *Mesh[V]) Upload(dev gpu.Device) (*gpu.Shape, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return gpu.NewShape(dev, m.Vertices, m.Indices, m.Topology)
}
