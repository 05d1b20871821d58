package gpu

import "fmt"

// Shape owns a vertex buffer, an index buffer and the draw object joining
// them.
type Shape struct {
	vbo *VertexBuffer
	ibo *IndexBuffer
	obj *DrawObject
}

// NewShape uploads vertices and indices and builds a draw object over them.
func NewShape[V Vertex](dev Device, vertices []V, indices []uint32, topology Topology) (*Shape, error) {
	vbo, err := NewVertexBuffer(dev, vertices)
	if err != nil {
		return nil, fmt.Errorf("shape: %w", err)
	}
	ibo, err := NewIndexBuffer(dev, indices)
	if err != nil {
		vbo.Destroy()
		return nil, fmt.Errorf("shape: %w", err)
	}
	return &Shape{vbo: vbo, ibo: ibo, obj: NewDrawObject(dev, vbo, ibo, topology)}, nil
}

// Count returns the number of indices drawn.
func (s *Shape) Count() int { return s.obj.Count() }

// Draw draws the shape with the program currently in use.
func (s *Shape) Draw() { s.obj.Draw() }

// Destroy releases the draw object and both buffers, in reverse order of
// creation.
func (s *Shape) Destroy() {
	s.obj.Destroy()
	s.ibo.Destroy()
	s.vbo.Destroy()
}
