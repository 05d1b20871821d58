package gpu

import (
	"fmt"
	"log/slog"
	"unsafe"
)

// VertexBuffer owns one GL array buffer holding an immutable slice of
// vertices. The buffer is sized once at creation and never resized.
type VertexBuffer struct {
	dev     Device
	id      uint32
	count   int
	stride  int32
	markers []AttribMarker
}

// NewVertexBuffer validates the vertex layout of V and uploads data.
func NewVertexBuffer[V Vertex](dev Device, data []V) (*VertexBuffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyMesh
	}
	var zero V
	markers := zero.Attribs()
	stride := int(unsafe.Sizeof(zero))
	if err := ValidateLayout(markers, stride); err != nil {
		return nil, fmt.Errorf("vertex buffer: %w", err)
	}

	id := dev.GenBuffer()
	dev.BindBuffer(ArrayBuffer, id)
	dev.BufferData(ArrayBuffer, sliceBytes(data))
	dev.BindBuffer(ArrayBuffer, 0)

	Logger().Debug("vertex buffer created", slog.Uint64("id", uint64(id)),
		slog.Int("vertices", len(data)), slog.Int("stride", stride))
	return &VertexBuffer{dev: dev, id: id, count: len(data), stride: int32(stride), markers: markers}, nil
}

// Len returns the number of vertices in the buffer.
func (b *VertexBuffer) Len() int { return b.count }

func (b *VertexBuffer) bind()   { b.dev.BindBuffer(ArrayBuffer, b.id) }
func (b *VertexBuffer) unbind() { b.dev.BindBuffer(ArrayBuffer, 0) }

// enable points each attribute slot at the buffer. The buffer must be bound.
func (b *VertexBuffer) enable() {
	for _, m := range b.markers {
		b.dev.EnableVertexAttrib(m.Slot)
		b.dev.VertexAttribPointer(m.Slot, m.Components, m.Type, m.Normalize, b.stride, m.Offset)
	}
}

// Destroy releases the GL buffer. Calling it again is a no-op.
func (b *VertexBuffer) Destroy() {
	if b.id == 0 {
		return
	}
	b.dev.DeleteBuffer(b.id)
	b.id = 0
}

// IndexBuffer owns one GL element array buffer of uint32 indices.
type IndexBuffer struct {
	dev   Device
	id    uint32
	count int
}

// NewIndexBuffer uploads data to a new element array buffer.
func NewIndexBuffer(dev Device, data []uint32) (*IndexBuffer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("index buffer: %w", ErrEmptyMesh)
	}
	id := dev.GenBuffer()
	dev.BindBuffer(ElementArrayBuffer, id)
	dev.BufferData(ElementArrayBuffer, sliceBytes(data))
	dev.BindBuffer(ElementArrayBuffer, 0)

	Logger().Debug("index buffer created", slog.Uint64("id", uint64(id)), slog.Int("indices", len(data)))
	return &IndexBuffer{dev: dev, id: id, count: len(data)}, nil
}

// Len returns the number of indices in the buffer.
func (b *IndexBuffer) Len() int { return b.count }

func (b *IndexBuffer) bind()   { b.dev.BindBuffer(ElementArrayBuffer, b.id) }
func (b *IndexBuffer) unbind() { b.dev.BindBuffer(ElementArrayBuffer, 0) }

// Destroy releases the GL buffer. Calling it again is a no-op.
func (b *IndexBuffer) Destroy() {
	if b.id == 0 {
		return
	}
	b.dev.DeleteBuffer(b.id)
	b.id = 0
}
