package gpu

import "log/slog"

// DrawObject is a vertex array object tying a vertex buffer's attribute
// layout to an optional index buffer. It draws Count elements with its
// topology.
type DrawObject struct {
	dev      Device
	id       uint32
	ibo      *IndexBuffer
	count    int32
	topology Topology
}

// NewDrawObject records the attribute layout of vbo and associates ibo,
// which may be nil for array drawing. Neither buffer is owned by the
// returned object.
func NewDrawObject(dev Device, vbo *VertexBuffer, ibo *IndexBuffer, topology Topology) *DrawObject {
	count := vbo.Len()
	if ibo != nil {
		count = ibo.Len()
	}

	id := dev.GenVertexArray()
	dev.BindVertexArray(id)
	vbo.bind()
	if ibo != nil {
		ibo.bind()
	}
	vbo.enable()
	vbo.unbind()
	if ibo != nil {
		ibo.unbind()
	}
	dev.BindVertexArray(0)

	Logger().Debug("draw object created", slog.Uint64("id", uint64(id)),
		slog.Int("count", count), slog.String("topology", topology.String()))
	return &DrawObject{dev: dev, id: id, ibo: ibo, count: int32(count), topology: topology}
}

// Count returns the number of elements issued per draw: the index count
// when an index buffer is attached, otherwise the vertex count.
func (d *DrawObject) Count() int { return int(d.count) }

// Draw issues one draw call. The program to draw with must be in use.
func (d *DrawObject) Draw() {
	d.dev.BindVertexArray(d.id)
	if d.ibo != nil {
		d.ibo.bind()
		d.dev.DrawElements(d.topology, d.count)
		d.ibo.unbind()
	} else {
		d.dev.DrawArrays(d.topology, 0, d.count)
	}
	d.dev.BindVertexArray(0)
}

// Destroy releases the vertex array. Calling it again is a no-op.
func (d *DrawObject) Destroy() {
	if d.id == 0 {
		return
	}
	d.dev.DeleteVertexArray(d.id)
	d.id = 0
}
