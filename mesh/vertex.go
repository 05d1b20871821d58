package mesh

import (
	"render-demo/gpu"
	"render-demo/math"
)

// Vertex is the constraint generators place on a layout: a pointer to V
// that can be filled from surface attributes. Attributes a layout does not
// store are dropped.
type Vertex[V any] interface {
	*V
	gpu.Vertex
	SetAttribs(pos, normal math.Vec3, uv math.Vec2)
}

func fromPoint[V any, PV Vertex[V]](p Point) V {
	var v V
	PV(&v).SetAttribs(p.Position(), p.Normal(), p.TexCoord())
	return v
}

const vec3Size = 12

// VertexP stores a position.
type VertexP struct {
	Pos math.Vec3
}

func (VertexP) Attribs() []gpu.AttribMarker {
	return []gpu.AttribMarker{gpu.Float32Attrib(gpu.SlotPosition, 3, 0)}
}

func (v *VertexP) SetAttribs(pos, _ math.Vec3, _ math.Vec2) { v.Pos = pos }

// VertexN stores a position and a normal.
type VertexN struct {
	Pos    math.Vec3
	Normal math.Vec3
}

func (VertexN) Attribs() []gpu.AttribMarker {
	return []gpu.AttribMarker{
		gpu.Float32Attrib(gpu.SlotPosition, 3, 0),
		gpu.Float32Attrib(gpu.SlotNormal, 3, vec3Size),
	}
}

func (v *VertexN) SetAttribs(pos, normal math.Vec3, _ math.Vec2) {
	v.Pos, v.Normal = pos, normal
}

// VertexUV stores a position and texture coordinates.
type VertexUV struct {
	Pos math.Vec3
	UV  math.Vec2
}

func (VertexUV) Attribs() []gpu.AttribMarker {
	return []gpu.AttribMarker{
		gpu.Float32Attrib(gpu.SlotPosition, 3, 0),
		gpu.Float32Attrib(gpu.SlotTexCoord0, 2, vec3Size),
	}
}

func (v *VertexUV) SetAttribs(pos, _ math.Vec3, uv math.Vec2) {
	v.Pos, v.UV = pos, uv
}

// VertexNT stores a position, a normal and texture coordinates.
type VertexNT struct {
	Pos    math.Vec3
	Normal math.Vec3
	UV     math.Vec2
}

func (VertexNT) Attribs() []gpu.AttribMarker {
	return []gpu.AttribMarker{
		gpu.Float32Attrib(gpu.SlotPosition, 3, 0),
		gpu.Float32Attrib(gpu.SlotNormal, 3, vec3Size),
		gpu.Float32Attrib(gpu.SlotTexCoord0, 2, 2*vec3Size),
	}
}

func (v *VertexNT) SetAttribs(pos, normal math.Vec3, uv math.Vec2) {
	v.Pos, v.Normal, v.UV = pos, normal, uv
}
