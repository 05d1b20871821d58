package scene

import (
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"render-demo/gpu"
)

func TestGLTFTopology(t *testing.T) {
	tests := []struct {
		mode gltf.PrimitiveMode
		want gpu.Topology
		ok   bool
	}{
		{gltf.PrimitiveTriangles, gpu.Triangles, true},
		{gltf.PrimitiveTriangleStrip, gpu.TriangleStrip, true},
		{gltf.PrimitiveTriangleFan, gpu.TriangleFan, true},
		{gltf.PrimitiveLineStrip, gpu.LineStrip, true},
		{gltf.PrimitivePoints, 0, false},
		{gltf.PrimitiveLines, 0, false},
		{gltf.PrimitiveLineLoop, 0, false},
	}
	for _, tt := range tests {
		got, ok := gltfTopology(tt.mode)
		assert.Equal(t, tt.ok, ok, tt.mode)
		assert.Equal(t, tt.want, got, tt.mode)
	}
}

func TestGLTFStrayIndex(t *testing.T) {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	idx := modeler.WriteIndices(doc, []uint16{0, 1, 7})
	doc.Meshes = []*gltf.Mesh{{Primitives: []*gltf.Primitive{{
		Attributes: map[string]int{gltf.POSITION: pos},
		Indices:    gltf.Index(idx),
	}}}}

	_, err := modelsFromGLTF(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mesh0_p0")
}

func TestGLTFMissingPosition(t *testing.T) {
	doc := gltf.NewDocument()
	doc.Meshes = []*gltf.Mesh{{Name: "empty", Primitives: []*gltf.Primitive{{Attributes: map[string]int{}}}}}

	_, err := modelsFromGLTF(doc)
	assert.ErrorContains(t, err, "no POSITION attribute")
}

func TestGLTFNoGeometry(t *testing.T) {
	_, err := modelsFromGLTF(gltf.NewDocument())
	assert.ErrorIs(t, err, ErrNoGeometry)
}

func TestGLTFAccessorOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		prim func(pos int) *gltf.Primitive
		want string
	}{
		{"position", func(int) *gltf.Primitive {
			return &gltf.Primitive{Attributes: map[string]int{gltf.POSITION: 7}}
		}, "POSITION accessor 7"},
		{"normal", func(pos int) *gltf.Primitive {
			return &gltf.Primitive{Attributes: map[string]int{gltf.POSITION: pos, gltf.NORMAL: 9}}
		}, "NORMAL accessor 9"},
		{"texcoord", func(pos int) *gltf.Primitive {
			return &gltf.Primitive{Attributes: map[string]int{gltf.POSITION: pos, gltf.TEXCOORD_0: -1}}
		}, "TEXCOORD_0 accessor -1"},
		{"indices", func(pos int) *gltf.Primitive {
			return &gltf.Primitive{Attributes: map[string]int{gltf.POSITION: pos}, Indices: gltf.Index(5)}
		}, "indices accessor 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := gltf.NewDocument()
			pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
			doc.Meshes = []*gltf.Mesh{{Primitives: []*gltf.Primitive{tt.prim(pos)}}}

			var err error
			require.NotPanics(t, func() { _, err = modelsFromGLTF(doc) })
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
