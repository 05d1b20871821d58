package scene_test

import (
	"bytes"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"render-demo/gpu"
	"render-demo/math"
	"render-demo/scene"
)

// triangleDoc builds a document with one indexed, coloured triangle and one
// unindexed triangle without normals.
func triangleDoc() *gltf.Document {
	doc := gltf.NewDocument()
	positions := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	pos := modeler.WritePosition(doc, positions)
	nrm := modeler.WriteNormal(doc, [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}})
	uv := modeler.WriteTextureCoord(doc, [][2]float32{{0, 0}, {1, 0}, {0, 1}})
	idx := modeler.WriteIndices(doc, []uint16{0, 1, 2})
	bare := modeler.WritePosition(doc, positions)

	doc.Materials = []*gltf.Material{{
		Name:                 "red",
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{BaseColorFactor: &[4]float64{1, 0, 0, 1}},
	}}
	doc.Meshes = []*gltf.Mesh{{
		Name: "tri",
		Primitives: []*gltf.Primitive{
			{
				Attributes: map[string]int{gltf.POSITION: pos, gltf.NORMAL: nrm, gltf.TEXCOORD_0: uv},
				Indices:    gltf.Index(idx),
				Material:   gltf.Index(0),
			},
			{Attributes: map[string]int{gltf.POSITION: bare}},
			{Attributes: map[string]int{gltf.POSITION: bare}, Mode: gltf.PrimitivePoints},
		},
	}}
	return doc
}

func checkTriangles(t *testing.T, set *scene.ModelSet) {
	t.Helper()
	require.Len(t, set.Models, 2)
	require.Len(t, set.Materials, 1)
	assert.Equal(t, [3]float32{1, 0, 0}, set.Materials[0].Diffuse)

	lit := set.Models[0]
	assert.Equal(t, "tri_p0", lit.Name)
	assert.Equal(t, 0, lit.Material)
	assert.Equal(t, []uint32{0, 1, 2}, lit.Mesh.Indices)
	assert.Equal(t, math.NewVec2(1, 0), lit.Mesh.Vertices[1].UV)

	bare := set.Models[1]
	assert.Equal(t, scene.NoMaterial, bare.Material)
	assert.Equal(t, gpu.Triangles, bare.Mesh.Topology)
	assert.Equal(t, []uint32{0, 1, 2}, bare.Mesh.Indices)
	assert.InDelta(t, 1, bare.Mesh.Vertices[2].Normal.Z, 1e-6)
}

func TestDecodeGLTFBinary(t *testing.T) {
	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = true
	require.NoError(t, enc.Encode(triangleDoc()))

	set, err := scene.DecodeGLTF(&buf)
	require.NoError(t, err)
	checkTriangles(t, set)
}

func TestDecodeGLTFGarbage(t *testing.T) {
	_, err := scene.DecodeGLTF(bytes.NewReader([]byte("not gltf")))
	assert.ErrorContains(t, err, "gltf decode")
}

func TestDecodeGLTFDanglingAccessor(t *testing.T) {
	doc := `{"asset":{"version":"2.0"},"meshes":[{"primitives":[{"attributes":{"POSITION":7}}]}]}`
	var err error
	require.NotPanics(t, func() { _, err = scene.DecodeGLTF(bytes.NewReader([]byte(doc))) })
	assert.Error(t, err)
}
