package gpu_test

import (
	"encoding/binary"
	"errors"
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"render-demo/gpu"
	"render-demo/gpu/gputest"
)

func TestValidateLayout(t *testing.T) {
	tests := []struct {
		name    string
		markers []gpu.AttribMarker
		size    int
		wantErr bool
	}{
		{"exact", testVertex{}.Attribs(), 20, false},
		{"unordered", []gpu.AttribMarker{gpu.Float32Attrib(gpu.SlotNormal, 3, 12), gpu.Float32Attrib(gpu.SlotPosition, 3, 0)}, 24, false},
		{"gap", []gpu.AttribMarker{gpu.Float32Attrib(gpu.SlotPosition, 3, 0), gpu.Float32Attrib(gpu.SlotNormal, 3, 16)}, 28, true},
		{"overlap", []gpu.AttribMarker{gpu.Float32Attrib(gpu.SlotPosition, 3, 0), gpu.Float32Attrib(gpu.SlotNormal, 3, 8)}, 20, true},
		{"short", []gpu.AttribMarker{gpu.Float32Attrib(gpu.SlotPosition, 3, 0)}, 16, true},
		{"duplicate slot", []gpu.AttribMarker{gpu.Float32Attrib(gpu.SlotPosition, 2, 0), gpu.Float32Attrib(gpu.SlotPosition, 2, 8)}, 16, true},
		{"empty", nil, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gpu.ValidateLayout(tt.markers, tt.size)
			if tt.wantErr {
				assert.ErrorIs(t, err, gpu.ErrLayoutMismatch)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewVertexBufferUploadsOnce(t *testing.T) {
	dev := gputest.NewDevice()
	data := []testVertex{{Pos: [3]float32{1, 2, 3}, UV: [2]float32{0.5, 1}}, {}}

	vbo, err := gpu.NewVertexBuffer(dev, data)
	require.NoError(t, err)
	assert.Equal(t, 2, vbo.Len())
	assert.Equal(t, []string{
		"GenBuffer 1",
		"BindBuffer array 1",
		"BufferData 40",
		"BindBuffer array 0",
	}, dev.Calls)

	raw := dev.Uploads[1]
	require.Len(t, raw, 40)
	assert.Equal(t, float32(2), gomath.Float32frombits(binary.LittleEndian.Uint32(raw[4:])))
	assert.Equal(t, float32(0.5), gomath.Float32frombits(binary.LittleEndian.Uint32(raw[12:])))
}

func TestNewVertexBufferRejectsBadLayout(t *testing.T) {
	dev := gputest.NewDevice()
	_, err := gpu.NewVertexBuffer(dev, []badVertex{{}})
	assert.ErrorIs(t, err, gpu.ErrLayoutMismatch)
	assert.Empty(t, dev.Calls)

	_, err = gpu.NewVertexBuffer(dev, []testVertex{})
	assert.True(t, errors.Is(err, gpu.ErrEmptyMesh))
}

func TestDrawObjectBindOrder(t *testing.T) {
	dev := gputest.NewDevice()
	vbo, err := gpu.NewVertexBuffer(dev, []testVertex{{}, {}, {}})
	require.NoError(t, err)
	ibo, err := gpu.NewIndexBuffer(dev, []uint32{0, 1, 2, 2, 1, 0})
	require.NoError(t, err)
	dev.Reset()

	obj := gpu.NewDrawObject(dev, vbo, ibo, gpu.Triangles)
	assert.Equal(t, []string{
		"GenVertexArray 3",
		"BindVertexArray 3",
		"BindBuffer array 1",
		"BindBuffer element 2",
		"EnableVertexAttrib 0",
		"VertexAttribPointer 0 3 20 0",
		"EnableVertexAttrib 5",
		"VertexAttribPointer 5 2 20 12",
		"BindBuffer array 0",
		"BindBuffer element 0",
		"BindVertexArray 0",
	}, dev.Calls)
	assert.Equal(t, 6, obj.Count())

	dev.Reset()
	obj.Draw()
	assert.Equal(t, []string{
		"BindVertexArray 3",
		"BindBuffer element 2",
		"DrawElements triangles 6",
		"BindBuffer element 0",
		"BindVertexArray 0",
	}, dev.Calls)
}

func TestDrawObjectWithoutIndices(t *testing.T) {
	dev := gputest.NewDevice()
	vbo, err := gpu.NewVertexBuffer(dev, []testVertex{{}, {}, {}, {}})
	require.NoError(t, err)

	obj := gpu.NewDrawObject(dev, vbo, nil, gpu.TriangleStrip)
	assert.Equal(t, 4, obj.Count())
	assert.Empty(t, dev.CallsWith("BindBuffer element"))

	dev.Reset()
	obj.Draw()
	assert.Equal(t, []string{"BindVertexArray 2", "DrawArrays triangle-strip 4", "BindVertexArray 0"}, dev.Calls)
}

func TestShapeDestroyOnce(t *testing.T) {
	dev := gputest.NewDevice()
	shape, err := gpu.NewShape(dev, []testVertex{{}, {}, {}}, []uint32{0, 1, 2}, gpu.Triangles)
	require.NoError(t, err)
	assert.Equal(t, 3, shape.Count())

	dev.Reset()
	shape.Destroy()
	assert.Equal(t, []string{"DeleteVertexArray 3", "DeleteBuffer 2", "DeleteBuffer 1"}, dev.Calls)

	shape.Destroy()
	assert.Equal(t, 2, dev.Deleted["buffer"])
	assert.Equal(t, 1, dev.Deleted["vertexarray"])
}

func TestNewShapeReleasesVertexBufferOnIndexError(t *testing.T) {
	dev := gputest.NewDevice()
	_, err := gpu.NewShape(dev, []testVertex{{}}, nil, gpu.Triangles)
	assert.ErrorIs(t, err, gpu.ErrEmptyMesh)
	assert.Equal(t, 1, dev.Deleted["buffer"])
}

type testVertex struct {
	Pos [3]float32
	UV  [2]float32
}

func (testVertex) Attribs() []gpu.AttribMarker {
	return []gpu.AttribMarker{
		gpu.Float32Attrib(gpu.SlotPosition, 3, 0),
		gpu.Float32Attrib(gpu.SlotTexCoord0, 2, 12),
	}
}

type badVertex struct {
	Pos [3]float32
	Pad float32
}

func (badVertex) Attribs() []gpu.AttribMarker {
	return []gpu.AttribMarker{gpu.Float32Attrib(gpu.SlotPosition, 3, 0)}
}
