package scene_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"render-demo/gpu"
	"render-demo/math"
	"render-demo/mesh"
	"render-demo/scene"
)

func uniform(loc int32, format string, args ...any) string {
	return fmt.Sprintf("%s %d %s", format, loc, fmt.Sprint(args...))
}

func TestTexturedSphere(t *testing.T) {
	dev := newDevice()
	sphere, err := scene.NewTexturedSphere(dev, 8, 8, scene.ChessboardImage(8, 64))
	require.NoError(t, err)
	require.NoError(t, sphere.Init())

	assert.Contains(t, dev.Calls, "TexImage2D 0 0 64x64 2")
	assert.Contains(t, dev.Calls, fmt.Sprintf("TexParameter %d %d", gpu.ParamWrapS, gpu.Repeat))
	assert.Contains(t, dev.Calls, fmt.Sprintf("TexParameter %d %d", gpu.ParamMinFilter, gpu.Linear))

	m, err := mesh.Sphere[mesh.VertexNT](8, 8)
	require.NoError(t, err)

	dev.Reset()
	sphere.Tick()
	sphere.Tick()
	require.NoError(t, sphere.Draw(scene.NewCamera()))

	assert.Equal(t, "ActiveTexture 0", dev.Calls[1])
	assert.Contains(t, dev.Calls, uniform(locTime, "Uniform1f", 2))
	assert.Contains(t, dev.Calls, fmt.Sprintf("DrawElements triangles %d", len(m.Indices)))
	assert.Equal(t, "UseProgram 0", dev.Calls[len(dev.Calls)-1])
	assert.Equal(t, "BindTexture 0 0", dev.Calls[len(dev.Calls)-2])

	sphere.Destroy()
	assert.Equal(t, 1, dev.Deleted["texture"])
	assert.Equal(t, 1, dev.Deleted["program"])
	assert.Equal(t, 2, dev.Deleted["buffer"])
}

func TestTexturedCylinderResolution(t *testing.T) {
	_, err := scene.NewTexturedCylinder(newDevice(), 1, 2, scene.ChessboardImage(2, 2))
	require.ErrorIs(t, err, mesh.ErrInvalidResolution)
}

func TestTexturedShapeBadImage(t *testing.T) {
	dev := newDevice()
	cyl, err := scene.NewTexturedCylinder(dev, 2, 8, gpu.Image{Width: 2, Height: 2, Layout: gpu.RGB})
	require.NoError(t, err)

	var formatErr *gpu.UnsupportedImageFormatError
	require.ErrorAs(t, cyl.Init(), &formatErr)
	cyl.Destroy()
	assert.Equal(t, 1, dev.Deleted["program"])
}

func TestShapeCompileError(t *testing.T) {
	dev := newDevice()
	dev.CompileFail = "sampler2D"
	sphere, err := scene.NewTexturedSphere(dev, 4, 4, scene.ChessboardImage(2, 2))
	require.NoError(t, err)

	var compileErr *gpu.CompileError
	require.ErrorAs(t, sphere.Init(), &compileErr)
	assert.Equal(t, "shape.frag", compileErr.Name)
}

func TestQuad(t *testing.T) {
	dev := newDevice()
	q := scene.NewQuad(dev)
	require.NoError(t, q.Init())

	dev.Reset()
	q.Tick()
	q.Tick()
	require.NoError(t, q.Draw(nil))

	assert.Contains(t, dev.Calls, uniform(locTime, "Uniform1f", 0.1))
	assert.Contains(t, dev.Calls, uniform(locM, "UniformMatrix4fv", 0))
	assert.Contains(t, dev.Calls, "DrawElements triangles 6")
}

func TestSkybox(t *testing.T) {
	dev := newDevice()
	sky := scene.NewSkybox(dev, scene.GradientCubemap(4))
	require.NoError(t, sky.Init())
	assert.Len(t, dev.CallsWith("TexImage2D 1"), 6)
	assert.Contains(t, dev.Calls, fmt.Sprintf("TexParameter %d %d", gpu.ParamWrapR, gpu.ClampToEdge))

	cam := scene.NewCamera()
	cam.LookAt(math.NewVec3(1, 0, 2), math.NewVec3(1, 0, 0), math.Vec3Up)
	require.NotZero(t, cam.View()[3][0])

	dev.Reset()
	require.NoError(t, sky.Draw(cam))

	assert.Equal(t, fmt.Sprintf("DepthFunc %d", gpu.DepthLessEqual), dev.Calls[0])
	assert.Equal(t, "DepthMask false", dev.Calls[1])
	assert.Contains(t, dev.Calls, uniform(locView, "UniformMatrix4fv", 0))
	assert.Contains(t, dev.Calls, "DrawElements triangles 36")
	n := len(dev.Calls)
	assert.Equal(t, []string{"DepthMask true", fmt.Sprintf("DepthFunc %d", gpu.DepthLess)}, dev.Calls[n-2:])
}

func TestSkyboxMalformed(t *testing.T) {
	dev := newDevice()
	sky := scene.NewSkybox(dev, scene.GradientCubemap(4)[:5])

	var cubeErr *gpu.MalformedCubemapError
	require.ErrorAs(t, sky.Init(), &cubeErr)
	assert.Equal(t, 5, cubeErr.Count)
	sky.Destroy()
	assert.Empty(t, dev.CallsWith("GenTexture"))
}

func TestMeshObjectMaterials(t *testing.T) {
	tri := func() *mesh.Mesh[mesh.VertexNT] {
		return &mesh.Mesh[mesh.VertexNT]{
			Vertices: make([]mesh.VertexNT, 3),
			Indices:  []uint32{0, 1, 2},
			Topology: gpu.Triangles,
		}
	}
	set := &scene.ModelSet{
		Models: []scene.Model{
			{Name: "red", Mesh: tri(), Material: 0},
			{Name: "plain", Mesh: tri(), Material: scene.NoMaterial},
		},
		Materials: []scene.Material{{Name: "red", Diffuse: [3]float32{1, 0, 0}}},
	}
	dev := newDevice()
	obj := scene.NewMeshObject(dev, set)
	require.NoError(t, obj.Init())

	dev.Reset()
	require.NoError(t, obj.Draw(scene.NewCamera()))

	diffuse := dev.CallsWith("Uniform3f")
	assert.Equal(t, []string{
		uniform(locDiffuse, "Uniform3f", "1 0 0"),
		uniform(locDiffuse, "Uniform3f", "0.8 0.8 0.8"),
	}, diffuse)
	assert.Len(t, dev.CallsWith("DrawElements triangles 3"), 2)

	obj.Destroy()
	assert.Equal(t, 4, dev.Deleted["buffer"])
}

func TestDepthMeshObject(t *testing.T) {
	depth := scene.DemoDepth(20, 20)
	require.Len(t, depth, 400)
	assert.InDelta(t, -1.5, depth[0], 1e-6)

	dev := newDevice()
	obj, err := scene.NewDepthMeshObject(dev, depth, 20, 20)
	require.NoError(t, err)
	require.NoError(t, obj.Init())

	m, err := mesh.DepthGrid[mesh.VertexNT](depth, 20, 20)
	require.NoError(t, err)

	dev.Reset()
	require.NoError(t, obj.Draw(scene.NewCamera()))
	assert.Contains(t, dev.Calls, fmt.Sprintf("DrawElements triangle-strip %d", len(m.Indices)))

	_, err = scene.NewDepthMeshObject(dev, depth, 10, 10)
	require.ErrorIs(t, err, mesh.ErrDepthSize)
}
