package scene_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"render-demo/math"
	"render-demo/scene"
)

func TestCameraDefaults(t *testing.T) {
	cam := scene.NewCamera()
	assert.Equal(t, math.NewVec3(0, 0, 2), cam.Eye)
	assert.Equal(t, float32(1), cam.NearPlane)
	assert.Equal(t, float32(80), cam.FarPlane)
	assert.InDelta(t, math32.Pi/3, cam.FOV, 1e-6)

	view := cam.View()
	assert.InDelta(t, -2, view[3][2], 1e-6)
	assert.InDelta(t, 0, view[3][0], 1e-6)
}

func TestCameraAspect(t *testing.T) {
	cam := scene.NewCamera()
	square := cam.Perspective()

	cam.SetAspect(2)
	wide := cam.Perspective()
	assert.InDelta(t, square[0][0]/2, wide[0][0], 1e-6)
	assert.Equal(t, square[1][1], wide[1][1])
}

func TestCameraLookAt(t *testing.T) {
	cam := scene.NewCamera()
	before := cam.View()
	cam.LookAt(math.NewVec3(1, 0, 2), math.NewVec3(1, 0, 0), math.Vec3Up)

	after := cam.View()
	assert.NotEqual(t, before, after)
	assert.InDelta(t, -1, after[3][0], 1e-6)

	// The target lands on the view axis.
	p := math.NewVec4(1, 0, 0, 1).MulMat(after)
	assert.InDelta(t, 0, p.X, 1e-6)
	assert.InDelta(t, -2, p.Z, 1e-6)
}
