package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"render-demo/core"
	"render-demo/gpu"
)

func pixel(img gpu.Image, x, y int) [3]byte {
	i := (y*img.Width + x) * 3
	return [3]byte{img.Pix[i], img.Pix[i+1], img.Pix[i+2]}
}

func TestChessboardImage(t *testing.T) {
	img := ChessboardImage(2, 4)
	require.Equal(t, gpu.RGB, img.Layout)
	require.Len(t, img.Pix, 4*4*3)

	white, black := core.ColorWhite.RGB8(), core.ColorBlack.RGB8()
	assert.Equal(t, white, pixel(img, 0, 0))
	assert.Equal(t, white, pixel(img, 1, 1))
	assert.Equal(t, black, pixel(img, 2, 0))
	assert.Equal(t, black, pixel(img, 0, 3))
	assert.Equal(t, white, pixel(img, 3, 3))
}

func TestSkyColor(t *testing.T) {
	assert.Equal(t, SkyHorizon, SkyColor(0))
	assert.InDelta(t, SkyZenith.B, SkyColor(1).B, 1e-6)
	assert.InDelta(t, SkyGround.R, SkyColor(-1).R, 1e-6)
	assert.InDelta(t, SkyGround.G, SkyColor(-0.5).G, 1e-6)
}

func TestGradientCubemap(t *testing.T) {
	faces := GradientCubemap(8)
	require.Len(t, faces, 6)
	for _, f := range faces {
		assert.Equal(t, 8, f.Width)
		assert.Len(t, f.Pix, 8*8*3)
	}

	// The ceiling is darker blue than the horizon band of a side face.
	up := pixel(faces[gpu.FacePositiveY], 4, 4)
	side := pixel(faces[gpu.FacePositiveX], 4, 4)
	assert.Less(t, up[0], side[0])
	ground, floor := SkyGround.RGB8(), pixel(faces[gpu.FaceNegativeY], 4, 4)
	for i := range ground {
		assert.InDelta(t, ground[i], floor[i], 1)
	}

	// Rows run top to bottom, so the top row of a side face looks upwards.
	top := pixel(faces[gpu.FacePositiveZ], 4, 0)
	bottom := pixel(faces[gpu.FacePositiveZ], 4, 7)
	assert.Greater(t, top[2], bottom[2])
}

func TestFaceDirection(t *testing.T) {
	for face := gpu.FacePositiveX; face <= gpu.FaceNegativeZ; face++ {
		d := faceDirection(face, 0, 0)
		assert.InDelta(t, 1, d.Length(), 1e-6, face)
	}
	assert.Equal(t, float32(1), faceDirection(gpu.FacePositiveY, 0, 0).Y)
	assert.Equal(t, float32(-1), faceDirection(gpu.FaceNegativeZ, 0, 0).Z)
}

func TestSolidImage(t *testing.T) {
	img := SolidImage(core.Color{R: 1, G: 0.5, B: 0, A: 1})
	assert.Equal(t, []byte{255, 128, 0}, img.Pix)
}
