package scene

import (
	"fmt"
	"os"

	"github.com/chewxy/math32"

	"render-demo/core"
	"render-demo/gpu"
	"render-demo/math"
)

// LoadImage reads a PNG, JPEG, BMP, TIFF or WebP file and flips it so the
// first row is the bottom of the picture.
func LoadImage(path string) (gpu.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return gpu.Image{}, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, err := gpu.DecodeImage(f)
	if err != nil {
		return gpu.Image{}, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return img.FlipV(), nil
}

// SolidImage creates a 1x1 RGB image of c.
func SolidImage(c core.Color) gpu.Image {
	px := c.RGB8()
	return gpu.Image{Width: 1, Height: 1, Layout: gpu.RGB, Pix: px[:]}
}

// ChessboardImage creates a size x size RGB image of n x n alternating white
// and black squares. The bottom-left square is white.
func ChessboardImage(n, size int) gpu.Image {
	n = max(n, 1)
	size = max(size, n)
	img := gpu.Image{Width: size, Height: size, Layout: gpu.RGB, Pix: make([]byte, size*size*3)}

	white, black := core.ColorWhite.RGB8(), core.ColorBlack.RGB8()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px := black
			if (x*n/size+y*n/size)%2 == 0 {
				px = white
			}
			copy(img.Pix[(y*size+x)*3:], px[:])
		}
	}
	return img
}

// Sky gradient colours.
var (
	SkyZenith  = core.Color{R: 0.10, G: 0.30, B: 0.70, A: 1}
	SkyHorizon = core.Color{R: 0.60, G: 0.80, B: 1.00, A: 1}
	SkyGround  = core.Color{R: 0.30, G: 0.25, B: 0.20, A: 1}
)

// SkyColor returns the gradient colour seen along a direction whose
// normalized height is y.
func SkyColor(y float32) core.Color {
	if y > 0 {
		return SkyHorizon.Lerp(SkyZenith, math32.Pow(y, 0.4))
	}
	return SkyHorizon.Lerp(SkyGround, min(-y*3, 1))
}

// GradientCubemap renders the sky gradient into six size x size RGB faces,
// ordered +X, -X, +Y, -Y, +Z, -Z.
func GradientCubemap(size int) []gpu.Image {
	size = max(size, 1)
	faces := make([]gpu.Image, 6)
	for f := range faces {
		img := gpu.Image{Width: size, Height: size, Layout: gpu.RGB, Pix: make([]byte, size*size*3)}
		for j := 0; j < size; j++ {
			t := 2*(float32(j)+0.5)/float32(size) - 1
			for i := 0; i < size; i++ {
				s := 2*(float32(i)+0.5)/float32(size) - 1
				px := SkyColor(faceDirection(gpu.CubeFace(f), s, t).Normalize().Y).RGB8()
				copy(img.Pix[(j*size+i)*3:], px[:])
			}
		}
		faces[f] = img
	}
	return faces
}

// faceDirection maps face coordinates in [-1,1] to a direction, following
// the cube map face orientation table.
func faceDirection(face gpu.CubeFace, s, t float32) math.Vec3 {
	switch face {
	case gpu.FacePositiveX:
		return math.NewVec3(1, -t, -s)
	case gpu.FaceNegativeX:
		return math.NewVec3(-1, -t, s)
	case gpu.FacePositiveY:
		return math.NewVec3(s, 1, t)
	case gpu.FaceNegativeY:
		return math.NewVec3(s, -1, -t)
	case gpu.FacePositiveZ:
		return math.NewVec3(s, -t, 1)
	default:
		return math.NewVec3(-s, -t, -1)
	}
}
