package gpu_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"render-demo/gpu"
	"render-demo/gpu/gputest"
)

func solid(w, h int, layout gpu.PixelLayout) gpu.Image {
	return gpu.Image{Width: w, Height: h, Layout: layout, Pix: make([]byte, w*h*layout.Channels())}
}

func TestTextureFormatFollowsLayout(t *testing.T) {
	tests := []struct {
		layout gpu.PixelLayout
		want   gpu.PixelFormat
	}{
		{gpu.Luma, gpu.FormatRed},
		{gpu.LumaAlpha, gpu.FormatRG},
		{gpu.RGB, gpu.FormatRGB},
		{gpu.RGBA, gpu.FormatRGBA},
		{gpu.BGR, gpu.FormatBGR},
		{gpu.BGRA, gpu.FormatBGRA},
	}
	for _, tt := range tests {
		dev := gputest.NewDevice()
		tex, err := gpu.NewTexture2D(dev, solid(2, 3, tt.layout))
		require.NoError(t, err)
		assert.Equal(t, gpu.Texture2D, tex.Target())
		assert.Equal(t, []string{
			"GenTexture 1",
			"BindTexture 0 1",
			"TexImage2D 0 0 2x3 " + string(rune('0'+int(tt.want))),
			"BindTexture 0 0",
		}, dev.Calls)
	}
}

func TestNewTexture2DRejectsBadData(t *testing.T) {
	dev := gputest.NewDevice()

	_, err := gpu.NewTexture2D(dev, gpu.Image{Width: 2, Height: 2, Layout: gpu.RGB, Pix: make([]byte, 11)})
	var fe *gpu.UnsupportedImageFormatError
	assert.ErrorAs(t, err, &fe)

	_, err = gpu.NewTexture2D(dev, gpu.Image{Width: 1, Height: 1, Layout: gpu.PixelLayout(42), Pix: []byte{0}})
	assert.ErrorAs(t, err, &fe)
	assert.Empty(t, dev.Calls)
}

func TestCubemapNeedsSixFaces(t *testing.T) {
	for _, n := range []int{0, 5, 7} {
		dev := gputest.NewDevice()
		faces := make([]gpu.Image, n)
		for i := range faces {
			faces[i] = solid(4, 4, gpu.RGB)
		}
		tex, err := gpu.NewCubemap(dev, faces)
		assert.Nil(t, tex)
		var ce *gpu.MalformedCubemapError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, n, ce.Count)
		assert.Empty(t, dev.CallsWith("GenTexture"), "no texture object for %d faces", n)
	}
}

func TestCubemapUploadsFacesInOrder(t *testing.T) {
	dev := gputest.NewDevice()
	faces := make([]gpu.Image, 6)
	for i := range faces {
		faces[i] = solid(8, 8, gpu.RGBA)
	}
	tex, err := gpu.NewCubemap(dev, faces)
	require.NoError(t, err)
	assert.Equal(t, gpu.TextureCubeMap, tex.Target())

	uploads := dev.CallsWith("TexImage2D")
	require.Len(t, uploads, 6)
	for i, call := range uploads {
		assert.Equal(t, "TexImage2D 1 "+string(rune('0'+i))+" 8x8 3", call)
	}
}

func TestTextureParametersSingleCycle(t *testing.T) {
	dev := gputest.NewDevice()
	tex, err := gpu.NewTexture2D(dev, solid(1, 1, gpu.RGBA))
	require.NoError(t, err)
	dev.Reset()

	gpu.NewTextureParameters().
		Filter(gpu.Linear).
		Wrap3D(gpu.ClampToEdge).
		Set(gpu.ParamMaxLevel, gpu.Nearest).
		Mipmaps().
		ApplyTo(tex)

	assert.Equal(t, []string{
		"BindTexture 0 1",
		"TexParameter 0 1",
		"TexParameter 1 1",
		"TexParameter 2 3",
		"TexParameter 3 3",
		"TexParameter 4 3",
		"TexParameter 6 0",
		"GenerateMipmap 0",
		"BindTexture 0 0",
	}, dev.Calls)
}

func TestTextureBindUnit(t *testing.T) {
	dev := gputest.NewDevice()
	tex, err := gpu.NewTexture2D(dev, solid(1, 1, gpu.Luma))
	require.NoError(t, err)
	dev.Reset()

	tex.Bind(2)
	tex.Unbind()
	assert.Equal(t, []string{"ActiveTexture 2", "BindTexture 0 1", "ActiveTexture 2", "BindTexture 0 0"}, dev.Calls)

	tex.Destroy()
	tex.Destroy()
	assert.Equal(t, 1, dev.Deleted["texture"])
}

func TestDecodeImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})
	src.Set(1, 1, color.NRGBA{B: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	img, err := gpu.DecodeImage(&buf)
	require.NoError(t, err)
	assert.Equal(t, gpu.RGBA, img.Layout)
	assert.Equal(t, []byte{255, 0, 0, 255}, img.Pix[0:4])

	flipped := img.FlipV()
	assert.Equal(t, []byte{255, 0, 0, 255}, flipped.Pix[8:12])
	assert.Equal(t, []byte{0, 0, 255, 255}, flipped.Pix[4:8])

	_, err = gpu.DecodeImage(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestFromImageKeepsGray(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 3, 2))
	g.SetGray(2, 1, color.Gray{Y: 200})

	img := gpu.FromImage(g)
	assert.Equal(t, gpu.Luma, img.Layout)
	assert.Len(t, img.Pix, 6)
	assert.Equal(t, byte(200), img.Pix[5])

	flipped := img.FlipV()
	assert.Equal(t, byte(200), flipped.Pix[2])
}
