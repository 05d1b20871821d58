package gpu

import (
	"fmt"
	"image"
	"io"

	// Registered decoders for DecodeImage.
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// PixelLayout is the channel layout of 8-bit image data.
type PixelLayout int

const (
	Luma PixelLayout = iota
	LumaAlpha
	RGB
	RGBA
	BGR
	BGRA
)

// Channels returns the number of bytes per pixel, or 0 for an unknown layout.
func (l PixelLayout) Channels() int {
	switch l {
	case Luma:
		return 1
	case LumaAlpha:
		return 2
	case RGB, BGR:
		return 3
	case RGBA, BGRA:
		return 4
	}
	return 0
}

func (l PixelLayout) format() (PixelFormat, bool) {
	switch l {
	case Luma:
		return FormatRed, true
	case LumaAlpha:
		return FormatRG, true
	case RGB:
		return FormatRGB, true
	case RGBA:
		return FormatRGBA, true
	case BGR:
		return FormatBGR, true
	case BGRA:
		return FormatBGRA, true
	}
	return 0, false
}

// Image is tightly packed 8-bit pixel data, rows top to bottom.
type Image struct {
	Width, Height int
	Layout        PixelLayout
	Pix           []byte
}

// validate returns the upload format for img.
func (img Image) validate() (PixelFormat, error) {
	format, ok := img.Layout.format()
	if !ok {
		return 0, &UnsupportedImageFormatError{Reason: fmt.Sprintf("pixel layout %d", img.Layout)}
	}
	if img.Width <= 0 || img.Height <= 0 {
		return 0, &UnsupportedImageFormatError{Reason: fmt.Sprintf("size %dx%d", img.Width, img.Height)}
	}
	if want := img.Width * img.Height * img.Layout.Channels(); len(img.Pix) != want {
		return 0, &UnsupportedImageFormatError{
			Reason: fmt.Sprintf("%d bytes of pixel data, want %d", len(img.Pix), want),
		}
	}
	return format, nil
}

// FromImage packs a decoded image. Grayscale images keep a single channel;
// everything else is converted to non-premultiplied RGBA.
func FromImage(src image.Image) Image {
	if g, ok := src.(*image.Gray); ok {
		b := g.Bounds()
		out := Image{Width: b.Dx(), Height: b.Dy(), Layout: Luma, Pix: make([]byte, b.Dx()*b.Dy())}
		for y := 0; y < b.Dy(); y++ {
			row := g.Pix[y*g.Stride : y*g.Stride+b.Dx()]
			copy(out.Pix[y*b.Dx():], row)
		}
		return out
	}
	n := imaging.Clone(src)
	return Image{Width: n.Rect.Dx(), Height: n.Rect.Dy(), Layout: RGBA, Pix: n.Pix}
}

// DecodeImage decodes PNG, JPEG, BMP, TIFF or WebP data from r.
func DecodeImage(r io.Reader) (Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return Image{}, fmt.Errorf("failed to decode image: %w", err)
	}
	Logger().Debug("decoded image", "format", format,
		"width", src.Bounds().Dx(), "height", src.Bounds().Dy())
	return FromImage(src), nil
}

// FlipV returns a copy of img mirrored top to bottom. GL expects the first
// row of texture data to be the bottom of the image.
func (img Image) FlipV() Image {
	if img.Layout == RGBA {
		n := &image.NRGBA{Pix: img.Pix, Stride: img.Width * 4, Rect: image.Rect(0, 0, img.Width, img.Height)}
		flipped := imaging.FlipV(n)
		return Image{Width: img.Width, Height: img.Height, Layout: RGBA, Pix: flipped.Pix}
	}
	rowLen := img.Width * img.Layout.Channels()
	out := Image{Width: img.Width, Height: img.Height, Layout: img.Layout, Pix: make([]byte, len(img.Pix))}
	for y := 0; y < img.Height; y++ {
		copy(out.Pix[(img.Height-1-y)*rowLen:], img.Pix[y*rowLen:(y+1)*rowLen])
	}
	return out
}
