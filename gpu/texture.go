package gpu

import "log/slog"

// Texture owns one GL texture object bound to a 2D or cube map target.
type Texture struct {
	dev    Device
	id     uint32
	target TextureTarget
	unit   uint32
}

// NewTexture2D uploads img to a new 2D texture. The upload format follows
// the image's pixel layout.
func NewTexture2D(dev Device, img Image) (*Texture, error) {
	format, err := img.validate()
	if err != nil {
		return nil, err
	}
	t := &Texture{dev: dev, id: dev.GenTexture(), target: Texture2D}
	dev.BindTexture(Texture2D, t.id)
	dev.TexImage2D(Texture2D, 0, int32(img.Width), int32(img.Height), format, img.Pix)
	dev.BindTexture(Texture2D, 0)

	Logger().Debug("texture created", slog.Uint64("id", uint64(t.id)),
		slog.Int("width", img.Width), slog.Int("height", img.Height))
	return t, nil
}

// NewCubemap uploads six faces, ordered +X, -X, +Y, -Y, +Z, -Z, to a new
// cube map texture. No GL object is created unless all faces are valid.
func NewCubemap(dev Device, faces []Image) (*Texture, error) {
	if len(faces) != 6 {
		return nil, &MalformedCubemapError{Count: len(faces)}
	}
	formats := make([]PixelFormat, len(faces))
	for i, face := range faces {
		f, err := face.validate()
		if err != nil {
			return nil, err
		}
		formats[i] = f
	}

	t := &Texture{dev: dev, id: dev.GenTexture(), target: TextureCubeMap}
	dev.BindTexture(TextureCubeMap, t.id)
	for i, face := range faces {
		dev.TexImage2D(TextureCubeMap, CubeFace(i), int32(face.Width), int32(face.Height), formats[i], face.Pix)
	}
	dev.BindTexture(TextureCubeMap, 0)

	Logger().Debug("cubemap created", slog.Uint64("id", uint64(t.id)))
	return t, nil
}

// Target returns the texture's binding target.
func (t *Texture) Target() TextureTarget { return t.target }

// Bind activates texture unit and binds the texture to it.
func (t *Texture) Bind(unit uint32) {
	t.unit = unit
	t.dev.ActiveTexture(unit)
	t.dev.BindTexture(t.target, t.id)
}

// Unbind clears the unit the texture was last bound to.
func (t *Texture) Unbind() {
	t.dev.ActiveTexture(t.unit)
	t.dev.BindTexture(t.target, 0)
}

// Destroy releases the texture object. Calling it again is a no-op.
func (t *Texture) Destroy() {
	if t.id == 0 {
		return
	}
	t.dev.DeleteTexture(t.id)
	t.id = 0
}

type paramPair struct {
	param TextureParam
	value ParamValue
}

// TextureParameters collects texture parameters and applies them in one
// bind, set, unbind cycle:
//
//	gpu.NewTextureParameters().
//		Filter(gpu.Linear).
//		Wrap2D(gpu.Repeat).
//		Mipmaps().
//		ApplyTo(tex)
type TextureParameters struct {
	params  []paramPair
	mipmaps bool
}

func NewTextureParameters() *TextureParameters {
	return &TextureParameters{}
}

// Set queues a single parameter.
func (p *TextureParameters) Set(param TextureParam, value ParamValue) *TextureParameters {
	p.params = append(p.params, paramPair{param, value})
	return p
}

// Filter queues the same minification and magnification filter.
func (p *TextureParameters) Filter(v ParamValue) *TextureParameters {
	return p.Set(ParamMinFilter, v).Set(ParamMagFilter, v)
}

// Wrap2D queues the wrap mode for S and T.
func (p *TextureParameters) Wrap2D(v ParamValue) *TextureParameters {
	return p.Set(ParamWrapS, v).Set(ParamWrapT, v)
}

// Wrap3D queues the wrap mode for S, T and R.
func (p *TextureParameters) Wrap3D(v ParamValue) *TextureParameters {
	return p.Wrap2D(v).Set(ParamWrapR, v)
}

// Mipmaps requests mipmap generation after the parameters are applied.
func (p *TextureParameters) Mipmaps() *TextureParameters {
	p.mipmaps = true
	return p
}

// ApplyTo binds tex, applies the queued parameters in order and unbinds it.
func (p *TextureParameters) ApplyTo(tex *Texture) {
	tex.dev.BindTexture(tex.target, tex.id)
	for _, pp := range p.params {
		tex.dev.TexParameter(tex.target, pp.param, pp.value)
	}
	if p.mipmaps {
		tex.dev.GenerateMipmap(tex.target)
	}
	tex.dev.BindTexture(tex.target, 0)
}
