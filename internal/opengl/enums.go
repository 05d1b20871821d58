package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"render-demo/gpu"
)

func bufferTarget(t gpu.BufferTarget) uint32 {
	if t == gpu.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func topology(t gpu.Topology) uint32 {
	switch t {
	case gpu.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case gpu.TriangleFan:
		return gl.TRIANGLE_FAN
	case gpu.LineStrip:
		return gl.LINE_STRIP
	}
	return gl.TRIANGLES
}

func componentType(c gpu.ComponentType) uint32 {
	switch c {
	case gpu.Byte:
		return gl.BYTE
	case gpu.UnsignedByte:
		return gl.UNSIGNED_BYTE
	case gpu.Short:
		return gl.SHORT
	case gpu.UnsignedShort:
		return gl.UNSIGNED_SHORT
	case gpu.Int:
		return gl.INT
	case gpu.UnsignedInt:
		return gl.UNSIGNED_INT
	}
	return gl.FLOAT
}

func textureTarget(t gpu.TextureTarget) uint32 {
	if t == gpu.TextureCubeMap {
		return gl.TEXTURE_CUBE_MAP
	}
	return gl.TEXTURE_2D
}

func textureParam(p gpu.TextureParam) uint32 {
	switch p {
	case gpu.ParamMinFilter:
		return gl.TEXTURE_MIN_FILTER
	case gpu.ParamMagFilter:
		return gl.TEXTURE_MAG_FILTER
	case gpu.ParamWrapS:
		return gl.TEXTURE_WRAP_S
	case gpu.ParamWrapT:
		return gl.TEXTURE_WRAP_T
	case gpu.ParamWrapR:
		return gl.TEXTURE_WRAP_R
	case gpu.ParamBaseLevel:
		return gl.TEXTURE_BASE_LEVEL
	}
	return gl.TEXTURE_MAX_LEVEL
}

// paramValue maps a symbolic value to glTexParameteri's argument. Level
// parameters take the value as a plain integer.
func paramValue(p gpu.TextureParam, v gpu.ParamValue) int32 {
	if p == gpu.ParamBaseLevel || p == gpu.ParamMaxLevel {
		return int32(v)
	}
	switch v {
	case gpu.Nearest:
		return gl.NEAREST
	case gpu.Linear:
		return gl.LINEAR
	case gpu.LinearMipmapLinear:
		return gl.LINEAR_MIPMAP_LINEAR
	case gpu.ClampToEdge:
		return gl.CLAMP_TO_EDGE
	case gpu.ClampToBorder:
		return gl.CLAMP_TO_BORDER
	case gpu.Repeat:
		return gl.REPEAT
	case gpu.MirroredRepeat:
		return gl.MIRRORED_REPEAT
	}
	return gl.LINEAR
}

func pixelFormat(f gpu.PixelFormat) uint32 {
	switch f {
	case gpu.FormatRed:
		return gl.RED
	case gpu.FormatRG:
		return gl.RG
	case gpu.FormatRGB:
		return gl.RGB
	case gpu.FormatBGR:
		return gl.BGR
	case gpu.FormatBGRA:
		return gl.BGRA
	}
	return gl.RGBA
}
