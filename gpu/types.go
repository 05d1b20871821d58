package gpu

import "fmt"

// Topology is the primitive assembly mode used by a draw call.
type Topology int

const (
	Triangles Topology = iota
	TriangleStrip
	TriangleFan
	LineStrip
)

func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle-strip"
	case TriangleFan:
		return "triangle-fan"
	case LineStrip:
		return "line-strip"
	}
	return fmt.Sprintf("Topology(%d)", int(t))
}

// Slot is a vertex attribute location. Vertex shaders must declare matching
// layout qualifiers:
//
//	layout(location = 0) in vec3 position;
//	layout(location = 5) in vec2 texcoord0;
type Slot uint32

const (
	SlotPosition Slot = iota
	SlotNormal
	SlotColor
	SlotTangent
	SlotBinormal
	SlotTexCoord0
	SlotTexCoord1
	SlotTexCoord2
	SlotTexCoord3
	SlotSpecial0
)

// ComponentType is the primitive type of one attribute component.
type ComponentType int

const (
	Byte ComponentType = iota
	UnsignedByte
	Short
	UnsignedShort
	Int
	UnsignedInt
	Float
)

// Size returns the byte width of one component.
func (c ComponentType) Size() int {
	switch c {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort:
		return 2
	default:
		return 4
	}
}

type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	if s == FragmentStage {
		return "fragment"
	}
	return "vertex"
}

type TextureTarget int

const (
	Texture2D TextureTarget = iota
	TextureCubeMap
)

// CubeFace selects one face of a cubemap upload, in the conventional
// +X, -X, +Y, -Y, +Z, -Z order.
type CubeFace int

const (
	FacePositiveX CubeFace = iota
	FaceNegativeX
	FacePositiveY
	FaceNegativeY
	FacePositiveZ
	FaceNegativeZ
)

// TextureParam names a glTexParameteri parameter.
type TextureParam int

const (
	ParamMinFilter TextureParam = iota
	ParamMagFilter
	ParamWrapS
	ParamWrapT
	ParamWrapR
	ParamBaseLevel
	ParamMaxLevel
)

// ParamValue is the value assigned to a TextureParam.
type ParamValue int

const (
	Nearest ParamValue = iota
	Linear
	LinearMipmapLinear
	ClampToEdge
	ClampToBorder
	Repeat
	MirroredRepeat
)

// PixelFormat is the client-side channel order of uploaded pixel data.
type PixelFormat int

const (
	FormatRed PixelFormat = iota
	FormatRG
	FormatRGB
	FormatRGBA
	FormatBGR
	FormatBGRA
)

type DepthFunc int

const (
	DepthLess DepthFunc = iota
	DepthLessEqual
)

// PolygonMode selects how front and back faces are rasterized.
type PolygonMode int

const (
	Fill PolygonMode = iota
	Wireframe
)
