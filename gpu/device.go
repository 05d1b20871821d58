package gpu

// Device is the set of native graphics calls the wrappers are built on.
// Every method maps to one OpenGL entry point and must be called on the
// thread that owns the context. The wrappers never cache binding state;
// they bind, operate and unbind within a single call.
//
// The production implementation lives in internal/opengl.
type Device interface {
	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target BufferTarget, id uint32)
	BufferData(target BufferTarget, data []byte)

	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	EnableVertexAttrib(slot Slot)
	VertexAttribPointer(slot Slot, size int32, typ ComponentType, normalize bool, stride int32, offset int)

	DrawArrays(mode Topology, first, count int32)
	DrawElements(mode Topology, count int32)

	// CompileShader returns ok=false and the info log on failure.
	CreateShader(stage ShaderStage) uint32
	CompileShader(id uint32, source string) (ok bool, log string)
	DeleteShader(id uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(id uint32) (ok bool, log string)
	DeleteProgram(id uint32)
	UseProgram(id uint32)
	ActiveUniforms(program uint32) []UniformInfo
	UniformLocation(program uint32, name string) int32

	Uniform1i(loc int32, v int32)
	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, x, y float32)
	Uniform3f(loc int32, x, y, z float32)
	Uniform4f(loc int32, x, y, z, w float32)
	UniformMatrix4fv(loc int32, m *[16]float32)

	GenTexture() uint32
	DeleteTexture(id uint32)
	ActiveTexture(unit uint32)
	BindTexture(target TextureTarget, id uint32)
	TexImage2D(target TextureTarget, face CubeFace, width, height int32, format PixelFormat, pixels []byte)
	TexParameter(target TextureTarget, param TextureParam, value ParamValue)
	GenerateMipmap(target TextureTarget)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear()
	DepthFunc(fn DepthFunc)
	DepthMask(write bool)
	PolygonMode(mode PolygonMode)
}

// UniformInfo describes one active uniform as reported after linking.
// Array uniforms are reported once, with Name ending in "[0]" and Size
// holding the declared length.
type UniformInfo struct {
	Name string
	Size int32
}
