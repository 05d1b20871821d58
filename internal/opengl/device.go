// Package opengl implements gpu.Device over the OpenGL 4.1 core profile.
package opengl

import (
	"fmt"
	"log/slog"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"render-demo/gpu"
)

// Device issues gpu.Device calls straight to OpenGL. It holds no state of its
// own; every call must happen on the thread owning the current context.
type Device struct{}

// New loads the OpenGL function pointers and sets the default pipeline
// state. Must be called after the window's context is made current.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	gpu.Logger().Info("OpenGL initialized", slog.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		slog.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	// Texture rows are tightly packed regardless of channel count.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	return &Device{}, nil
}

// ── Buffers ───────────────────────────────────────────────────────────────────

func (d *Device) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (d *Device) DeleteBuffer(id uint32) { gl.DeleteBuffers(1, &id) }

func (d *Device) BindBuffer(target gpu.BufferTarget, id uint32) {
	gl.BindBuffer(bufferTarget(target), id)
}

func (d *Device) BufferData(target gpu.BufferTarget, data []byte) {
	gl.BufferData(bufferTarget(target), len(data), gl.Ptr(data), gl.STATIC_DRAW)
}

// ── Vertex arrays ─────────────────────────────────────────────────────────────

func (d *Device) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (d *Device) DeleteVertexArray(id uint32) { gl.DeleteVertexArrays(1, &id) }

func (d *Device) BindVertexArray(id uint32) { gl.BindVertexArray(id) }

func (d *Device) EnableVertexAttrib(slot gpu.Slot) { gl.EnableVertexAttribArray(uint32(slot)) }

func (d *Device) VertexAttribPointer(slot gpu.Slot, size int32, typ gpu.ComponentType, normalize bool, stride int32, offset int) {
	gl.VertexAttribPointer(uint32(slot), size, componentType(typ), normalize, stride, gl.PtrOffset(offset))
}

func (d *Device) DrawArrays(mode gpu.Topology, first, count int32) {
	gl.DrawArrays(topology(mode), first, count)
}

func (d *Device) DrawElements(mode gpu.Topology, count int32) {
	gl.DrawElements(topology(mode), count, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

// ── Shaders and programs ──────────────────────────────────────────────────────

func (d *Device) CreateShader(stage gpu.ShaderStage) uint32 {
	if stage == gpu.FragmentStage {
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	return gl.CreateShader(gl.VERTEX_SHADER)
}

func (d *Device) CompileShader(id uint32, source string) (bool, string) {
	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csrc, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(id, logLen, nil, gl.Str(log))
		return false, strings.TrimRight(log, "\x00")
	}
	return true, ""
}

func (d *Device) DeleteShader(id uint32) { gl.DeleteShader(id) }

func (d *Device) CreateProgram() uint32 { return gl.CreateProgram() }

func (d *Device) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (d *Device) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

func (d *Device) LinkProgram(id uint32) (bool, string) {
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(id, logLen, nil, gl.Str(log))
		return false, strings.TrimRight(log, "\x00")
	}
	return true, ""
}

func (d *Device) DeleteProgram(id uint32) { gl.DeleteProgram(id) }

func (d *Device) UseProgram(id uint32) { gl.UseProgram(id) }

// ActiveUniforms lists the program's active uniforms. Array uniforms are
// reported by the driver as "name[0]" with their declared size.
func (d *Device) ActiveUniforms(program uint32) []gpu.UniformInfo {
	var count, maxLen int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	if count == 0 || maxLen == 0 {
		return nil
	}

	out := make([]gpu.UniformInfo, 0, count)
	buf := make([]uint8, maxLen)
	for i := int32(0); i < count; i++ {
		var length, size int32
		var typ uint32
		gl.GetActiveUniform(program, uint32(i), maxLen, &length, &size, &typ, &buf[0])
		out = append(out, gpu.UniformInfo{Name: string(buf[:length]), Size: size})
	}
	return out
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) Uniform1i(loc int32, v int32)            { gl.Uniform1i(loc, v) }
func (d *Device) Uniform1f(loc int32, v float32)          { gl.Uniform1f(loc, v) }
func (d *Device) Uniform2f(loc int32, x, y float32)       { gl.Uniform2f(loc, x, y) }
func (d *Device) Uniform3f(loc int32, x, y, z float32)    { gl.Uniform3f(loc, x, y, z) }
func (d *Device) Uniform4f(loc int32, x, y, z, w float32) { gl.Uniform4f(loc, x, y, z, w) }

func (d *Device) UniformMatrix4fv(loc int32, m *[16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

// ── Textures ──────────────────────────────────────────────────────────────────

func (d *Device) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (d *Device) DeleteTexture(id uint32) { gl.DeleteTextures(1, &id) }

func (d *Device) ActiveTexture(unit uint32) { gl.ActiveTexture(gl.TEXTURE0 + unit) }

func (d *Device) BindTexture(target gpu.TextureTarget, id uint32) {
	gl.BindTexture(textureTarget(target), id)
}

func (d *Device) TexImage2D(target gpu.TextureTarget, face gpu.CubeFace, width, height int32, format gpu.PixelFormat, pixels []byte) {
	imageTarget := uint32(gl.TEXTURE_2D)
	if target == gpu.TextureCubeMap {
		imageTarget = gl.TEXTURE_CUBE_MAP_POSITIVE_X + uint32(face)
	}
	gl.TexImage2D(imageTarget, 0, gl.RGBA, width, height, 0, pixelFormat(format), gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (d *Device) TexParameter(target gpu.TextureTarget, param gpu.TextureParam, value gpu.ParamValue) {
	gl.TexParameteri(textureTarget(target), textureParam(param), paramValue(param, value))
}

func (d *Device) GenerateMipmap(target gpu.TextureTarget) { gl.GenerateMipmap(textureTarget(target)) }

// ── Frame state ───────────────────────────────────────────────────────────────

func (d *Device) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (d *Device) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (d *Device) Clear() { gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT) }

func (d *Device) DepthFunc(fn gpu.DepthFunc) {
	if fn == gpu.DepthLessEqual {
		gl.DepthFunc(gl.LEQUAL)
		return
	}
	gl.DepthFunc(gl.LESS)
}

func (d *Device) DepthMask(write bool) { gl.DepthMask(write) }

func (d *Device) PolygonMode(mode gpu.PolygonMode) {
	if mode == gpu.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		return
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

var _ gpu.Device = (*Device)(nil)
