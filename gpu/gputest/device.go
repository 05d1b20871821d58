// Package gputest provides a recording gpu.Device for tests that exercise
// GPU wrappers without a GL context.
package gputest

import (
	"fmt"
	"strings"

	"render-demo/gpu"
)

// Device records every call as a short string and hands out sequential
// object names.
type Device struct {
	Calls []string
	next  uint32

	// Uniforms is reported by ActiveUniforms for every program.
	Uniforms []gpu.UniformInfo
	// Locations maps uniform names, including "name[i]", to locations.
	// Unknown names resolve to -1.
	Locations map[string]int32

	// CompileFail makes CompileShader fail for sources containing it.
	CompileFail string
	// LinkFail, when set, is returned as the info log of every link.
	LinkFail string

	// Deleted counts releases per object kind.
	Deleted map[string]int
	// Uploads holds the last BufferData payload per buffer name.
	Uploads map[uint32][]byte
}

func NewDevice() *Device {
	return &Device{Locations: map[string]int32{}, Deleted: map[string]int{}, Uploads: map[uint32][]byte{}}
}

func (d *Device) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func (d *Device) gen() uint32 {
	d.next++
	return d.next
}

// CallsWith returns the recorded Calls starting with prefix.
func (d *Device) CallsWith(prefix string) []string {
	var out []string
	for _, c := range d.Calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

func (d *Device) Reset() { d.Calls = nil }

func (d *Device) GenBuffer() uint32 {
	id := d.gen()
	d.record("GenBuffer %d", id)
	return id
}
func (d *Device) DeleteBuffer(id uint32) {
	d.Deleted["buffer"]++
	d.record("DeleteBuffer %d", id)
}
func (d *Device) BindBuffer(target gpu.BufferTarget, id uint32) {
	name := "array"
	if target == gpu.ElementArrayBuffer {
		name = "element"
	}
	d.record("BindBuffer %s %d", name, id)
}
func (d *Device) BufferData(target gpu.BufferTarget, data []byte) {
	d.record("BufferData %d", len(data))
	d.Uploads[d.next] = append([]byte(nil), data...)
}
func (d *Device) GenVertexArray() uint32 {
	id := d.gen()
	d.record("GenVertexArray %d", id)
	return id
}
func (d *Device) DeleteVertexArray(id uint32) {
	d.Deleted["vertexarray"]++
	d.record("DeleteVertexArray %d", id)
}
func (d *Device) BindVertexArray(id uint32) { d.record("BindVertexArray %d", id) }
func (d *Device) EnableVertexAttrib(slot gpu.Slot) {
	d.record("EnableVertexAttrib %d", slot)
}
func (d *Device) VertexAttribPointer(slot gpu.Slot, size int32, typ gpu.ComponentType, normalize bool, stride int32, offset int) {
	d.record("VertexAttribPointer %d %d %d %d", slot, size, stride, offset)
}
func (d *Device) DrawArrays(mode gpu.Topology, first, count int32) {
	d.record("DrawArrays %s %d", mode, count)
}
func (d *Device) DrawElements(mode gpu.Topology, count int32) {
	d.record("DrawElements %s %d", mode, count)
}
func (d *Device) CreateShader(stage gpu.ShaderStage) uint32 {
	id := d.gen()
	d.record("CreateShader %s %d", stage, id)
	return id
}
func (d *Device) CompileShader(id uint32, source string) (bool, string) {
	d.record("CompileShader %d", id)
	if d.CompileFail != "" && strings.Contains(source, d.CompileFail) {
		return false, "0:1(1): error: syntax error"
	}
	return true, ""
}
func (d *Device) DeleteShader(id uint32) {
	d.Deleted["shader"]++
	d.record("DeleteShader %d", id)
}
func (d *Device) CreateProgram() uint32 {
	id := d.gen()
	d.record("CreateProgram %d", id)
	return id
}
func (d *Device) AttachShader(program, shader uint32) {
	d.record("AttachShader %d %d", program, shader)
}
func (d *Device) DetachShader(program, shader uint32) {
	d.record("DetachShader %d %d", program, shader)
}
func (d *Device) LinkProgram(id uint32) (bool, string) {
	d.record("LinkProgram %d", id)
	if d.LinkFail != "" {
		return false, d.LinkFail
	}
	return true, ""
}
func (d *Device) DeleteProgram(id uint32) {
	d.Deleted["program"]++
	d.record("DeleteProgram %d", id)
}
func (d *Device) UseProgram(id uint32) { d.record("UseProgram %d", id) }
func (d *Device) ActiveUniforms(program uint32) []gpu.UniformInfo {
	return d.Uniforms
}
func (d *Device) UniformLocation(program uint32, name string) int32 {
	if loc, ok := d.Locations[name]; ok {
		return loc
	}
	return -1
}
func (d *Device) Uniform1i(loc int32, v int32)   { d.record("Uniform1i %d %d", loc, v) }
func (d *Device) Uniform1f(loc int32, v float32) { d.record("Uniform1f %d %g", loc, v) }
func (d *Device) Uniform2f(loc int32, x, y float32) {
	d.record("Uniform2f %d %g %g", loc, x, y)
}
func (d *Device) Uniform3f(loc int32, x, y, z float32) {
	d.record("Uniform3f %d %g %g %g", loc, x, y, z)
}
func (d *Device) Uniform4f(loc int32, x, y, z, w float32) {
	d.record("Uniform4f %d %g %g %g %g", loc, x, y, z, w)
}
func (d *Device) UniformMatrix4fv(loc int32, m *[16]float32) {
	d.record("UniformMatrix4fv %d %g", loc, m[12])
}
func (d *Device) GenTexture() uint32 {
	id := d.gen()
	d.record("GenTexture %d", id)
	return id
}
func (d *Device) DeleteTexture(id uint32) {
	d.Deleted["texture"]++
	d.record("DeleteTexture %d", id)
}
func (d *Device) ActiveTexture(unit uint32) { d.record("ActiveTexture %d", unit) }
func (d *Device) BindTexture(target gpu.TextureTarget, id uint32) {
	d.record("BindTexture %d %d", target, id)
}
func (d *Device) TexImage2D(target gpu.TextureTarget, face gpu.CubeFace, width, height int32, format gpu.PixelFormat, pixels []byte) {
	d.record("TexImage2D %d %d %dx%d %d", target, face, width, height, format)
}
func (d *Device) TexParameter(target gpu.TextureTarget, param gpu.TextureParam, value gpu.ParamValue) {
	d.record("TexParameter %d %d", param, value)
}
func (d *Device) GenerateMipmap(target gpu.TextureTarget) { d.record("GenerateMipmap %d", target) }

func (d *Device) Viewport(x, y, width, height int32) {
	d.record("Viewport %d %d", width, height)
}
func (d *Device) ClearColor(r, g, b, a float32)    {}
func (d *Device) Clear()                           { d.record("Clear") }
func (d *Device) DepthFunc(fn gpu.DepthFunc)       { d.record("DepthFunc %d", fn) }
func (d *Device) DepthMask(write bool)             { d.record("DepthMask %t", write) }
func (d *Device) PolygonMode(mode gpu.PolygonMode) { d.record("PolygonMode %d", mode) }

var _ gpu.Device = (*Device)(nil)

