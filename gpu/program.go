package gpu

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// MaxUniformArray caps how many elements of a uniform array get a cached
// location. Elements past the cap report a UniformIndexError.
var MaxUniformArray = 9

// Shader is one compiled shader stage.
type Shader struct {
	dev   Device
	id    uint32
	name  string
	stage ShaderStage
}

// NewShader compiles source for the given stage. A failed compile returns a
// *CompileError holding the driver's info log; no shader object is kept.
func NewShader(dev Device, name string, stage ShaderStage, source string) (*Shader, error) {
	id := dev.CreateShader(stage)
	if ok, log := dev.CompileShader(id, source); !ok {
		dev.DeleteShader(id)
		return nil, &CompileError{Name: name, Stage: stage, Log: log}
	}
	return &Shader{dev: dev, id: id, name: name, stage: stage}, nil
}

// Destroy releases the shader object. Calling it again is a no-op.
func (s *Shader) Destroy() {
	if s.id == 0 {
		return
	}
	s.dev.DeleteShader(s.id)
	s.id = 0
}

// Program is a linked shader program and the uniform locations discovered
// when it was linked.
type Program struct {
	dev      Device
	id       uint32
	name     string
	uniforms map[string][]int32
}

// NewProgram links shaders into a program. The shaders are detached after
// linking and remain owned by the caller.
func NewProgram(dev Device, name string, shaders ...*Shader) (*Program, error) {
	id := dev.CreateProgram()
	for _, s := range shaders {
		dev.AttachShader(id, s.id)
	}
	ok, log := dev.LinkProgram(id)
	for _, s := range shaders {
		dev.DetachShader(id, s.id)
	}
	if !ok {
		dev.DeleteProgram(id)
		return nil, &LinkError{Name: name, Log: log}
	}

	p := &Program{dev: dev, id: id, name: name, uniforms: make(map[string][]int32)}
	p.discoverUniforms()
	return p, nil
}

// NewProgramFromSource compiles a vertex and a fragment stage and links them.
// The intermediate shader objects are released before returning.
func NewProgramFromSource(dev Device, name, vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := NewShader(dev, name+".vert", VertexStage, vertexSrc)
	if err != nil {
		return nil, err
	}
	defer vs.Destroy()
	fs, err := NewShader(dev, name+".frag", FragmentStage, fragmentSrc)
	if err != nil {
		return nil, err
	}
	defer fs.Destroy()
	return NewProgram(dev, name, vs, fs)
}

func (p *Program) discoverUniforms() {
	for _, info := range p.dev.ActiveUniforms(p.id) {
		base := strings.Replace(info.Name, "[0]", "", 1)
		locs := []int32{p.dev.UniformLocation(p.id, base)}
		n := min(int(info.Size), MaxUniformArray)
		for i := 1; i < n; i++ {
			locs = append(locs, p.dev.UniformLocation(p.id, base+"["+strconv.Itoa(i)+"]"))
		}
		p.uniforms[base] = locs
		Logger().Debug("discovered uniform", slog.String("program", p.name),
			slog.String("name", base), slog.Int("locations", len(locs)))
	}
}

// Use makes the program current, runs fn with access to its uniforms and
// unbinds the program again. Errors from fn are returned unchanged.
func (p *Program) Use(fn func(u *Uniforms) error) error {
	p.dev.UseProgram(p.id)
	defer p.dev.UseProgram(0)
	if fn == nil {
		return nil
	}
	u := &Uniforms{p: p, active: true}
	defer func() { u.active = false }()
	return fn(u)
}

// Destroy releases the program object. Calling it again is a no-op.
func (p *Program) Destroy() {
	if p.id == 0 {
		return
	}
	p.dev.DeleteProgram(p.id)
	p.id = 0
}

func (p *Program) String() string {
	return fmt.Sprintf("Program(%s, %d uniforms)", p.name, len(p.uniforms))
}
