package gpu

import (
	"fmt"

	"render-demo/math"
)

// UniformValue lists the Go types that can be written to a uniform.
type UniformValue interface {
	int32 | float32 | math.Vec2 | math.Vec3 | math.Vec4 | math.Mat4 | [3]float32
}

// Uniforms is the handle to a program's uniforms while it is in use. It is
// only valid inside the callback passed to Program.Use.
type Uniforms struct {
	p      *Program
	active bool
}

// Location returns the cached location of element index of the named
// uniform. Index 0 addresses plain (non-array) uniforms.
func (u *Uniforms) Location(name string, index int) (int32, error) {
	if !u.active {
		return -1, fmt.Errorf("uniform %q: %w", name, ErrProgramNotInUse)
	}
	locs, ok := u.p.uniforms[name]
	if !ok {
		return -1, &UniformNotFoundError{Name: name}
	}
	if index < 0 || index >= len(locs) {
		return -1, &UniformIndexError{Name: name, Index: index, Len: len(locs)}
	}
	return locs[index], nil
}

// Set writes v to the named uniform. It is SetAt with index 0.
func Set[T UniformValue](u *Uniforms, name string, v T) error {
	return SetAt(u, name, 0, v)
}

// SetAt writes v to element index of the named uniform array.
func SetAt[T UniformValue](u *Uniforms, name string, index int, v T) error {
	loc, err := u.Location(name, index)
	if err != nil {
		return err
	}
	dev := u.p.dev
	switch x := any(v).(type) {
	case int32:
		dev.Uniform1i(loc, x)
	case float32:
		dev.Uniform1f(loc, x)
	case math.Vec2:
		dev.Uniform2f(loc, x.X, x.Y)
	case math.Vec3:
		dev.Uniform3f(loc, x.X, x.Y, x.Z)
	case math.Vec4:
		dev.Uniform4f(loc, x.X, x.Y, x.Z, x.W)
	case [3]float32:
		dev.Uniform3f(loc, x[0], x[1], x[2])
	case math.Mat4:
		flat := x.Flat()
		dev.UniformMatrix4fv(loc, &flat)
	}
	return nil
}
