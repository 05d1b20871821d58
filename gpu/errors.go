package gpu

import (
	"errors"
	"fmt"
)

var (
	ErrLayoutMismatch = errors.New("vertex layout does not match attribute markers")
	ErrEmptyMesh      = errors.New("no vertex data")

	// ErrProgramNotInUse is returned by uniform writes after Program.Use has
	// returned.
	ErrProgramNotInUse = errors.New("program not in use")
)

// CompileError carries the driver's info log for a shader that failed to compile.
type CompileError struct {
	Name  string
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader %s:\n\t%s", e.Stage, e.Name, e.Log)
}

// LinkError carries the driver's info log for a program that failed to link.
type LinkError struct {
	Name string
	Log  string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program %s: %s", e.Name, e.Log)
}

// UniformNotFoundError is returned when a name is not an active uniform of
// the program. Lookup is case-sensitive.
type UniformNotFoundError struct {
	Name string
}

func (e *UniformNotFoundError) Error() string {
	return fmt.Sprintf("uniform %q not found", e.Name)
}

// UniformIndexError is returned when an array element beyond the
// discovered length is addressed.
type UniformIndexError struct {
	Name  string
	Index int
	Len   int
}

func (e *UniformIndexError) Error() string {
	return fmt.Sprintf("uniform %q: index %d out of range [0,%d)", e.Name, e.Index, e.Len)
}

// UnsupportedImageFormatError is returned for pixel data the texture upload
// cannot describe.
type UnsupportedImageFormatError struct {
	Reason string
}

func (e *UnsupportedImageFormatError) Error() string {
	return "unsupported image format: " + e.Reason
}

// MalformedCubemapError is returned when a cubemap is not given exactly six faces.
type MalformedCubemapError struct {
	Count int
}

func (e *MalformedCubemapError) Error() string {
	return fmt.Sprintf("cubemap needs 6 faces, got %d", e.Count)
}
