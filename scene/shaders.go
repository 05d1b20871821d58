package scene

import (
	"embed"
	"fmt"

	"render-demo/gpu"
)

//go:embed shaders/*.vert shaders/*.frag
var shaderFS embed.FS

// loadProgram compiles and links shaders/<name>.vert and shaders/<name>.frag.
func loadProgram(dev gpu.Device, name string) (*gpu.Program, error) {
	vert, err := shaderFS.ReadFile("shaders/" + name + ".vert")
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", name, err)
	}
	frag, err := shaderFS.ReadFile("shaders/" + name + ".frag")
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", name, err)
	}
	prog, err := gpu.NewProgramFromSource(dev, name, string(vert), string(frag))
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", name, err)
	}
	return prog, nil
}
