package scene

import (
	"fmt"

	"render-demo/gpu"
	"render-demo/math"
	"render-demo/mesh"
)

// MeshObject draws every model of a ModelSet with its diffuse material.
type MeshObject struct {
	dev       gpu.Device
	set       *ModelSet
	fallback  Material
	transform math.Mat4

	program *gpu.Program
	shapes  []*gpu.Shape
}

// NewMeshObject wraps decoded models for drawing.
func NewMeshObject(dev gpu.Device, set *ModelSet) *MeshObject {
	return &MeshObject{
		dev:       dev,
		set:       set,
		fallback:  DefaultMaterial(),
		transform: math.Mat4Identity(),
	}
}

// NewDepthMeshObject builds a MeshObject from a single height field.
func NewDepthMeshObject(dev gpu.Device, depth []float32, rows, cols int) (*MeshObject, error) {
	m, err := mesh.DepthGrid[mesh.VertexNT](depth, rows, cols)
	if err != nil {
		return nil, err
	}
	set := &ModelSet{Models: []Model{{Name: "depth", Mesh: m, Material: NoMaterial}}}
	return NewMeshObject(dev, set), nil
}

// DemoDepth samples the paraboloid 0.5-(x²+y²) over [-1,1]² on a rows x cols
// grid, row-major.
func DemoDepth(rows, cols int) []float32 {
	depth := make([]float32, rows*cols)
	for i := range rows {
		x := 2*float32(i)/float32(max(rows-1, 1)) - 1
		for j := range cols {
			y := 2*float32(j)/float32(max(cols-1, 1)) - 1
			depth[i*cols+j] = 1 - (x*x + y*y) - 0.5
		}
	}
	return depth
}

func (o *MeshObject) Init() error {
	var err error
	if o.program, err = loadProgram(o.dev, "mesh"); err != nil {
		return err
	}
	for _, m := range o.set.Models {
		shape, err := m.Mesh.Upload(o.dev)
		if err != nil {
			return fmt.Errorf("model %q: %w", m.Name, err)
		}
		o.shapes = append(o.shapes, shape)
	}
	gpu.Logger().Debug("mesh object ready", "models", len(o.shapes), "triangles", o.set.Triangles())
	return nil
}

func (o *MeshObject) Tick() {}

func (o *MeshObject) Draw(cam *Camera) error {
	return o.program.Use(func(u *gpu.Uniforms) error {
		if err := gpu.Set(u, "view", cam.View()); err != nil {
			return err
		}
		if err := gpu.Set(u, "perspective", cam.Perspective()); err != nil {
			return err
		}
		if err := gpu.Set(u, "model", o.transform); err != nil {
			return err
		}
		for i, shape := range o.shapes {
			mat := o.set.material(o.set.Models[i], o.fallback)
			if err := gpu.Set(u, "cDiffuse", mat.Diffuse); err != nil {
				return err
			}
			shape.Draw()
		}
		return nil
	})
}

func (o *MeshObject) Destroy() {
	for _, s := range o.shapes {
		s.Destroy()
	}
	o.shapes = nil
	if o.program != nil {
		o.program.Destroy()
	}
}
