package scene

import (
	"render-demo/gpu"
	"render-demo/math"
	"render-demo/mesh"
)

// Quad is a screen-filling animated quad.
type Quad struct {
	dev gpu.Device

	program *gpu.Program
	shape   *gpu.Shape

	transform math.Mat4
	time      float32
}

func NewQuad(dev gpu.Device) *Quad {
	return &Quad{dev: dev, transform: math.Mat4Scale(math.NewVec3(2, 2, 1))}
}

func (q *Quad) Init() error {
	var err error
	if q.program, err = loadProgram(q.dev, "quad"); err != nil {
		return err
	}
	q.shape, err = mesh.Quad().Upload(q.dev)
	return err
}

func (q *Quad) Tick() { q.time += 0.05 }

func (q *Quad) Draw(*Camera) error {
	return q.program.Use(func(u *gpu.Uniforms) error {
		if err := gpu.Set(u, "u_time", q.time); err != nil {
			return err
		}
		if err := gpu.Set(u, "m", q.transform); err != nil {
			return err
		}
		q.shape.Draw()
		return nil
	})
}

func (q *Quad) Destroy() {
	if q.shape != nil {
		q.shape.Destroy()
	}
	if q.program != nil {
		q.program.Destroy()
	}
}
