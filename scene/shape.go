package scene

import (
	"fmt"

	"render-demo/gpu"
	"render-demo/math"
	"render-demo/mesh"
)

const shapeSpin = 0.005

// TexturedShape draws a tessellated surface with a 2D texture, spinning
// slowly about the Y axis.
type TexturedShape struct {
	dev   gpu.Device
	name  string
	mesh  *mesh.Mesh[mesh.VertexNT]
	image gpu.Image

	program *gpu.Program
	shape   *gpu.Shape
	texture *gpu.Texture

	transform math.Mat4
	time      float32
}

// NewTexturedSphere tessellates a sphere to be drawn with img.
func NewTexturedSphere(dev gpu.Device, latStrips, lonSlices int, img gpu.Image) (*TexturedShape, error) {
	m, err := mesh.Sphere[mesh.VertexNT](latStrips, lonSlices)
	if err != nil {
		return nil, err
	}
	return newTexturedShape(dev, "sphere", m, img), nil
}

// NewTexturedCylinder tessellates a closed cylinder to be drawn with img.
func NewTexturedCylinder(dev gpu.Device, strips, slices int, img gpu.Image) (*TexturedShape, error) {
	m, err := mesh.Cylinder[mesh.VertexNT](strips, slices)
	if err != nil {
		return nil, err
	}
	return newTexturedShape(dev, "cylinder", m, img), nil
}

func newTexturedShape(dev gpu.Device, name string, m *mesh.Mesh[mesh.VertexNT], img gpu.Image) *TexturedShape {
	return &TexturedShape{dev: dev, name: name, mesh: m, image: img, transform: math.Mat4Identity()}
}

func (s *TexturedShape) Init() error {
	var err error
	if s.program, err = loadProgram(s.dev, "shape"); err != nil {
		return err
	}
	if s.shape, err = s.mesh.Upload(s.dev); err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}
	if s.texture, err = gpu.NewTexture2D(s.dev, s.image); err != nil {
		return fmt.Errorf("%s texture: %w", s.name, err)
	}
	gpu.NewTextureParameters().
		Wrap2D(gpu.Repeat).
		Filter(gpu.Linear).
		ApplyTo(s.texture)
	return nil
}

func (s *TexturedShape) Tick() {
	s.time++
	s.transform = s.transform.Mul(math.Mat4RotationAxis(math.Vec3Up, shapeSpin))
}

func (s *TexturedShape) Draw(cam *Camera) error {
	return s.program.Use(func(u *gpu.Uniforms) error {
		s.texture.Bind(0)
		defer s.texture.Unbind()
		if err := gpu.Set(u, "view", cam.View()); err != nil {
			return err
		}
		if err := gpu.Set(u, "perspective", cam.Perspective()); err != nil {
			return err
		}
		if err := gpu.Set(u, "model", s.transform); err != nil {
			return err
		}
		if err := gpu.Set(u, "u_time", s.time); err != nil {
			return err
		}
		s.shape.Draw()
		return nil
	})
}

func (s *TexturedShape) Destroy() {
	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.shape != nil {
		s.shape.Destroy()
	}
	if s.program != nil {
		s.program.Destroy()
	}
}
