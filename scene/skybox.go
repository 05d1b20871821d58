package scene

import (
	"fmt"

	"render-demo/gpu"
	"render-demo/mesh"
)

// Skybox draws a cube map around the camera, behind everything else.
// Faces are ordered +X, -X, +Y, -Y, +Z, -Z.
type Skybox struct {
	dev   gpu.Device
	faces []gpu.Image

	program *gpu.Program
	shape   *gpu.Shape
	texture *gpu.Texture
}

func NewSkybox(dev gpu.Device, faces []gpu.Image) *Skybox {
	return &Skybox{dev: dev, faces: faces}
}

func (s *Skybox) Init() error {
	var err error
	if s.texture, err = gpu.NewCubemap(s.dev, s.faces); err != nil {
		return fmt.Errorf("skybox: %w", err)
	}
	gpu.NewTextureParameters().
		Wrap3D(gpu.ClampToEdge).
		Filter(gpu.Linear).
		ApplyTo(s.texture)
	if s.program, err = loadProgram(s.dev, "skybox"); err != nil {
		return err
	}
	s.shape, err = mesh.Cube().Upload(s.dev)
	return err
}

func (s *Skybox) Tick() {}

// Draw renders the cube with the camera's translation removed, at the far
// plane, without writing depth.
func (s *Skybox) Draw(cam *Camera) error {
	s.dev.DepthFunc(gpu.DepthLessEqual)
	s.dev.DepthMask(false)
	defer func() {
		s.dev.DepthMask(true)
		s.dev.DepthFunc(gpu.DepthLess)
	}()

	return s.program.Use(func(u *gpu.Uniforms) error {
		s.texture.Bind(0)
		defer s.texture.Unbind()
		if err := gpu.Set(u, "view", cam.View().StripTranslation()); err != nil {
			return err
		}
		if err := gpu.Set(u, "perspective", cam.Perspective()); err != nil {
			return err
		}
		s.shape.Draw()
		return nil
	})
}

func (s *Skybox) Destroy() {
	if s.shape != nil {
		s.shape.Destroy()
	}
	if s.program != nil {
		s.program.Destroy()
	}
	if s.texture != nil {
		s.texture.Destroy()
	}
}
