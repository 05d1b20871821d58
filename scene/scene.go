package scene

import (
	"errors"
	"fmt"

	"render-demo/core"
	"render-demo/gpu"
)

// Scene owns a camera and an ordered list of drawables. Drawables are
// ticked and drawn in the order they were added.
type Scene struct {
	dev        gpu.Device
	Camera     *Camera
	Background core.Color

	drawables []Drawable
	wireframe bool
}

// New initializes every drawable in order. If one fails, those already
// initialized are destroyed and the error is returned.
func New(dev gpu.Device, cam *Camera, drawables ...Drawable) (*Scene, error) {
	if cam == nil {
		cam = NewCamera()
	}
	s := &Scene{dev: dev, Camera: cam, Background: core.ColorGrey}
	for i, d := range drawables {
		if err := d.Init(); err != nil {
			for j := i; j >= 0; j-- {
				drawables[j].Destroy()
			}
			return nil, fmt.Errorf("init drawable %d: %w", i, err)
		}
		s.drawables = append(s.drawables, d)
	}
	gpu.Logger().Info("scene ready", "drawables", len(s.drawables))
	return s, nil
}

// Len returns the number of drawables.
func (s *Scene) Len() int { return len(s.drawables) }

// Tick advances every drawable by one fixed step.
func (s *Scene) Tick() {
	for _, d := range s.drawables {
		d.Tick()
	}
}

// Render clears the frame and draws every drawable. Drawing continues past a
// failing drawable; all errors are joined.
func (s *Scene) Render() error {
	c := s.Background
	s.dev.ClearColor(c.R, c.G, c.B, c.A)
	s.dev.Clear()

	var errs []error
	for i, d := range s.drawables {
		if err := d.Draw(s.Camera); err != nil {
			errs = append(errs, fmt.Errorf("draw %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Resize matches the camera aspect ratio and viewport to a framebuffer of
// width x height pixels. Zero sizes (minimized windows) are ignored.
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Camera.SetAspect(float32(width) / float32(height))
	s.dev.Viewport(0, 0, int32(width), int32(height))
}

// SetWireframe switches between filled and line rasterization.
func (s *Scene) SetWireframe(on bool) {
	if on == s.wireframe {
		return
	}
	s.wireframe = on
	if on {
		s.dev.PolygonMode(gpu.Wireframe)
	} else {
		s.dev.PolygonMode(gpu.Fill)
	}
}

// Wireframe reports whether line rasterization is on.
func (s *Scene) Wireframe() bool { return s.wireframe }

// Destroy releases drawables in reverse order.
func (s *Scene) Destroy() {
	for i := len(s.drawables) - 1; i >= 0; i-- {
		s.drawables[i].Destroy()
	}
	s.drawables = nil
}
