package scene

import (
	"github.com/chewxy/math32"

	"render-demo/math"
)

// Camera is a fixed look-at camera with a perspective projection.
type Camera struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3

	FOV         float32 // vertical, radians
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	// Cached matrices
	viewMatrix       math.Mat4
	projectionMatrix math.Mat4
	dirty            bool
}

// NewCamera places a camera at (0, 0, 2) looking down -Z with a 60 degree
// field of view.
func NewCamera() *Camera {
	return &Camera{
		Eye:         math.NewVec3(0, 0, 2),
		Target:      math.NewVec3(0, 0, -1),
		Up:          math.Vec3Up,
		FOV:         math32.Pi / 3,
		AspectRatio: 1,
		NearPlane:   1,
		FarPlane:    80,
		dirty:       true,
	}
}

// LookAt moves the camera to eye, facing target.
func (c *Camera) LookAt(eye, target, up math.Vec3) {
	c.Eye, c.Target, c.Up = eye, target, up
	c.dirty = true
}

// SetAspect updates the width/height ratio of the projection.
func (c *Camera) SetAspect(ratio float32) {
	c.AspectRatio = ratio
	c.dirty = true
}

func (c *Camera) View() math.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.viewMatrix
}

func (c *Camera) Perspective() math.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.projectionMatrix
}

func (c *Camera) updateMatrices() {
	c.viewMatrix = math.Mat4LookAt(c.Eye, c.Target, c.Up.Normalize())
	c.projectionMatrix = math.Mat4Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
	c.dirty = false
}
