package mesh

import (
	"github.com/chewxy/math32"

	"render-demo/math"
)

// Radius of every generated shape.
const Radius = 0.5

type PointKind int

const (
	SpherePoint PointKind = iota
	CylinderPoint
	DiskPoint
)

// Point is a sample of a parametric surface. Theta is the azimuth around
// the Y axis. Phi is the polar angle from +Y and is used by sphere points
// only; Y is the height of cylinder and disk points.
type Point struct {
	Kind  PointKind
	R     float32
	Theta float32
	Phi   float32
	Y     float32
}

func NewSpherePoint(r, theta, phi float32) Point {
	return Point{Kind: SpherePoint, R: r, Theta: theta, Phi: phi}
}

func NewCylinderPoint(r, theta, y float32) Point {
	return Point{Kind: CylinderPoint, R: r, Theta: theta, Y: y}
}

func NewDiskPoint(r, theta, y float32) Point {
	return Point{Kind: DiskPoint, R: r, Theta: theta, Y: y}
}

func (p Point) Position() math.Vec3 {
	sinT, cosT := math32.Sincos(p.Theta)
	if p.Kind == SpherePoint {
		sinP, cosP := math32.Sincos(p.Phi)
		return math.NewVec3(p.R*cosT*sinP, p.R*cosP, p.R*sinT*sinP)
	}
	return math.NewVec3(p.R*cosT, p.Y, p.R*sinT)
}

// Normal is the unit outward surface normal. Disk normals point along the
// side of the Y axis the disk lies on.
func (p Point) Normal() math.Vec3 {
	switch p.Kind {
	case CylinderPoint:
		sinT, cosT := math32.Sincos(p.Theta)
		return math.NewVec3(cosT, 0, sinT).Normalize()
	case DiskPoint:
		return math.NewVec3(0, sign(p.Y), 0)
	}
	return p.Position().Normalize()
}

// TexCoord maps the point into texture space. Sphere and cylinder sides wrap
// u once around the axis; disks are mapped planar.
func (p Point) TexCoord() math.Vec2 {
	switch p.Kind {
	case CylinderPoint:
		return math.NewVec2(-p.Theta/(2*math32.Pi), -p.Y-0.5)
	case DiskPoint:
		sinT, cosT := math32.Sincos(p.Theta)
		s := sign(p.Y)
		return math.NewVec2(p.R*cosT+0.5, 1+s*(p.R*sinT-0.5))
	}
	return math.NewVec2(-p.Theta/(2*math32.Pi), p.Phi/math32.Pi)
}

// sign returns -1 for negative y and 1 otherwise.
func sign(y float32) float32 {
	if y < 0 {
		return -1
	}
	return 1
}
