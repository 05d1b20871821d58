package mesh

import (
	"github.com/chewxy/math32"

	"render-demo/gpu"
)

// Sphere tessellates a sphere into latStrips bands of latitude and
// lonSlices wedges of longitude. The seam column is duplicated so that
// texture coordinates wrap without a discontinuity; the mesh has
// (lonSlices+1)*(latStrips+1) vertices laid out column by column from the
// north pole to the south pole.
func Sphere[V gpu.Vertex, PV Vertex[V]](latStrips, lonSlices int) (*Mesh[V], error) {
	if err := checkResolution("sphere", "latStrips", latStrips, 2); err != nil {
		return nil, err
	}
	if err := checkResolution("sphere", "lonSlices", lonSlices, 3); err != nil {
		return nil, err
	}

	lonStep := 2 * math32.Pi / float32(lonSlices)
	latStep := math32.Pi / float32(latStrips)

	vertices := make([]V, 0, (lonSlices+1)*(latStrips+1))
	for thetaStep := 0; thetaStep <= lonSlices; thetaStep++ {
		theta := -lonStep * float32(thetaStep)
		for phiStep := 0; phiStep <= latStrips; phiStep++ {
			phi := latStep * float32(phiStep)
			vertices = append(vertices, fromPoint[V, PV](NewSpherePoint(Radius, theta, phi)))
		}
	}

	stride := uint32(latStrips + 1)
	lat := uint32(latStrips)
	indices := make([]uint32, 0, 3*lonSlices*(2+2*(latStrips-2)))
	for slice := uint32(0); slice < uint32(lonSlices); slice++ {
		s := slice * stride
		// north cap
		indices = append(indices, s, s+1, s+stride+1)
		for strip := uint32(1); strip < lat-1; strip++ {
			i := s + strip
			indices = append(indices,
				i, i+stride+1, i+stride,
				i, i+1, i+stride+1,
			)
		}
		// south cap
		i := s + lat - 1
		indices = append(indices, i, i+1, i+stride)
	}

	return &Mesh[V]{Vertices: vertices, Indices: indices, Topology: gpu.Triangles}, nil
}
