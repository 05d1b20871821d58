// Package mesh tessellates parametric surfaces into indexed vertex data.
//
// Generators are generic over the vertex layout. Each surface sample is an
// abstract Point; the layout decides which of its attributes to keep:
//
//	sphere, err := mesh.Sphere[mesh.VertexNT](32, 64)
//	if err != nil {
//		return err
//	}
//	shape, err := sphere.Upload(dev)
//
// All shapes have radius Radius and are centred on the origin.
package mesh
