package scene

import "render-demo/mesh"

// Material describes the flat diffuse colour a model is shaded with.
type Material struct {
	Name    string
	Diffuse [3]float32
}

// DefaultMaterial returns the light grey used for models without a material.
func DefaultMaterial() Material {
	return Material{Name: "Default", Diffuse: [3]float32{0.8, 0.8, 0.8}}
}

// NoMaterial marks a model drawn with the default material.
const NoMaterial = -1

// Model is one piece of loaded geometry. Material indexes the owning
// ModelSet's Materials, or is NoMaterial.
type Model struct {
	Name     string
	Mesh     *mesh.Mesh[mesh.VertexNT]
	Material int
}

// ModelSet is the result of decoding a model file.
type ModelSet struct {
	Models    []Model
	Materials []Material
}

// material resolves a model's material, falling back to def.
func (s *ModelSet) material(m Model, def Material) Material {
	if m.Material < 0 || m.Material >= len(s.Materials) {
		return def
	}
	return s.Materials[m.Material]
}

// Triangles returns the total triangle count of all models.
func (s *ModelSet) Triangles() int {
	n := 0
	for _, m := range s.Models {
		n += m.Mesh.Triangles()
	}
	return n
}
