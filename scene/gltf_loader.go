package scene

import (
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"render-demo/gpu"
	"render-demo/math"
	"render-demo/mesh"
)

// LoadGLTF opens a .glb or .gltf file, resolving external buffers relative
// to it.
func LoadGLTF(path string) (*ModelSet, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	return modelsFromGLTF(doc)
}

// DecodeGLTF reads a binary (.glb) or self-contained JSON glTF document.
func DecodeGLTF(r io.Reader) (*ModelSet, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("gltf decode: %w", err)
	}
	return modelsFromGLTF(doc)
}

// modelsFromGLTF flattens every mesh primitive into a model. Node
// transforms are not applied.
func modelsFromGLTF(doc *gltf.Document) (*ModelSet, error) {
	set := &ModelSet{}

	// ── Materials ────────────────────────────────────────────────────────────
	for i, gm := range doc.Materials {
		mat := DefaultMaterial()
		mat.Name = gm.Name
		if mat.Name == "" {
			mat.Name = fmt.Sprintf("material_%d", i)
		}
		if pbr := gm.PBRMetallicRoughness; pbr != nil {
			cf := pbr.BaseColorFactorOrDefault()
			mat.Diffuse = [3]float32{float32(cf[0]), float32(cf[1]), float32(cf[2])}
		}
		set.Materials = append(set.Materials, mat)
	}

	// ── Mesh primitives ──────────────────────────────────────────────────────
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			name := fmt.Sprintf("%s_p%d", gm.Name, pi)
			if gm.Name == "" {
				name = fmt.Sprintf("mesh%d_p%d", mi, pi)
			}
			m, err := loadGLTFPrimitive(doc, prim)
			if err != nil {
				return nil, fmt.Errorf("gltf %s: %w", name, err)
			}
			if m == nil {
				gpu.Logger().Warn("skipping gltf primitive", "name", name, "mode", prim.Mode)
				continue
			}
			mat := NoMaterial
			if prim.Material != nil && *prim.Material < len(set.Materials) {
				mat = *prim.Material
			}
			set.Models = append(set.Models, Model{Name: name, Mesh: m, Material: mat})
		}
	}

	if len(set.Models) == 0 {
		return nil, ErrNoGeometry
	}
	return set, nil
}

// gltfTopology maps the primitive modes that can be drawn. Points, lines and
// line loops have no equivalent.
func gltfTopology(mode gltf.PrimitiveMode) (gpu.Topology, bool) {
	switch mode {
	case gltf.PrimitiveTriangles:
		return gpu.Triangles, true
	case gltf.PrimitiveTriangleStrip:
		return gpu.TriangleStrip, true
	case gltf.PrimitiveTriangleFan:
		return gpu.TriangleFan, true
	case gltf.PrimitiveLineStrip:
		return gpu.LineStrip, true
	}
	return 0, false
}

// loadGLTFPrimitive converts one primitive. It returns nil for modes that
// cannot be drawn.
func loadGLTFPrimitive(doc *gltf.Document, prim *gltf.Primitive) (*mesh.Mesh[mesh.VertexNT], error) {
	topology, ok := gltfTopology(prim.Mode)
	if !ok {
		return nil, nil
	}

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	acr, err := accessor(doc, gltf.POSITION, posIdx)
	if err != nil {
		return nil, err
	}
	positions, err := modeler.ReadPosition(doc, acr, nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if acr, err = accessor(doc, gltf.NORMAL, idx); err != nil {
			return nil, err
		}
		if normals, err = modeler.ReadNormal(doc, acr, nil); err != nil {
			return nil, fmt.Errorf("normals: %w", err)
		}
	}
	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if acr, err = accessor(doc, gltf.TEXCOORD_0, idx); err != nil {
			return nil, err
		}
		if uvs, err = modeler.ReadTextureCoord(doc, acr, nil); err != nil {
			return nil, fmt.Errorf("texcoords: %w", err)
		}
	}

	m := &mesh.Mesh[mesh.VertexNT]{
		Vertices: make([]mesh.VertexNT, len(positions)),
		Topology: topology,
	}
	for i, p := range positions {
		v := mesh.VertexNT{Pos: math.NewVec3(p[0], p[1], p[2])}
		if i < len(normals) {
			n := normals[i]
			v.Normal = math.NewVec3(n[0], n[1], n[2])
		}
		if i < len(uvs) {
			v.UV = math.NewVec2(uvs[i][0], uvs[i][1])
		}
		m.Vertices[i] = v
	}

	if prim.Indices != nil {
		if acr, err = accessor(doc, "indices", *prim.Indices); err != nil {
			return nil, err
		}
		if m.Indices, err = modeler.ReadIndices(doc, acr, nil); err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		m.Indices = make([]uint32, len(positions))
		for i := range m.Indices {
			m.Indices[i] = uint32(i)
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	if len(normals) == 0 && topology == gpu.Triangles {
		generateNormals(m.Vertices, m.Indices, nil)
	}
	return m, nil
}

// accessor looks up an accessor index taken from the document.
func accessor(doc *gltf.Document, what string, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) || doc.Accessors[idx] == nil {
		return nil, fmt.Errorf("%s accessor %d out of range (%d accessors)", what, idx, len(doc.Accessors))
	}
	return doc.Accessors[idx], nil
}
