package scene

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"render-demo/gpu"
	"render-demo/math"
	"render-demo/mesh"
)

// ErrNoGeometry is returned for model files without any faces.
var ErrNoGeometry = errors.New("no geometry")

// objFace is an already-triangulated face (three vertex references).
type objFace [3]objRef

// objRef holds 0-based position / UV / normal indices (-1 = absent).
type objRef struct{ v, vt, vn int }

type objObject struct {
	name    string
	matName string
	faces   []objFace
}

// LoadOBJ reads a Wavefront .obj file and, if it names one via "mtllib",
// the companion .mtl file next to it.
func LoadOBJ(path string) (*ModelSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}

	var mtl io.Reader
	if lib := objMaterialLib(data); lib != "" {
		mf, err := os.Open(filepath.Join(filepath.Dir(path), lib))
		if err != nil {
			gpu.Logger().Warn("material library not loaded", "obj", path, "mtllib", lib, "err", err)
		} else {
			defer mf.Close()
			mtl = mf
		}
	}

	set, err := DecodeOBJ(bytes.NewReader(data), mtl)
	if err != nil {
		return nil, fmt.Errorf("obj %q: %w", path, err)
	}
	return set, nil
}

// objMaterialLib returns the first material library named in data.
func objMaterialLib(data []byte) string {
	for line := range bytes.Lines(data) {
		fields := strings.Fields(string(line))
		if len(fields) > 1 && fields[0] == "mtllib" {
			return fields[1]
		}
	}
	return ""
}

// DecodeOBJ parses Wavefront OBJ text into one model per object or group.
// Polygons are fan-triangulated and identical vertex references shared.
// Materials come from mtl, which may be nil; "mtllib" lines are ignored.
func DecodeOBJ(r io.Reader, mtl io.Reader) (*ModelSet, error) {
	set := &ModelSet{}
	matIndex := map[string]int{}
	if mtl != nil {
		mats, err := DecodeMTL(mtl)
		if err != nil {
			return nil, err
		}
		for i, m := range mats {
			matIndex[m.Name] = i
		}
		set.Materials = mats
	}

	var (
		positions []math.Vec3
		normals   []math.Vec3
		uvs       []math.Vec2
		objects   []objObject
	)
	cur := &objObject{name: "default"}

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v", "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			p := math.NewVec3(v[0], v[1], v[2])
			if fields[0] == "v" {
				positions = append(positions, p)
			} else {
				normals = append(normals, p)
			}

		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			uvs = append(uvs, math.NewVec2(v[0], v[1]))

		case "o", "g":
			if len(cur.faces) > 0 {
				objects = append(objects, *cur)
			}
			name := "default"
			if len(fields) > 1 {
				name = fields[1]
			}
			cur = &objObject{name: name, matName: cur.matName}

		case "usemtl":
			if len(fields) > 1 {
				cur.matName = fields[1]
			}

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face with %d vertices", lineNo, len(fields)-1)
			}
			refs := make([]objRef, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				ref, err := parseFaceVertex(tok, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				refs = append(refs, ref)
			}
			// Fan triangulation: 0-1-2, 0-2-3, 0-3-4, ...
			for i := 1; i+1 < len(refs); i++ {
				cur.faces = append(cur.faces, objFace{refs[0], refs[i], refs[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan obj: %w", err)
	}
	if len(cur.faces) > 0 {
		objects = append(objects, *cur)
	}
	if len(objects) == 0 {
		return nil, ErrNoGeometry
	}

	for _, obj := range objects {
		mat, ok := matIndex[obj.matName]
		if !ok {
			mat = NoMaterial
			if obj.matName != "" {
				gpu.Logger().Warn("unknown obj material", "object", obj.name, "material", obj.matName)
			}
		}
		set.Models = append(set.Models, Model{
			Name:     obj.name,
			Mesh:     buildMeshFromOBJ(obj.faces, positions, normals, uvs),
			Material: mat,
		})
	}
	return set, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d values, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := range out {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseFaceVertex parses one face vertex token: "v", "v/vt", "v//vn", "v/vt/vn".
// OBJ indices are 1-based; negative ones count back from the latest element.
func parseFaceVertex(tok string, nv, nvt, nvn int) (objRef, error) {
	parseIdx := func(s string, n int, what string) (int, error) {
		if s == "" {
			return -1, nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return -1, fmt.Errorf("%s index %q: %w", what, s, err)
		}
		if i < 0 {
			i += n
		} else {
			i--
		}
		if i < 0 || i >= n {
			return -1, fmt.Errorf("%s index %s out of range (%d defined)", what, s, n)
		}
		return i, nil
	}

	parts := strings.Split(tok, "/")
	ref := objRef{v: -1, vt: -1, vn: -1}
	var err error
	if ref.v, err = parseIdx(parts[0], nv, "position"); err != nil {
		return ref, err
	}
	if ref.v < 0 {
		return ref, fmt.Errorf("face vertex %q has no position", tok)
	}
	if len(parts) > 1 {
		if ref.vt, err = parseIdx(parts[1], nvt, "texcoord"); err != nil {
			return ref, err
		}
	}
	if len(parts) > 2 {
		if ref.vn, err = parseIdx(parts[2], nvn, "normal"); err != nil {
			return ref, err
		}
	}
	return ref, nil
}

// buildMeshFromOBJ converts parsed face data into a deduplicated mesh.
func buildMeshFromOBJ(faces []objFace, positions, normals []math.Vec3, uvs []math.Vec2) *mesh.Mesh[mesh.VertexNT] {
	vertMap := map[objRef]uint32{}
	m := &mesh.Mesh[mesh.VertexNT]{Topology: gpu.Triangles}
	var missing []bool

	for _, face := range faces {
		for _, ref := range face {
			if idx, ok := vertMap[ref]; ok {
				m.Indices = append(m.Indices, idx)
				continue
			}
			v := mesh.VertexNT{Pos: positions[ref.v]}
			if ref.vt >= 0 {
				v.UV = uvs[ref.vt]
			}
			if ref.vn >= 0 {
				v.Normal = normals[ref.vn]
			}
			idx := uint32(len(m.Vertices))
			m.Vertices = append(m.Vertices, v)
			missing = append(missing, ref.vn < 0)
			vertMap[ref] = idx
			m.Indices = append(m.Indices, idx)
		}
	}

	if slices.Contains(missing, true) {
		generateNormals(m.Vertices, m.Indices, missing)
	}
	return m
}

// generateNormals writes area-weighted vertex normals for a triangle list.
// Only vertices with fill[i] set are written; a nil fill writes all of them.
func generateNormals(vertices []mesh.VertexNT, indices []uint32, fill []bool) {
	accum := make([]math.Vec3, len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		v0 := vertices[i0].Pos
		n := vertices[i1].Pos.Sub(v0).Cross(vertices[i2].Pos.Sub(v0))
		accum[i0] = accum[i0].Add(n)
		accum[i1] = accum[i1].Add(n)
		accum[i2] = accum[i2].Add(n)
	}
	for i := range vertices {
		if fill != nil && !fill[i] {
			continue
		}
		if accum[i].Length() > 0 {
			vertices[i].Normal = accum[i].Normalize()
		}
	}
}

// ── MTL ──────────────────────────────────────────────────────────────────────

// DecodeMTL parses the diffuse colour (Kd) of each material in an .mtl file.
// Materials without Kd keep the default diffuse.
func DecodeMTL(r io.Reader) ([]Material, error) {
	var mats []Material
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "newmtl":
			if len(fields) > 1 {
				m := DefaultMaterial()
				m.Name = fields[1]
				mats = append(mats, m)
			}
		case "Kd":
			if len(mats) == 0 {
				continue
			}
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("mtl line %d: %w", lineNo, err)
			}
			mats[len(mats)-1].Diffuse = [3]float32{v[0], v[1], v[2]}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan mtl: %w", err)
	}
	return mats, nil
}
