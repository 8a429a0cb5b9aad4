package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/udhos/gwob"
)

// OpenFunc opens a file referenced from inside a model (material libraries).
type OpenFunc func(name string) (io.ReadCloser, error)

// LoadOBJ reads an OBJ file and the material library it references. Material and texture paths
// are resolved relative to the OBJ file's directory.
func LoadOBJ(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model: %w", err)
	}
	defer f.Close()

	dir := filepath.Dir(path)
	open := func(name string) (io.ReadCloser, error) {
		return os.Open(filepath.Join(dir, name))
	}

	m, err := ParseOBJ(filepath.Base(path), f, open)
	if err != nil {
		return nil, err
	}
	for i := range m.Materials {
		if tex := m.Materials[i].DiffuseTexture; tex != "" && !filepath.IsAbs(tex) {
			m.Materials[i].DiffuseTexture = filepath.Join(dir, tex)
		}
	}
	return m, nil
}

// ParseOBJ parses OBJ data from r. Faces are triangulated and every vertex gets a single index.
// open is used for the mtllib statement; it may be nil, in which case materials are named but
// carry no textures.
func ParseOBJ(name string, r io.Reader, open OpenFunc) (*Model, error) {
	options := &gwob.ObjParserOptions{}

	obj, err := gwob.NewObjFromReader(name, bufio.NewReader(r), options)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if len(obj.Indices) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoGeometry)
	}

	var lib gwob.MaterialLib
	if obj.Mtllib != "" && open != nil {
		lib, err = readMaterialLib(obj.Mtllib, open, options)
		if err != nil {
			return nil, err
		}
	}

	m := &Model{
		Name:     name,
		Vertices: interleave(obj),
		Indices:  make([]uint32, len(obj.Indices)),
	}
	for i, idx := range obj.Indices {
		m.Indices[i] = uint32(idx)
	}

	materialIndex := map[string]int{}
	for _, g := range obj.Groups {
		if g.IndexCount == 0 {
			continue
		}
		mesh := Mesh{
			Name:       g.Name,
			Material:   NoMaterial,
			IndexBegin: g.IndexBegin,
			IndexCount: g.IndexCount,
		}
		if g.Usemtl != "" {
			idx, ok := materialIndex[g.Usemtl]
			if !ok {
				idx = len(m.Materials)
				materialIndex[g.Usemtl] = idx
				m.Materials = append(m.Materials, lookupMaterial(lib, g.Usemtl))
			}
			mesh.Material = idx
		}
		m.Meshes = append(m.Meshes, mesh)
	}
	if len(m.Meshes) == 0 {
		m.Meshes = []Mesh{{Name: name, Material: NoMaterial, IndexCount: len(m.Indices)}}
	}

	return m, nil
}

func readMaterialLib(lib string, open OpenFunc, options *gwob.ObjParserOptions) (gwob.MaterialLib, error) {
	rc, err := open(lib)
	if err != nil {
		return gwob.MaterialLib{}, fmt.Errorf("failed to open material library %s: %w", lib, err)
	}
	defer rc.Close()

	materials, err := gwob.ReadMaterialLibFromReader(bufio.NewReader(rc), options)
	if err != nil {
		return gwob.MaterialLib{}, fmt.Errorf("failed to parse material library %s: %w", lib, err)
	}
	return materials, nil
}

func lookupMaterial(lib gwob.MaterialLib, name string) Material {
	mat := Material{Name: name, Diffuse: [3]float32{1, 1, 1}}
	if lib.Lib == nil {
		return mat
	}
	if found, ok := lib.Lib[name]; ok {
		mat.Diffuse = found.Kd
		mat.DiffuseTexture = found.MapKd
	}
	return mat
}

// interleave rewrites gwob's coordinate array, whose layout depends on which attributes the file
// had, into the fixed position/uv/normal layout. Missing attributes are zero.
func interleave(obj *gwob.Obj) []float32 {
	const floatSize = 4 // gwob strides and offsets are in bytes
	stride := obj.StrideSize / floatSize
	posOffset := obj.StrideOffsetPosition / floatSize
	texOffset := obj.StrideOffsetTexture / floatSize
	normOffset := obj.StrideOffsetNormal / floatSize

	count := len(obj.Coord) / stride
	out := make([]float32, count*FloatsPerVertex)
	for i := 0; i < count; i++ {
		src := obj.Coord[i*stride : (i+1)*stride]
		dst := out[i*FloatsPerVertex : (i+1)*FloatsPerVertex]

		copy(dst[PositionOffset:PositionOffset+3], src[posOffset:posOffset+3])
		if obj.TextCoordFound {
			copy(dst[TexCoordOffset:TexCoordOffset+2], src[texOffset:texOffset+2])
		}
		if obj.NormCoordFound {
			copy(dst[NormalOffset:NormalOffset+3], src[normOffset:normOffset+3])
		}
	}
	return out
}
