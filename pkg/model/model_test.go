package model

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const quadOBJ = `mtllib quad.mtl
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
g quad
usemtl red
f 1/1/1 2/2/1 3/3/1
f 1/1/1 3/3/1 4/4/1
`

const quadMTL = `newmtl red
Kd 1 0 0
map_Kd red.png
`

func openStrings(files map[string]string) OpenFunc {
	return func(name string) (io.ReadCloser, error) {
		s, ok := files[name]
		if !ok {
			return nil, os.ErrNotExist
		}
		return io.NopCloser(strings.NewReader(s)), nil
	}
}

func vertexAt(m *Model, i uint32) []float32 {
	return m.Vertices[int(i)*FloatsPerVertex : (int(i)+1)*FloatsPerVertex]
}

func TestParseOBJ(t *testing.T) {
	m, err := ParseOBJ("quad.obj", strings.NewReader(quadOBJ), openStrings(map[string]string{"quad.mtl": quadMTL}))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}

	if len(m.Indices) != 6 {
		t.Fatalf("len(Indices) = %d, want 6", len(m.Indices))
	}
	if len(m.Vertices)%FloatsPerVertex != 0 || m.VertexCount() < 4 {
		t.Fatalf("vertex data has %d floats, want at least 4 whole vertices", len(m.Vertices))
	}

	var total int
	red := -1
	for _, mesh := range m.Meshes {
		total += mesh.IndexCount
		if mesh.Material != NoMaterial && m.Materials[mesh.Material].Name == "red" {
			red = mesh.Material
		}
	}
	if total != 6 {
		t.Errorf("meshes cover %d indices, want 6", total)
	}
	if red < 0 {
		t.Fatalf("no mesh uses material red: %+v", m.Meshes)
	}
	if got := m.Materials[red]; got.DiffuseTexture != "red.png" || got.Diffuse != [3]float32{1, 0, 0} {
		t.Errorf("material = %+v", got)
	}

	for _, idx := range m.Indices {
		v := vertexAt(m, idx)
		x, y := v[PositionOffset], v[PositionOffset+1]
		u, w := v[TexCoordOffset], v[TexCoordOffset+1]
		if x != u || y != w {
			t.Errorf("vertex %d: position (%v,%v) carries uv (%v,%v)", idx, x, y, u, w)
		}
		if n := v[NormalOffset : NormalOffset+3]; n[0] != 0 || n[1] != 0 || n[2] != 1 {
			t.Errorf("vertex %d: normal %v, want (0,0,1)", idx, n)
		}
	}
}

func TestParseOBJWithoutMaterials(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	m, err := ParseOBJ("tri.obj", strings.NewReader(src), nil)
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if len(m.Indices) != 3 {
		t.Fatalf("len(Indices) = %d, want 3", len(m.Indices))
	}
	for _, mesh := range m.Meshes {
		if mesh.Material != NoMaterial {
			t.Errorf("mesh %q has material %d without a library", mesh.Name, mesh.Material)
		}
	}
	for _, idx := range m.Indices {
		v := vertexAt(m, idx)
		for _, f := range v[TexCoordOffset:] {
			if f != 0 {
				t.Errorf("vertex %d: missing attributes should be zero, got %v", idx, v)
				break
			}
		}
	}
}

func TestParseOBJNormalsWithoutTexCoords(t *testing.T) {
	src := "v 0 0 0\nv 2 0 0\nv 0 2 0\nvn 0 1 0\nf 1//1 2//1 3//1\n"
	m, err := ParseOBJ("lit.obj", strings.NewReader(src), nil)
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}

	seen := map[[3]float32]bool{}
	for _, idx := range m.Indices {
		v := vertexAt(m, idx)
		seen[[3]float32{v[PositionOffset], v[PositionOffset+1], v[PositionOffset+2]}] = true
		if u, w := v[TexCoordOffset], v[TexCoordOffset+1]; u != 0 || w != 0 {
			t.Errorf("vertex %d: uv (%v,%v), want zero", idx, u, w)
		}
		if n := v[NormalOffset : NormalOffset+3]; n[0] != 0 || n[1] != 1 || n[2] != 0 {
			t.Errorf("vertex %d: normal %v, want (0,1,0)", idx, n)
		}
	}
	for _, p := range [][3]float32{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}} {
		if !seen[p] {
			t.Errorf("position %v missing from %v", p, m.Vertices)
		}
	}
}

func TestParseOBJNoGeometry(t *testing.T) {
	_, err := ParseOBJ("empty.obj", strings.NewReader("# nothing here\n"), nil)
	if err == nil {
		t.Fatal("expected an error for a model without faces")
	}
}

func TestParseOBJMissingMaterialLib(t *testing.T) {
	_, err := ParseOBJ("quad.obj", strings.NewReader(quadOBJ), openStrings(nil))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
}

func TestLoadOBJResolvesTexturePaths(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "quad.obj"), []byte(quadOBJ), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "quad.mtl"), []byte(quadMTL), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadOBJ(filepath.Join(dir, "quad.obj"))
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	if len(m.Materials) != 1 {
		t.Fatalf("len(Materials) = %d, want 1", len(m.Materials))
	}
	if want := filepath.Join(dir, "red.png"); m.Materials[0].DiffuseTexture != want {
		t.Errorf("DiffuseTexture = %q, want %q", m.Materials[0].DiffuseTexture, want)
	}

	if _, err := LoadOBJ(filepath.Join(dir, "missing.obj")); err == nil {
		t.Error("LoadOBJ on a missing file succeeded")
	}
}

func TestShapes(t *testing.T) {
	tests := []struct {
		name     string
		model    *Model
		vertices int
		indices  int
	}{
		{"plane", Plane(10), 4, 6},
		{"cube", Cube(), 24, 36},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.model.VertexCount(); got != tt.vertices {
				t.Errorf("VertexCount() = %d, want %d", got, tt.vertices)
			}
			if got := len(tt.model.Indices); got != tt.indices {
				t.Errorf("len(Indices) = %d, want %d", got, tt.indices)
			}
			if len(tt.model.Meshes) != 1 || tt.model.Meshes[0].IndexCount != tt.indices {
				t.Errorf("Meshes = %+v", tt.model.Meshes)
			}
			for _, idx := range tt.model.Indices {
				if int(idx) >= tt.vertices {
					t.Errorf("index %d out of range", idx)
				}
			}
		})
	}
}

func TestSolid(t *testing.T) {
	img := Solid(0x11223344)
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0x11, 0x22, 0x33, 0x44}) {
		t.Errorf("pixel = %v", got)
	}
}

func TestDecodeImageFlipsRows(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	for x := 0; x < 2; x++ {
		src.Set(x, 0, color.NRGBA{255, 0, 0, 255})
		src.Set(x, 1, color.NRGBA{0, 255, 0, 255})
		src.Set(x, 2, color.NRGBA{0, 0, 255, 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	img, err := DecodeImage(&buf)
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("first row = %v, want the source's last row", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("middle row = %v", got)
	}
	if got := img.RGBAAt(0, 2); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("last row = %v, want the source's first row", got)
	}

	if _, err := DecodeImage(strings.NewReader("not an image")); err == nil {
		t.Error("DecodeImage accepted garbage")
	}
	if _, err := LoadImage(filepath.Join(t.TempDir(), "none.png")); err == nil {
		t.Error("LoadImage on a missing file succeeded")
	}
}
