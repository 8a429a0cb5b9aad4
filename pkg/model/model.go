// Package model produces GPU-ready mesh and material data for the viewer.
//
// Vertices are interleaved float32: position (3), texture coordinates (2), normal (3).
package model

import "errors"

// FloatsPerVertex is the interleaved vertex width.
const FloatsPerVertex = 8

// Attribute offsets in floats.
const (
	PositionOffset = 0
	TexCoordOffset = 3
	NormalOffset   = 5
)

// NoMaterial marks a mesh drawn with the default texture.
const NoMaterial = -1

// ErrNoGeometry is returned for model files that contain no faces.
var ErrNoGeometry = errors.New("model has no geometry")

// Mesh is a range of a model's index buffer drawn with one material.
type Mesh struct {
	Name       string
	Material   int // index into Model.Materials, or NoMaterial
	IndexBegin int
	IndexCount int
}

// Material describes how a mesh is shaded.
type Material struct {
	Name           string
	Diffuse        [3]float32
	DiffuseTexture string // path of the diffuse map, empty when the material has none
}

// Model is a shared vertex/index buffer split into meshes.
type Model struct {
	Name      string
	Vertices  []float32
	Indices   []uint32
	Meshes    []Mesh
	Materials []Material
}

// VertexCount returns the number of vertices in the model.
func (m *Model) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}
