package model

// Plane returns a square ground plane of the given size centred on the origin at y = 0, facing up.
// Texture coordinates repeat once per world unit.
func Plane(size float32) *Model {
	h := size / 2
	return &Model{
		Name: "plane",
		Vertices: []float32{
			// x, y, z, u, v, nx, ny, nz
			-h, 0, h, 0, 0, 0, 1, 0,
			h, 0, h, size, 0, 0, 1, 0,
			h, 0, -h, size, size, 0, 1, 0,
			-h, 0, -h, 0, size, 0, 1, 0,
		},
		Indices: []uint32{0, 1, 2, 2, 3, 0},
		Meshes:  []Mesh{{Name: "plane", Material: NoMaterial, IndexCount: 6}},
	}
}

// Cube returns a unit cube centred on the origin with per-face normals.
func Cube() *Model {
	vertices := []float32{
		// Front face
		-0.5, -0.5, 0.5, 0.0, 0.0, 0.0, 0.0, 1.0,
		0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
		0.5, 0.5, 0.5, 1.0, 1.0, 0.0, 0.0, 1.0,
		-0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0,

		// Back face
		-0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, -1.0,
		-0.5, 0.5, -0.5, 1.0, 1.0, 0.0, 0.0, -1.0,
		0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, -1.0,
		0.5, -0.5, -0.5, 0.0, 0.0, 0.0, 0.0, -1.0,

		// Top face
		-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
		-0.5, 0.5, 0.5, 0.0, 0.0, 0.0, 1.0, 0.0,
		0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,
		0.5, 0.5, -0.5, 1.0, 1.0, 0.0, 1.0, 0.0,

		// Bottom face
		-0.5, -0.5, -0.5, 0.0, 0.0, 0.0, -1.0, 0.0,
		0.5, -0.5, -0.5, 1.0, 0.0, 0.0, -1.0, 0.0,
		0.5, -0.5, 0.5, 1.0, 1.0, 0.0, -1.0, 0.0,
		-0.5, -0.5, 0.5, 0.0, 1.0, 0.0, -1.0, 0.0,

		// Right face
		0.5, -0.5, -0.5, 1.0, 0.0, 1.0, 0.0, 0.0,
		0.5, 0.5, -0.5, 1.0, 1.0, 1.0, 0.0, 0.0,
		0.5, 0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0,
		0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,

		// Left face
		-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,
		-0.5, -0.5, 0.5, 1.0, 0.0, -1.0, 0.0, 0.0,
		-0.5, 0.5, 0.5, 1.0, 1.0, -1.0, 0.0, 0.0,
		-0.5, 0.5, -0.5, 0.0, 1.0, -1.0, 0.0, 0.0,
	}

	indices := []uint32{
		0, 1, 2, 2, 3, 0, // Front face
		4, 5, 6, 6, 7, 4, // Back face
		8, 9, 10, 10, 11, 8, // Top face
		12, 13, 14, 14, 15, 12, // Bottom face
		16, 17, 18, 18, 19, 16, // Right face
		20, 21, 22, 22, 23, 20, // Left face
	}

	return &Model{
		Name:     "cube",
		Vertices: vertices,
		Indices:  indices,
		Meshes:   []Mesh{{Name: "cube", Material: NoMaterial, IndexCount: len(indices)}},
	}
}
