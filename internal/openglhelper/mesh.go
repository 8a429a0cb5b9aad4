package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// VertexAttrib describes one float attribute of an interleaved vertex. Size and Offset are
// counted in floats.
type VertexAttrib struct {
	Location uint32
	Size     int32
	Offset   int
}

// Mesh is an indexed triangle list held in a VAO with its own VBO and EBO.
type Mesh struct {
	vao *VertexArrayObject
	vbo *BufferObject
	ebo *BufferObject
}

// NewMesh uploads interleaved vertices of floatsPerVertex floats and their indices.
func NewMesh(vertices []float32, indices []uint32, floatsPerVertex int, attribs []VertexAttrib) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices)
	ebo := NewEBO(indices)

	stride := int32(floatsPerVertex * 4)
	for _, a := range attribs {
		vao.SetVertexAttribPointer(a.Location, a.Size, stride, a.Offset*4)
	}

	vao.Unbind()

	return &Mesh{
		vao: vao,
		vbo: vbo,
		ebo: ebo,
	}
}

// DrawRange renders count indices starting at index begin.
func (m *Mesh) DrawRange(begin, count int) {
	if count <= 0 {
		return
	}
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, gl.PtrOffset(begin*4))
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}
