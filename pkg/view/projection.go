// Package view builds the view-projection matrix uploaded to the GPU every frame.
package view

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection defaults.
const (
	DefaultFOV  = 40.0
	DefaultNear = 0.1
	DefaultFar  = 100.0
)

// MatrixSize is the byte size of one uploaded 4x4 float32 matrix.
const MatrixSize = 16 * 4

// ClipCorrection maps OpenGL clip-space depth [-w, w] onto [0, w] (z' = z/2 + w/2), matching a
// context configured with a zero-to-one depth range.
var ClipCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// Projection holds the perspective parameters. Only the aspect ratio and field of view change
// after construction.
type Projection struct {
	fovY   float32 // degrees
	aspect float32
	near   float32
	far    float32
}

// NewProjection creates a projection for a width x height surface. It panics on a zero dimension.
func NewProjection(width, height int, fovY, near, far float32) Projection {
	p := Projection{fovY: fovY, near: near, far: far}
	p.Resize(width, height)
	return p
}

// Resize recomputes the aspect ratio. Both dimensions must be positive; a zero size is a caller
// bug (minimised windows must be filtered out before this point) and panics.
func (p *Projection) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("view: invalid surface size %dx%d", width, height))
	}
	p.aspect = float32(width) / float32(height)
}

// SetFOV sets the vertical field of view in degrees.
func (p *Projection) SetFOV(fovY float32) {
	p.fovY = fovY
}

// FOV returns the vertical field of view in degrees.
func (p Projection) FOV() float32 { return p.fovY }

// Aspect returns width/height.
func (p Projection) Aspect() float32 { return p.aspect }

// Planes returns the near and far clip distances.
func (p Projection) Planes() (near, far float32) { return p.near, p.far }

// Matrix returns ClipCorrection × perspective.
func (p Projection) Matrix() mgl32.Mat4 {
	return ClipCorrection.Mul4(mgl32.Perspective(mgl32.DegToRad(p.fovY), p.aspect, p.near, p.far))
}
