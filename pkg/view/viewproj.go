package view

import "github.com/go-gl/mathgl/mgl32"

// LookTo returns the right-handed view matrix for an eye at position looking along direction.
func LookTo(position, direction, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(position, position.Add(direction), up)
}

// ViewProjection returns ClipCorrection × perspective × LookTo.
func ViewProjection(position, direction, up mgl32.Vec3, p Projection) mgl32.Mat4 {
	return p.Matrix().Mul4(LookTo(position, direction, up))
}
