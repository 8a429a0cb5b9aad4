package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-viewer/pkg/input"
)

// Body is a position with an orientation.
type Body struct {
	Position mgl32.Vec3
	Orientation
}

// NewBody creates a body at position facing yaw/pitch.
func NewBody(position mgl32.Vec3, yaw, pitch float32) Body {
	return Body{Position: position, Orientation: NewOrientation(yaw, pitch)}
}

// Translate moves the body by the held movement keys for dt seconds. Forward and right come
// from the yaw held before this call.
func (b *Body) Translate(in *input.Input, dt float32) {
	forward, right := ForwardRight(b.yaw)
	step := in.Speed() * dt

	b.Position = b.Position.Add(forward.Mul((in.Amount(input.Forward) - in.Amount(input.Backward)) * step))
	b.Position = b.Position.Add(right.Mul((in.Amount(input.Right) - in.Amount(input.Left)) * step))
	b.Position[1] += (in.Amount(input.Up) - in.Amount(input.Down)) * step
}

// Model returns the world transform of the body: its position, turned about Y so that local +X
// points along the yaw forward vector.
func (b *Body) Model() mgl32.Mat4 {
	return mgl32.Translate3D(b.Position.X(), b.Position.Y(), b.Position.Z()).
		Mul4(mgl32.HomogRotate3DY(-mgl32.DegToRad(b.yaw)))
}

// mouseDegrees converts the pending mouse delta into yaw and pitch changes for one sub-step.
// Mouse motion is discrete, so sf scales it and dt does not.
func mouseDegrees(in *input.Input, sf float32) (yaw, pitch float32) {
	dx, dy := in.MouseMotion()
	dpd := in.DotsPerDegree()
	return dx / dpd * sf, -dy / dpd * sf
}
