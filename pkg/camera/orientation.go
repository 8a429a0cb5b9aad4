// Package camera integrates keyboard and mouse input into the pose of the viewer.
//
// Angles are in degrees. Yaw is unbounded; pitch is clamped to ±PitchLimit on every write so
// the view direction never reaches the poles.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// PitchEpsilon keeps pitch strictly inside (-90°, 90°).
	PitchEpsilon = 1e-4
	// PitchLimit is the largest magnitude pitch may take.
	PitchLimit = 90.0 - PitchEpsilon

	// DefaultYaw faces -Z.
	DefaultYaw   = -90.0
	DefaultPitch = 0.0
)

// WorldUp is the up vector of the Y-up world.
var WorldUp = mgl32.Vec3{0, 1, 0}

// ClampPitch limits pitch to [-PitchLimit, PitchLimit].
func ClampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, -PitchLimit, PitchLimit)
}

// Orientation is a yaw/pitch pair whose pitch is always within the limit.
type Orientation struct {
	yaw   float32
	pitch float32
}

// NewOrientation returns an orientation with pitch clamped.
func NewOrientation(yaw, pitch float32) Orientation {
	return Orientation{yaw: yaw, pitch: ClampPitch(pitch)}
}

// Yaw returns the horizontal angle.
func (o Orientation) Yaw() float32 { return o.yaw }

// Pitch returns the vertical angle.
func (o Orientation) Pitch() float32 { return o.pitch }

// Turn adds delta degrees to yaw.
func (o *Orientation) Turn(delta float32) {
	o.yaw += delta
}

// Tilt adds delta degrees to pitch and clamps the result.
func (o *Orientation) Tilt(delta float32) {
	o.pitch = ClampPitch(o.pitch + delta)
}

// SetRotation replaces both angles, clamping pitch.
func (o *Orientation) SetRotation(yaw, pitch float32) {
	o.yaw = yaw
	o.pitch = ClampPitch(pitch)
}

// Direction returns the unit look vector for the orientation.
func (o Orientation) Direction() mgl32.Vec3 {
	return Direction(o.yaw, o.pitch)
}

// Direction returns the unit vector (cos p·cos y, sin p, cos p·sin y).
func Direction(yaw, pitch float32) mgl32.Vec3 {
	sinYaw, cosYaw := math.Sincos(float64(mgl32.DegToRad(yaw)))
	sinPitch, cosPitch := math.Sincos(float64(mgl32.DegToRad(pitch)))
	return mgl32.Vec3{
		float32(cosPitch * cosYaw),
		float32(sinPitch),
		float32(cosPitch * sinYaw),
	}.Normalize()
}

// ForwardRight returns the horizontal unit vectors for yaw. Pitch never contributes, so
// translation stays in the XZ plane.
func ForwardRight(yaw float32) (forward, right mgl32.Vec3) {
	sin, cos := math.Sincos(float64(mgl32.DegToRad(yaw)))
	forward = mgl32.Vec3{float32(cos), 0, float32(sin)}.Normalize()
	right = mgl32.Vec3{float32(-sin), 0, float32(cos)}.Normalize()
	return forward, right
}

// yawFromDirection and pitchFromDirection invert Direction for a unit vector.
func yawFromDirection(dir mgl32.Vec3) float32 {
	return mgl32.RadToDeg(float32(math.Atan2(float64(dir.Z()), float64(dir.X()))))
}

func pitchFromDirection(dir mgl32.Vec3) float32 {
	return mgl32.RadToDeg(float32(math.Asin(float64(mgl32.Clamp(dir.Y(), -1, 1)))))
}
