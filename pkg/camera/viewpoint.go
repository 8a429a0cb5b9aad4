package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-viewer/pkg/input"
)

// Viewpoint advances with input and produces the eye position and look direction for the frame.
type Viewpoint interface {
	// Integrate advances by one sub-step: dt seconds of translation and an sf share of the
	// pending mouse delta.
	Integrate(in *input.Input, dt, sf float32)
	// Eye returns the current eye position and unit look direction.
	Eye() (position, direction mgl32.Vec3)
}

// FreeCamera is a self-integrated first-person camera.
type FreeCamera struct {
	Body
}

// NewFreeCamera creates a free camera at position.
func NewFreeCamera(position mgl32.Vec3, yaw, pitch float32) *FreeCamera {
	return &FreeCamera{Body: NewBody(position, yaw, pitch)}
}

// Integrate implements Viewpoint.
func (c *FreeCamera) Integrate(in *input.Input, dt, sf float32) {
	c.Translate(in, dt)

	yaw, pitch := mouseDegrees(in, sf)
	c.Turn(yaw)
	c.Tilt(pitch)
}

// Eye implements Viewpoint.
func (c *FreeCamera) Eye() (mgl32.Vec3, mgl32.Vec3) {
	return c.Position, c.Direction()
}

// LookAt turns the camera towards target.
func (c *FreeCamera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.Position)
	if direction.Len() == 0 {
		return
	}
	direction = direction.Normalize()
	c.SetRotation(yawFromDirection(direction), pitchFromDirection(direction))
}

// OrbitCamera follows a player body. The player owns position and yaw and moves under keyboard
// input; the camera owns only pitch. The camera position is derived from the player on every
// call to Eye and is never integrated itself.
type OrbitCamera struct {
	Player Body

	pitch    float32
	offset   mgl32.Vec3
	distance float32
}

// NewOrbitCamera creates an orbit camera around a player at position. offset lifts the look
// target from the player origin (eye height); distance is how far behind the target the camera sits.
func NewOrbitCamera(position mgl32.Vec3, yaw, pitch float32, offset mgl32.Vec3, distance float32) *OrbitCamera {
	return &OrbitCamera{
		Player:   NewBody(position, yaw, 0),
		pitch:    ClampPitch(pitch),
		offset:   offset,
		distance: distance,
	}
}

// Integrate implements Viewpoint.
func (c *OrbitCamera) Integrate(in *input.Input, dt, sf float32) {
	c.Player.Translate(in, dt)

	yaw, pitch := mouseDegrees(in, sf)
	c.Player.Turn(yaw)
	c.pitch = ClampPitch(c.pitch + pitch)
}

// Pitch returns the camera pitch.
func (c *OrbitCamera) Pitch() float32 {
	return c.pitch
}

// Target returns the point the camera looks at.
func (c *OrbitCamera) Target() mgl32.Vec3 {
	return c.Player.Position.Add(c.offset)
}

// Eye implements Viewpoint.
func (c *OrbitCamera) Eye() (mgl32.Vec3, mgl32.Vec3) {
	direction := Direction(c.Player.Yaw(), c.pitch)
	return c.Target().Sub(direction.Mul(c.distance)), direction
}
