package view

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Zoom eases the field of view towards a target set by scrolling.
type Zoom struct {
	fov      float32
	target   float32
	min      float32
	max      float32
	duration float32

	tween *gween.Tween
}

// NewZoom starts at fov and keeps the target within [minFOV, maxFOV]. A non-positive duration snaps.
func NewZoom(fov, minFOV, maxFOV, duration float32) *Zoom {
	fov = mgl32.Clamp(fov, minFOV, maxFOV)
	return &Zoom{
		fov:      fov,
		target:   fov,
		min:      minFOV,
		max:      maxFOV,
		duration: duration,
	}
}

// Scroll narrows the target field of view by offset degrees (positive zooms in).
func (z *Zoom) Scroll(offset float32) {
	target := mgl32.Clamp(z.target-offset, z.min, z.max)
	if target == z.target {
		return
	}
	z.target = target

	if z.duration <= 0 {
		z.fov = target
		z.tween = nil
		return
	}
	z.tween = gween.New(z.fov, target, z.duration, ease.OutCubic)
}

// Update advances the tween by dt seconds and returns the current field of view.
func (z *Zoom) Update(dt float32) float32 {
	if z.tween == nil {
		return z.fov
	}

	fov, finished := z.tween.Update(dt)
	z.fov = fov
	if finished {
		z.fov = z.target
		z.tween = nil
	}
	return z.fov
}

// FOV returns the current field of view.
func (z *Zoom) FOV() float32 {
	return z.fov
}

// Target returns the field of view being eased towards.
func (z *Zoom) Target() float32 {
	return z.target
}
