package render

// cursorTracker turns absolute cursor positions into deltas. The first position after a reset
// only primes the tracker, so recapturing the cursor does not produce a jump.
type cursorTracker struct {
	lastX      float64
	lastY      float64
	firstMouse bool
}

func newCursorTracker() cursorTracker {
	return cursorTracker{firstMouse: true}
}

// delta returns the motion since the previous position in screen dots, y growing downwards.
func (c *cursorTracker) delta(xpos, ypos float64) (dx, dy float64, ok bool) {
	if c.firstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.firstMouse = false
		return 0, 0, false
	}

	dx = xpos - c.lastX
	dy = ypos - c.lastY

	c.lastX = xpos
	c.lastY = ypos
	return dx, dy, true
}

func (c *cursorTracker) reset() {
	c.firstMouse = true
}
