package sim

import "time"

// FrameCounter counts rendered frames and reports them once per interval.
type FrameCounter struct {
	interval time.Duration
	elapsed  time.Duration
	frames   int
}

// NewFrameCounter creates a counter reporting every interval. A non-positive interval means one second.
func NewFrameCounter(interval time.Duration) *FrameCounter {
	if interval <= 0 {
		interval = time.Second
	}
	return &FrameCounter{interval: interval}
}

// Tick records one frame that took dt. Once the accumulated time reaches the interval it
// returns the frame count and the time they covered, and starts a new interval.
func (c *FrameCounter) Tick(dt time.Duration) (frames int, over time.Duration, ok bool) {
	c.frames++
	c.elapsed += dt
	if c.elapsed < c.interval {
		return 0, 0, false
	}

	frames, over = c.frames, c.elapsed
	c.frames = 0
	c.elapsed = 0
	return frames, over, true
}

// Rate converts a report from Tick into frames per second.
func Rate(frames int, over time.Duration) float64 {
	if over <= 0 {
		return 0
	}
	return float64(frames) / over.Seconds()
}
