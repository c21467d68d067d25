package game

// countdown turns game-loop frames into one-second ticks. stop is
// idempotent, and a stopped countdown never reports a tick, so a
// restart cannot receive ticks meant for the previous round.
type countdown struct {
	running bool
	frames  int
}

func (c *countdown) start() {
	c.running = true
	c.frames = 0
}

func (c *countdown) stop() {
	c.running = false
	c.frames = 0
}

// advance counts one frame and reports whether a full second elapsed.
func (c *countdown) advance() bool {
	if !c.running {
		return false
	}
	c.frames++
	if c.frames < TicksPerSecond {
		return false
	}
	c.frames = 0
	return true
}
