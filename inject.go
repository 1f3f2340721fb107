package lattice

// syntheticPointerEvent is a single injected pointer sample. Page
// coordinates are used (matching what real mouse polling sees) and converted
// to canvas-local space through the same path as live input.
type syntheticPointerEvent struct {
	pageX, pageY float64
	pressed      bool
}

// InjectPress queues a pointer press at the given page coordinates. The
// event is consumed on the next Update.
func (c *Canvas) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{pageX: x, pageY: y, pressed: true})
}

// InjectMove queues a pointer move at the given page coordinates with the
// button held down. Use between InjectPress and InjectRelease to simulate a
// drag.
func (c *Canvas) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{pageX: x, pageY: y, pressed: true})
}

// InjectHover queues a pointer move with no button held, for driving the
// hover affordances.
func (c *Canvas) InjectHover(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{pageX: x, pageY: y})
}

// InjectRelease queues a pointer release at the given page coordinates.
func (c *Canvas) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{pageX: x, pageY: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same page
// coordinates. Consumes two turns.
func (c *Canvas) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves ending exactly at (toX, toY), then the release. The
// release itself never repositions anything, so the last move must land on
// the drop point. Minimum frames is 3 (press + move + release).
func (c *Canvas) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// processInjected pops one queued event and feeds it through the same
// pointer path as live input. Returns true if an event was consumed, in
// which case real mouse polling is skipped this turn.
func (c *Canvas) processInjected() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]
	c.processPointer(evt.pageX, evt.pageY, evt.pressed)
	return true
}
