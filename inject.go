package gantt

// Synthetic gesture injection for demos and automated driving. Injected
// events bypass the input adapters and feed the normalized gesture stream
// directly, one event per update tick, so they interleave with timers the
// same way real input does. While the queue is draining, real input for the
// tick is skipped.

type syntheticKind uint8

const (
	syntheticBegin syntheticKind = iota
	syntheticMove
	syntheticEnd
	syntheticCancel
)

type syntheticGestureEvent struct {
	kind syntheticKind
	x, y float64
}

// InjectPress queues a gesture begin at the given chart coordinates. The
// event is consumed on the next Update.
func (c *Chart) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticGestureEvent{kind: syntheticBegin, x: x, y: y})
}

// InjectMove queues a gesture move at the given chart coordinates.
func (c *Chart) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticGestureEvent{kind: syntheticMove, x: x, y: y})
}

// InjectRelease queues a gesture end at the given chart coordinates.
func (c *Chart) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticGestureEvent{kind: syntheticEnd, x: x, y: y})
}

// InjectCancel queues a gesture cancel.
func (c *Chart) InjectCancel() {
	c.injectQueue = append(c.injectQueue, syntheticGestureEvent{kind: syntheticCancel})
}

// InjectClick is a convenience that queues a press followed by a release at
// the same coordinates. Consumes two ticks; with the default tick rate that
// is well inside the click interval.
func (c *Chart) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate ticks, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (c *Chart) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// processInjectedInput pops one queued event into the gesture stream.
// Returns true if an event was consumed (adapter input should be skipped
// this tick).
func (c *Chart) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	ev := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	switch ev.kind {
	case syntheticBegin:
		c.beginGesture(ev.x, ev.y)
	case syntheticMove:
		c.moveGesture(ev.x, ev.y)
	case syntheticEnd:
		c.endGesture(ev.x, ev.y)
	case syntheticCancel:
		c.cancelGesture()
	}
	return true
}
