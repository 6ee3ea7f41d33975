package gantt

// captureState binds a gesture to one bar from begin until end or cancel.
// At most one instance is live per chart; its presence substitutes for a
// lock, since all transitions run on the update loop.
//
// The resize-vs-move decision is made once, at begin, from the hit zone at
// that instant. Later movement never reclassifies the gesture.
type captureState struct {
	bar *bar

	captureX float64
	captureY float64
	moveX    float64
	moveY    float64

	// Original geometry in both forms. Percentages restore the bar on
	// revert; pixels anchor the delta math during the drag.
	leftPct  float64
	widthPct float64
	leftPx   float64
	widthPx  float64

	bgColor Color

	resizing         bool
	resizingFromLeft bool

	// In-progress flags track net movement: they are recomputed from the
	// current delta on every move, so a drag that returns to exactly zero
	// displacement ends as if it never moved.
	resizingInProgress bool
	moveInProgress     bool
}

// beginGesture captures the bar under the point, if any, and arms the click
// disambiguation timer. The resize/move mode is decided here and fixed for
// the gesture's lifetime.
func (c *Chart) beginGesture(x, y float64) {
	x += c.scrollOffset()
	if c.capture != nil {
		// At most one live capture; a second begin is ignored.
		return
	}
	b := c.barAt(x, y)
	if b == nil {
		return
	}

	tw := c.trackWidth()
	cs := &captureState{
		bar:      b,
		captureX: x,
		captureY: y,
		moveX:    x,
		moveY:    y,
		leftPct:  b.leftPct,
		widthPct: b.widthPct,
		leftPx:   b.currentLeftPx(tw),
		widthPx:  b.currentWidthPx(tw),
		bgColor:  b.color,
	}
	if !b.invalid && c.detectResizing(b, x) {
		cs.resizing = true
		cs.resizingFromLeft = c.isResizingLeft(b, x)
	}
	c.capture = cs
	c.clickOnNextRelease = true
	c.disallowClick.schedule(c.now(), clickInterval)
}

// moveGesture updates the hover cursor affordance and, when a capture is
// live, applies the drag delta to the captured bar's pixel geometry.
func (c *Chart) moveGesture(x, y float64) {
	x += c.scrollOffset()
	if hovered := c.barAt(x, y); hovered != nil {
		c.resizeCursor = !hovered.invalid && c.detectResizing(hovered, x)
	} else {
		c.resizeCursor = false
	}

	cs := c.capture
	if cs == nil {
		return
	}

	// Movement disqualifies the gesture as a click, regardless of how
	// little time has passed.
	c.disallowClick.cancel()
	c.clickOnNextRelease = false
	cs.moveX, cs.moveY = x, y

	b := cs.bar
	if b.invalid {
		return // invalid bars are click-only
	}

	deltaX := x - cs.captureX
	c.debugLogf("position delta x: %.1fpx", deltaX)

	if cs.resizing {
		cs.resizingInProgress = deltaX != 0
		c.applyAffordance(b, affordanceResizing)
		if cs.resizingFromLeft {
			c.resizeLeft(cs, deltaX)
		} else {
			c.resizeRight(cs, deltaX)
		}
		b.bgCleared = true
	} else if c.IsMovableSteps() {
		cs.moveInProgress = deltaX != 0
		c.applyAffordance(b, affordanceMoving)
		b.leftPx = cs.leftPx + deltaX
		b.widthPx = cs.widthPx
		b.pixelGeometry = true
		b.bgCleared = true
	}
}

// resizeLeft drags the bar's left edge: the right edge stays anchored.
// Updates that would shrink the bar below the minimum width are dropped,
// holding the last valid geometry.
func (c *Chart) resizeLeft(cs *captureState, deltaX float64) {
	newLeft := cs.leftPx + deltaX
	newWidth := cs.widthPx - deltaX
	if newWidth >= barMinWidth {
		cs.bar.leftPx = newLeft
		cs.bar.widthPx = newWidth
		cs.bar.pixelGeometry = true
	}
}

// resizeRight drags the bar's right edge: the left edge stays anchored.
func (c *Chart) resizeRight(cs *captureState, deltaX float64) {
	newWidth := cs.widthPx + deltaX
	if newWidth >= barMinWidth {
		cs.bar.leftPx = cs.leftPx
		cs.bar.widthPx = newWidth
		cs.bar.pixelGeometry = true
	}
}

// endGesture resolves the capture: a click if the disambiguation timer never
// fired and nothing moved, a committed move/resize if net movement occurred,
// or a revert to the captured geometry otherwise.
func (c *Chart) endGesture(x, y float64) {
	x += c.scrollOffset()
	cs := c.capture
	if cs == nil {
		return
	}
	c.disallowClick.cancel()

	b := cs.bar
	if released := c.barAt(x, y); released == b && c.clickOnNextRelease {
		if c.IsEnabled() && c.controller != nil {
			c.controller.StepClicked(c.indexOf(b))
		}
	} else {
		if cs.resizing {
			c.applyAffordance(b, affordanceNone)
			if cs.resizingInProgress {
				c.completeMoveOrResize(cs, false)
			} else {
				c.resetBarPosition(cs)
			}
		} else if c.IsMovableSteps() {
			c.applyAffordance(b, affordanceNone)
			if cs.moveInProgress {
				c.completeMoveOrResize(cs, true)
			} else {
				c.resetBarPosition(cs)
			}
		}
		b.color = cs.bgColor
		b.bgCleared = false
	}

	c.stopDrag()
}

// cancelGesture unwinds an interrupted gesture: original geometry and color
// are restored unconditionally and nothing is reported.
func (c *Chart) cancelGesture() {
	cs := c.capture
	if cs == nil {
		return
	}
	c.disallowClick.cancel()

	b := cs.bar
	c.resetBarPosition(cs)
	c.applyAffordance(b, affordanceNone)
	b.color = cs.bgColor
	b.bgCleared = false

	c.stopDrag()
}

// stopDrag releases the capture. The in-progress flags die with it.
func (c *Chart) stopDrag() {
	c.capture = nil
}

// resetBarPosition restores the percentage geometry recorded at gesture
// begin.
func (c *Chart) resetBarPosition(cs *captureState) {
	cs.bar.leftPct = cs.leftPct
	cs.bar.widthPct = cs.widthPct
	cs.bar.pixelGeometry = false
}

// completeMoveOrResize converts the bar's final pixel edges into a time
// range, normalizes the geometry back to percentages, and notifies the
// controller. The bar's index is looked up fresh: if the content was rebuilt
// mid-gesture the bar is detached and the notification is dropped.
func (c *Chart) completeMoveOrResize(cs *captureState, move bool) {
	b := cs.bar
	index := c.indexOf(b)

	tw := c.trackWidth()
	left := b.currentLeftPx(tw)
	start := c.timeline.TimeForLeftPosition(left)
	end := c.timeline.TimeForLeftPosition(left + b.currentWidthPx(tw))

	// Back to percentages so the bar keeps scaling with the track.
	b.setPercentageGeometry(start, end, c.timeline)

	if index < 0 {
		c.debugLogf("controller call dropped: bar detached (index %d)", index)
		return
	}
	if c.controller == nil {
		return
	}
	if move {
		c.controller.OnMove(index, start, end)
	} else {
		c.controller.OnResize(index, start, end)
	}
}

// --- Hit zones ---

// detectResizing reports whether a press at x on the bar lands in either
// resize zone. Only meaningful while resizing is permitted.
func (c *Chart) detectResizing(b *bar, x float64) bool {
	return c.IsResizableSteps() && (c.isResizingLeft(b, x) || c.isResizingRight(b, x))
}

// isResizingLeft reports whether x falls within the margin of the bar's left
// edge. Checked before the right zone; a bar narrower than two margins is in
// some resize zone everywhere.
func (c *Chart) isResizingLeft(b *bar, x float64) bool {
	return x <= b.currentLeftPx(c.trackWidth())+resizeMargin
}

// isResizingRight reports whether x falls within the margin of the bar's
// right edge.
func (c *Chart) isResizingRight(b *bar, x float64) bool {
	tw := c.trackWidth()
	right := b.currentLeftPx(tw) + b.currentWidthPx(tw)
	return x >= right-resizeMargin
}
