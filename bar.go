package gantt

import "time"

// affordance is the visual drag style applied to a bar while a gesture
// manipulates it.
type affordance uint8

const (
	affordanceNone affordance = iota
	affordanceMoving
	affordanceResizing
)

// bar is the rendered rectangle for one step. Bars live in the chart's
// ordered registry and are rebuilt wholesale on every SetSteps call; nothing
// is diffed incrementally.
//
// At rest a bar's geometry is a percentage of the track, so it rescales with
// the track for free. During a drag the geometry switches to pixels; it is
// normalized back to percentages when the gesture ends, whether committed or
// reverted.
type bar struct {
	step    Step
	invalid bool

	color     Color
	bgCleared bool // background suspended while dragging so the drag style shows

	// Drag affordance style, applied by the disambiguation timer or the
	// first processed move. affordanceNone when at rest.
	affordance affordance

	// Percentage geometry (authoritative at rest).
	leftPct  float64
	widthPct float64

	// Pixel geometry (authoritative while pixelGeometry is set).
	leftPx        float64
	widthPx       float64
	pixelGeometry bool

	row int
}

// newBar builds a bar for a step. Invalid steps are flagged and left at zero
// percentage geometry; they render across the whole row and stay clickable,
// but never become drag targets.
func newBar(step Step, row int, tl Timeline) *bar {
	b := &bar{
		step:  step,
		color: step.Color,
		row:   row,
	}
	if !step.Valid() {
		b.invalid = true
		return b
	}
	b.setPercentageGeometry(step.Start, step.End, tl)
	return b
}

// setPercentageGeometry positions the bar from a time range, dropping any
// pixel geometry left over from a drag.
func (b *bar) setPercentageGeometry(start, end time.Time, tl Timeline) {
	b.leftPct = tl.LeftPercentageForTime(start)
	b.widthPct = tl.WidthPercentageForDuration(end.Sub(start))
	b.pixelGeometry = false
}

// currentLeftPx returns the bar's live left edge in pixels for the given
// track width.
func (b *bar) currentLeftPx(trackWidth float64) float64 {
	if b.pixelGeometry {
		return b.leftPx
	}
	return b.leftPct / 100 * trackWidth
}

// currentWidthPx returns the bar's live width in pixels for the given track
// width. Invalid bars span the full track.
func (b *bar) currentWidthPx(trackWidth float64) float64 {
	if b.invalid {
		return trackWidth
	}
	if b.pixelGeometry {
		return b.widthPx
	}
	return b.widthPct / 100 * trackWidth
}

// rect returns the bar's rectangle in chart coordinates.
func (b *bar) rect(trackWidth, top, rowHeight float64) Rect {
	return Rect{
		X:      b.currentLeftPx(trackWidth),
		Y:      top + float64(b.row)*rowHeight,
		Width:  b.currentWidthPx(trackWidth),
		Height: rowHeight,
	}
}

// --- Registry ---

// rebuildBars replaces the chart's bar registry from the step collection, in
// iteration order. The order defines the index reported to the Controller.
func (c *Chart) rebuildBars(steps []Step) {
	c.bars = c.bars[:0]
	for i, step := range steps {
		c.bars = append(c.bars, newBar(step, i, c.timeline))
	}
	c.contentHeight = float64(len(steps)) * c.rowHeight
}

// indexOf returns the bar's position in the registry, or -1 if the bar is no
// longer attached (the content was rebuilt mid-gesture). Indexes are looked
// up fresh at notification time, never cached across a gesture.
func (c *Chart) indexOf(b *bar) int {
	for i, other := range c.bars {
		if other == b {
			return i
		}
	}
	return -1
}

// barAt returns the topmost bar containing the point, or nil. Later rows
// paint over earlier ones, so the scan runs backward.
func (c *Chart) barAt(x, y float64) *bar {
	tw := c.trackWidth()
	for i := len(c.bars) - 1; i >= 0; i-- {
		b := c.bars[i]
		if b.rect(tw, c.headerHeight(), c.rowHeight).Contains(x, y) {
			return b
		}
	}
	return nil
}
