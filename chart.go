package gantt

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	defaultRowHeight = 30.0

	// Drag affordance highlight: a short fade-in of a white overlay on the
	// captured bar.
	dragHighlightAlpha = 0.35
	dragHighlightFade  = 0.15 // seconds
)

// Chart is a Gantt chart widget: a timeline header over a track of
// horizontally positioned, time-scaled step bars. Bars can be moved and
// resized by pointer; committed changes are reported to the Controller.
//
// A Chart is single-threaded: call Update and Draw from the ebiten game
// loop (or use Run), and call the mutating methods from Update only.
type Chart struct {
	timeline   Timeline
	controller Controller
	bars       []*bar

	enabled        bool
	movableSteps   bool
	resizableSteps bool

	// Input. One adapter is active, fixed at construction.
	inputMode InputMode
	mouse     mouseAdapter
	touch     touchAdapter
	pointer   *pointerAdapter

	// The single live gesture capture, nil when idle.
	capture            *captureState
	clickOnNextRelease bool
	disallowClick      deferredTask

	injectQueue []syntheticGestureEvent

	resizeCursor  bool
	cursorApplied bool

	highlight      *gween.Tween
	highlightAlpha float64

	now func() time.Time

	width         float64
	height        float64
	rowHeight     float64
	contentHeight float64

	wasOverflowing bool

	// ClearColor fills the chart background.
	ClearColor Color
	// DragColor fills a bar whose own background is suspended during a drag.
	DragColor Color
	// InvalidColor fills bars whose step has a nonsensical time range.
	InvalidColor Color
	// CaptionFace, when set, renders bar captions with text/v2. When nil a
	// built-in debug face is used.
	CaptionFace text.Face

	debug bool
}

// NewChart creates a chart over the given timeline, reporting interactions to
// the controller. The input mode is fixed for the chart's lifetime. A nil
// controller is allowed; interactions then update geometry only.
func NewChart(tl Timeline, controller Controller, mode InputMode) *Chart {
	c := &Chart{
		timeline:   tl,
		controller: controller,
		inputMode:  mode,
		enabled:    true,
		rowHeight:  defaultRowHeight,
		now:        time.Now,
		ClearColor: Color{R: 0.97, G: 0.97, B: 0.97, A: 1},
		DragColor:  Color{R: 0.65, G: 0.75, B: 0.9, A: 1},
		InvalidColor: Color{
			R: 0.85, G: 0.4, B: 0.4, A: 0.5,
		},
	}
	c.pointer = newPointerAdapter(c)

	// The disambiguation timer: once it fires, the release can no longer be
	// a click, and a movable capture shows the moving affordance even
	// before any movement.
	c.disallowClick.fn = func() {
		c.clickOnNextRelease = false
		cs := c.capture
		if cs == nil {
			return
		}
		if c.IsMovableSteps() && !cs.resizingInProgress {
			c.applyAffordance(cs.bar, affordanceMoving)
		}
	}
	return c
}

// SetSteps replaces the chart's content with the given steps, in order. The
// whole bar collection is rebuilt; there is no incremental diffing. A bar
// captured by an in-flight gesture becomes detached, which drops that
// gesture's notification.
func (c *Chart) SetSteps(steps []Step) {
	c.rebuildBars(steps)
	c.wasOverflowing = c.timeline.OverflowingHorizontally()
}

// StepCount returns the number of steps currently rendered.
func (c *Chart) StepCount() int {
	return len(c.bars)
}

// Update advances timers, polls the active input adapter, and animates the
// drag highlight. Call once per tick.
func (c *Chart) Update() {
	c.advance(c.now())

	if !c.processInjectedInput() {
		switch c.inputMode {
		case InputMouse:
			c.mouse.poll(c)
		case InputTouch:
			c.touch.poll(c)
		}
	}

	c.advanceHighlight(1 / float64(ebiten.TPS()))
	c.applyCursorShape()
}

// advance fires any due deferred tasks. Split from Update so timer behavior
// is drivable with an explicit clock.
func (c *Chart) advance(now time.Time) {
	c.disallowClick.tick(now)
	c.pointer.detect.tick(now)
}

// advanceHighlight steps the affordance highlight tween.
func (c *Chart) advanceHighlight(dt float64) {
	if c.highlight == nil {
		return
	}
	v, done := c.highlight.Update(float32(dt))
	c.highlightAlpha = float64(v)
	if done {
		c.highlight = nil
	}
}

// applyAffordance switches a bar's drag style and restarts the highlight
// fade on style transitions.
func (c *Chart) applyAffordance(b *bar, a affordance) {
	if b == nil || b.affordance == a {
		return
	}
	b.affordance = a
	if a == affordanceNone {
		c.highlight = nil
		c.highlightAlpha = 0
		return
	}
	c.highlight = gween.New(0, dragHighlightAlpha, dragHighlightFade, ease.OutQuad)
}

// applyCursorShape pushes the resize-cursor state to the platform. Mouse
// input only; touch and pointer devices have no hover cursor.
func (c *Chart) applyCursorShape() {
	if c.inputMode != InputMouse || c.resizeCursor == c.cursorApplied {
		return
	}
	c.cursorApplied = c.resizeCursor
	if c.resizeCursor {
		ebiten.SetCursorShape(ebiten.CursorShapeEWResize)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// CancelGesture aborts any in-flight gesture, restoring the captured bar's
// original geometry. Platform glue should call this on window focus loss or
// any other interruption that will swallow the pointer release. The pointer
// adapter is reset too, so a press whose detection delay has not elapsed yet
// cannot begin a gesture after the cancel.
func (c *Chart) CancelGesture() {
	c.pointer.reset()
	c.cancelGesture()
}

// --- Layout ---

// NotifyWidthChanged tells the chart how many pixels are available
// horizontally. The timeline band is resized with it; when horizontal
// overflow disappears the scroll position resets.
func (c *Chart) NotifyWidthChanged(w float64) {
	c.width = w
	tb, ok := c.timeline.(*TimelineBand)
	if !ok {
		return
	}
	tb.SetWidth(w)
	if c.wasOverflowing != tb.OverflowingHorizontally() {
		c.wasOverflowing = tb.OverflowingHorizontally()
		if !c.wasOverflowing {
			tb.SetScrollLeft(0)
		}
	}
}

// NotifyHeightChanged tells the chart how many pixels are available
// vertically.
func (c *Chart) NotifyHeightChanged(h float64) {
	c.height = h
}

// SetScrollLeft synchronizes the timeline header with the container's
// horizontal scroll position.
func (c *Chart) SetScrollLeft(px float64) {
	if tb, ok := c.timeline.(*TimelineBand); ok {
		tb.SetScrollLeft(px)
	}
}

// scrollOffset translates a screen x into a track x. Bars render shifted left
// by the scroll position, so gesture coordinates shift right by the same
// amount before hit testing.
func (c *Chart) scrollOffset() float64 {
	if tb, ok := c.timeline.(*TimelineBand); ok {
		return tb.ScrollLeft()
	}
	return 0
}

// trackWidth returns the effective track width: the available width, floored
// at the timeline's minimum.
func (c *Chart) trackWidth() float64 {
	if min := c.timeline.MinWidth(); c.width < min {
		return min
	}
	return c.width
}

// headerHeight returns the rendered height of the timeline header.
func (c *Chart) headerHeight() float64 {
	if tb, ok := c.timeline.(*TimelineBand); ok {
		return tb.Height
	}
	return 0
}

// ContentHeight returns the pixel height of the bar track (excluding the
// header).
func (c *Chart) ContentHeight() float64 {
	return c.contentHeight
}

// SetRowHeight sets the pixel height of one bar row.
func (c *Chart) SetRowHeight(h float64) {
	c.rowHeight = h
	c.contentHeight = float64(len(c.bars)) * h
}

// --- Switches ---

// SetEnabled enables or disables all interaction reporting.
func (c *Chart) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// IsEnabled reports whether the chart is enabled.
func (c *Chart) IsEnabled() bool {
	return c.enabled
}

// SetMovableSteps enables or disables moving bars.
func (c *Chart) SetMovableSteps(movable bool) {
	c.movableSteps = movable
}

// IsMovableSteps reports whether bars may currently be moved. Always false
// while the chart is disabled.
func (c *Chart) IsMovableSteps() bool {
	return c.enabled && c.movableSteps
}

// SetResizableSteps enables or disables resizing bars.
func (c *Chart) SetResizableSteps(resizable bool) {
	c.resizableSteps = resizable
}

// IsResizableSteps reports whether bars may currently be resized. Always
// false while the chart is disabled.
func (c *Chart) IsResizableSteps() bool {
	return c.enabled && c.resizableSteps
}

// SetDebugMode enables stderr logging of drag deltas and dropped
// notifications.
func (c *Chart) SetDebugMode(enabled bool) {
	c.debug = enabled
}

func (c *Chart) debugLogf(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[gantt] "+format+"\n", args...)
}
