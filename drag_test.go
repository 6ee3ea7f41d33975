package gantt

import (
	"testing"
	"time"
)

// --- Fixtures ---

type rangeEvent struct {
	index      int
	start, end time.Time
}

// recordingController captures every controller notification for assertions.
type recordingController struct {
	clicks  []int
	moves   []rangeEvent
	resizes []rangeEvent
}

func (r *recordingController) StepClicked(index int) {
	r.clicks = append(r.clicks, index)
}

func (r *recordingController) OnMove(index int, start, end time.Time) {
	r.moves = append(r.moves, rangeEvent{index, start, end})
}

func (r *recordingController) OnResize(index int, start, end time.Time) {
	r.resizes = append(r.resizes, rangeEvent{index, start, end})
}

func (r *recordingController) assertSilent(t *testing.T) {
	t.Helper()
	if len(r.clicks)+len(r.moves)+len(r.resizes) != 0 {
		t.Fatalf("controller notified: clicks=%v moves=%v resizes=%v",
			r.clicks, r.moves, r.resizes)
	}
}

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) tick(c *Chart, d time.Duration) {
	f.t = f.t.Add(d)
	c.advance(f.t)
}

var testBandStart = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

// testSteps lays out three bars on a 1000px track over ten days:
// bar 0 at 200..300px, bar 1 at 400..600px, bar 2 at 700..800px.
// Rows are 30px high under a 24px header.
func testSteps() []Step {
	return []Step{
		{Caption: "Design", Start: testBandStart.Add(2 * 24 * time.Hour), End: testBandStart.Add(3 * 24 * time.Hour)},
		{Caption: "Build", Start: testBandStart.Add(4 * 24 * time.Hour), End: testBandStart.Add(6 * 24 * time.Hour)},
		{Caption: "Ship", Start: testBandStart.Add(7 * 24 * time.Hour), End: testBandStart.Add(8 * 24 * time.Hour)},
	}
}

func newTestChart(t *testing.T, mode InputMode, steps []Step) (*Chart, *recordingController, *fakeClock) {
	t.Helper()
	band, err := NewTimelineBand(testBandStart, testBandStart.Add(10*24*time.Hour), ResolutionDay)
	if err != nil {
		t.Fatalf("NewTimelineBand: %v", err)
	}
	ctrl := &recordingController{}
	c := NewChart(band, ctrl, mode)
	clk := &fakeClock{t: time.Unix(1_000_000, 0)}
	c.now = clk.now
	c.SetMovableSteps(true)
	c.SetResizableSteps(true)
	c.NotifyWidthChanged(1000)
	c.NotifyHeightChanged(400)
	c.SetSteps(steps)
	return c, ctrl, clk
}

func assertTimeEqual(t *testing.T, label string, got, want time.Time) {
	t.Helper()
	d := got.Sub(want)
	if d < 0 {
		d = -d
	}
	if d > time.Microsecond {
		t.Errorf("%s = %v, want %v", label, got, want)
	}
}

// --- Click path ---

func TestClickReportsIndex(t *testing.T) {
	c, ctrl, _ := newTestChart(t, InputPointer, testSteps())

	c.beginGesture(250, 30)
	c.endGesture(250, 30)

	if len(ctrl.clicks) != 1 || ctrl.clicks[0] != 0 {
		t.Fatalf("clicks = %v, want [0]", ctrl.clicks)
	}
	if len(ctrl.moves)+len(ctrl.resizes) != 0 {
		t.Fatalf("unexpected move/resize notifications: %v %v", ctrl.moves, ctrl.resizes)
	}
	if c.capture != nil {
		t.Error("capture survived the gesture")
	}
	if c.bars[0].pixelGeometry {
		t.Error("click left the bar in pixel geometry")
	}
}

func TestClickSuppressedAfterInterval(t *testing.T) {
	c, ctrl, clk := newTestChart(t, InputPointer, testSteps())

	c.beginGesture(250, 30)
	clk.tick(c, clickInterval)
	c.endGesture(250, 30)

	ctrl.assertSilent(t)
	if c.bars[0].affordance != affordanceNone {
		t.Error("affordance not cleared after release")
	}
	if c.bars[0].pixelGeometry {
		t.Error("bar left in pixel geometry")
	}
}

func TestTimerAppliesMovingAffordance(t *testing.T) {
	c, _, clk := newTestChart(t, InputPointer, testSteps())

	c.beginGesture(250, 30)
	clk.tick(c, clickInterval)

	if c.clickOnNextRelease {
		t.Error("clickOnNextRelease still set after the interval")
	}
	if c.bars[0].affordance != affordanceMoving {
		t.Error("timer did not apply the moving affordance to the held bar")
	}
	c.cancelGesture()
}

func TestClickBlockedByMovement(t *testing.T) {
	// A press that moves and returns to exactly its start point is neither a
	// click nor a committed move.
	c, ctrl, _ := newTestChart(t, InputPointer, testSteps())

	c.beginGesture(250, 30)
	c.moveGesture(280, 30)
	c.moveGesture(250, 30)
	c.endGesture(250, 30)

	ctrl.assertSilent(t)
	b := c.bars[0]
	if b.pixelGeometry || b.leftPct != 20 {
		t.Errorf("bar not reverted: pixelGeometry=%v leftPct=%v", b.pixelGeometry, b.leftPct)
	}
}

// --- Move path ---

func TestMoveDrag(t *testing.T) {
	c, ctrl, _ := newTestChart(t, InputPointer, testSteps())

	c.beginGesture(250, 30)
	c.moveGesture(300, 30)
	c.endGesture(300, 30)

	if len(ctrl.moves) != 1 {
		t.Fatalf("moves = %v, want exactly one", ctrl.moves)
	}
	ev := ctrl.moves[0]
	if ev.index != 0 {
		t.Errorf("index = %d, want 0", ev.index)
	}
	// 50px on a 1000px/10d track is half a day.
	assertTimeEqual(t, "start", ev.start, testBandStart.Add(60*time.Hour))
	assertTimeEqual(t, "end", ev.end, testBandStart.Add(84*time.Hour))

	b := c.bars[0]
	if b.pixelGeometry {
		t.Error("geometry not normalized back to percentages")
	}
	if b.leftPct != 25 || b.widthPct != 10 {
		t.Errorf("geometry = %v%% + %v%%, want 25%% + 10%%", b.leftPct, b.widthPct)
	}
	if b.bgCleared || b.affordance != affordanceNone {
		t.Error("drag styling not removed after commit")
	}
	if len(ctrl.clicks)+len(ctrl.resizes) != 0 {
		t.Errorf("unexpected click/resize notifications: %v %v", ctrl.clicks, ctrl.resizes)
	}
}

func TestMoveKeepsWidth(t *testing.T) {
	c, _, _ := newTestChart(t, InputPointer, testSteps())

	c.beginGesture(250, 30)
	c.moveGesture(330, 40)
	b := c.bars[0]
	if !b.pixelGeometry {
		t.Fatal("drag did not switch to pixel geometry")
	}
	if b.leftPx != 280 || b.widthPx != 100 {
		t.Errorf("geometry = %vpx + %vpx, want 280px + 100px", b.leftPx, b.widthPx)
	}
	c.cancelGesture()
}

// --- Resize path ---

func TestResizeRightDrag(t *testing.T) {
	c, ctrl, _ := newTestChart(t, InputPointer, testSteps())

	c.beginGesture(295, 30) // within the right margin of bar 0
	c.moveGesture(345, 30)
	c.endGesture(345, 30)

	if len(ctrl.resizes) != 1 {
		t.Fatalf("resizes = %v, want exactly one", ctrl.resizes)
	}
	ev := ctrl.resizes[0]
	if ev.index != 0 {
		t.Errorf("index = %d, want 0", ev.index)
	}
	// Left edge anchored at day 2; right edge dragged from day 3 to day 3.5.
	assertTimeEqual(t, "start", ev.start, testBandStart.Add(48*time.Hour))
	assertTimeEqual(t, "end", ev.end, testBandStart.Add(84*time.Hour))

	if got := c.bars[0].widthPct; got != 15 {
		t.Errorf("widthPct = %v, want 15", got)
	}
	if len(ctrl.moves) != 0 {
		t.Errorf("resize reported as move: %v", ctrl.moves)
	}
}

func TestResizeLeftDrag(t *testing.T) {
	c, ctrl, _ := newTestChart(t, InputPointer, testSteps())

	c.beginGesture(205, 30) // within the left margin of bar 0
	c.moveGesture(155, 30)
	c.endGesture(155, 30)

	if len(ctrl.resizes) != 1 {
		t.Fatalf("resizes = %v, want exactly one", ctrl.resizes)
	}
	ev := ctrl.resizes[0]
	// Right edge anchored at day 3; left edge dragged from day 2 to day 1.5.
	assertTimeEqual(t, "start", ev.start, testBandStart.Add(36*time.Hour))
	assertTimeEqual(t, "end", ev.end, testBandStart.Add(72*time.Hour))
}

func TestResizeHoldsAtMinimumWidth(t *testing.T) {
	c, ctrl, _ := newTestChart(t, InputPointer, testSteps())

	c.beginGesture(295, 30)
	c.moveGesture(245, 30) // width 50, valid
	b := c.bars[0]
	if b.widthPx != 50 {
		t.Fatalf("widthPx = %v, want 50", b.widthPx)
	}

	// Updates that would cross the minimum are dropped; the last valid
	// geometry holds, no matter how far past the limit the pointer goes.
	c.moveGesture(202, 30)
	if b.leftPx != 200 || b.widthPx != 50 {
		t.Errorf("geometry = %vpx + %vpx after overshoot, want held at 200px + 50px", b.leftPx, b.widthPx)
	}
	c.moveGesture(100, 30)
	if b.widthPx != 50 {
		t.Errorf("widthPx = %v after far overshoot, want held at 50", b.widthPx)
	}

	c.endGesture(230, 30)
	if len(ctrl.resizes) != 1 {
		t.Fatalf("resizes = %v, want exactly one", ctrl.resizes)
	}
	// Committed at the held geometry: day 2 .. day 2.5.
	assertTimeEqual(t, "end", ctrl.resizes[0].end, testBandStart.Add(60*time.Hour))
}

func TestResizeZoneClassification(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		resizing bool
		fromLeft bool
	}{
		{"left margin", 205, true, true},
		{"left boundary", 210, true, true},
		{"interior", 250, false, false},
		{"right boundary", 290, true, false},
		{"right margin", 295, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestChart(t, InputPointer, testSteps())
			c.beginGesture(tt.x, 30)
			cs := c.capture
			if cs == nil {
				t.Fatal("no capture")
			}
			if cs.resizing != tt.resizing || cs.resizingFromLeft != tt.fromLeft {
				t.Errorf("resizing=%v fromLeft=%v, want %v/%v",
					cs.resizing, cs.resizingFromLeft, tt.resizing, tt.fromLeft)
			}
			c.cancelGesture()
		})
	}
}

func TestNarrowBarLeftZoneWins(t *testing.T) {
	// A 15px bar is inside some resize zone everywhere; the left zone is
	// checked first and claims the overlap.
	steps := []Step{{
		Caption: "Spike",
		Start:   testBandStart.Add(2 * 24 * time.Hour),
		End:     testBandStart.Add(2*24*time.Hour + 3*time.Hour + 36*time.Minute), // 15px
	}}
	c, _, _ := newTestChart(t, InputPointer, steps)

	c.beginGesture(207, 30)
	if cs := c.capture; cs == nil || !cs.resizing || !cs.resizingFromLeft {
		t.Fatalf("capture at 207px = %+v, want resize-from-left", c.capture)
	}
	c.cancelGesture()

	c.beginGesture(213, 30)
	if cs := c.capture; cs == nil || !cs.resizing || cs.resizingFromLeft {
		t.Fatalf("capture at 213px = %+v, want resize-from-right", c.capture)
	}
	c.cancelGesture()
}

// --- Cancel and revert ---

func TestCancelRevertsEverything(t *testing.T) {
	c, ctrl, _ := newTestChart(t, InputPointer, testSteps())
	original := c.bars[0].color

	c.beginGesture(250, 30)
	c.moveGesture(320, 30)
	c.cancelGesture()

	ctrl.assertSilent(t)
	b := c.bars[0]
	if b.pixelGeometry || b.leftPct != 20 || b.widthPct != 10 {
		t.Errorf("geometry not reverted: %+v", b)
	}
	if b.color != original || b.bgCleared {
		t.Error("bar color not restored")
	}
	if b.affordance != affordanceNone {
		t.Error("affordance not cleared")
	}
	if c.capture != nil {
		t.Error("capture not released")
	}
}

func TestCancelWithoutCaptureIsNoop(t *testing.T) {
	c, ctrl, _ := newTestChart(t, InputPointer, testSteps())
	c.cancelGesture()
	c.endGesture(0, 0)
	c.moveGesture(0, 0)
	ctrl.assertSilent(t)
}

func TestStaleBarDropsNotification(t *testing.T) {
	c, ctrl, _ := newTestChart(t, InputPointer, testSteps())

	c.beginGesture(250, 30)
	c.moveGesture(300, 30)
	c.SetSteps(testSteps()) // rebuild mid-gesture detaches the captured bar
	c.endGesture(300, 30)

	ctrl.assertSilent(t)
	if c.capture != nil {
		t.Error("capture not released")
	}
}

func TestSecondBeginIgnored(t *testing.T) {
	c, _, _ := newTestChart(t, InputPointer, testSteps())

	c.beginGesture(250, 30)
	c.beginGesture(450, 70) // bar 1; must not steal the capture

	cs := c.capture
	if cs == nil || cs.bar != c.bars[0] || cs.captureX != 250 {
		t.Fatalf("capture = %+v, want the original bar 0 capture", cs)
	}
	c.cancelGesture()
}

func TestBeginOffBarsDoesNothing(t *testing.T) {
	c, ctrl, _ := newTestChart(t, InputPointer, testSteps())

	c.beginGesture(50, 30)  // row 0, left of bar 0
	c.beginGesture(250, 10) // inside the header
	if c.capture != nil {
		t.Fatal("captured with no bar under the point")
	}
	c.endGesture(50, 30)
	ctrl.assertSilent(t)
}

// --- Permission switches ---

func TestDisabledChartSwallowsInteraction(t *testing.T) {
	c, ctrl, _ := newTestChart(t, InputPointer, testSteps())
	c.SetEnabled(false)

	c.beginGesture(250, 30)
	c.endGesture(250, 30)

	c.beginGesture(250, 30)
	c.moveGesture(300, 30)
	c.endGesture(300, 30)

	ctrl.assertSilent(t)
	if c.bars[0].pixelGeometry || c.bars[0].leftPct != 20 {
		t.Error("disabled chart still changed geometry")
	}
}

func TestNotMovableStillResizable(t *testing.T) {
	c, ctrl, _ := newTestChart(t, InputPointer, testSteps())
	c.SetMovableSteps(false)

	c.beginGesture(250, 30) // interior: would be a move
	c.moveGesture(300, 30)
	c.endGesture(300, 30)
	if len(ctrl.moves) != 0 || c.bars[0].pixelGeometry {
		t.Fatal("move applied while steps are not movable")
	}

	c.beginGesture(295, 30)
	c.moveGesture(345, 30)
	c.endGesture(345, 30)
	if len(ctrl.resizes) != 1 {
		t.Fatalf("resizes = %v, want exactly one", ctrl.resizes)
	}
}

func TestNotResizableEdgePressMoves(t *testing.T) {
	// With resizing off, an edge press is an ordinary move grab.
	c, ctrl, _ := newTestChart(t, InputPointer, testSteps())
	c.SetResizableSteps(false)

	c.beginGesture(295, 30)
	if cs := c.capture; cs == nil || cs.resizing {
		t.Fatalf("capture = %+v, want a non-resize capture", c.capture)
	}
	c.moveGesture(345, 30)
	c.endGesture(345, 30)

	if len(ctrl.moves) != 1 || len(ctrl.resizes) != 0 {
		t.Fatalf("moves=%v resizes=%v, want one move", ctrl.moves, ctrl.resizes)
	}
}

// --- Invalid steps ---

func TestInvalidBarIsClickOnly(t *testing.T) {
	steps := testSteps()
	steps[1].End = steps[1].Start.Add(-time.Hour) // inverted range
	c, ctrl, _ := newTestChart(t, InputPointer, steps)

	if !c.bars[1].invalid {
		t.Fatal("inverted step not flagged invalid")
	}

	// Clickable anywhere on its row: the bar spans the full track.
	c.beginGesture(900, 70)
	c.endGesture(900, 70)
	if len(ctrl.clicks) != 1 || ctrl.clicks[0] != 1 {
		t.Fatalf("clicks = %v, want [1]", ctrl.clicks)
	}

	// Dragging it does nothing and reports nothing.
	c.beginGesture(500, 70)
	c.moveGesture(560, 70)
	c.endGesture(560, 70)
	if len(ctrl.moves)+len(ctrl.resizes) != 0 {
		t.Fatalf("invalid bar produced notifications: %v %v", ctrl.moves, ctrl.resizes)
	}
	if c.bars[1].pixelGeometry {
		t.Error("invalid bar switched to pixel geometry")
	}
}

// --- Scrolled track ---

func TestScrolledChartHitTest(t *testing.T) {
	// 500px available against the 600px minimum: the track overflows and the
	// container scrolls. Bars render shifted left by the scroll position, so
	// a press at a bar's rendered position must still land on it.
	c, ctrl, _ := newTestChart(t, InputPointer, testSteps())
	c.NotifyWidthChanged(500)
	c.SetScrollLeft(80)

	// Bar 0 occupies track x 120..180 and renders at screen x 40..100.
	c.beginGesture(70, 30)
	c.endGesture(70, 30)
	if len(ctrl.clicks) != 1 || ctrl.clicks[0] != 0 {
		t.Fatalf("clicks = %v, want [0]", ctrl.clicks)
	}

	// The unscrolled track position of bar 0 is empty screen space now.
	c.beginGesture(150, 30)
	if c.capture != nil {
		t.Fatal("captured at the bar's unscrolled track position")
	}
}

func TestScrolledChartDragCommitsTrackTimes(t *testing.T) {
	c, ctrl, _ := newTestChart(t, InputPointer, testSteps())
	c.NotifyWidthChanged(500)
	c.SetScrollLeft(80)

	// Screen 70 is track 150, the interior of bar 0 (track 120..180 on the
	// 600px minimum-width track). A 50px drag moves the bar half its width.
	c.beginGesture(70, 30)
	c.moveGesture(120, 30)
	c.endGesture(120, 30)

	if len(ctrl.moves) != 1 {
		t.Fatalf("moves = %v, want exactly one", ctrl.moves)
	}
	ev := ctrl.moves[0]
	// 170px on a 600px/10d track is 68h from the range start.
	assertTimeEqual(t, "start", ev.start, testBandStart.Add(68*time.Hour))
	assertTimeEqual(t, "end", ev.end, testBandStart.Add(92*time.Hour))
}

func TestScrolledChartResizeZones(t *testing.T) {
	c, _, _ := newTestChart(t, InputPointer, testSteps())
	c.NotifyWidthChanged(500)
	c.SetScrollLeft(80)

	// Screen 45 is track 125, inside bar 0's left margin.
	c.moveGesture(45, 30)
	if !c.resizeCursor {
		t.Error("no resize cursor over the rendered left margin")
	}

	c.beginGesture(45, 30)
	if cs := c.capture; cs == nil || !cs.resizing || !cs.resizingFromLeft {
		t.Fatalf("capture = %+v, want resize-from-left", c.capture)
	}
	c.cancelGesture()
}

// --- Hover cursor ---

func TestHoverResizeCursor(t *testing.T) {
	c, _, _ := newTestChart(t, InputPointer, testSteps())

	c.moveGesture(295, 30)
	if !c.resizeCursor {
		t.Error("no resize cursor over the right margin")
	}
	c.moveGesture(250, 30)
	if c.resizeCursor {
		t.Error("resize cursor over the bar interior")
	}
	c.moveGesture(50, 30)
	if c.resizeCursor {
		t.Error("resize cursor off any bar")
	}

	c.SetResizableSteps(false)
	c.moveGesture(295, 30)
	if c.resizeCursor {
		t.Error("resize cursor while resizing is disabled")
	}
}
