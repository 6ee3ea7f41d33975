// Package gantt is a Gantt chart widget for [Ebitengine].
//
// The chart renders a timeline header over a track of horizontally
// positioned, time-scaled step bars, and lets the user move and resize those
// bars by direct pointer manipulation. Pixel drags are translated back into
// timestamps and reported to a [Controller] when a gesture commits.
//
// # Quick start
//
// Build a [TimelineBand] over your date range, create a [Chart] with it, set
// the steps, and hand the chart to [Run]:
//
//	band, err := gantt.NewTimelineBand(start, end, gantt.ResolutionDay)
//	if err != nil {
//		log.Fatal(err)
//	}
//	chart := gantt.NewChart(band, controller, gantt.InputMouse)
//	chart.SetMovableSteps(true)
//	chart.SetResizableSteps(true)
//	chart.SetSteps(steps)
//	gantt.Run(chart, gantt.RunConfig{Title: "Schedule", Width: 960, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call [Chart.Update],
// [Chart.Draw], and the layout notifications directly.
//
// # Interaction model
//
// One input adapter, fixed at construction via [InputMode], normalizes mouse,
// touch, or id-tracked pointer events into a single gesture stream. A press
// on a bar captures it: a press near an edge starts a resize, anywhere else a
// move. The classification is made once, at press time, and holds for the
// whole gesture.
//
// A short timer separates taps from drags: release before the timer with no
// movement reports [Controller.StepClicked]; any movement turns the gesture
// into a drag. While dragging, the bar follows the pointer in pixel space; on
// release the final pixel edges are converted to times through the timeline
// and reported via [Controller.OnMove] or [Controller.OnResize]. A cancelled
// or net-zero gesture restores the bar exactly.
//
// Bars whose step has end <= start (or a pre-epoch instant) render in an
// invalid style: they stay clickable but cannot be dragged.
//
// # Threading
//
// A Chart is single-threaded. All methods must be called from the ebiten
// update loop; the two internal timers are cooperative and fire inside
// [Chart.Update], never concurrently.
//
// [Ebitengine]: https://ebitengine.org
package gantt
