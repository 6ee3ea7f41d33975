package gantt

import "time"

// Step is one schedulable unit rendered as a horizontal bar. Steps are plain
// data: the chart reads them once per SetSteps call and never mutates them.
// A committed move or resize is reported through the Controller; it is the
// application's job to update its steps and call SetSteps again.
type Step struct {
	Caption string
	Color   Color
	Start   time.Time
	End     time.Time
}

// Valid reports whether the step has a sensible time range: both instants at
// or after the Unix epoch and End strictly after Start. Invalid steps render
// in an error style and cannot be moved or resized, but remain clickable.
func (s Step) Valid() bool {
	if s.Start.UnixMilli() < 0 || s.End.UnixMilli() < 0 {
		return false
	}
	return s.End.After(s.Start)
}

// Duration returns the step's time span. Zero or negative for invalid steps.
func (s Step) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
