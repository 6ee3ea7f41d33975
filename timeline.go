package gantt

import (
	"math"
	"time"
)

// Timeline maps between the horizontal pixel axis and time. The chart's
// interaction engine consumes this interface only; TimelineBand is the
// built-in linear implementation that also renders the header.
type Timeline interface {
	// TimeForLeftPosition converts an absolute pixel offset from the track
	// origin into an instant.
	TimeForLeftPosition(px float64) time.Time

	// LeftPercentageForTime converts an instant into a percentage [0, 100]
	// of the track width.
	LeftPercentageForTime(t time.Time) float64

	// WidthPercentageForDuration converts a time span into a percentage
	// [0, 100] of the track width.
	WidthPercentageForDuration(d time.Duration) float64

	// MinWidth returns the minimum content width in pixels required to
	// render every tick at its minimum width.
	MinWidth() float64

	// OverflowingHorizontally reports whether the minimum content width
	// exceeds the currently available width.
	OverflowingHorizontally() bool
}

// Resolution selects the tick granularity of the timeline header.
type Resolution uint8

const (
	ResolutionHour Resolution = iota
	ResolutionDay
	ResolutionWeek
)

// tickInterval returns the time span covered by one header tick.
func (r Resolution) tickInterval() time.Duration {
	switch r {
	case ResolutionHour:
		return time.Hour
	case ResolutionWeek:
		return 7 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// minTickWidth returns the narrowest a tick may render, in pixels.
func (r Resolution) minTickWidth() float64 {
	switch r {
	case ResolutionHour:
		return 40
	case ResolutionWeek:
		return 70
	default:
		return 60
	}
}

// labelFormat returns the time layout used for this resolution's tick labels.
func (r Resolution) labelFormat() string {
	if r == ResolutionHour {
		return "15:04"
	}
	return "Jan 2"
}

// TimelineBand is a linear time scale over a fixed date range. It owns the
// pixel<->time mapping for the chart's track and draws the tick header.
//
// The available width is pushed in by the chart on every layout change; the
// effective track width never drops below MinWidth, the excess becoming
// horizontal overflow.
type TimelineBand struct {
	start      time.Time
	end        time.Time
	resolution Resolution

	// FirstWeekday aligns week-resolution ticks. Ignored otherwise.
	FirstWeekday time.Weekday

	// Height of the rendered header in pixels.
	Height float64

	width      float64
	scrollLeft float64
}

// defaultHeaderHeight is used when the caller does not set TimelineBand.Height.
const defaultHeaderHeight = 24.0

// NewTimelineBand creates a linear timeline over [start, end). The range must
// be non-empty and must not precede the Unix epoch.
func NewTimelineBand(start, end time.Time, resolution Resolution) (*TimelineBand, error) {
	if start.UnixMilli() < 0 || end.UnixMilli() < 0 || !end.After(start) {
		return nil, &RangeError{Start: start, End: end}
	}
	return &TimelineBand{
		start:      start,
		end:        end,
		resolution: resolution,
		Height:     defaultHeaderHeight,
	}, nil
}

// Start returns the beginning of the timeline's range.
func (b *TimelineBand) Start() time.Time { return b.start }

// End returns the end of the timeline's range.
func (b *TimelineBand) End() time.Time { return b.end }

// Resolution returns the header tick granularity.
func (b *TimelineBand) Resolution() Resolution { return b.resolution }

// SetWidth tells the band how many pixels are available for the track.
func (b *TimelineBand) SetWidth(px float64) {
	b.width = px
}

// SetScrollLeft synchronizes the header with the content's horizontal scroll
// position.
func (b *TimelineBand) SetScrollLeft(px float64) {
	b.scrollLeft = px
}

// ScrollLeft returns the header's horizontal scroll position.
func (b *TimelineBand) ScrollLeft() float64 {
	return b.scrollLeft
}

// TrackWidth returns the effective pixel width of the track: the available
// width, floored at MinWidth.
func (b *TimelineBand) TrackWidth() float64 {
	if min := b.MinWidth(); b.width < min {
		return min
	}
	return b.width
}

// TimeForLeftPosition converts an absolute pixel offset from the track origin
// into an instant. Offsets outside the track extrapolate linearly; the band
// does not clamp.
func (b *TimelineBand) TimeForLeftPosition(px float64) time.Time {
	span := b.end.Sub(b.start)
	frac := px / b.TrackWidth()
	return b.start.Add(time.Duration(frac * float64(span)))
}

// LeftPercentageForTime converts an instant into a percentage of the track.
func (b *TimelineBand) LeftPercentageForTime(t time.Time) float64 {
	span := b.end.Sub(b.start)
	return float64(t.Sub(b.start)) / float64(span) * 100
}

// WidthPercentageForDuration converts a time span into a percentage of the
// track.
func (b *TimelineBand) WidthPercentageForDuration(d time.Duration) float64 {
	span := b.end.Sub(b.start)
	return float64(d) / float64(span) * 100
}

// MinWidth returns the narrowest the track may render: one minimum tick width
// per tick.
func (b *TimelineBand) MinWidth() float64 {
	return float64(b.tickCount()) * b.resolution.minTickWidth()
}

// OverflowingHorizontally reports whether the track needs more pixels than the
// available width.
func (b *TimelineBand) OverflowingHorizontally() bool {
	return b.MinWidth() > b.width
}

// tickCount returns the number of header ticks spanning the range.
func (b *TimelineBand) tickCount() int {
	span := b.end.Sub(b.start)
	n := int(math.Ceil(float64(span) / float64(b.resolution.tickInterval())))
	if n < 1 {
		n = 1
	}
	return n
}

// ticks returns the instants at which header ticks begin, starting with the
// first tick boundary at or before the range start.
func (b *TimelineBand) ticks() []time.Time {
	interval := b.resolution.tickInterval()
	first := b.tickOrigin()
	out := make([]time.Time, 0, b.tickCount()+1)
	for t := first; t.Before(b.end); t = t.Add(interval) {
		out = append(out, t)
	}
	return out
}

// tickOrigin returns the boundary of the tick containing the range start.
func (b *TimelineBand) tickOrigin() time.Time {
	switch b.resolution {
	case ResolutionHour:
		return b.start.Truncate(time.Hour)
	case ResolutionWeek:
		day := b.start.Truncate(24 * time.Hour)
		for day.Weekday() != b.FirstWeekday {
			day = day.Add(-24 * time.Hour)
		}
		return day
	default:
		return b.start.Truncate(24 * time.Hour)
	}
}

// RangeError reports an unusable timeline date range.
type RangeError struct {
	Start, End time.Time
}

func (e *RangeError) Error() string {
	return "gantt: invalid timeline range: start " + e.Start.String() +
		", end " + e.End.String()
}
