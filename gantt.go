package gantt

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const (
	// resizeMargin is the width in pixels of the resize zone at each end
	// of a bar. A press inside the zone starts a resize instead of a move.
	resizeMargin = 10.0

	// barMinWidth is the floor applied to a bar's width during a resize.
	// Updates that would shrink the bar below this are dropped.
	barMinWidth = resizeMargin

	// clickInterval is how long after a press a release still counts as a
	// click, provided the pointer never moved.
	clickInterval = 250 * time.Millisecond

	// pointerDetectInterval delays the begin of a pointer-device gesture so
	// the platform can settle on touch vs. mouse before we commit.
	pointerDetectInterval = 100 * time.Millisecond
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is plain opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// WhitePixel is a 1x1 white image used to draw solid color rectangles.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// toRGBA converts a Color to a color.RGBA-compatible value (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Right returns the X coordinate of the rectangle's right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// InputMode selects which raw input model feeds the chart's gesture stream.
// The mode is fixed at construction time; there is no per-event branching.
type InputMode uint8

const (
	// InputMouse polls the mouse cursor and left button.
	InputMouse InputMode = iota
	// InputTouch polls the touch points; only single-finger gestures are honored.
	InputTouch
	// InputPointer consumes id-tracked pointer events fed via FeedPointerEvent.
	InputPointer
)

// Controller receives the chart's interaction outcomes. Implementations
// typically forward these to a server or application model.
//
// StepClicked fires on a press/release pair with no intervening movement.
// OnMove and OnResize fire once per committed gesture, at gesture end, with
// the step's new time range.
type Controller interface {
	StepClicked(index int)
	OnMove(index int, start, end time.Time)
	OnResize(index int, start, end time.Time)
}
