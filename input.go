package gantt

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// The chart consumes one normalized gesture stream: begin, move, end, cancel,
// each with screen coordinates; the gesture handlers translate those into
// track coordinates by the scroll position before hit testing. Three adapters produce that stream from the
// three raw input models. Exactly one adapter is selected at construction
// time via InputMode; the interaction engine itself never branches on the
// device type.

// --- Mouse adapter ---

// mouseAdapter tracks the left button's edge transitions. Only the left
// button participates in gestures; hover moves are forwarded so the resize
// cursor affordance can follow the pointer.
type mouseAdapter struct {
	down    bool
	started bool
	lastX   float64
	lastY   float64
}

// poll reads the cursor and left button from ebiten and advances the adapter.
func (a *mouseAdapter) poll(c *Chart) {
	mx, my := ebiten.CursorPosition()
	a.step(c, float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// step advances the adapter with an explicit sample. Split from poll so the
// transition logic is testable without a display.
func (a *mouseAdapter) step(c *Chart, x, y float64, pressed bool) {
	moved := a.started && (x != a.lastX || y != a.lastY)
	a.started = true
	a.lastX, a.lastY = x, y

	switch {
	case pressed && !a.down:
		a.down = true
		c.beginGesture(x, y)
	case !pressed && a.down:
		a.down = false
		c.endGesture(x, y)
	default:
		if moved {
			c.moveGesture(x, y)
		}
	}
}

// --- Touch adapter ---

// touchPoint is one sampled touch.
type touchPoint struct {
	id   ebiten.TouchID
	x, y float64
}

// touchAdapter honors single-finger gestures only. A begin is accepted only
// while exactly one touch is active; extra fingers are ignored until all
// fingers lift. The first finger's gesture continues undisturbed when a
// second finger appears.
type touchAdapter struct {
	active     bool
	suppressed bool // saw an unacceptable touch set; wait for all-clear
	id         ebiten.TouchID
	lastX      float64
	lastY      float64
	ids        []ebiten.TouchID // scratch
}

// poll reads the current touch set from ebiten and advances the adapter.
func (a *touchAdapter) poll(c *Chart) {
	a.ids = ebiten.AppendTouchIDs(a.ids[:0])
	touches := make([]touchPoint, 0, len(a.ids))
	for _, id := range a.ids {
		tx, ty := ebiten.TouchPosition(id)
		touches = append(touches, touchPoint{id: id, x: float64(tx), y: float64(ty)})
	}
	a.step(c, touches)
}

// step advances the adapter with an explicit touch set.
func (a *touchAdapter) step(c *Chart, touches []touchPoint) {
	if !a.active {
		if len(touches) == 0 {
			a.suppressed = false
			return
		}
		if a.suppressed || len(touches) != 1 {
			// Multi-finger start, or a leftover finger from one. Ignore
			// everything until the screen is clear again.
			a.suppressed = true
			return
		}
		t := touches[0]
		a.active = true
		a.id = t.id
		a.lastX, a.lastY = t.x, t.y
		c.beginGesture(t.x, t.y)
		return
	}

	for _, t := range touches {
		if t.id != a.id {
			continue
		}
		if t.x != a.lastX || t.y != a.lastY {
			a.lastX, a.lastY = t.x, t.y
			c.moveGesture(t.x, t.y)
		}
		return
	}

	// Tracked finger lifted: the gesture ends at its last known position.
	a.active = false
	a.suppressed = len(touches) > 0
	c.endGesture(a.lastX, a.lastY)
}

// --- Pointer adapter ---

// PointerEventKind identifies a raw pointer-device event.
type PointerEventKind uint8

const (
	PointerDown PointerEventKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

// PointerEvent is a raw event from an id-tracked pointer device (stylus, pen,
// or a platform that unifies mouse and touch behind pointer ids). Feed these
// to the chart via Chart.FeedPointerEvent when the input mode is InputPointer.
type PointerEvent struct {
	ID   int
	Kind PointerEventKind
	X, Y float64
}

// pointerAdapter normalizes id-tracked pointer events. Only one pointer id is
// honored at a time: a down from a second id while the first is live is
// consumed and dropped. The begin is not dispatched immediately; a short
// detection delay lets the platform settle the device classification first.
type pointerAdapter struct {
	currentID int // -1 when no pointer is tracked
	pending   *PointerEvent
	detect    deferredTask
}

func newPointerAdapter(c *Chart) *pointerAdapter {
	a := &pointerAdapter{currentID: -1}
	a.detect.fn = func() {
		if a.pending == nil {
			return
		}
		ev := *a.pending
		a.pending = nil
		c.beginGesture(ev.X, ev.Y)
	}
	return a
}

// reset drops the tracked pointer id, the detection timer, and any pending
// begin. After a reset the adapter accepts the next pointer down immediately.
func (a *pointerAdapter) reset() {
	a.currentID = -1
	a.detect.cancel()
	a.pending = nil
}

// handle consumes one raw pointer event. Returns false when the event was
// suppressed (a concurrent second pointer), so callers can stop its default
// platform handling.
func (a *pointerAdapter) handle(c *Chart, ev PointerEvent) bool {
	switch ev.Kind {
	case PointerDown:
		if a.currentID != -1 {
			return false // multi-touch not supported
		}
		a.currentID = ev.ID
		pending := ev
		a.pending = &pending
		a.detect.schedule(c.now(), pointerDetectInterval)
	case PointerUp:
		if ev.ID != a.currentID {
			return true
		}
		a.reset()
		c.endGesture(ev.X, ev.Y)
	case PointerMove:
		// Hover moves (no tracked pointer) still drive the cursor affordance;
		// moves from a suppressed second pointer are dropped.
		if a.currentID != -1 && ev.ID != a.currentID {
			return true
		}
		c.moveGesture(ev.X, ev.Y)
	case PointerCancel:
		if ev.ID != a.currentID {
			return true
		}
		a.reset()
		c.cancelGesture()
	}
	return true
}

// FeedPointerEvent hands a raw pointer-device event to the chart. It is the
// input path for InputPointer mode; events fed in other modes are ignored.
// Returns false when the event was suppressed and its default platform
// handling should be stopped.
func (c *Chart) FeedPointerEvent(ev PointerEvent) bool {
	if c.inputMode != InputPointer {
		return true
	}
	return c.pointer.handle(c, ev)
}
