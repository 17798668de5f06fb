package easel

import "math"

const defaultDragDeadZone = 4.0 // pixels

// PointerEvent is the payload of the pointer events. Target is the shape the
// event concerns and may be nil for presses and moves over empty space.
// StartX and StartY are the press position; for drag events DeltaX and
// DeltaY are the motion since the previous drag event (since the press for
// EventDragStart).
type PointerEvent struct {
	X, Y           float64
	Target         Shape
	StartX, StartY float64
	DeltaX, DeltaY float64
}

type pointerState struct {
	down       bool
	startX     float64
	startY     float64
	lastX      float64
	lastY      float64
	hitShape   Shape // shape under the press
	hoverShape Shape // last shape the pointer was over, for enter/leave
	dragging   bool
}

// SetDragDeadZone sets how far, in pixels, a pressed pointer must travel
// before a drag starts.
func (r *Renderer) SetDragDeadZone(pixels float64) {
	r.dragDeadZone = pixels
}

// ProcessPointer feeds one pointer sample through the pointer state machine
// and emits the resulting events on the renderer. Call it once per frame
// with the current pointer position and button state; the ebiten Game does
// so automatically.
//
// Within a sample the events fire in this order: EventMouseLeave and
// EventMouseEnter when the shape under the pointer changed, then one of
// EventMouseDown; EventDragEnd or EventClick followed by EventMouseUp;
// EventDragStart and EventDragMove; or EventMouseMove.
func (r *Renderer) ProcessPointer(x, y float64, pressed bool) {
	ps := &r.pointer
	target := r.HitTest(x, y)

	if target != ps.hoverShape {
		if ps.hoverShape != nil {
			r.firePointer(EventMouseLeave, ps.hoverShape, x, y)
		}
		if target != nil {
			r.firePointer(EventMouseEnter, target, x, y)
		}
		ps.hoverShape = target
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.hitShape = target
		ps.dragging = false
		r.firePointer(EventMouseDown, target, x, y)

	case !pressed && ps.down:
		if ps.dragging {
			r.fireDrag(EventDragEnd, ps.hitShape, x, y, x-ps.lastX, y-ps.lastY)
		} else if ps.hitShape != nil && ps.hitShape == target {
			r.firePointer(EventClick, target, x, y)
		}
		r.firePointer(EventMouseUp, target, x, y)
		ps.down = false
		ps.hitShape = nil
		ps.dragging = false
		ps.lastX, ps.lastY = x, y

	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			if !ps.dragging {
				dx, dy := x-ps.startX, y-ps.startY
				if math.Sqrt(dx*dx+dy*dy) > r.dragDeadZone {
					ps.dragging = true
					r.fireDrag(EventDragStart, ps.hitShape, x, y, dx, dy)
				}
			}
			if ps.dragging {
				r.fireDrag(EventDragMove, ps.hitShape, x, y, x-ps.lastX, y-ps.lastY)
			}
		}
		ps.lastX, ps.lastY = x, y

	default:
		if x != ps.lastX || y != ps.lastY {
			r.firePointer(EventMouseMove, target, x, y)
			ps.lastX, ps.lastY = x, y
		}
	}
}

func (r *Renderer) firePointer(name string, target Shape, x, y float64) {
	r.emit(name, PointerEvent{
		X: x, Y: y,
		Target: target,
		StartX: r.pointer.startX, StartY: r.pointer.startY,
	})
}

func (r *Renderer) fireDrag(name string, target Shape, x, y, dx, dy float64) {
	r.emit(name, PointerEvent{
		X: x, Y: y,
		Target: target,
		StartX: r.pointer.startX, StartY: r.pointer.startY,
		DeltaX: dx, DeltaY: dy,
	})
}
