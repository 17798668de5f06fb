package ecs

import (
	"github.com/phanxgames/easel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PointerEvent is an easel pointer event tagged with its event name, one of
// the easel.EventMouse*, EventClick or EventDrag* constants.
type PointerEvent struct {
	Name string
	easel.PointerEvent
}

// PointerEventType is the Donburi event type Bridge publishes to.
var PointerEventType = events.NewEventType[PointerEvent]()

var pointerEventNames = []string{
	easel.EventMouseDown, easel.EventMouseMove, easel.EventMouseUp,
	easel.EventMouseEnter, easel.EventMouseLeave, easel.EventClick,
	easel.EventDragStart, easel.EventDragMove, easel.EventDragEnd,
}

// Bridge publishes every pointer event r emits into world. Events are
// queued; they reach subscribers on the next ProcessEvents call. The
// returned func removes the bridge's listeners.
func Bridge(r *easel.Renderer, world donburi.World) (detach func()) {
	ids := make([]easel.ListenerID, len(pointerEventNames))
	for i, name := range pointerEventNames {
		ids[i] = r.On(name, func(ev easel.Event) {
			pe, ok := ev.Payload.(easel.PointerEvent)
			if !ok {
				return
			}
			PointerEventType.Publish(world, PointerEvent{Name: ev.Name, PointerEvent: pe})
		})
	}
	return func() {
		for i, name := range pointerEventNames {
			r.Off(name, ids[i])
		}
	}
}
