package easel

// Built-in event names. The payload type delivered in Event.Payload is given
// for each one.
const (
	// Layer and Renderer structure.
	EventShapeAdded   = "shapeadded"   // NodeEvent
	EventShapeRemoved = "shaperemoved" // NodeEvent
	EventClear        = "clear"        // nil

	// Layer state.
	EventVisibilityChange = "visibilitychange" // VisibilityEvent
	EventOpacityChange    = "opacitychange"    // OpacityEvent
	EventPositionChange   = "positionchange"   // PositionEvent
	EventSizeChange       = "sizechange"       // SizeEvent

	// Renderer.
	EventCanvasResize   = "canvasresize"   // SizeEvent
	EventBeforeRender   = "beforerender"   // nil
	EventAfterRender    = "afterrender"    // nil
	EventAnimationStart = "animationstart" // nil
	EventAnimationFrame = "animationframe" // FrameEvent
	EventAnimationEnd   = "animationend"   // nil

	// Pointer, all carrying PointerEvent.
	EventMouseDown  = "mousedown"
	EventMouseMove  = "mousemove"
	EventMouseUp    = "mouseup"
	EventMouseEnter = "mouseenter"
	EventMouseLeave = "mouseleave"
	EventClick      = "click"
	EventDragStart  = "dragstart"
	EventDragMove   = "dragmove"
	EventDragEnd    = "dragend"
)

// NodeEvent carries the node added to or removed from a collection.
type NodeEvent struct {
	Node Node
}

// VisibilityEvent carries a layer's new visibility.
type VisibilityEvent struct {
	Visible bool
}

// OpacityEvent carries a layer's new, already clamped, opacity.
type OpacityEvent struct {
	Opacity float64
}

// PositionEvent carries a new offset.
type PositionEvent struct {
	X, Y float64
}

// SizeEvent carries new dimensions.
type SizeEvent struct {
	Width, Height float64
}
