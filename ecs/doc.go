// Package ecs forwards easel pointer events into a [Donburi] world.
//
// [Bridge] subscribes to a Renderer's pointer events and publishes each one
// as a typed Donburi event. Subscribe to [PointerEventType] in your systems
// and drain the queue once per frame:
//
//	detach := ecs.Bridge(renderer, world)
//	defer detach()
//
//	ecs.PointerEventType.Subscribe(world, onPointer)
//	renderer.StartAnimation(func(time.Duration) {
//	    events.ProcessAllEvents(world)
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
