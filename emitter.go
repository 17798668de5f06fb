package easel

import (
	"errors"
	"fmt"
	"slices"
)

// Event is what a Listener receives: the event name and its payload.
// Payload types for the built-in events are documented next to each name.
type Event struct {
	Name    string
	Payload any
}

// Listener is a callback registered on an Emitter.
type Listener func(Event)

// ListenerID identifies a registration. Go funcs are not comparable, so Off
// takes the ID returned by On or Once instead of the callback itself.
type ListenerID uint64

type listenerEntry struct {
	id ListenerID
	fn Listener
}

// ListenerError reports a listener that panicked during Emit.
type ListenerError struct {
	Event string
	ID    ListenerID
	Value any // recovered panic value
}

func (e *ListenerError) Error() string {
	return fmt.Sprintf("easel: listener %d for %q panicked: %v", e.ID, e.Event, e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *ListenerError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Emitter is a synchronous named-event dispatcher. The zero value is ready
// to use. Emitter is not safe for concurrent use; like the rest of the scene
// graph it belongs to the render thread.
//
// Listeners run in registration order. Each Emit iterates a snapshot of the
// listener list taken when the call starts, so listeners that call On, Off or
// Emit re-entrantly never change who fires in the current emission.
//
// A listener that panics is isolated: the panic is recovered, wrapped in a
// *ListenerError, and the remaining listeners still run.
type Emitter struct {
	listeners map[string][]listenerEntry
	names     []string // names with at least one listener, in first-registration order
	nextID    ListenerID
	onError   func(error)
}

// On registers fn for the named event and returns its ID.
// Registering the same callback twice keeps both registrations.
func (e *Emitter) On(name string, fn Listener) ListenerID {
	if fn == nil {
		panic("easel: nil listener")
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]listenerEntry)
	}
	e.nextID++
	id := e.nextID
	if len(e.listeners[name]) == 0 {
		e.names = append(e.names, name)
	}
	e.listeners[name] = append(e.listeners[name], listenerEntry{id: id, fn: fn})
	return id
}

// Once registers fn to run on the next emission of name only. The wrapper
// unregisters itself before calling fn, and never calls fn twice even when
// the event is re-emitted from inside fn.
func (e *Emitter) Once(name string, fn Listener) ListenerID {
	if fn == nil {
		panic("easel: nil listener")
	}
	var id ListenerID
	fired := false
	id = e.On(name, func(ev Event) {
		if fired {
			return
		}
		fired = true
		e.Off(name, id)
		fn(ev)
	})
	return id
}

// Off removes the registration id from the named event. When the event has no
// listeners left its name is dropped. Unknown names or IDs are a no-op.
func (e *Emitter) Off(name string, id ListenerID) {
	entries := e.listeners[name]
	for i := range entries {
		if entries[i].id != id {
			continue
		}
		// In-flight Emit calls range over clones, so shifting in place is safe.
		copy(entries[i:], entries[i+1:])
		entries[len(entries)-1] = listenerEntry{}
		entries = entries[:len(entries)-1]
		if len(entries) == 0 {
			e.dropName(name)
			return
		}
		e.listeners[name] = entries
		return
	}
}

// Emit calls every listener registered for name, in registration order,
// with a snapshot of the list taken at call time. It returns the joined
// *ListenerError values of listeners that panicked, or nil.
func (e *Emitter) Emit(name string, payload any) error {
	entries := e.listeners[name]
	if len(entries) == 0 {
		return nil
	}
	snapshot := slices.Clone(entries)
	ev := Event{Name: name, Payload: payload}

	var errs []error
	for _, l := range snapshot {
		if err := callListener(name, l, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func callListener(name string, l listenerEntry, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ListenerError{Event: name, ID: l.id, Value: r}
		}
	}()
	l.fn(ev)
	return nil
}

// RemoveAllListeners clears the given event names, or every name when called
// without arguments.
func (e *Emitter) RemoveAllListeners(names ...string) {
	if len(names) == 0 {
		clear(e.listeners)
		e.names = e.names[:0]
		return
	}
	for _, name := range names {
		if _, ok := e.listeners[name]; ok {
			e.dropName(name)
		}
	}
}

// EventNames returns the names that currently have at least one listener.
func (e *Emitter) EventNames() []string {
	return slices.Clone(e.names)
}

// ListenerCount returns the number of listeners registered for name.
func (e *Emitter) ListenerCount(name string) int {
	return len(e.listeners[name])
}

// SetErrorHandler sets the function that receives listener failures from
// events emitted internally (by Layer and Renderer mutators). With no handler
// the failures are logged at error level through Logger.
func (e *Emitter) SetErrorHandler(fn func(error)) {
	e.onError = fn
}

// emit is Emit for internal notifications, whose callers have no error return.
func (e *Emitter) emit(name string, payload any) {
	err := e.Emit(name, payload)
	if err == nil {
		return
	}
	if e.onError != nil {
		e.onError(err)
		return
	}
	Logger().Error("easel: listener failed", "event", name, "err", err)
}

func (e *Emitter) dropName(name string) {
	delete(e.listeners, name)
	if i := slices.Index(e.names, name); i >= 0 {
		e.names = slices.Delete(e.names, i, i+1)
	}
}
