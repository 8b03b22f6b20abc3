package selector

import (
	"slices"
	"sync"
)

// Point is a terminal cell position
type Point struct {
	X, Y int
}

// Rect is a screen region in cells
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains returns true if p lies within the rectangle
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// PointerEvent is a click travelling from its target outwards
type PointerEvent struct {
	Point
	stopped bool
}

// NewPointerEvent creates an event at (x, y)
func NewPointerEvent(x, y int) *PointerEvent {
	return &PointerEvent{Point: Point{X: x, Y: y}}
}

// StopPropagation prevents outer handlers from seeing the event
func (e *PointerEvent) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether propagation was stopped
func (e *PointerEvent) Stopped() bool {
	return e.stopped
}

// ListenerID identifies a registered pointer listener. Zero is never issued
type ListenerID uint64

// PointerListener observes clicks that reach the registry
type PointerListener func(*PointerEvent)

// Registry is a set of pointer listeners that observe every click that was
// not stopped by a more specific handler.
type Registry struct {
	mu        sync.Mutex
	next      ListenerID
	order     []ListenerID
	listeners map[ListenerID]PointerListener
}

// DefaultRegistry is the process-wide registry
var DefaultRegistry = NewRegistry()

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{listeners: make(map[ListenerID]PointerListener)}
}

// Add registers fn and returns its id
func (r *Registry) Add(fn PointerListener) ListenerID {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.listeners[r.next] = fn
	r.order = append(r.order, r.next)
	return r.next
}

// Remove deregisters id and reports whether it was registered
func (r *Registry) Remove(id ListenerID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listeners[id]; !ok {
		return false
	}
	delete(r.listeners, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return true
}

// Len returns the number of registered listeners
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.listeners)
}

// Dispatch delivers ev to every listener in registration order. Listeners
// may add or remove listeners while being called; the set is snapshotted.
func (r *Registry) Dispatch(ev *PointerEvent) {
	if ev == nil || ev.Stopped() {
		return
	}
	r.mu.Lock()
	snapshot := make([]PointerListener, 0, len(r.order))
	for _, id := range r.order {
		snapshot = append(snapshot, r.listeners[id])
	}
	r.mu.Unlock()

	for _, fn := range snapshot {
		fn(ev)
		if ev.Stopped() {
			return
		}
	}
}
