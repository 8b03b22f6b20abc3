package selector

import "sync"

// Scheduler defers work to the next turn of the host event loop. A
// scheduled callback must never run inside the call that scheduled it.
type Scheduler interface {
	Schedule(fn func())
}

// Queue is a Scheduler whose callbacks run when the host drains it.
// Callbacks scheduled while a drain is in progress are left for the next
// drain, so each drain corresponds to exactly one loop turn.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

// NewQueue creates an empty Queue
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule appends fn to the pending callbacks
func (q *Queue) Schedule(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, fn)
}

// Drain runs the callbacks queued before the call and returns how many ran
func (q *Queue) Drain() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Len returns the number of pending callbacks
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
