package parallel

import "sync"

// Queue is an unbounded FIFO with a blocking Pop.
//
// It is a classic monitor: items are mutated under mu and waiters are
// signalled while mu is still held, so a Push that races with a consumer
// about to wait cannot be lost. Consumers re-check emptiness after every
// wake-up.
//
// Thread safety: Queue is safe for concurrent use by any number of
// producers and consumers.
type Queue[T any] struct {
	mu    sync.Mutex
	cond  *sync.Cond
	items []T
	head  int

	// pushed counts every item ever pushed.
	pushed int
}

// NewQueue creates an empty queue.
func NewQueue[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends item to the tail and wakes one blocked consumer.
func (q *Queue[T]) Push(item T) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.pushed++
	q.cond.Signal()
	q.mu.Unlock()
}

// Pop removes and returns the head item, blocking while the queue is empty.
func (q *Queue[T]) Pop() T {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.head == len(q.items) {
		q.cond.Wait()
	}

	var zero T
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	// Drained: reuse the backing array instead of growing forever.
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return item
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// Pushed returns the total number of items pushed since creation.
func (q *Queue[T]) Pushed() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pushed
}
