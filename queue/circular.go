// Package queue provides First-In-First-Out containers over a wrap-around buffer and over a chain of nodes.
package queue

import (
	"github.com/alglib/alglib/errs"
	"github.com/alglib/alglib/internal/buffer"
)

// CircularQueue is a FIFO container over a buffer whose capacity is fixed at construction.
//
// Only the front index and the element count are tracked; the rear slot is
// always derived as (front+count-1) mod capacity.
type CircularQueue[T any] struct {
	buffer []T
	front  int
	count  int
}

// NewCircularQueue returns an empty queue that holds at most capacity elements.
func NewCircularQueue[T any](capacity int) (*CircularQueue[T], error) {
	buf, err := buffer.Make[T]("new circular queue", capacity)
	if err != nil {
		return nil, err
	}
	return &CircularQueue[T]{buffer: buf}, nil
}

// Enqueue appends v at the rear, reusing slots freed by Dequeue.
func (q *CircularQueue[T]) Enqueue(v T) error {
	if q.IsFull() {
		return errs.Full("enqueue", len(q.buffer))
	}
	q.buffer[q.slot(q.count)] = v
	q.count++
	return nil
}

// Dequeue removes and returns the front element.
func (q *CircularQueue[T]) Dequeue() (item T, err error) {
	if q.IsEmpty() {
		return item, errs.Empty("dequeue", errs.MsgEmptyDeletion)
	}
	item = q.buffer[q.front]

	var zero T
	q.buffer[q.front] = zero
	q.front = q.slot(1)
	q.count--
	return item, nil
}

// PeekFront returns the front element without removing it.
func (q *CircularQueue[T]) PeekFront() (item T, err error) {
	if q.IsEmpty() {
		return item, errs.Empty("peek front", errs.MsgPeekAtEmpty)
	}
	return q.buffer[q.front], nil
}

// PeekRear returns the most recently enqueued element without removing it.
func (q *CircularQueue[T]) PeekRear() (item T, err error) {
	if q.IsEmpty() {
		return item, errs.Empty("peek rear", errs.MsgPeekAtEmpty)
	}
	return q.buffer[q.slot(q.count-1)], nil
}

// IsEmpty reports whether the queue holds no elements.
func (q *CircularQueue[T]) IsEmpty() bool {
	return q.count == 0
}

// IsFull reports whether another Enqueue would exceed the capacity.
func (q *CircularQueue[T]) IsFull() bool {
	return q.count == len(q.buffer)
}

// Size returns the number of elements currently stored.
func (q *CircularQueue[T]) Size() int {
	return q.count
}

// Capacity returns the fixed number of slots.
func (q *CircularQueue[T]) Capacity() int {
	return len(q.buffer)
}

// ToSlice returns the elements from front to rear.
func (q *CircularQueue[T]) ToSlice() []T {
	out := make([]T, q.count)
	for i := range out {
		out[i] = q.buffer[q.slot(i)]
	}
	return out
}

// Clear removes every element, keeping the capacity.
func (q *CircularQueue[T]) Clear() {
	clear(q.buffer)
	q.front, q.count = 0, 0
}

// slot maps an offset from the front onto the buffer.
func (q *CircularQueue[T]) slot(offset int) int {
	return (q.front + offset) % len(q.buffer)
}
