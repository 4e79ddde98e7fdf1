// Package queue provides First-In-First-Out containers over a wrap-around buffer and over a chain of nodes.
package queue

import (
	"github.com/alglib/alglib/errs"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// LinkedQueue is an unbounded FIFO container over singly-linked nodes.
// front and rear are either both nil or both set; rear only aliases the last node of the chain.
// The zero value is an empty queue ready to use.
type LinkedQueue[T any] struct {
	front *node[T]
	rear  *node[T]
}

// NewLinkedQueue returns an empty queue.
func NewLinkedQueue[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{}
}

// Enqueue appends v at the rear.
func (q *LinkedQueue[T]) Enqueue(v T) {
	n := &node[T]{value: v}
	if q.rear == nil {
		q.front, q.rear = n, n
		return
	}
	q.rear.next = n
	q.rear = n
}

// Dequeue removes and returns the front element, unlinking its node.
func (q *LinkedQueue[T]) Dequeue() (item T, err error) {
	if q.front == nil {
		return item, errs.Empty("dequeue", errs.MsgEmptyDeletion)
	}
	n := q.front
	q.front = n.next
	n.next = nil
	if q.front == nil {
		q.rear = nil
	}
	return n.value, nil
}

// PeekFront returns the front element without removing it.
func (q *LinkedQueue[T]) PeekFront() (item T, err error) {
	if q.front == nil {
		return item, errs.Empty("peek front", errs.MsgObjectEmpty)
	}
	return q.front.value, nil
}

// PeekRear returns the most recently enqueued element without removing it.
func (q *LinkedQueue[T]) PeekRear() (item T, err error) {
	if q.rear == nil {
		return item, errs.Empty("peek rear", errs.MsgObjectEmpty)
	}
	return q.rear.value, nil
}

// IsEmpty reports whether the queue holds no elements.
func (q *LinkedQueue[T]) IsEmpty() bool {
	return q.front == nil
}

// Size walks the chain and counts the nodes.
func (q *LinkedQueue[T]) Size() int {
	var n int
	for cur := q.front; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// ToSlice returns the elements from front to rear.
func (q *LinkedQueue[T]) ToSlice() []T {
	var out []T
	for cur := q.front; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}
	return out
}

// Clear unlinks every node.
func (q *LinkedQueue[T]) Clear() {
	for q.front != nil {
		next := q.front.next
		q.front.next = nil
		q.front = next
	}
	q.rear = nil
}
