// Package stack provides Last-In-First-Out containers over a fixed buffer and over a chain of nodes.
package stack

import (
	"github.com/alglib/alglib/errs"
	"github.com/alglib/alglib/internal/buffer"
)

// ArrayStack is a LIFO container over a buffer whose capacity is fixed at construction.
type ArrayStack[T any] struct {
	data []T
	top  int // index of the topmost element, -1 when empty
}

// NewArrayStack returns an empty stack that holds at most capacity elements.
func NewArrayStack[T any](capacity int) (*ArrayStack[T], error) {
	data, err := buffer.Make[T]("new array stack", capacity)
	if err != nil {
		return nil, err
	}
	return &ArrayStack[T]{data: data, top: -1}, nil
}

// Push places v on top of the stack. It fails with errs.ErrCapacityExceeded once the stack is full.
func (s *ArrayStack[T]) Push(v T) error {
	if s.IsFull() {
		return errs.Full("push", len(s.data))
	}
	s.top++
	s.data[s.top] = v
	return nil
}

// Pop removes and returns the topmost element.
func (s *ArrayStack[T]) Pop() (item T, err error) {
	if s.IsEmpty() {
		return item, errs.Empty("pop", errs.MsgEmptyDeletion)
	}
	item = s.data[s.top]

	var zero T
	s.data[s.top] = zero
	s.top--
	return item, nil
}

// Top returns the topmost element without removing it.
func (s *ArrayStack[T]) Top() (item T, err error) {
	if s.IsEmpty() {
		return item, errs.Empty("top", errs.MsgPeekAtEmpty)
	}
	return s.data[s.top], nil
}

// IsEmpty reports whether the stack holds no elements.
func (s *ArrayStack[T]) IsEmpty() bool {
	return s.top < 0
}

// IsFull reports whether another Push would exceed the capacity.
func (s *ArrayStack[T]) IsFull() bool {
	return s.top == len(s.data)-1
}

// Size returns the number of elements currently stored.
func (s *ArrayStack[T]) Size() int {
	return s.top + 1
}

// Capacity returns the fixed number of slots.
func (s *ArrayStack[T]) Capacity() int {
	return len(s.data)
}

// ToSlice returns the elements from bottom to top.
func (s *ArrayStack[T]) ToSlice() []T {
	out := make([]T, s.Size())
	copy(out, s.data[:s.Size()])
	return out
}

// Clear removes every element, keeping the capacity.
func (s *ArrayStack[T]) Clear() {
	clear(s.data)
	s.top = -1
}
