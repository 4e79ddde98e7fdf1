// Package stack provides Last-In-First-Out containers over a fixed buffer and over a chain of nodes.
package stack

import (
	"github.com/alglib/alglib/errs"
	"golang.org/x/exp/slices"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// LinkedStack is an unbounded LIFO container over singly-linked nodes.
// The zero value is an empty stack ready to use.
type LinkedStack[T any] struct {
	top *node[T]
}

// NewLinkedStack returns an empty stack.
func NewLinkedStack[T any]() *LinkedStack[T] {
	return &LinkedStack[T]{}
}

// Push places v on top of the stack.
func (s *LinkedStack[T]) Push(v T) {
	s.top = &node[T]{value: v, next: s.top}
}

// Pop removes and returns the topmost element, unlinking its node.
func (s *LinkedStack[T]) Pop() (item T, err error) {
	if s.top == nil {
		return item, errs.Empty("pop", errs.MsgEmptyDeletion)
	}
	popped := s.top
	s.top = popped.next
	popped.next = nil
	return popped.value, nil
}

// Top returns the topmost element without removing it.
func (s *LinkedStack[T]) Top() (item T, err error) {
	if s.top == nil {
		return item, errs.Empty("top", errs.MsgPeekAtEmpty)
	}
	return s.top.value, nil
}

// IsEmpty reports whether the stack holds no elements.
func (s *LinkedStack[T]) IsEmpty() bool {
	return s.top == nil
}

// Size walks the chain and counts the nodes.
func (s *LinkedStack[T]) Size() int {
	var n int
	for cur := s.top; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// ToSlice returns the elements from bottom to top.
func (s *LinkedStack[T]) ToSlice() []T {
	var out []T
	for cur := s.top; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}
	slices.Reverse(out)
	return out
}

// Clear unlinks every node.
func (s *LinkedStack[T]) Clear() {
	for s.top != nil {
		next := s.top.next
		s.top.next = nil
		s.top = next
	}
}
