// Package list provides positional lists over singly- and doubly-linked nodes.
//
// Positions are 0-based from the head. Neither list caches its length: Size
// walks the chain, which keeps every mutation free of bookkeeping.
package list

import (
	"github.com/alglib/alglib/errs"
)

type singlyNode[T any] struct {
	value T
	next  *singlyNode[T]
}

// SinglyLinkedList is a positional list over singly-linked nodes.
// It keeps no tail reference, so insertion and deletion at the end walk the whole chain.
// The zero value is an empty list ready to use.
type SinglyLinkedList[T comparable] struct {
	head *singlyNode[T]
}

// NewSinglyLinkedList returns an empty list.
func NewSinglyLinkedList[T comparable]() *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{}
}

// Traverse calls visit for each element from head to tail.
func (l *SinglyLinkedList[T]) Traverse(visit func(T)) {
	for cur := l.head; cur != nil; cur = cur.next {
		visit(cur.value)
	}
}

// Size walks the chain and counts the nodes.
func (l *SinglyLinkedList[T]) Size() int {
	var n int
	for cur := l.head; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// IsEmpty reports whether the list holds no elements.
func (l *SinglyLinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

// Find returns the position of the first element equal to v.
func (l *SinglyLinkedList[T]) Find(v T) (int, error) {
	var pos int
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value == v {
			return pos, nil
		}
		pos++
	}
	return -1, errs.NotFound("find")
}

// ToSlice materialises the elements in order. It walks the whole list and is meant for inspection.
func (l *SinglyLinkedList[T]) ToSlice() []T {
	var out []T
	l.Traverse(func(v T) {
		out = append(out, v)
	})
	return out
}

// InsertAtBeginning makes v the new head.
func (l *SinglyLinkedList[T]) InsertAtBeginning(v T) {
	l.head = &singlyNode[T]{value: v, next: l.head}
}

// InsertAtEnd appends v after the last node.
func (l *SinglyLinkedList[T]) InsertAtEnd(v T) {
	n := &singlyNode[T]{value: v}
	if l.head == nil {
		l.head = n
		return
	}
	last := l.head
	for last.next != nil {
		last = last.next
	}
	last.next = n
}

// InsertAtPosition inserts v so that it ends up at pos. Valid positions are [0, Size()].
func (l *SinglyLinkedList[T]) InsertAtPosition(pos int, v T) error {
	size := l.Size()
	if pos < 0 || pos > size {
		return errs.OutOfRange("insert at position", pos, size)
	}
	switch pos {
	case 0:
		l.InsertAtBeginning(v)
		return nil
	case size:
		l.InsertAtEnd(v)
		return nil
	}

	prev := l.nodeAt(pos - 1)
	prev.next = &singlyNode[T]{value: v, next: prev.next}
	return nil
}

// DeleteAtBeginning unlinks the head node.
func (l *SinglyLinkedList[T]) DeleteAtBeginning() error {
	if l.head == nil {
		return errs.Empty("delete at beginning", errs.MsgEmptyDeletion)
	}
	old := l.head
	l.head = old.next
	old.next = nil
	return nil
}

// DeleteAtEnd unlinks the last node.
func (l *SinglyLinkedList[T]) DeleteAtEnd() error {
	if l.head == nil {
		return errs.Empty("delete at end", errs.MsgEmptyDeletion)
	}
	if l.head.next == nil {
		l.head = nil
		return nil
	}
	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	prev.next = nil
	return nil
}

// DeleteAtPosition unlinks the node at pos. Valid positions are [0, Size()).
func (l *SinglyLinkedList[T]) DeleteAtPosition(pos int) error {
	if l.head == nil {
		return errs.Empty("delete at position", errs.MsgEmptyDeletion)
	}
	size := l.Size()
	if pos < 0 || pos >= size {
		return errs.OutOfRange("delete at position", pos, size-1)
	}
	if pos == 0 {
		return l.DeleteAtBeginning()
	}

	prev := l.nodeAt(pos - 1)
	target := prev.next
	prev.next = target.next
	target.next = nil
	return nil
}

// Clear unlinks every node.
func (l *SinglyLinkedList[T]) Clear() {
	for l.head != nil {
		next := l.head.next
		l.head.next = nil
		l.head = next
	}
}

// nodeAt walks pos links from the head. The caller guarantees pos is in range.
func (l *SinglyLinkedList[T]) nodeAt(pos int) *singlyNode[T] {
	cur := l.head
	for i := 0; i < pos; i++ {
		cur = cur.next
	}
	return cur
}
