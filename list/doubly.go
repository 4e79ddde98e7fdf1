// Package list provides positional lists over singly- and doubly-linked nodes.
package list

import (
	"github.com/alglib/alglib/errs"
)

// doublyNode owns its successor through next; previous is a navigation-only back-link.
type doublyNode[T any] struct {
	value    T
	next     *doublyNode[T]
	previous *doublyNode[T]
}

// DoublyLinkedList is a positional list over doubly-linked nodes with head and tail references.
//
// For every node n with a successor, n.next.previous == n; head.previous and tail.next are nil.
// The zero value is an empty list ready to use.
type DoublyLinkedList[T comparable] struct {
	head *doublyNode[T]
	tail *doublyNode[T]
}

// NewDoublyLinkedList returns an empty list.
func NewDoublyLinkedList[T comparable]() *DoublyLinkedList[T] {
	return &DoublyLinkedList[T]{}
}

// Traverse calls visit for each element from head to tail.
func (l *DoublyLinkedList[T]) Traverse(visit func(T)) {
	for cur := l.head; cur != nil; cur = cur.next {
		visit(cur.value)
	}
}

// TraverseBackward calls visit for each element from tail to head, following the back-links.
func (l *DoublyLinkedList[T]) TraverseBackward(visit func(T)) {
	for cur := l.tail; cur != nil; cur = cur.previous {
		visit(cur.value)
	}
}

// Size walks the chain and counts the nodes.
func (l *DoublyLinkedList[T]) Size() int {
	var n int
	for cur := l.head; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// IsEmpty reports whether the list holds no elements.
func (l *DoublyLinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

// Find returns the position of the first element equal to v.
func (l *DoublyLinkedList[T]) Find(v T) (int, error) {
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
func (l *DoublyLinkedList[T]) ToSlice() []T {
	var out []T
	l.Traverse(func(v T) {
		out = append(out, v)
	})
	return out
}

// InsertAtBeginning makes v the new head.
func (l *DoublyLinkedList[T]) InsertAtBeginning(v T) {
	n := &doublyNode[T]{value: v}
	if l.head == nil {
		l.head, l.tail = n, n
		return
	}
	n.next = l.head
	l.head.previous = n
	l.head = n
}

// InsertAtEnd makes v the new tail.
func (l *DoublyLinkedList[T]) InsertAtEnd(v T) {
	n := &doublyNode[T]{value: v}
	if l.tail == nil {
		l.head, l.tail = n, n
		return
	}
	l.tail.next = n
	n.previous = l.tail
	l.tail = n
}

// InsertAtPosition inserts v so that it ends up at pos. Valid positions are [0, Size()].
func (l *DoublyLinkedList[T]) InsertAtPosition(pos int, v T) error {
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
	next := prev.next
	n := &doublyNode[T]{value: v, next: next, previous: prev}
	prev.next = n
	next.previous = n
	return nil
}

// DeleteAtBeginning unlinks the head node.
func (l *DoublyLinkedList[T]) DeleteAtBeginning() error {
	if l.head == nil {
		return errs.Empty("delete at beginning", errs.MsgEmptyDeletion)
	}
	old := l.head
	if old == l.tail {
		l.head, l.tail = nil, nil
		return nil
	}
	l.head = old.next
	l.head.previous = nil
	old.next = nil
	return nil
}

// DeleteAtEnd unlinks the tail node.
func (l *DoublyLinkedList[T]) DeleteAtEnd() error {
	if l.tail == nil {
		return errs.Empty("delete at end", errs.MsgEmptyDeletion)
	}
	old := l.tail
	if old == l.head {
		l.head, l.tail = nil, nil
		return nil
	}
	l.tail = old.previous
	l.tail.next = nil
	old.previous = nil
	return nil
}

// DeleteAtPosition unlinks the node at pos and joins its neighbours. Valid positions are [0, Size()).
func (l *DoublyLinkedList[T]) DeleteAtPosition(pos int) error {
	if l.head == nil {
		return errs.Empty("delete at position", errs.MsgEmptyDeletion)
	}
	size := l.Size()
	if pos < 0 || pos >= size {
		return errs.OutOfRange("delete at position", pos, size-1)
	}
	switch pos {
	case 0:
		return l.DeleteAtBeginning()
	case size - 1:
		return l.DeleteAtEnd()
	}

	target := l.nodeAt(pos)
	prev, next := target.previous, target.next
	prev.next = next
	next.previous = prev
	target.next, target.previous = nil, nil
	return nil
}

// Clear unlinks every node.
func (l *DoublyLinkedList[T]) Clear() {
	for l.head != nil {
		next := l.head.next
		l.head.next, l.head.previous = nil, nil
		l.head = next
	}
	l.tail = nil
}

// nodeAt walks pos links from the head. The caller guarantees pos is in range.
func (l *DoublyLinkedList[T]) nodeAt(pos int) *doublyNode[T] {
	cur := l.head
	for i := 0; i < pos; i++ {
		cur = cur.next
	}
	return cur
}
