// Package vector provides a resizable array with amortised doubling growth and four iterator kinds.
package vector

import "fmt"

// position is the state shared by every iterator kind: the vector it came
// from, the buffer that was current when it was created, and an index into it.
type position[T any] struct {
	owner *Vector[T]
	buf   []T
	pos   int
}

func (p position[T]) slot() *T {
	if p.pos < 0 || p.pos >= len(p.buf) {
		panic(fmt.Sprintf("vector: dereferencing iterator at %d outside a buffer of %d slots", p.pos, len(p.buf)))
	}
	return &p.buf[p.pos]
}

func (p position[T]) same(o position[T]) bool {
	return p.owner == o.owner && p.pos == o.pos
}

// Index returns the buffer position the iterator refers to. Reverse end iterators report -1.
func (p position[T]) Index() int {
	return p.pos
}

func (v *Vector[T]) at(pos int) position[T] {
	return position[T]{owner: v, buf: v.data, pos: pos}
}

// Iterator walks the live elements front to back and allows writes.
type Iterator[T any] struct{ position[T] }

// Value returns the element under the iterator.
func (it Iterator[T]) Value() T { return *it.slot() }

// Set overwrites the element under the iterator.
func (it Iterator[T]) Set(value T) { *it.slot() = value }

// Next advances the iterator and returns it.
func (it *Iterator[T]) Next() *Iterator[T] {
	it.pos++
	return it
}

// PostNext advances the iterator and returns a copy of its previous position.
func (it *Iterator[T]) PostNext() Iterator[T] {
	old := *it
	it.pos++
	return old
}

// Prev moves the iterator one element back and returns it.
func (it *Iterator[T]) Prev() *Iterator[T] {
	it.pos--
	return it
}

// PostPrev moves the iterator one element back and returns a copy of its previous position.
func (it *Iterator[T]) PostPrev() Iterator[T] {
	old := *it
	it.pos--
	return old
}

// Equal reports whether both iterators refer to the same position of the same vector.
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.same(o.position) }

// Const returns a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T](it) }

// ConstIterator walks the live elements front to back, read-only.
type ConstIterator[T any] struct{ position[T] }

// Value returns the element under the iterator.
func (it ConstIterator[T]) Value() T { return *it.slot() }

// Next advances the iterator and returns it.
func (it *ConstIterator[T]) Next() *ConstIterator[T] {
	it.pos++
	return it
}

// PostNext advances the iterator and returns a copy of its previous position.
func (it *ConstIterator[T]) PostNext() ConstIterator[T] {
	old := *it
	it.pos++
	return old
}

// Prev moves the iterator one element back and returns it.
func (it *ConstIterator[T]) Prev() *ConstIterator[T] {
	it.pos--
	return it
}

// PostPrev moves the iterator one element back and returns a copy of its previous position.
func (it *ConstIterator[T]) PostPrev() ConstIterator[T] {
	old := *it
	it.pos--
	return old
}

// Equal reports whether both iterators refer to the same position of the same vector.
func (it ConstIterator[T]) Equal(o ConstIterator[T]) bool { return it.same(o.position) }

// ReverseIterator walks the live elements back to front and allows writes.
// Advancing it moves towards index 0.
type ReverseIterator[T any] struct{ position[T] }

// Value returns the element under the iterator.
func (it ReverseIterator[T]) Value() T { return *it.slot() }

// Set overwrites the element under the iterator.
func (it ReverseIterator[T]) Set(value T) { *it.slot() = value }

// Next moves the iterator one element towards the front and returns it.
func (it *ReverseIterator[T]) Next() *ReverseIterator[T] {
	it.pos--
	return it
}

// PostNext moves the iterator one element towards the front and returns a copy of its previous position.
func (it *ReverseIterator[T]) PostNext() ReverseIterator[T] {
	old := *it
	it.pos--
	return old
}

// Prev moves the iterator one element towards the back and returns it.
func (it *ReverseIterator[T]) Prev() *ReverseIterator[T] {
	it.pos++
	return it
}

// PostPrev moves the iterator one element towards the back and returns a copy of its previous position.
func (it *ReverseIterator[T]) PostPrev() ReverseIterator[T] {
	old := *it
	it.pos++
	return old
}

// Equal reports whether both iterators refer to the same position of the same vector.
func (it ReverseIterator[T]) Equal(o ReverseIterator[T]) bool { return it.same(o.position) }

// Const returns a read-only reverse iterator at the same position.
func (it ReverseIterator[T]) Const() ConstReverseIterator[T] { return ConstReverseIterator[T](it) }

// ConstReverseIterator walks the live elements back to front, read-only.
type ConstReverseIterator[T any] struct{ position[T] }

// Value returns the element under the iterator.
func (it ConstReverseIterator[T]) Value() T { return *it.slot() }

// Next moves the iterator one element towards the front and returns it.
func (it *ConstReverseIterator[T]) Next() *ConstReverseIterator[T] {
	it.pos--
	return it
}

// PostNext moves the iterator one element towards the front and returns a copy of its previous position.
func (it *ConstReverseIterator[T]) PostNext() ConstReverseIterator[T] {
	old := *it
	it.pos--
	return old
}

// Prev moves the iterator one element towards the back and returns it.
func (it *ConstReverseIterator[T]) Prev() *ConstReverseIterator[T] {
	it.pos++
	return it
}

// PostPrev moves the iterator one element towards the back and returns a copy of its previous position.
func (it *ConstReverseIterator[T]) PostPrev() ConstReverseIterator[T] {
	old := *it
	it.pos++
	return old
}

// Equal reports whether both iterators refer to the same position of the same vector.
func (it ConstReverseIterator[T]) Equal(o ConstReverseIterator[T]) bool { return it.same(o.position) }

// Begin returns an iterator at the first element.
func (v *Vector[T]) Begin() Iterator[T] { return Iterator[T]{v.at(0)} }

// End returns the iterator one past the last element. It must not be dereferenced.
func (v *Vector[T]) End() Iterator[T] { return Iterator[T]{v.at(v.size)} }

// ConstBegin returns a read-only iterator at the first element.
func (v *Vector[T]) ConstBegin() ConstIterator[T] { return ConstIterator[T]{v.at(0)} }

// ConstEnd returns the read-only iterator one past the last element. It must not be dereferenced.
func (v *Vector[T]) ConstEnd() ConstIterator[T] { return ConstIterator[T]{v.at(v.size)} }

// ReverseBegin returns a reverse iterator at the last element.
func (v *Vector[T]) ReverseBegin() ReverseIterator[T] { return ReverseIterator[T]{v.at(v.size - 1)} }

// ReverseEnd returns the reverse iterator one before the first element. It must not be dereferenced.
func (v *Vector[T]) ReverseEnd() ReverseIterator[T] { return ReverseIterator[T]{v.at(-1)} }

// ConstReverseBegin returns a read-only reverse iterator at the last element.
func (v *Vector[T]) ConstReverseBegin() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{v.at(v.size - 1)}
}

// ConstReverseEnd returns the read-only reverse iterator one before the first element. It must not be dereferenced.
func (v *Vector[T]) ConstReverseEnd() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{v.at(-1)}
}
