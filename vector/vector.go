// Package vector provides a resizable array with amortised doubling growth and four iterator kinds.
//
// A Vector owns a contiguous buffer of Capacity() slots of which the first
// Size() are live. Inserting into a full vector doubles the capacity (minimum
// 1) before the write. Every reallocation (growth, Resize, ShrinkToFit)
// invalidates outstanding iterators; using one afterwards is a precondition
// violation. It remains memory-safe: the iterator keeps reading and writing the
// abandoned buffer, and the vector never observes those writes.
package vector

import (
	"github.com/alglib/alglib/errs"
	"github.com/alglib/alglib/internal/buffer"
	"github.com/alglib/alglib/log"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// DefaultCapacity is the number of slots allocated by New.
const DefaultCapacity = 4

// Vector is a resizable array of T. Use New, WithCount, WithValue or Of to create one.
type Vector[T any] struct {
	data []T // len(data) is the capacity
	size int
}

// New returns an empty vector with DefaultCapacity slots.
func New[T any]() *Vector[T] {
	return &Vector[T]{data: make([]T, DefaultCapacity)}
}

// WithCount returns a vector with count slots allocated and no live elements.
func WithCount[T any](count int) (*Vector[T], error) {
	data, err := buffer.Make[T]("with count", count)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{data: data}, nil
}

// WithValue returns a vector with count slots, each holding value, and no live elements.
// The slots only become visible once Push or Insert claims them, so they are overwritten first.
func WithValue[T any](count int, value T) (*Vector[T], error) {
	v, err := WithCount[T](count)
	if err != nil {
		return nil, err
	}
	for i := range v.data {
		v.data[i] = value
	}
	return v, nil
}

// Of returns a vector holding values in order, with capacity equal to len(values).
func Of[T any](values ...T) *Vector[T] {
	data := make([]T, len(values))
	copy(data, values)
	return &Vector[T]{data: data, size: len(values)}
}

// Push appends value, doubling the capacity first when the vector is full.
// It panics with errs.ErrAllocationFailure only if the doubled capacity cannot be represented.
func (v *Vector[T]) Push(value T) {
	if v.size == len(v.data) {
		lo.Must0(v.reallocate("push", buffer.Grown(len(v.data))))
	}
	v.data[v.size] = value
	v.size++
}

// Insert places value at index, shifting the elements at [index, Size()) one slot to the right.
// Valid indexes are [0, Size()]; inserting at Size() is equivalent to Push.
func (v *Vector[T]) Insert(value T, index int) error {
	if index < 0 || index > v.size {
		return errs.OutOfRange("insert", index, v.size)
	}
	if v.size+1 > len(v.data) {
		if err := v.reallocate("insert", buffer.Grown(len(v.data))); err != nil {
			return err
		}
	}
	copy(v.data[index+1:v.size+1], v.data[index:v.size])
	v.data[index] = value
	v.size++
	return nil
}

// Pop removes and returns the last element.
func (v *Vector[T]) Pop() (item T, err error) {
	if v.size == 0 {
		return item, errs.Empty("pop", errs.MsgEmptyDeletion)
	}
	v.size--
	item = v.data[v.size]

	var zero T
	v.data[v.size] = zero
	return item, nil
}

// At returns the element at index.
func (v *Vector[T]) At(index int) (item T, err error) {
	if err = v.check("at", index); err != nil {
		return item, err
	}
	return v.data[index], nil
}

// Ref returns a pointer to the element at index for in-place mutation.
// The pointer is invalidated by the next reallocation, exactly like an iterator.
func (v *Vector[T]) Ref(index int) (*T, error) {
	if err := v.check("ref", index); err != nil {
		return nil, err
	}
	return &v.data[index], nil
}

// Set overwrites the element at index.
func (v *Vector[T]) Set(index int, value T) error {
	if err := v.check("set", index); err != nil {
		return err
	}
	v.data[index] = value
	return nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (item T, err error) {
	if v.size == 0 {
		return item, errs.Empty("front", errs.MsgPeekAtEmpty)
	}
	return v.data[0], nil
}

// Back returns the last element.
func (v *Vector[T]) Back() (item T, err error) {
	if v.size == 0 {
		return item, errs.Empty("back", errs.MsgPeekAtEmpty)
	}
	return v.data[v.size-1], nil
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	return len(v.data)
}

// IsEmpty reports whether the vector has no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Resize reallocates the buffer to exactly n slots.
// When n is smaller than Size() the elements at [n, Size()) are dropped.
func (v *Vector[T]) Resize(n int) error {
	return v.reallocate("resize", n)
}

// ShrinkToFit reallocates the buffer to exactly Size() slots.
func (v *Vector[T]) ShrinkToFit() {
	lo.Must0(v.reallocate("shrink to fit", v.size))
}

// Clear drops every live element, keeping the capacity.
func (v *Vector[T]) Clear() {
	clear(v.data[:v.size])
	v.size = 0
}

// ToSlice returns a copy of the live elements.
func (v *Vector[T]) ToSlice() []T {
	return slices.Clone(v.data[:v.size])
}

func (v *Vector[T]) check(op string, index int) error {
	if index < 0 || index >= v.size {
		return errs.OutOfRange(op, index, v.size-1)
	}
	return nil
}

// reallocate moves the live elements into a fresh buffer of amount slots, truncating if needed.
func (v *Vector[T]) reallocate(op string, amount int) error {
	data, err := buffer.Make[T](op, amount)
	if err != nil {
		return err
	}

	log.Tracef("vector: %s reallocates %d -> %d slots", op, len(v.data), amount)
	v.size = min(v.size, amount)
	copy(data, v.data[:v.size])
	v.data = data
	return nil
}
