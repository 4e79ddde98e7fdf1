package vector

import "iter"

// All yields index/value pairs front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Values yields the live elements front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it, end := v.ConstBegin(), v.ConstEnd(); !it.Equal(end); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward yields index/value pairs back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for it, end := v.ConstReverseBegin(), v.ConstReverseEnd(); !it.Equal(end); it.Next() {
			if !yield(it.Index(), it.Value()) {
				return
			}
		}
	}
}
