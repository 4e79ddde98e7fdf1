// Package buffer allocates the backing storage of the array-based containers.
package buffer

import (
	"math"

	"github.com/alglib/alglib/errs"
)

// Make allocates a zeroed buffer of n slots.
// Requests the runtime refuses (negative or unrepresentable sizes) are reported as errs.ErrAllocationFailure instead of panicking.
func Make[T any](op string, n int) (buf []T, err error) {
	if n < 0 {
		return nil, errs.Allocation(op, n)
	}

	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, errs.Allocation(op, n)
		}
	}()

	return make([]T, n), nil
}

// Grown returns the capacity that follows c under the doubling policy, never less than 1.
// It saturates at math.MaxInt, which Make then refuses.
func Grown(c int) int {
	switch {
	case c <= 0:
		return 1
	case c > math.MaxInt/2:
		return math.MaxInt
	default:
		return 2 * c
	}
}
