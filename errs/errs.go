// Package errs defines the failure taxonomy shared by every container in the library.
package errs

import (
	"github.com/cockroachdb/errors"
)

// Sentinel failures. Containers wrap these with operation context, so callers should match them with errors.Is.
var (
	ErrEmpty             = errors.New("container is empty")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrItemNotFound      = errors.New("item not found")
	ErrAllocationFailure = errors.New("allocation failure")
)

// Context messages attached to the sentinels by the containers.
const (
	MsgEmptyDeletion = "cannot delete from empty object"
	MsgPeekAtEmpty   = "cannot peek at empty object"
	MsgObjectFull    = "object full"
	MsgObjectEmpty   = "object empty"
)

// Empty reports an attempt to read or remove from a container with no elements.
func Empty(op, msg string) error {
	return errors.Wrapf(ErrEmpty, "%s: %s", op, msg)
}

// Full reports an insertion into a fixed-capacity container that is already at capacity.
func Full(op string, capacity int) error {
	return errors.Wrapf(ErrCapacityExceeded, "%s: %s (capacity %d)", op, MsgObjectFull, capacity)
}

// OutOfRange reports a positional operation beyond the valid bounds [0, limit].
func OutOfRange(op string, index, limit int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "%s: index %d, valid up to %d", op, index, limit)
}

// NotFound reports a search that matched no element.
func NotFound(op string) error {
	return errors.Wrap(ErrItemNotFound, op)
}

// Allocation reports a buffer request the runtime refused to satisfy.
func Allocation(op string, amount int) error {
	return errors.Wrapf(ErrAllocationFailure, "%s: cannot allocate %d slots", op, amount)
}
