// Package errs defines the failure taxonomy shared by every container in the library.
package errs

import (
	"github.com/cockroachdb/errors"
)

// Kind classifies a container failure.
type Kind int

const (
	KindNone Kind = iota
	KindEmpty
	KindCapacityExceeded
	KindIndexOutOfRange
	KindItemNotFound
	KindAllocationFailure
	KindUnknown
)

var kindNames = map[Kind]string{
	KindNone:              "None",
	KindEmpty:             "EmptyError",
	KindCapacityExceeded:  "CapacityExceeded",
	KindIndexOutOfRange:   "IndexOutOfRange",
	KindItemNotFound:      "ItemNotFound",
	KindAllocationFailure: "AllocationFailure",
	KindUnknown:           "Unknown",
}

// String returns the stable taxonomy name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Kinds returns every failure kind in declaration order, excluding KindNone and KindUnknown.
func Kinds() []Kind {
	return []Kind{KindEmpty, KindCapacityExceeded, KindIndexOutOfRange, KindItemNotFound, KindAllocationFailure}
}

// Sentinel returns the sentinel error for the kind, or nil for KindNone and KindUnknown.
func (k Kind) Sentinel() error {
	switch k {
	case KindEmpty:
		return ErrEmpty
	case KindCapacityExceeded:
		return ErrCapacityExceeded
	case KindIndexOutOfRange:
		return ErrIndexOutOfRange
	case KindItemNotFound:
		return ErrItemNotFound
	case KindAllocationFailure:
		return ErrAllocationFailure
	default:
		return nil
	}
}

// KindOf maps err back to its kind. A nil error is KindNone; an error outside the taxonomy is KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	for _, k := range Kinds() {
		if errors.Is(err, k.Sentinel()) {
			return k
		}
	}
	return KindUnknown
}
