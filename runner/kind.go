// Package runner replays operation scripts against a chosen container and reports every step.
package runner

import (
	"strings"

	"github.com/cockroachdb/errors"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Kind names a container the runner can build.
type Kind string

const (
	ArrayStack    Kind = "array-stack"
	LinkedStack   Kind = "linked-stack"
	CircularQueue Kind = "circular-queue"
	LinkedQueue   Kind = "linked-queue"
	SinglyList    Kind = "singly-list"
	DoublyList    Kind = "doubly-list"
	Vector        Kind = "vector"
)

// ErrUnknownKind is wrapped when a container name does not match any Kind.
var ErrUnknownKind = errors.New("unknown container")

// Kinds returns every container kind.
func Kinds() []Kind {
	return []Kind{ArrayStack, LinkedStack, CircularQueue, LinkedQueue, SinglyList, DoublyList, Vector}
}

// Bounded reports whether the container is built with a fixed capacity.
func (k Kind) Bounded() bool {
	return k == ArrayStack || k == CircularQueue
}

// ParseKind resolves a case-insensitive container name.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if lo.Contains(Kinds(), Kind(name)) {
		return Kind(name), nil
	}

	closest := lo.MinBy(Kinds(), func(a, b Kind) bool {
		return levenshtein.Distance(name, string(a)) < levenshtein.Distance(name, string(b))
	})
	return "", errors.Wrapf(ErrUnknownKind, "%q, did you mean %s?", name, closest)
}
