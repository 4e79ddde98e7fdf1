package runner

import (
	"fmt"
	"strconv"

	"github.com/alglib/alglib/list"
	"github.com/alglib/alglib/queue"
	"github.com/alglib/alglib/stack"
	"github.com/alglib/alglib/vector"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// ErrBadArgument is wrapped when a script argument cannot be converted for the operation.
var ErrBadArgument = errors.New("bad argument")

type handler struct {
	params []string
	call   func(args []string) (mo.Option[string], error)
}

// engine binds the script vocabulary to one container of strings.
type engine struct {
	kind     Kind
	handlers map[string]handler
	contents func() []string
}

func (e *engine) snapshot() []string {
	items := e.contents()
	if items == nil {
		return []string{}
	}
	return items
}

func newEngine(kind Kind, capacity, vectorCapacity int) (*engine, error) {
	var (
		e   *engine
		err error
	)

	switch kind {
	case ArrayStack:
		e, err = arrayStackEngine(capacity)
	case LinkedStack:
		e = linkedStackEngine()
	case CircularQueue:
		e, err = circularQueueEngine(capacity)
	case LinkedQueue:
		e = linkedQueueEngine()
	case SinglyList:
		e = listEngine(list.NewSinglyLinkedList[string]())
	case DoublyList:
		e = doublyListEngine()
	case Vector:
		e, err = vectorEngine(vectorCapacity)
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "build %s", kind)
	}

	e.kind = kind
	return e, nil
}

func none() mo.Option[string] {
	return mo.None[string]()
}

func done(err error) (mo.Option[string], error) {
	return none(), err
}

func output[T any](v T, err error) (mo.Option[string], error) {
	if err != nil {
		return none(), err
	}
	return mo.Some(fmt.Sprint(v)), nil
}

func index(param, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(ErrBadArgument, "%s must be an integer, got %q", param, arg)
	}
	return n, nil
}

func nullary(f func() (mo.Option[string], error)) handler {
	return handler{call: func([]string) (mo.Option[string], error) { return f() }}
}

func unary(param string, f func(string) (mo.Option[string], error)) handler {
	return handler{
		params: []string{param},
		call:   func(args []string) (mo.Option[string], error) { return f(args[0]) },
	}
}

func binary(first, second string, f func(a, b string) (mo.Option[string], error)) handler {
	return handler{
		params: []string{first, second},
		call:   func(args []string) (mo.Option[string], error) { return f(args[0], args[1]) },
	}
}

// positioned adapts a handler taking an integer first argument.
func positioned(param string, f func(int) (mo.Option[string], error)) handler {
	return unary(param, func(arg string) (mo.Option[string], error) {
		n, err := index(param, arg)
		if err != nil {
			return none(), err
		}
		return f(n)
	})
}

func positionedWith(param, second string, f func(int, string) (mo.Option[string], error)) handler {
	return binary(param, second, func(arg, value string) (mo.Option[string], error) {
		n, err := index(param, arg)
		if err != nil {
			return none(), err
		}
		return f(n, value)
	})
}

type sized interface {
	Size() int
	IsEmpty() bool
	Clear()
}

type bounded interface {
	Capacity() int
	IsFull() bool
}

func withBasics(handlers map[string]handler, c sized) map[string]handler {
	handlers["size"] = nullary(func() (mo.Option[string], error) { return output(c.Size(), nil) })
	handlers["empty"] = nullary(func() (mo.Option[string], error) { return output(c.IsEmpty(), nil) })
	handlers["clear"] = nullary(func() (mo.Option[string], error) {
		c.Clear()
		return done(nil)
	})
	return handlers
}

func withBounds(handlers map[string]handler, c bounded) map[string]handler {
	handlers["capacity"] = nullary(func() (mo.Option[string], error) { return output(c.Capacity(), nil) })
	handlers["full"] = nullary(func() (mo.Option[string], error) { return output(c.IsFull(), nil) })
	return handlers
}

func arrayStackEngine(capacity int) (*engine, error) {
	s, err := stack.NewArrayStack[string](capacity)
	if err != nil {
		return nil, err
	}

	handlers := map[string]handler{
		"push": unary("value", func(v string) (mo.Option[string], error) { return done(s.Push(v)) }),
		"pop":  nullary(func() (mo.Option[string], error) { return output(s.Pop()) }),
		"top":  nullary(func() (mo.Option[string], error) { return output(s.Top()) }),
	}
	return &engine{
		handlers: withBounds(withBasics(handlers, s), s),
		contents: s.ToSlice,
	}, nil
}

func linkedStackEngine() *engine {
	s := stack.NewLinkedStack[string]()

	handlers := map[string]handler{
		"push": unary("value", func(v string) (mo.Option[string], error) {
			s.Push(v)
			return done(nil)
		}),
		"pop": nullary(func() (mo.Option[string], error) { return output(s.Pop()) }),
		"top": nullary(func() (mo.Option[string], error) { return output(s.Top()) }),
	}
	return &engine{
		handlers: withBasics(handlers, s),
		contents: s.ToSlice,
	}
}

func circularQueueEngine(capacity int) (*engine, error) {
	q, err := queue.NewCircularQueue[string](capacity)
	if err != nil {
		return nil, err
	}

	handlers := map[string]handler{
		"enqueue": unary("value", func(v string) (mo.Option[string], error) { return done(q.Enqueue(v)) }),
		"dequeue": nullary(func() (mo.Option[string], error) { return output(q.Dequeue()) }),
		"front":   nullary(func() (mo.Option[string], error) { return output(q.PeekFront()) }),
		"rear":    nullary(func() (mo.Option[string], error) { return output(q.PeekRear()) }),
	}
	return &engine{
		handlers: withBounds(withBasics(handlers, q), q),
		contents: q.ToSlice,
	}, nil
}

func linkedQueueEngine() *engine {
	q := queue.NewLinkedQueue[string]()

	handlers := map[string]handler{
		"enqueue": unary("value", func(v string) (mo.Option[string], error) {
			q.Enqueue(v)
			return done(nil)
		}),
		"dequeue": nullary(func() (mo.Option[string], error) { return output(q.Dequeue()) }),
		"front":   nullary(func() (mo.Option[string], error) { return output(q.PeekFront()) }),
		"rear":    nullary(func() (mo.Option[string], error) { return output(q.PeekRear()) }),
	}
	return &engine{
		handlers: withBasics(handlers, q),
		contents: q.ToSlice,
	}
}

type positional interface {
	sized
	Find(string) (int, error)
	ToSlice() []string
	InsertAtBeginning(string)
	InsertAtEnd(string)
	InsertAtPosition(int, string) error
	DeleteAtBeginning() error
	DeleteAtEnd() error
	DeleteAtPosition(int) error
}

func listHandlers(l positional) map[string]handler {
	handlers := map[string]handler{
		"insert-front": unary("value", func(v string) (mo.Option[string], error) {
			l.InsertAtBeginning(v)
			return done(nil)
		}),
		"insert-back": unary("value", func(v string) (mo.Option[string], error) {
			l.InsertAtEnd(v)
			return done(nil)
		}),
		"insert": positionedWith("position", "value", func(pos int, v string) (mo.Option[string], error) {
			return done(l.InsertAtPosition(pos, v))
		}),
		"delete-front": nullary(func() (mo.Option[string], error) { return done(l.DeleteAtBeginning()) }),
		"delete-back":  nullary(func() (mo.Option[string], error) { return done(l.DeleteAtEnd()) }),
		"delete": positioned("position", func(pos int) (mo.Option[string], error) {
			return done(l.DeleteAtPosition(pos))
		}),
		"find": unary("value", func(v string) (mo.Option[string], error) { return output(l.Find(v)) }),
	}
	return withBasics(handlers, l)
}

func listEngine(l positional) *engine {
	return &engine{
		handlers: listHandlers(l),
		contents: l.ToSlice,
	}
}

func doublyListEngine() *engine {
	l := list.NewDoublyLinkedList[string]()
	e := listEngine(l)
	e.handlers["reverse"] = nullary(func() (mo.Option[string], error) {
		var items []string
		l.TraverseBackward(func(v string) { items = append(items, v) })
		return output(items, nil)
	})
	return e
}

func vectorEngine(capacity int) (*engine, error) {
	v, err := vector.WithCount[string](capacity)
	if err != nil {
		return nil, err
	}

	handlers := map[string]handler{
		"push": unary("value", func(value string) (mo.Option[string], error) {
			v.Push(value)
			return done(nil)
		}),
		"pop": nullary(func() (mo.Option[string], error) { return output(v.Pop()) }),
		"insert": positionedWith("position", "value", func(pos int, value string) (mo.Option[string], error) {
			return done(v.Insert(value, pos))
		}),
		"at": positioned("index", func(i int) (mo.Option[string], error) { return output(v.At(i)) }),
		"set": positionedWith("index", "value", func(i int, value string) (mo.Option[string], error) {
			return done(v.Set(i, value))
		}),
		"front":  nullary(func() (mo.Option[string], error) { return output(v.Front()) }),
		"back":   nullary(func() (mo.Option[string], error) { return output(v.Back()) }),
		"resize": positioned("size", func(n int) (mo.Option[string], error) { return done(v.Resize(n)) }),
		"shrink": nullary(func() (mo.Option[string], error) {
			v.ShrinkToFit()
			return done(nil)
		}),
		"capacity": nullary(func() (mo.Option[string], error) { return output(v.Capacity(), nil) }),
		"reverse": nullary(func() (mo.Option[string], error) {
			var items []string
			for it, end := v.ConstReverseBegin(), v.ConstReverseEnd(); !it.Equal(end); it.Next() {
				items = append(items, it.Value())
			}
			return output(items, nil)
		}),
	}
	return &engine{
		handlers: withBasics(handlers, v),
		contents: func() []string {
			items := make([]string, 0, v.Size())
			for value := range v.Values() {
				items = append(items, value)
			}
			return items
		},
	}, nil
}

// Operation describes one entry of a container's script vocabulary.
type Operation struct {
	Name   string   `json:"name"`
	Params []string `json:"params,omitempty"`
}

// Usage renders the operation as it is written in a script.
func (o Operation) Usage() string {
	usage := o.Name
	for _, p := range o.Params {
		usage += " <" + p + ">"
	}
	return usage
}

func (e *engine) operations() []Operation {
	names := lo.Keys(e.handlers)
	slices.Sort(names)
	return lo.Map(names, func(name string, _ int) Operation {
		return Operation{Name: name, Params: e.handlers[name].params}
	})
}
