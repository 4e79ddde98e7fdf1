package list

import (
	"math/rand"
	"testing"

	"github.com/alglib/alglib/errs"
	"github.com/cockroachdb/errors"
	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/exp/slices"
)

// positional is the surface shared by both lists.
type positional interface {
	Traverse(func(int))
	Size() int
	IsEmpty() bool
	Find(int) (int, error)
	ToSlice() []int
	InsertAtBeginning(int)
	InsertAtEnd(int)
	InsertAtPosition(int, int) error
	DeleteAtBeginning() error
	DeleteAtEnd() error
	DeleteAtPosition(int) error
	Clear()
}

var (
	_ positional = (*SinglyLinkedList[int])(nil)
	_ positional = (*DoublyLinkedList[int])(nil)
)

func checkDoublyInvariants[T comparable](l *DoublyLinkedList[T]) {
	if l.head == nil || l.tail == nil {
		So(l.head, ShouldBeNil)
		So(l.tail, ShouldBeNil)
		return
	}
	So(l.head.previous, ShouldBeNil)
	So(l.tail.next, ShouldBeNil)

	cur := l.head
	for cur.next != nil {
		So(cur.next.previous, ShouldEqual, cur)
		cur = cur.next
	}
	So(cur, ShouldEqual, l.tail)
}

func lists() map[string]func() positional {
	return map[string]func() positional{
		"singly": func() positional { return NewSinglyLinkedList[int]() },
		"doubly": func() positional { return NewDoublyLinkedList[int]() },
	}
}

func TestPositionalLists(t *testing.T) {
	for name, fresh := range lists() {
		Convey("Given an empty "+name+" list", t, func() {
			l := fresh()
			So(l.IsEmpty(), ShouldBeTrue)
			So(l.Size(), ShouldEqual, 0)
			So(l.ToSlice(), ShouldBeEmpty)

			Convey("Deletions report EmptyError", func() {
				So(errors.Is(l.DeleteAtBeginning(), errs.ErrEmpty), ShouldBeTrue)
				So(errors.Is(l.DeleteAtEnd(), errs.ErrEmpty), ShouldBeTrue)
				So(errors.Is(l.DeleteAtPosition(0), errs.ErrEmpty), ShouldBeTrue)
			})

			Convey("Position 0 is the only valid insertion point", func() {
				So(errors.Is(l.InsertAtPosition(1, 9), errs.ErrIndexOutOfRange), ShouldBeTrue)
				So(l.InsertAtPosition(0, 9), ShouldBeNil)
				So(l.ToSlice(), ShouldResemble, []int{9})
			})

			Convey("When filled with 1..5", func() {
				l.InsertAtEnd(3)
				l.InsertAtBeginning(1)
				l.InsertAtEnd(5)
				So(l.InsertAtPosition(1, 2), ShouldBeNil)
				So(l.InsertAtPosition(3, 4), ShouldBeNil)
				So(l.ToSlice(), ShouldResemble, []int{1, 2, 3, 4, 5})
				So(l.Size(), ShouldEqual, 5)

				Convey("Then Traverse visits head to tail", func() {
					var seen []int
					l.Traverse(func(v int) { seen = append(seen, v) })
					So(seen, ShouldResemble, []int{1, 2, 3, 4, 5})
				})

				Convey("Then Find returns the position of the first match", func() {
					l.InsertAtEnd(3)
					pos, err := l.Find(3)
					So(err, ShouldBeNil)
					So(pos, ShouldEqual, 2)

					pos, err = l.Find(1)
					So(err, ShouldBeNil)
					So(pos, ShouldEqual, 0)
				})

				Convey("Then Find reports ItemNotFound for a missing value", func() {
					_, err := l.Find(42)
					So(errors.Is(err, errs.ErrItemNotFound), ShouldBeTrue)
				})

				Convey("Then out-of-range positions are rejected without mutation", func() {
					So(errors.Is(l.InsertAtPosition(6, 0), errs.ErrIndexOutOfRange), ShouldBeTrue)
					So(errors.Is(l.InsertAtPosition(-1, 0), errs.ErrIndexOutOfRange), ShouldBeTrue)
					So(errors.Is(l.DeleteAtPosition(5), errs.ErrIndexOutOfRange), ShouldBeTrue)
					So(errors.Is(l.DeleteAtPosition(-1), errs.ErrIndexOutOfRange), ShouldBeTrue)
					So(l.ToSlice(), ShouldResemble, []int{1, 2, 3, 4, 5})
				})

				Convey("Then deletions relink the neighbours", func() {
					So(l.DeleteAtPosition(2), ShouldBeNil)
					So(l.ToSlice(), ShouldResemble, []int{1, 2, 4, 5})
					So(l.DeleteAtBeginning(), ShouldBeNil)
					So(l.ToSlice(), ShouldResemble, []int{2, 4, 5})
					So(l.DeleteAtEnd(), ShouldBeNil)
					So(l.ToSlice(), ShouldResemble, []int{2, 4})
					So(l.DeleteAtPosition(1), ShouldBeNil)
					So(l.DeleteAtPosition(0), ShouldBeNil)
					So(l.IsEmpty(), ShouldBeTrue)
				})

				Convey("Then Clear empties the list", func() {
					l.Clear()
					So(l.IsEmpty(), ShouldBeTrue)
					So(l.Size(), ShouldEqual, 0)
				})
			})
		})
	}
}

func TestListsAgainstModel(t *testing.T) {
	for name, fresh := range lists() {
		Convey("Random operations on a "+name+" list match a slice model", t, func() {
			rng := rand.New(rand.NewSource(7))
			l := fresh()
			var model []int

			for i := 0; i < 500; i++ {
				switch op := rng.Intn(6); op {
				case 0:
					l.InsertAtBeginning(i)
					model = slices.Insert(model, 0, i)
				case 1:
					l.InsertAtEnd(i)
					model = append(model, i)
				case 2:
					pos := rng.Intn(len(model) + 1)
					So(l.InsertAtPosition(pos, i), ShouldBeNil)
					model = slices.Insert(model, pos, i)
				case 3:
					if err := l.DeleteAtBeginning(); err == nil {
						model = model[1:]
					} else {
						So(model, ShouldBeEmpty)
					}
				case 4:
					if err := l.DeleteAtEnd(); err == nil {
						model = model[:len(model)-1]
					} else {
						So(model, ShouldBeEmpty)
					}
				case 5:
					if len(model) == 0 {
						continue
					}
					pos := rng.Intn(len(model))
					So(l.DeleteAtPosition(pos), ShouldBeNil)
					model = slices.Delete(model, pos, pos+1)
				}

				if d, ok := l.(*DoublyLinkedList[int]); ok {
					checkDoublyInvariants(d)
				}
			}

			So(l.Size(), ShouldEqual, len(model))
			if len(model) == 0 {
				So(l.ToSlice(), ShouldBeEmpty)
			} else {
				So(l.ToSlice(), ShouldResemble, model)
			}
		})
	}
}

func TestDoublyLinkedList(t *testing.T) {
	Convey("Given a doubly linked list 1..4", t, func() {
		l := NewDoublyLinkedList[string]()
		for _, v := range []string{"a", "b", "c", "d"} {
			l.InsertAtEnd(v)
		}
		checkDoublyInvariants(l)

		Convey("TraverseBackward follows the back-links", func() {
			var seen []string
			l.TraverseBackward(func(v string) { seen = append(seen, v) })
			So(seen, ShouldResemble, []string{"d", "c", "b", "a"})
		})

		Convey("Deleting from the middle points the successor back at the predecessor", func() {
			So(l.DeleteAtPosition(1), ShouldBeNil)
			So(l.head.next.value, ShouldEqual, "c")
			So(l.head.next.previous, ShouldEqual, l.head)
			checkDoublyInvariants(l)
		})

		Convey("Inserting in the middle keeps both directions consistent", func() {
			So(l.InsertAtPosition(2, "x"), ShouldBeNil)
			So(l.ToSlice(), ShouldResemble, []string{"a", "b", "x", "c", "d"})
			checkDoublyInvariants(l)
		})

		Convey("Deleting down to one node keeps head and tail together", func() {
			So(l.DeleteAtEnd(), ShouldBeNil)
			So(l.DeleteAtEnd(), ShouldBeNil)
			So(l.DeleteAtBeginning(), ShouldBeNil)
			So(l.head, ShouldEqual, l.tail)
			checkDoublyInvariants(l)
			So(l.DeleteAtEnd(), ShouldBeNil)
			checkDoublyInvariants(l)
		})
	})
}

func TestSinglyLinkedListZeroValue(t *testing.T) {
	Convey("The zero value of a singly linked list is usable", t, func() {
		var l SinglyLinkedList[string]
		l.InsertAtEnd("only")
		So(l.ToSlice(), ShouldResemble, []string{"only"})
		So(l.DeleteAtEnd(), ShouldBeNil)
		So(l.IsEmpty(), ShouldBeTrue)
	})
}
