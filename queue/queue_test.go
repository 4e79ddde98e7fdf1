package queue

import (
	"math/rand"
	"testing"

	"github.com/alglib/alglib/errs"
	"github.com/cockroachdb/errors"
	. "github.com/smartystreets/goconvey/convey"
)

// fifo is the surface shared by both queues in these tests.
type fifo interface {
	Dequeue() (int, error)
	PeekFront() (int, error)
	PeekRear() (int, error)
	IsEmpty() bool
	Size() int
}

func checkLinkedInvariants[T any](q *LinkedQueue[T]) {
	if q.front == nil || q.rear == nil {
		So(q.front, ShouldBeNil)
		So(q.rear, ShouldBeNil)
		return
	}
	last := q.front
	for last.next != nil {
		last = last.next
	}
	So(last, ShouldEqual, q.rear)
	So(q.rear.next, ShouldBeNil)
}

func TestCircularQueue(t *testing.T) {
	Convey("Given a circular queue of capacity 3", t, func() {
		q, err := NewCircularQueue[int](3)
		So(err, ShouldBeNil)
		So(q.Capacity(), ShouldEqual, 3)

		Convey("When 10, 20, 30 are enqueued", func() {
			for _, v := range []int{10, 20, 30} {
				So(q.Enqueue(v), ShouldBeNil)
			}
			So(q.IsFull(), ShouldBeTrue)

			Convey("Then a fourth enqueue reports CapacityExceeded and the size stays", func() {
				So(errors.Is(q.Enqueue(40), errs.ErrCapacityExceeded), ShouldBeTrue)
				So(q.Size(), ShouldEqual, 3)
			})

			Convey("Then a dequeue frees a slot that the next enqueue reuses", func() {
				v, err := q.Dequeue()
				So(err, ShouldBeNil)
				So(v, ShouldEqual, 10)

				So(q.Enqueue(40), ShouldBeNil)
				So(q.front, ShouldEqual, 1)

				rear, err := q.PeekRear()
				So(err, ShouldBeNil)
				So(rear, ShouldEqual, 40)
				So(q.buffer[0], ShouldEqual, 40)

				assertFIFO(q, []int{20, 30, 40})
			})
		})

		Convey("Peeks do not mutate", func() {
			So(q.Enqueue(1), ShouldBeNil)
			So(q.Enqueue(2), ShouldBeNil)
			front, _ := q.PeekFront()
			rear, _ := q.PeekRear()
			So(front, ShouldEqual, 1)
			So(rear, ShouldEqual, 2)
			So(q.Size(), ShouldEqual, 2)
		})

		Convey("Wrapping many times keeps FIFO order", func() {
			var expected []int
			next := 0
			for round := 0; round < 20; round++ {
				for !q.IsFull() {
					So(q.Enqueue(next), ShouldBeNil)
					expected = append(expected, next)
					next++
				}
				v, err := q.Dequeue()
				So(err, ShouldBeNil)
				So(v, ShouldEqual, expected[0])
				expected = expected[1:]
				So(q.ToSlice(), ShouldResemble, expected)
			}
		})
	})

	Convey("A zero-capacity queue is both empty and full", t, func() {
		q, err := NewCircularQueue[int](0)
		So(err, ShouldBeNil)
		So(q.IsEmpty(), ShouldBeTrue)
		So(q.IsFull(), ShouldBeTrue)
		So(errors.Is(q.Enqueue(1), errs.ErrCapacityExceeded), ShouldBeTrue)
		_, err = q.PeekRear()
		So(errors.Is(err, errs.ErrEmpty), ShouldBeTrue)
	})

	Convey("A negative capacity reports AllocationFailure", t, func() {
		_, err := NewCircularQueue[int](-3)
		So(errors.Is(err, errs.ErrAllocationFailure), ShouldBeTrue)
	})
}

func TestLinkedQueue(t *testing.T) {
	Convey("Given a linked queue", t, func() {
		q := NewLinkedQueue[int]()
		checkLinkedInvariants(q)

		Convey("A single enqueue makes front and rear the same node", func() {
			q.Enqueue(5)
			So(q.front, ShouldEqual, q.rear)
			So(q.front.next, ShouldBeNil)
			checkLinkedInvariants(q)

			Convey("And dequeuing it resets both ends", func() {
				v, err := q.Dequeue()
				So(err, ShouldBeNil)
				So(v, ShouldEqual, 5)
				So(q.front, ShouldBeNil)
				So(q.rear, ShouldBeNil)

				q.Enqueue(6)
				rear, err := q.PeekRear()
				So(err, ShouldBeNil)
				So(rear, ShouldEqual, 6)
				checkLinkedInvariants(q)
			})
		})

		Convey("Values come out in insertion order", func() {
			for _, v := range []int{1, 2, 3, 4} {
				q.Enqueue(v)
			}
			So(q.Size(), ShouldEqual, 4)
			So(q.ToSlice(), ShouldResemble, []int{1, 2, 3, 4})
			assertFIFO(q, []int{1, 2, 3, 4})
			checkLinkedInvariants(q)
		})

		Convey("Random interleavings keep FIFO order", func() {
			rng := rand.New(rand.NewSource(42))
			lastPush, lastPop := -1, -1
			for i := 0; i < 1000; i++ {
				if rng.Intn(5) < 3 {
					lastPush++
					q.Enqueue(lastPush)
				} else {
					v, err := q.Dequeue()
					if err != nil {
						So(errors.Is(err, errs.ErrEmpty), ShouldBeTrue)
						So(lastPop, ShouldEqual, lastPush)
					} else {
						So(v, ShouldEqual, lastPop+1)
						lastPop++
					}
				}
				checkLinkedInvariants(q)
			}
		})

		Convey("Clear unlinks everything", func() {
			q.Enqueue(1)
			q.Enqueue(2)
			q.Clear()
			So(q.IsEmpty(), ShouldBeTrue)
			checkLinkedInvariants(q)
		})
	})
}

func TestQueueUnderflow(t *testing.T) {
	circular, _ := NewCircularQueue[int](2)
	for name, q := range map[string]fifo{"circular": circular, "linked": NewLinkedQueue[int]()} {
		Convey("Empty "+name+" queue", t, func() {
			_, err := q.Dequeue()
			So(errs.KindOf(err), ShouldEqual, errs.KindEmpty)
			_, err = q.PeekFront()
			So(errs.KindOf(err), ShouldEqual, errs.KindEmpty)
			_, err = q.PeekRear()
			So(errs.KindOf(err), ShouldEqual, errs.KindEmpty)
		})
	}
}

func assertFIFO(q fifo, expected []int) {
	for _, want := range expected {
		v, err := q.Dequeue()
		So(err, ShouldBeNil)
		So(v, ShouldEqual, want)
	}
	So(q.IsEmpty(), ShouldBeTrue)
}
