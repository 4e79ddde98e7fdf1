package errs

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestKindOf(t *testing.T) {
	Convey("KindOf", t, func() {
		Convey("Should map nil to KindNone", func() {
			So(KindOf(nil), ShouldEqual, KindNone)
		})

		Convey("Should see through the context wrappers", func() {
			So(KindOf(Empty("pop", MsgEmptyDeletion)), ShouldEqual, KindEmpty)
			So(KindOf(Full("push", 3)), ShouldEqual, KindCapacityExceeded)
			So(KindOf(OutOfRange("at", 5, 4)), ShouldEqual, KindIndexOutOfRange)
			So(KindOf(NotFound("find")), ShouldEqual, KindItemNotFound)
			So(KindOf(Allocation("resize", -1)), ShouldEqual, KindAllocationFailure)
		})

		Convey("Should see through foreign wrapping", func() {
			err := fmt.Errorf("replay: %w", Empty("dequeue", MsgEmptyDeletion))
			So(KindOf(err), ShouldEqual, KindEmpty)
			So(errors.Is(err, ErrEmpty), ShouldBeTrue)
		})

		Convey("Should report foreign errors as KindUnknown", func() {
			So(KindOf(errors.New("boom")), ShouldEqual, KindUnknown)
		})
	})
}

func TestKindString(t *testing.T) {
	Convey("Kind names", t, func() {
		So(KindEmpty.String(), ShouldEqual, "EmptyError")
		So(KindCapacityExceeded.String(), ShouldEqual, "CapacityExceeded")
		So(KindIndexOutOfRange.String(), ShouldEqual, "IndexOutOfRange")
		So(KindItemNotFound.String(), ShouldEqual, "ItemNotFound")
		So(KindAllocationFailure.String(), ShouldEqual, "AllocationFailure")
		So(Kind(42).String(), ShouldEqual, "Unknown")
	})
}

func TestMessages(t *testing.T) {
	Convey("Wrapped messages carry the operation", t, func() {
		So(Empty("dequeue", MsgEmptyDeletion).Error(), ShouldEqual, "dequeue: cannot delete from empty object: container is empty")
		So(Full("push", 2).Error(), ShouldEqual, "push: object full (capacity 2): capacity exceeded")
	})
}
