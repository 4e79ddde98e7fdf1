package buffer

import (
	"math"
	"testing"

	"github.com/alglib/alglib/errs"
	"github.com/cockroachdb/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMake(t *testing.T) {
	Convey("Make", t, func() {
		Convey("Should allocate zeroed slots", func() {
			buf, err := Make[int]("test", 3)
			So(err, ShouldBeNil)
			So(buf, ShouldResemble, []int{0, 0, 0})
		})

		Convey("Should allow empty buffers", func() {
			buf, err := Make[string]("test", 0)
			So(err, ShouldBeNil)
			So(buf, ShouldBeEmpty)
		})

		Convey("Should reject negative sizes", func() {
			_, err := Make[int]("test", -1)
			So(errors.Is(err, errs.ErrAllocationFailure), ShouldBeTrue)
		})

		Convey("Should recover sizes the runtime refuses", func() {
			_, err := Make[int64]("test", math.MaxInt)
			So(errors.Is(err, errs.ErrAllocationFailure), ShouldBeTrue)
		})
	})
}

func TestGrown(t *testing.T) {
	Convey("Grown", t, func() {
		So(Grown(0), ShouldEqual, 1)
		So(Grown(1), ShouldEqual, 2)
		So(Grown(4), ShouldEqual, 8)
		So(Grown(8), ShouldEqual, 16)
		So(Grown(math.MaxInt), ShouldEqual, math.MaxInt)
	})
}
