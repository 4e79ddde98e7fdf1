package icon

import (
	"testing"

	"github.com/alglib/alglib/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given the registered icons", t, func() {
		all := []Icon{Success, Fail, Invalid, Arrow, Empty}

		Convey("They render for each variant", func() {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				for _, i := range all {
					So(Get(i), ShouldNotBeEmpty)
				}
			}
		})

		Convey("The plain variant is ASCII", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Success), ShouldEqual, "ok")
			So(Get(Fail), ShouldEqual, "!!")
		})

		Convey("They render empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Success), ShouldBeEmpty)
		})

		Convey("An unregistered icon renders empty", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Icon(99)), ShouldBeEmpty)
		})

		Reset(func() {
			viper.Set(key.IconsVariant, "plain")
		})
	})
}
