package where

import (
	"path/filepath"
	"testing"

	"github.com/alglib/alglib/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		filesystem.SetMemMapFs()

		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() should honor the override", func() {
			t.Setenv(EnvConfigPath, "/tmp/alglib-test")
			So(Config(), ShouldEqual, "/tmp/alglib-test")
			So(ConfigFile(), ShouldEqual, filepath.Join("/tmp/alglib-test", "alglib.toml"))
		})

		Convey("Logs()", func() {
			t.Setenv(EnvConfigPath, "/tmp/alglib-test")
			path := Logs()
			So(path, ShouldEqual, filepath.Join("/tmp/alglib-test", "logs"))
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})
	})
}
