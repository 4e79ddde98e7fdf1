package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})

		Convey("A fresh MemMapFs should not see earlier writes", func() {
			SetMemMapFs()
			So(API().WriteFile("/scripts/a.txt", []byte("push 1\n"), 0o644), ShouldBeNil)
			SetMemMapFs()
			exists, err := API().Exists("/scripts/a.txt")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("GacheFs should write through the active backend", t, func() {
		SetMemMapFs()
		var fs GacheFs

		So(fs.MkdirAll("/cache", 0o755), ShouldBeNil)
		f, err := fs.OpenFile("/cache/data.json", os.O_CREATE|os.O_WRONLY, 0o644)
		So(err, ShouldBeNil)
		_, err = f.Write([]byte("{}"))
		So(err, ShouldBeNil)
		So(f.Close(), ShouldBeNil)

		data, err := API().ReadFile("/cache/data.json")
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, "{}")
	})
}
