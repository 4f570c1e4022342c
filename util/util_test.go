package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
	})
}

func TestSanitizeAttachment(t *testing.T) {
	Convey("SanitizeAttachment", t, func() {
		Convey("Should strip everything outside the safe set", func() {
			So(SanitizeAttachment("my video (1).mp4", 0), ShouldEqual, "my_video__1__mp4")
		})
		Convey("Should truncate to max length", func() {
			So(SanitizeAttachment("abcdefgh", 4), ShouldEqual, "abcd")
		})
		Convey("Should keep hyphens and underscores", func() {
			So(SanitizeAttachment("a-b_c", 0), ShouldEqual, "a-b_c")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFormatBytes(t *testing.T) {
	Convey("FormatBytes", t, func() {
		So(FormatBytes(512), ShouldEqual, "512 B")
		So(FormatBytes(2048), ShouldEqual, "2.0 KiB")
		So(FormatBytes(5*1024*1024), ShouldEqual, "5.0 MiB")
	})
}

func TestFormatClock(t *testing.T) {
	Convey("FormatClock", t, func() {
		So(FormatClock(59), ShouldEqual, "0:59")
		So(FormatClock(125), ShouldEqual, "2:05")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/file.txt"), ShouldEqual, "file")
		So(FileStem("file"), ShouldEqual, "file")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}
