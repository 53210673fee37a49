package palette

import (
	"errors"
	"sort"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tintkit/tint/color"
)

func TestNames(t *testing.T) {
	Convey("Names", t, func() {
		names := Names()
		So(len(names), ShouldEqual, len(named))
		So(sort.StringsAreSorted(names), ShouldBeTrue)
	})
}

func TestLookup(t *testing.T) {
	Convey("Lookup", t, func() {
		Convey("Finds names regardless of case", func() {
			c, ok := Lookup("  Mauve ").Get()
			So(ok, ShouldBeTrue)
			So(c, ShouldResemble, Mauve)
		})

		Convey("Returns none for unknown names", func() {
			So(Lookup("chartreuse").IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestFind(t *testing.T) {
	Convey("Find", t, func() {
		Convey("Ranks the closest name first", func() {
			So(Find("blu"), ShouldResemble, []string{"blue"})
			So(Find("re")[0], ShouldEqual, "red")
		})

		Convey("Returns nothing for unmatched queries", func() {
			So(Find("xyz"), ShouldBeEmpty)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Accepts palette names", func() {
			c, err := Parse("teal")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, Teal)
		})

		Convey("Falls back to hex", func() {
			c, err := Parse("#11223344")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, color.New(0x11, 0x22, 0x33, 0x44))
		})

		Convey("Reports malformed input as a format error", func() {
			_, err := Parse("not-a-color")
			So(errors.Is(err, color.ErrFormat), ShouldBeTrue)
		})
	})
}
