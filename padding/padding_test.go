package padding

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestInsets(t *testing.T) {
	Convey("Insets constructors", t, func() {
		So(All(2), ShouldResemble, Insets{2, 2, 2, 2})
		So(Symmetric(1, 3), ShouldResemble, Insets{Top: 1, Right: 3, Bottom: 1, Left: 3})
		So(Only(Left(4), Bottom(1)), ShouldResemble, Insets{Left: 4, Bottom: 1})
		So(Only(), ShouldResemble, Zero)

		Convey("Totals and sums", func() {
			i := Insets{Top: 1, Right: 2, Bottom: 3, Left: 4}
			So(i.Horizontal(), ShouldEqual, 6)
			So(i.Vertical(), ShouldEqual, 4)
			So(i.Add(All(1)), ShouldResemble, Insets{2, 3, 4, 5})
			So(i, ShouldResemble, Insets{1, 2, 3, 4})
		})
	})
}

func TestApply(t *testing.T) {
	Convey("Apply", t, func() {
		Convey("Pads horizontally", func() {
			out, err := Only(Left(2)).Apply("ab")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "  ab")

			out, _ = Symmetric(0, 1).Apply("ab")
			So(out, ShouldEqual, " ab ")
		})

		Convey("Pads vertically", func() {
			out, err := All(1).Apply("ab")
			So(err, ShouldBeNil)
			So(lipgloss.Height(out), ShouldEqual, 3)
			So(lipgloss.Width(out), ShouldEqual, 4)
		})

		Convey("Rejects negative insets", func() {
			_, err := Only(Top(-1)).Apply("ab")
			So(errors.Is(err, ErrNegative), ShouldBeTrue)
		})
	})
}

func TestWidthPadding(t *testing.T) {
	Convey("Width-based padding", t, func() {
		colored := "\x1b[31mred\x1b[0m"

		Convey("Width ignores escape sequences", func() {
			So(Width(colored), ShouldEqual, 3)
			So(Width("日本"), ShouldEqual, 4)
		})

		Convey("PadRight", func() {
			So(PadRight("ab", 4), ShouldEqual, "ab  ")
			So(Width(PadRight(colored, 5)), ShouldEqual, 5)
			So(PadRight("abcdef", 3), ShouldEqual, "abcdef")
		})

		Convey("PadLeft", func() {
			So(PadLeft("ab", 4), ShouldEqual, "  ab")
			So(PadLeft("abc", 2), ShouldEqual, "abc")
		})

		Convey("Center", func() {
			So(Center("ab", 5), ShouldEqual, " ab  ")
			So(Center("ab", 6), ShouldEqual, "  ab  ")
			So(Center("abc", 1), ShouldEqual, "abc")
		})
	})
}
