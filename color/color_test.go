package color

import (
	"errors"
	imgcolor "image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	. "github.com/smartystreets/goconvey/convey"
)

// samples covers the channel extremes and a few values that round awkwardly.
var samples = []Color{
	New(0, 0, 0, 0),
	New(255, 255, 255, 255),
	New(255, 0, 128, 255),
	New(128, 1, 2, 3),
	New(17, 254, 127, 63),
	New(200, 99, 150, 201),
}

func TestAccessors(t *testing.T) {
	Convey("Given a color", t, func() {
		c := New(1, 2, 3, 4)

		Convey("Channels are returned unchanged", func() {
			So(c.Alpha(), ShouldEqual, 1)
			So(c.Red(), ShouldEqual, 2)
			So(c.Green(), ShouldEqual, 3)
			So(c.Blue(), ShouldEqual, 4)
		})

		Convey("Brightness is the arithmetic mean of rgb", func() {
			So(c.Brightness(), ShouldEqual, 3.0)
			So(RGB(255, 255, 255).Brightness(), ShouldEqual, 255.0)
			So(RGB(0, 0, 1).Brightness(), ShouldAlmostEqual, 1.0/3, 1e-9)
		})

		Convey("ARGB packs alpha first", func() {
			So(c.ARGB(), ShouldEqual, uint32(0x01020304))
			So(FromARGB(0x01020304), ShouldResemble, c)
		})

		Convey("RGB is opaque", func() {
			So(RGB(9, 8, 7).Alpha(), ShouldEqual, 255)
		})

		Convey("IsLight splits at half brightness", func() {
			So(RGB(255, 255, 255).IsLight(), ShouldBeTrue)
			So(RGB(0, 0, 0).IsLight(), ShouldBeFalse)
			So(RGB(128, 128, 127).IsLight(), ShouldBeTrue)
			So(RGB(127, 128, 127).IsLight(), ShouldBeFalse)
		})
	})
}

func TestHex(t *testing.T) {
	Convey("Hex", t, func() {
		Convey("Formats alpha first, lowercase, zero padded", func() {
			So(New(255, 0, 128, 255).Hex(), ShouldEqual, "#ff0080ff")
			So(New(0, 10, 11, 12).Hex(), ShouldEqual, "#000a0b0c")
			So(New(0, 10, 11, 12).String(), ShouldEqual, "#000a0b0c")
		})

		Convey("Round-trips through FromHex", func() {
			for _, c := range samples {
				parsed, err := FromHex(c.Hex())
				So(err, ShouldBeNil)
				So(parsed, ShouldResemble, c)
			}
		})
	})
}

func TestFromHex(t *testing.T) {
	Convey("FromHex", t, func() {
		Convey("Six digits are opaque rgb", func() {
			c, err := FromHex("#ff00ff")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, New(255, 255, 0, 255))

			c, err = FromHex("336699")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, New(255, 0x33, 0x66, 0x99))
		})

		Convey("Eight digits carry alpha", func() {
			c, err := FromHex("#80112233")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, New(0x80, 0x11, 0x22, 0x33))

			c, err = FromHex("00ABCDEF")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, New(0, 0xab, 0xcd, 0xef))
		})

		Convey("Unsupported lengths fail with a format error", func() {
			for _, s := range []string{"", "#", "#fff", "1234567", "#123456789", "##123456"} {
				_, err := FromHex(s)
				So(errors.Is(err, ErrFormat), ShouldBeTrue)
			}
		})

		Convey("Non-hex digits fail with a format error", func() {
			for _, s := range []string{"#gg0000", "zzzzzzzz", "+12345", "-1234567"} {
				_, err := FromHex(s)
				So(errors.Is(err, ErrFormat), ShouldBeTrue)
			}
		})

		Convey("MustFromHex panics on bad input", func() {
			So(func() { MustFromHex("nope") }, ShouldPanic)
			So(MustFromHex("#000000"), ShouldResemble, RGB(0, 0, 0))
		})
	})
}

func TestDarkenLighten(t *testing.T) {
	Convey("Darken and Lighten", t, func() {
		Convey("Zero percent is identity", func() {
			for _, c := range samples {
				d, err := c.Darken(0)
				So(err, ShouldBeNil)
				So(d, ShouldResemble, c)

				l, err := c.Lighten(0)
				So(err, ShouldBeNil)
				So(l, ShouldResemble, c)
			}
		})

		Convey("Full percent reaches black or white and keeps alpha", func() {
			for _, c := range samples {
				d, _ := c.Darken(100)
				So(d, ShouldResemble, New(c.Alpha(), 0, 0, 0))

				l, _ := c.Lighten(100)
				So(l, ShouldResemble, New(c.Alpha(), 255, 255, 255))
			}
		})

		Convey("Darken never raises and Lighten never lowers a channel", func() {
			for _, c := range samples {
				for p := 0.0; p <= 100; p += 7.5 {
					d, err := c.Darken(p)
					So(err, ShouldBeNil)
					So(d.Red(), ShouldBeLessThanOrEqualTo, c.Red())
					So(d.Green(), ShouldBeLessThanOrEqualTo, c.Green())
					So(d.Blue(), ShouldBeLessThanOrEqualTo, c.Blue())
					So(d.Alpha(), ShouldEqual, c.Alpha())

					l, err := c.Lighten(p)
					So(err, ShouldBeNil)
					So(l.Red(), ShouldBeGreaterThanOrEqualTo, c.Red())
					So(l.Green(), ShouldBeGreaterThanOrEqualTo, c.Green())
					So(l.Blue(), ShouldBeGreaterThanOrEqualTo, c.Blue())
					So(l.Alpha(), ShouldEqual, c.Alpha())
				}
			}
		})

		Convey("Channels round to nearest", func() {
			d, _ := RGB(16, 26, 7).Darken(10)
			// 14.4, 23.4, 6.3
			So(d, ShouldResemble, RGB(14, 23, 6))

			l, _ := RGB(15, 103, 248).Lighten(10)
			// 39, 118.2, 248.7
			So(l, ShouldResemble, RGB(39, 118, 249))
		})

		Convey("Default step is ten percent", func() {
			c := RGB(100, 150, 200)
			d, _ := c.Darken(DefaultPercent)
			l, _ := c.Lighten(DefaultPercent)
			So(c.Darker(), ShouldResemble, d)
			So(c.Lighter(), ShouldResemble, l)
		})

		Convey("Out of range percent is a precondition violation", func() {
			for _, p := range []float64{-1, 100.5, 150} {
				_, err := RGB(1, 2, 3).Darken(p)
				So(errors.Is(err, ErrPrecondition), ShouldBeTrue)

				_, err = RGB(1, 2, 3).Lighten(p)
				So(errors.Is(err, ErrPrecondition), ShouldBeTrue)
			}
		})
	})
}

func TestWithChannel(t *testing.T) {
	Convey("Given a color", t, func() {
		c := New(1, 2, 3, 4)

		Convey("Each setter replaces exactly one channel", func() {
			r, err := c.WithRed(10)
			So(err, ShouldBeNil)
			So(r, ShouldResemble, New(1, 10, 3, 4))

			a, _ := c.WithAlpha(255)
			So(a, ShouldResemble, New(255, 2, 3, 4))

			g, _ := c.WithGreen(0)
			So(g, ShouldResemble, New(1, 2, 0, 4))

			b, _ := c.WithBlue(200)
			So(b, ShouldResemble, New(1, 2, 3, 200))

			Convey("And the source is left untouched", func() {
				So(c, ShouldResemble, New(1, 2, 3, 4))
			})
		})

		Convey("Values outside [0, 255] are precondition violations", func() {
			setters := []func(int) (Color, error){c.WithAlpha, c.WithRed, c.WithGreen, c.WithBlue}
			for _, set := range setters {
				_, err := set(256)
				So(errors.Is(err, ErrPrecondition), ShouldBeTrue)
				_, err = set(-1)
				So(errors.Is(err, ErrPrecondition), ShouldBeTrue)
			}
		})
	})
}

func TestWithBrightness(t *testing.T) {
	Convey("WithBrightness", t, func() {
		c := New(42, 1, 2, 3)

		Convey("Truncates to a gray and keeps alpha", func() {
			g, err := c.WithBrightness(0.5)
			So(err, ShouldBeNil)
			So(g, ShouldResemble, New(42, 127, 127, 127))

			g, _ = c.WithBrightness(1)
			So(g, ShouldResemble, New(42, 255, 255, 255))

			g, _ = c.WithBrightness(0)
			So(g, ShouldResemble, New(42, 0, 0, 0))
		})

		Convey("Rejects values outside [0, 1]", func() {
			_, err := c.WithBrightness(1.01)
			So(errors.Is(err, ErrPrecondition), ShouldBeTrue)
			_, err = c.WithBrightness(-0.1)
			So(errors.Is(err, ErrPrecondition), ShouldBeTrue)
		})
	})
}

func TestBlend(t *testing.T) {
	Convey("Blend", t, func() {
		from, to := New(0, 0, 0, 0), New(255, 255, 255, 255)

		Convey("Endpoints are exact", func() {
			b, err := from.Blend(to, 0)
			So(err, ShouldBeNil)
			So(b, ShouldResemble, from)

			b, _ = from.Blend(to, 1)
			So(b, ShouldResemble, to)
		})

		Convey("Midpoint is halfway on every channel", func() {
			b, _ := from.Blend(to, 0.5)
			So(b, ShouldResemble, New(128, 128, 128, 128))
		})

		Convey("t outside [0, 1] is rejected", func() {
			_, err := from.Blend(to, 2)
			So(errors.Is(err, ErrPrecondition), ShouldBeTrue)
		})
	})
}

func TestConvert(t *testing.T) {
	Convey("Conversions", t, func() {
		c := New(255, 0x12, 0x34, 0x56)

		Convey("Lipgloss drops alpha", func() {
			So(string(c.Lipgloss()), ShouldEqual, "#123456")
			So(string(New(0, 0x12, 0x34, 0x56).Lipgloss()), ShouldEqual, "#123456")
		})

		Convey("Satisfies image/color.Color", func() {
			var ic imgcolor.Color = c
			r, g, b, a := ic.RGBA()
			So(r, ShouldEqual, uint32(0x1212))
			So(g, ShouldEqual, uint32(0x3434))
			So(b, ShouldEqual, uint32(0x5656))
			So(a, ShouldEqual, uint32(0xffff))
			So(FromImage(ic), ShouldResemble, c)
			So(FromImage(imgcolor.NRGBA{R: 1, G: 2, B: 3, A: 4}), ShouldResemble, New(4, 1, 2, 3))
		})

		Convey("go-colorful round-trips opaque colors", func() {
			So(FromColorful(c.Colorful()), ShouldResemble, c)
			So(FromColorful(colorful.Color{R: 2, G: -1, B: 0.5}), ShouldResemble, RGB(255, 0, 128))
		})
	})
}
