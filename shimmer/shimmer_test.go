package shimmer

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tintkit/tint/color"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

var (
	black = color.RGB(0, 0, 0)
	white = color.RGB(255, 255, 255)
)

func TestShimmer(t *testing.T) {
	Convey("Given a two rune wide shimmer", t, func() {
		s, err := New(black, white, 2)
		So(err, ShouldBeNil)

		Convey("The period covers entry and exit", func() {
			So(s.Period(4), ShouldEqual, 8)
		})

		Convey("The band is off-screen at frame zero", func() {
			for _, c := range s.Colors("abcd", 0) {
				So(c, ShouldResemble, black)
			}
		})

		Convey("Intensity falls off linearly from the center", func() {
			So(s.Intensity(0, 4, 2), ShouldEqual, 1.0)
			So(s.Intensity(1, 4, 2), ShouldEqual, 0.5)
			So(s.Intensity(2, 4, 2), ShouldEqual, 0.0)
			So(s.Intensity(3, 4, 5), ShouldEqual, 1.0)
		})

		Convey("Colors blend toward the highlight", func() {
			colors := s.Colors("abcd", 2)
			So(colors, ShouldHaveLength, 4)
			So(colors[0], ShouldResemble, white)
			So(colors[1], ShouldResemble, color.RGB(128, 128, 128))
			So(colors[2], ShouldResemble, black)
		})

		Convey("Frames repeat every period, including negative ones", func() {
			So(s.Colors("abcd", 10), ShouldResemble, s.Colors("abcd", 2))
			So(s.Colors("abcd", -6), ShouldResemble, s.Colors("abcd", 2))
		})

		Convey("Multi-byte runes are colored individually", func() {
			So(s.Colors("日本語", 3), ShouldHaveLength, 3)
		})

		Convey("Render keeps the text intact", func() {
			So(s.Render("shimmer", 3), ShouldEqual, "shimmer")
			So(s.Render("", 3), ShouldBeEmpty)
		})
	})

	Convey("A zero width is rejected", t, func() {
		_, err := New(black, white, 0)
		So(errors.Is(err, ErrWidth), ShouldBeTrue)
	})
}

func TestModel(t *testing.T) {
	Convey("Given a shimmer model", t, func() {
		s, _ := New(black, white, 1)
		m := NewModel(s, "ab", 20)

		Convey("Init schedules a tick", func() {
			So(m.Init(), ShouldNotBeNil)
		})

		Convey("Ticks advance and wrap the frame", func() {
			var model tea.Model = m
			for i := 0; i < s.Period(2); i++ {
				var cmd tea.Cmd
				model, cmd = model.Update(tickMsg(time.Now()))
				So(cmd, ShouldNotBeNil)
			}
			So(model.(Model).Frame(), ShouldEqual, 0)

			model, _ = model.Update(tickMsg(time.Now()))
			So(model.(Model).Frame(), ShouldEqual, 1)
		})

		Convey("Pausing freezes the frame", func() {
			model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
			So(model.(Model).Paused(), ShouldBeTrue)

			model, _ = model.Update(tickMsg(time.Now()))
			So(model.(Model).Frame(), ShouldEqual, 0)
		})

		Convey("The view shows the text and help", func() {
			view := m.View()
			So(strings.HasPrefix(view, "ab"), ShouldBeTrue)
			So(view, ShouldContainSubstring, "quit")
		})

		Convey("Quitting clears the view", func() {
			model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
			So(cmd, ShouldNotBeNil)
			So(model.View(), ShouldBeEmpty)
		})
	})
}
