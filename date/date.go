// Package date provides calendar helpers and compact human-readable timestamps.
package date

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

var now = time.Now

// Named layouts accepted by Format.
const (
	LayoutDate     = "2006-01-02"
	LayoutTime     = "15:04"
	LayoutDateTime = "2006-01-02 15:04"
)

var layouts = map[string]string{
	"date":     LayoutDate,
	"time":     LayoutTime,
	"datetime": LayoutDateTime,
	"iso":      time.RFC3339,
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's day in t's location.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// IsSameDay reports whether a and b fall on the same calendar day in a's location.
func IsSameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func IsToday(t time.Time) bool {
	return IsSameDay(t, now().In(t.Location()))
}

func IsYesterday(t time.Time) bool {
	return IsSameDay(t, now().In(t.Location()).AddDate(0, 0, -1))
}

// DaysBetween counts calendar days from a to b; negative when b is before a.
func DaysBetween(a, b time.Time) int {
	b = b.In(a.Location())
	from := StartOfDay(a)
	to := StartOfDay(b)

	// Compare at noon UTC so DST transitions never shift the count.
	fromUTC := time.Date(from.Year(), from.Month(), from.Day(), 12, 0, 0, 0, time.UTC)
	toUTC := time.Date(to.Year(), to.Month(), to.Day(), 12, 0, 0, 0, time.UTC)
	return int(toUTC.Sub(fromUTC) / (24 * time.Hour))
}

// Relative returns a short description of how long ago t occurred, at most
// eight characters wide. Timestamps older than 100 days or in the future are
// shown as absolute dates.
func Relative(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	current := now()
	if t.After(current) {
		return absolute(t, current)
	}

	diff := current.Sub(t)
	switch {
	case diff < time.Minute:
		return "now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	case diff < 100*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff/(24*time.Hour)))
	default:
		return absolute(t, current)
	}
}

func absolute(t, current time.Time) string {
	local := t.In(current.Location())
	if local.Year() == current.Year() {
		return local.Format("Jan 2")
	}
	return local.Format("Jan '06")
}

// Ago returns a long-form relative time such as "3 hours ago".
func Ago(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.RelTime(t, now(), "ago", "from now")
}

// Format renders t with a named layout (date, time, datetime, iso) or any Go layout string.
func Format(t time.Time, layout string) string {
	if named, ok := layouts[layout]; ok {
		layout = named
	}
	return t.Format(layout)
}
