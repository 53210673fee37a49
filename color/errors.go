package color

import "errors"

var (
	// ErrPrecondition is returned when an argument lies outside its documented range.
	ErrPrecondition = errors.New("precondition violation")

	// ErrFormat is returned when a hex string cannot be parsed.
	ErrFormat = errors.New("invalid color format")
)
