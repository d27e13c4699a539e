package sortedlist

import "errors"

var (
	// ErrInvalidConfiguration is returned by New when an option carries an
	// unsupported value, such as a declared kind that is neither integral nor text.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrUnsupportedKind is returned when a value is neither an integer nor a
	// string and the list has no kind to compare it against.
	ErrUnsupportedKind = errors.New("unsupported kind")

	// ErrTypeMismatch is returned when inserting a value whose kind differs
	// from the kind the list has already established.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrIndexOutOfRange is returned by At for positions outside [0, Size()).
	ErrIndexOutOfRange = errors.New("index out of range")
)
