package veccursor

import "errors"

var (
	// ErrBorrowed is returned when a cursor cannot be lent because the sequence
	// is already lent in a conflicting mode: a write cursor excludes every other
	// cursor, a read cursor excludes a write cursor.
	ErrBorrowed = errors.New("sequence is already borrowed")

	// ErrPositionOutOfRange is returned when a starting position is neither a
	// valid index nor exactly the sequence length.
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrMalformedToken is returned by DecodePosition for tokens that were not
	// produced by Position.Token.
	ErrMalformedToken = errors.New("malformed position token")

	// ErrNilVec is returned when a cursor is requested from, or items are
	// appended to, a nil *Vec.
	ErrNilVec = errors.New("vec is nil")
)
