package veccursor

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

var _encoder = base64.RawURLEncoding

// Position is the tagged place of a cursor: either a valid index or the ghost
// slot which sits between the last and the first element.
//
// The zero value is the position at index 0.
type Position struct {
	index int
	ghost bool
}

// Ghost returns the ghost position.
func Ghost() Position {
	return Position{ghost: true}
}

// At returns the position of the element at index. An index equal to the
// sequence length is classified as the ghost when a cursor is lent.
func At(index int) Position {
	return Position{index: index}
}

// IsGhost reports whether p denotes no current element.
func (p Position) IsGhost() bool {
	return p.ghost
}

// Index returns the element index, or false for the ghost.
func (p Position) Index() (int, bool) {
	if p.ghost {
		return 0, false
	}

	return p.index, true
}

// String - implements fmt.Stringer.
func (p Position) String() string {
	if p.ghost {
		return "ghost"
	}

	return strconv.Itoa(p.index)
}

// Token encodes the position into an opaque string suitable for API payloads.
// The ghost is encoded as an empty token.
//
// Usage:
//
//	next := cursor.Position().Token()
//	...
//	pos, err := veccursor.DecodePosition(next)
func (p Position) Token() string {
	if p.ghost {
		return ""
	}

	return _encoder.EncodeToString([]byte(strconv.Itoa(p.index)))
}

// DecodePosition attempts to parse a token produced by Position.Token.
// An empty token decodes to the ghost.
func DecodePosition(token string) (Position, error) {
	if len(token) == 0 {
		return Ghost(), nil
	}

	indexBytes, err := _encoder.DecodeString(token)
	if err != nil {
		return Position{}, fmt.Errorf("failed to decode base64 encoded position: %w", ErrMalformedToken)
	}

	index, err := strconv.Atoi(string(indexBytes))
	if err != nil || index < 0 {
		return Position{}, fmt.Errorf("failed to decode position index '%s': %w", indexBytes, ErrMalformedToken)
	}

	return At(index), nil
}

// resolve classifies p against a sequence of the given length and returns the
// raw cursor index it maps to.
func (p Position) resolve(length int) (int, error) {
	if p.ghost {
		return length, nil
	}

	if p.index < 0 || p.index > length {
		return 0, fmt.Errorf("index %d for length %d: %w", p.index, length, ErrPositionOutOfRange)
	}

	return p.index, nil
}

var _ fmt.Stringer = Position{}
