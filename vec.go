package veccursor

import (
	"fmt"
	"slices"
)

// Vec owns a growable sequence and lends cursors over it: either one
// CursorMut or any number of Cursor values, never both at once. Conflicts are
// rejected when a cursor is requested.
//
// Vec is not safe for concurrent use.
type Vec[T any] struct {
	items   []T
	readers int
	writer  bool

	// generation counts ended write borrows. Snapshots taken with
	// CursorMut.AsCursor are only readable within the generation they were
	// taken in.
	generation uint64
}

// NewVec copies items into a new Vec.
func NewVec[T any](items ...T) *Vec[T] {
	return &Vec[T]{
		items: slices.Clone(items),
	}
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int {
	if v == nil {
		return 0
	}

	return len(v.items)
}

// Items returns a copy of the elements.
func (v *Vec[T]) Items() []T {
	if v == nil {
		return nil
	}

	return slices.Clone(v.items)
}

// Append adds items to the end of the sequence. It fails while any cursor is
// lent, since lent cursors rely on the length they observe.
func (v *Vec[T]) Append(items ...T) error {
	if v == nil {
		return fmt.Errorf("cannot append: %w", ErrNilVec)
	}

	if v.isLent() {
		return fmt.Errorf("cannot append: %w", ErrBorrowed)
	}

	v.items = append(v.items, items...)

	return nil
}

// Cursor lends a read cursor starting at pos. Any number of read cursors may
// be lent at the same time, but not while a CursorMut is alive.
func (v *Vec[T]) Cursor(pos Position) (*Cursor[T], error) {
	if v == nil {
		return nil, fmt.Errorf("cannot lend cursor: %w", ErrNilVec)
	}

	if v.writer {
		return nil, fmt.Errorf("cannot lend cursor: %w", ErrBorrowed)
	}

	index, err := pos.resolve(len(v.items))
	if err != nil {
		return nil, fmt.Errorf("cannot lend cursor: %w", err)
	}

	v.readers++

	return &Cursor[T]{
		cursor: cursor[T]{vec: v, index: index},
		lent:   true,
	}, nil
}

// CursorMut lends the write cursor starting at pos. It requires that no other
// cursor is alive.
func (v *Vec[T]) CursorMut(pos Position) (*CursorMut[T], error) {
	if v == nil {
		return nil, fmt.Errorf("cannot lend cursor: %w", ErrNilVec)
	}

	if v.isLent() {
		return nil, fmt.Errorf("cannot lend write cursor: %w", ErrBorrowed)
	}

	index, err := pos.resolve(len(v.items))
	if err != nil {
		return nil, fmt.Errorf("cannot lend write cursor: %w", err)
	}

	v.writer = true

	return &CursorMut[T]{
		cursor: cursor[T]{vec: v, index: index},
	}, nil
}

func (v *Vec[T]) isLent() bool {
	return v.writer || v.readers > 0
}
