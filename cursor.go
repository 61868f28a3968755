package veccursor

import (
	"fmt"

	"github.com/samber/lo"
)

// cursor holds the position model shared by Cursor and CursorMut.
//
// At rest index is either a valid element index or exactly the sequence
// length (the ghost). Transitions are decided on the tagged Position first,
// so no branch ever subtracts from a zero index.
type cursor[T any] struct {
	vec   *Vec[T]
	index int

	// snapshot cursors see the sequence only while the write borrow they
	// were taken from is alive.
	snapshot   bool
	generation uint64
}

func (c *cursor[T]) items() []T {
	if c.vec == nil {
		return nil
	}

	if c.snapshot && c.vec.generation != c.generation {
		return nil
	}

	return c.vec.items
}

// IsValid reports whether the cursor points at an element.
func (c *cursor[T]) IsValid() bool {
	return c.index < len(c.items())
}

// Index returns the index of the current element, or false at the ghost.
func (c *cursor[T]) Index() (int, bool) {
	if !c.IsValid() {
		return 0, false
	}

	return c.index, true
}

// Position returns the tagged position of the cursor.
func (c *cursor[T]) Position() Position {
	return lo.Ternary(c.IsValid(), At(c.index), Ghost())
}

// MoveNext moves to the next element. From the last element it enters the
// ghost, from the ghost it moves to the first element.
func (c *cursor[T]) MoveNext() {
	if !c.IsValid() {
		c.index = 0
		return
	}

	c.index++
}

// MovePrev moves to the previous element. From the first element it enters
// the ghost, from the ghost it moves to the last element. On an empty
// sequence the cursor stays at the ghost.
func (c *cursor[T]) MovePrev() {
	c.index = c.prevIndex()
}

// prevIndex is the slot preceding the cursor on the circular arrangement of
// len+1 slots. The ghost is reported as len.
func (c *cursor[T]) prevIndex() int {
	length := len(c.items())

	index, ok := c.Position().Index()
	switch {
	case !ok && length == 0:
		return 0
	case !ok:
		return length - 1
	case index == 0:
		return length
	default:
		return index - 1
	}
}

// nextIndex is the slot following the cursor. It may be len (the ghost).
func (c *cursor[T]) nextIndex() int {
	index, ok := c.Position().Index()
	if !ok {
		return 0
	}

	return index + 1
}

// at returns the address of the element at index, or nil when out of range.
func (c *cursor[T]) at(index int) *T {
	items := c.items()
	if index < 0 || index >= len(items) {
		return nil
	}

	return &items[index]
}

func (c *cursor[T]) format(name string) string {
	index, ok := c.Index()

	return fmt.Sprintf("%s(%v, %s)", name, c.items(), lo.Ternary(ok, fmt.Sprint(index), "none"))
}

// Cursor is a read cursor over a Vec. Any number of Cursor values may observe
// the same Vec as long as no CursorMut is alive.
type Cursor[T any] struct {
	cursor[T]
	lent bool
}

// Current returns the element at the cursor, or false at the ghost.
func (c *Cursor[T]) Current() (T, bool) {
	return deref(c.at(c.index))
}

// PeekNext returns the element after the cursor without moving. At the ghost
// this is the first element.
func (c *Cursor[T]) PeekNext() (T, bool) {
	return deref(c.at(c.nextIndex()))
}

// PeekPrev returns the element before the cursor without moving. At the ghost
// this is the last element; at the first element there is nothing before it.
func (c *Cursor[T]) PeekPrev() (T, bool) {
	return deref(c.at(c.prevIndex()))
}

// Release returns the borrow to the Vec. A released cursor behaves as a
// cursor over an empty sequence. Calling Release more than once is a no-op.
func (c *Cursor[T]) Release() {
	if c == nil || c.vec == nil {
		return
	}

	if c.lent {
		c.vec.readers--
		c.lent = false
	}

	c.vec = nil
	c.index = 0
}

// String - implements fmt.Stringer.
func (c *Cursor[T]) String() string {
	return c.format("Cursor")
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		return lo.Empty[T](), false
	}

	return *p, true
}

var _ fmt.Stringer = (*Cursor[int])(nil)
