package veccursor

import (
	"fmt"
	"slices"
)

// CursorMut is the write cursor over a Vec. While it is alive no other cursor
// can be lent from the same Vec.
//
// Every structural edit repositions the cursor so that the current element
// stays meaningful:
//   - edits after the cursor keep the current element in place;
//   - edits before the cursor shift the index to follow the current element;
//   - edits made from the ghost leave the cursor at the ghost.
type CursorMut[T any] struct {
	cursor[T]
}

// Current returns the address of the element at the cursor, or nil at the
// ghost. The pointer is valid until the next structural edit.
func (c *CursorMut[T]) Current() *T {
	return c.at(c.index)
}

// PeekNext returns the address of the element after the cursor, or nil.
func (c *CursorMut[T]) PeekNext() *T {
	return c.at(c.nextIndex())
}

// PeekPrev returns the address of the element before the cursor, or nil.
func (c *CursorMut[T]) PeekPrev() *T {
	return c.at(c.prevIndex())
}

// AsCursor returns a read cursor over the same sequence at the current
// position. It is a snapshot: later edits through c do not move it, and once c
// is released it reads as a released cursor.
func (c *CursorMut[T]) AsCursor() *Cursor[T] {
	snapshot := cursor[T]{vec: c.vec, index: c.index, snapshot: true}
	if c.vec != nil {
		snapshot.generation = c.vec.generation
	}

	return &Cursor[T]{cursor: snapshot}
}

// InsertAfter inserts item after the current element. At the ghost the item
// becomes the first element and the cursor stays at the ghost.
func (c *CursorMut[T]) InsertAfter(item T) {
	c.SpliceAfter([]T{item})
}

// InsertBefore inserts item in front of the cursor and shifts the index so
// the cursor keeps pointing at the same element.
//
// The insertion point is one slot before the preceding element: index-1 for
// a valid index above zero, 0 for the first element and for an empty
// sequence, len-1 from the ghost of a non-empty sequence.
func (c *CursorMut[T]) InsertBefore(item T) {
	if c.vec == nil {
		return
	}

	length := len(c.vec.items)

	at := 0
	index, ok := c.Position().Index()
	switch {
	case !ok && length > 0:
		at = length - 1
	case ok && index > 0:
		at = index - 1
	}

	c.vec.items = slices.Insert(c.vec.items, at, item)
	c.index++
}

// RemoveCurrent removes and returns the current element. The index does not
// change, so the cursor moves onto the former next element, or the ghost when
// the last element was removed. At the ghost nothing is removed.
func (c *CursorMut[T]) RemoveCurrent() (T, bool) {
	removed, ok := deref(c.Current())
	if !ok {
		return removed, false
	}

	c.vec.items = slices.Delete(c.vec.items, c.index, c.index+1)

	return removed, true
}

// SpliceAfter inserts items after the current element, keeping their order.
// At the ghost they are placed at the front and the cursor stays at the ghost.
// An empty items is a no-op.
func (c *CursorMut[T]) SpliceAfter(items []T) {
	if len(items) == 0 || c.vec == nil {
		return
	}

	wasGhost := !c.IsValid()
	c.vec.items = slices.Insert(c.vec.items, c.nextIndex(), items...)

	if wasGhost {
		c.index = len(c.vec.items)
	}
}

// SpliceBefore inserts items right in front of the cursor and shifts the
// index past them. At the ghost they are appended. An empty items is a no-op.
func (c *CursorMut[T]) SpliceBefore(items []T) {
	if len(items) == 0 || c.vec == nil {
		return
	}

	at := c.settle(c.index)
	c.vec.items = slices.Insert(c.vec.items, at, items...)
	c.index = at + len(items)
}

// SplitAfter removes and returns everything after the current element. At the
// ghost the whole sequence is taken and the cursor stays at the (now empty)
// ghost.
func (c *CursorMut[T]) SplitAfter() []T {
	if c.vec == nil {
		return nil
	}

	wasGhost := !c.IsValid()
	at := c.nextIndex()

	tail := slices.Clone(c.vec.items[at:])
	clear(c.vec.items[at:])
	c.vec.items = c.vec.items[:at]

	if wasGhost {
		c.index = len(c.vec.items)
	}

	return tail
}

// SplitBefore keeps everything from the cursor on, including the current
// element, and returns what was in front of it. The cursor moves to index 0.
func (c *CursorMut[T]) SplitBefore() []T {
	if c.vec == nil {
		return nil
	}

	at := c.settle(c.index)

	head := slices.Clone(c.vec.items[:at])
	c.vec.items = slices.Delete(c.vec.items, 0, at)
	c.index = 0

	return head
}

// Release returns the borrow to the Vec. A released cursor behaves as a
// cursor over an empty sequence and discards edits. Calling Release more than
// once is a no-op.
func (c *CursorMut[T]) Release() {
	if c == nil || c.vec == nil {
		return
	}

	c.vec.writer = false
	c.vec.generation++
	c.vec = nil
	c.index = 0
}

// String - implements fmt.Stringer.
func (c *CursorMut[T]) String() string {
	return c.format("CursorMut")
}

// settle clamps index to the sequence length.
func (c *CursorMut[T]) settle(index int) int {
	return min(index, len(c.items()))
}

var _ fmt.Stringer = (*CursorMut[int])(nil)
