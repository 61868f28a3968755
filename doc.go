// Package veccursor provides positional cursors over an owned, growable
// sequence.
//
// Overview
//
// A Vec owns its elements and lends cursors over them:
//   - Cursor: a read cursor. Any number of them may be alive at once.
//   - CursorMut: the write cursor. It excludes every other cursor and adds
//     structural edits (insert, remove, splice, split).
//
// Key concepts
//   - Position: either a valid element index or the ghost, a single slot that
//     sits between the last and the first element. Navigation is circular
//     over len+1 slots: ... -> len-1 -> ghost -> 0 -> 1 -> ...
//   - Structural edits reposition the cursor so the current element stays
//     meaningful; see CursorMut for the rules.
//   - Pager walks a Vec page by page and hands out position tokens to resume.
//
// Lending is checked when a cursor is requested, not with locks, and a Vec is
// not safe for concurrent use. Release a cursor to return its borrow.
package veccursor
