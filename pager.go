package veccursor

import (
	"fmt"

	"github.com/samber/lo"
)

// RawPager is intended for API payloads. For proper code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawPager `json:",inline"`
//	}
type RawPager struct {
	// Limit - maximum number of elements to return in the response.
	Limit int `json:"limit"`
	// StartToken - position token obtained via Position.Token().
	// If empty, the first page with Limit elements is returned.
	StartToken string `json:"startToken"`
}

// Decode converts RawPager into *Pager, normalizing Limit and validating
// StartToken.
func (p RawPager) Decode() (*Pager, error) {
	return DecodePager(p.Limit, p.StartToken)
}

// PaginationResult is a page of elements read from a Vec.
type PaginationResult[T any] struct {
	// Items result elements.
	Items []T
	// Total number of elements in the sequence.
	Total int
	// AppliedLimit effective limit used for the page.
	AppliedLimit int
	// NextPageToken token for the next page. Empty once the sequence is exhausted.
	NextPageToken string
}

// Pager walks a Vec page by page with a read cursor. The start position is
// the first element of the page; the ghost starts from the first element of
// the sequence.
type Pager struct {
	limit int
	start Position
}

func NewPager() *Pager {
	return &Pager{
		limit: DefaultLimit,
		start: Ghost(),
	}
}

// DecodePager decodes a position token into *Pager.
func DecodePager(limit int, rawStartToken string) (*Pager, error) {
	start, err := DecodePosition(rawStartToken)
	if err != nil {
		return nil, err
	}

	return NewPager().WithStart(start).WithLimit(limit), nil
}

// WithUnlimited allows returning every remaining element.
func (p *Pager) WithUnlimited() *Pager {
	if p == nil {
		p = NewPager()
	}

	p.limit = NoLimit

	return p
}

// WithLimit sets the maximum number of returned elements.
// If the limit is not NoLimit, NormalizeLimit will be applied.
func (p *Pager) WithLimit(limit int) *Pager {
	if p == nil {
		p = NewPager()
	}

	if limit == NoLimit {
		return p.WithUnlimited()
	}
	p.limit = NormalizeLimit(limit)

	return p
}

// WithStart sets the position of the first element of the page.
func (p *Pager) WithStart(start Position) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.start = start

	return p
}

// GetLimit returns the limit as it is stored in Pager.
func (p *Pager) GetLimit() int {
	if p == nil {
		return DefaultLimit
	}

	return p.limit
}

// GetStart returns the start position as it is stored in Pager.
func (p *Pager) GetStart() Position {
	if p == nil {
		return Ghost()
	}

	return p.start
}

// IsUnlimited returns true if the limit equals NoLimit.
func (p *Pager) IsUnlimited() bool {
	return p.GetLimit() == NoLimit
}

// Paginate reads one page from v. It lends a read cursor for the duration of
// the call, so it fails while a CursorMut over v is alive.
func Paginate[T any](v *Vec[T], p *Pager) (PaginationResult[T], error) {
	c, err := v.Cursor(p.GetStart())
	if err != nil {
		return PaginationResult[T]{}, fmt.Errorf("cannot paginate: %w", err)
	}
	defer c.Release()

	if !c.IsValid() {
		c.MoveNext()
	}

	limit := p.GetLimit()
	items := make([]T, 0, lo.Ternary(p.IsUnlimited(), v.Len(), min(limit, v.Len())))
	for c.IsValid() && (p.IsUnlimited() || len(items) < limit) {
		item, _ := c.Current()
		items = append(items, item)
		c.MoveNext()
	}

	return PaginationResult[T]{
		Items:         items,
		Total:         v.Len(),
		AppliedLimit:  limit,
		NextPageToken: c.Position().Token(),
	}, nil
}
