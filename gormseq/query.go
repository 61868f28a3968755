package gormseq

import (
	"context"
	"fmt"
	"slices"

	"github.com/Alp4ka/veccursor"
	"gorm.io/gorm"
)

// Query describes which rows Load turns into a sequence and in which order.
//
// Cursor positions are plain indices, so the ordering must be deterministic:
// include at least one unique column.
type Query struct {
	limit int
	sort  Orderings
}

func NewQuery() *Query {
	return &Query{limit: veccursor.NoLimit}
}

// WithLimit caps the number of loaded rows. NoLimit loads every row, any other
// value is normalized with veccursor.NormalizeLimit.
func (q *Query) WithLimit(limit int) *Query {
	if q == nil {
		q = NewQuery()
	}

	if limit == veccursor.NoLimit {
		q.limit = veccursor.NoLimit
		return q
	}
	q.limit = veccursor.NormalizeLimit(limit)

	return q
}

// WithSubstitutedSort resets previous orderings and applies the provided ones.
func (q *Query) WithSubstitutedSort(orderBy ...OrderBy) *Query {
	if q == nil {
		q = NewQuery()
	}

	q.sort = nil

	return q.WithSort(orderBy...)
}

// WithSort appends orderings. A column that is already present moves to the
// end with the new direction.
func (q *Query) WithSort(orderBy ...OrderBy) *Query {
	if q == nil {
		q = NewQuery()
	}

	for _, o := range orderBy {
		q.sort = slices.DeleteFunc(q.sort, func(existing OrderBy) bool {
			return existing.Column == o.Column
		})
		q.sort = append(q.sort, o)
	}

	return q
}

// GetSort returns orderings that will be applied to the query.
func (q *Query) GetSort() Orderings {
	if q == nil {
		return nil
	}

	return q.sort
}

// GetLimit returns the row limit; NoLimit means unbounded.
func (q *Query) GetLimit() int {
	if q == nil {
		return veccursor.NoLimit
	}

	return q.limit
}

func (q *Query) validate() error {
	if q == nil {
		return fmt.Errorf("query is nil")
	}

	return q.sort.validate()
}

// Apply applies ordering and limit to a gorm query.
func (q *Query) Apply(db *gorm.DB) (*gorm.DB, error) {
	if err := q.validate(); err != nil {
		return nil, fmt.Errorf("cannot apply query: %w", err)
	}

	db = q.sort.Apply(db)
	if q.limit != veccursor.NoLimit {
		db = db.Limit(q.limit)
	}

	return db, nil
}

// Load runs db with the ordering and limit of q and returns the rows as a Vec.
//
// Usage:
//
//	v, err := gormseq.Load[Track](ctx, db.Where("playlist_id = ?", id), gormseq.NewQuery().
//		WithSort(gormseq.OrderBy{Column: "position", Direction: gormseq.DirectionASC}))
func Load[T any](ctx context.Context, db *gorm.DB, q *Query) (*veccursor.Vec[T], error) {
	db, err := q.Apply(db.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("cannot load sequence: %w", err)
	}

	var rows []T
	if err = db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("cannot load sequence: %w", err)
	}

	return veccursor.NewVec(rows...), nil
}
