package gormseq

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction defines the order in which rows become sequence elements.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (d Direction) Valid() bool {
	return d == DirectionASC || d == DirectionDESC
}

type (
	Orderings []OrderBy
	OrderBy   struct {
		Column    string
		Direction Direction
	}

	ColumnAlias = string

	// ColumnMapping maps external column aliases to the column names used in
	// ORDER BY. Key is an external alias, value is an internal column name.
	ColumnMapping = map[ColumnAlias]string
)

var _columnNameCharset = append([]rune("_.'`\""), lo.AlphanumericCharset...)

func (o OrderBy) validate() error {
	if !o.Direction.Valid() {
		return fmt.Errorf("invalid ordering direction '%s'", o.Direction)
	}

	// Column names end up in raw SQL, so only a safe charset is accepted.
	if o.Column == "" || !lo.Every(_columnNameCharset, []rune(o.Column)) {
		return fmt.Errorf("invalid ordering column name '%s'", o.Column)
	}

	return nil
}

// ToSQLSlice renders every ordering as "<column> <direction>".
func (o Orderings) ToSQLSlice() []string {
	return lo.Map(o, func(ordering OrderBy, _ int) string {
		return fmt.Sprintf("%s %s", ordering.Column, ordering.Direction)
	})
}

// ToSQL renders the orderings as the body of an ORDER BY clause.
//
// Example: for [{"a", "ASC"}, {"b", "DESC"}] returns "a ASC, b DESC".
func (o Orderings) ToSQL() string {
	return strings.Join(o.ToSQLSlice(), ", ")
}

// Apply applies the ordering to a gorm query.
func (o Orderings) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(o.ToSQL())
}

func (o Orderings) validate() error {
	if len(o) == 0 {
		return fmt.Errorf("empty ordering list")
	}

	for _, ordering := range o {
		if err := ordering.validate(); err != nil {
			return err
		}
	}

	return nil
}

// ParseSort builds Orderings from strings of the form "alias [asc|desc]".
// A missing direction means ascending. Aliases are resolved through
// columnMapping; an unknown alias is reported together with the closest known
// one.
func ParseSort(rawOrderings []string, columnMapping ColumnMapping) (Orderings, error) {
	ret := make(Orderings, 0, len(rawOrderings))
	aliases := lo.Keys(columnMapping)

	for _, raw := range rawOrderings {
		fields := strings.Fields(raw)
		if len(fields) == 0 || len(fields) > 2 {
			return nil, fmt.Errorf("invalid ordering string format '%s'", raw)
		}

		direction := DirectionASC
		if len(fields) == 2 {
			direction = Direction(strings.ToUpper(fields[1]))
		}

		column, ok := columnMapping[fields[0]]
		if !ok || column == "" {
			return nil, fmt.Errorf("unknown column alias '%s', closest: '%s'", fields[0], closestAlias(fields[0], aliases))
		}

		ordering := OrderBy{Column: column, Direction: direction}
		if err := ordering.validate(); err != nil {
			return nil, err
		}

		ret = append(ret, ordering)
	}

	return ret, nil
}

func closestAlias(input ColumnAlias, known []ColumnAlias) ColumnAlias {
	minDist := math.MaxInt
	closest := ""

	for _, alias := range known {
		if dist := levenshtein([]rune(alias), []rune(input)); dist < minDist ||
			(dist == minDist && alias < closest) {
			minDist = dist
			closest = alias
		}
	}

	return closest
}
