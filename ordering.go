package pagebar

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction defines the sort direction of a paged dataset.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (d Direction) Valid() bool {
	return d == DirectionASC || d == DirectionDESC
}

type (
	// Sort is a multi-column ordering applied before LIMIT/OFFSET. OFFSET
	// paging is only stable when the last field is a unique column.
	Sort      []SortField
	SortField struct {
		Column    string
		Direction Direction
	}

	ColumnAlias = string

	// ColumnMapping maps external column aliases to the column names used in
	// the query. Key is an external alias, value is an internal column name.
	ColumnMapping = map[ColumnAlias]string
)

var _allowedColumnSymbols = append([]rune("_.`\""), lo.AlphanumericCharset...)

func (f SortField) validate() error {
	if !f.Direction.Valid() {
		return fmt.Errorf("invalid sort direction '%s'", f.Direction)
	}

	if f.Column == "" {
		return fmt.Errorf("empty sort column")
	}

	// Column names end up in raw SQL, only allow identifier characters.
	if !lo.Every(_allowedColumnSymbols, []rune(f.Column)) {
		return fmt.Errorf("sort column name contains forbidden symbols '%s'", f.Column)
	}

	return nil
}

// ToSQL converts the sort to "<column_1> <direction_1>, <column_2> <direction_2>".
func (s Sort) ToSQL() string {
	return strings.Join(lo.Map(s, func(f SortField, _ int) string {
		return f.Column + " " + string(f.Direction)
	}), ", ")
}

// Apply applies the sort to a gorm query.
func (s Sort) Apply(db *gorm.DB) *gorm.DB {
	if len(s) == 0 {
		return db
	}

	return db.Order(s.ToSQL())
}

// with appends fields, dropping an earlier field on the same column.
func (s Sort) with(fields ...SortField) Sort {
	s = slices.Clone(s)
	for _, f := range fields {
		s = slices.DeleteFunc(s, func(existing SortField) bool {
			return existing.Column == f.Column
		})
		s = append(s, f)
	}

	return s
}

func (s Sort) validate() error {
	if len(s) == 0 {
		return fmt.Errorf("empty sort list")
	}

	for _, f := range s {
		if err := f.validate(); err != nil {
			return err
		}
	}

	return nil
}

// ParseSort builds a Sort from strings of the form "alias asc|desc". Aliases
// are resolved via columnMapping.
func ParseSort(rawFields []string, columnMapping ColumnMapping) (Sort, error) {
	ret := make(Sort, 0, len(rawFields))

	for _, raw := range rawFields {
		parts := strings.Fields(raw)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid sort string format '%s'", raw)
		}

		column, ok := columnMapping[parts[0]]
		if !ok || column == "" {
			aliases := lo.Keys(columnMapping)
			slices.Sort(aliases)

			return nil, fmt.Errorf("unknown sort column '%s', expected one of [%s]", parts[0], strings.Join(aliases, ", "))
		}

		field := SortField{
			Column:    column,
			Direction: Direction(strings.ToUpper(parts[1])),
		}
		if err := field.validate(); err != nil {
			return nil, err
		}

		ret = append(ret, field)
	}

	return ret, nil
}
