package pagebar

import (
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// RawPageQuery is intended for API payloads. For proper code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawPageQuery `json:",inline"`
//	}
type RawPageQuery struct {
	// Page - 1-based number of the requested page. Zero means the first page.
	Page int `json:"page"`
	// Limit - maximum number of records per page.
	Limit int `json:"limit"`
}

// Decode converts RawPageQuery into *PageQuery, normalizing Limit and
// validating Page. Returns *PageQuery with WithSubstitutedSort applied.
func (r RawPageQuery) Decode(sort ...SortField) (*PageQuery, error) {
	page := lo.Ternary(r.Page == 0, 1, r.Page)
	if page < 1 {
		return nil, fmt.Errorf("cannot decode page query: page %d: %w", r.Page, ErrInvalidPage)
	}

	return NewPageQuery().
		WithPage(page).
		WithLimit(r.Limit).
		WithSubstitutedSort(sort...), nil
}

// PageQuery applies one page of a numbered page selector to a dataset as
// LIMIT/OFFSET: page N with limit L reads rows (N-1)*L ... N*L-1.
type PageQuery struct {
	page  int
	limit int
	sort  Sort
}

// NewPageQuery returns a query for the first page with DefaultLimit rows.
func NewPageQuery() *PageQuery {
	return &PageQuery{page: 1, limit: DefaultLimit}
}

// WithPage sets the 1-based page number.
func (q *PageQuery) WithPage(page int) *PageQuery {
	if q == nil {
		q = NewPageQuery()
	}

	q.page = page

	return q
}

// WithUnlimited returns every record on a single page.
func (q *PageQuery) WithUnlimited() *PageQuery {
	if q == nil {
		q = NewPageQuery()
	}

	q.limit = NoLimit

	return q
}

// WithLimit sets the maximum number of returned records.
//
// IMPORTANT:
// If the limit is not NoLimit, NormalizeLimit will be applied.
func (q *PageQuery) WithLimit(limit int) *PageQuery {
	if q == nil {
		q = NewPageQuery()
	}

	if limit == NoLimit {
		return q.WithUnlimited()
	}
	q.limit = NormalizeLimit(limit)

	return q
}

// WithSubstitutedSort resets previous sort fields and applies the provided ones.
func (q *PageQuery) WithSubstitutedSort(fields ...SortField) *PageQuery {
	if q == nil {
		q = NewPageQuery()
	}

	q.sort = nil

	return q.WithSort(fields...)
}

// WithSort appends sort fields. A field on an already sorted column replaces
// the earlier one and moves to the end.
func (q *PageQuery) WithSort(fields ...SortField) *PageQuery {
	if q == nil {
		q = NewPageQuery()
	}

	q.sort = q.sort.with(fields...)

	return q
}

// Paginate applies sort, offset and limit to the dataset. Returns an error if
// the query is invalid.
func (q *PageQuery) Paginate(db *gorm.DB) (*gorm.DB, error) {
	if err := q.validate(); err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	db = q.sort.Apply(db)
	if q.limit == NoLimit {
		return db, nil
	}

	return db.Offset(q.GetOffset()).Limit(q.limit), nil
}

// GetPage returns the 1-based page number.
func (q *PageQuery) GetPage() int {
	if q == nil {
		return 1
	}

	return q.page
}

// GetLimit returns the limit as it is stored. NoLimit means no limit.
func (q *PageQuery) GetLimit() int {
	if q == nil {
		return DefaultLimit
	}

	return q.limit
}

// GetOffset returns the number of records preceding the page.
func (q *PageQuery) GetOffset() int {
	if q.IsUnlimited() {
		return 0
	}

	return (q.GetPage() - 1) * q.GetLimit()
}

// GetSort returns the sort that will be applied to the dataset.
func (q *PageQuery) GetSort() Sort {
	if q == nil {
		return nil
	}

	return q.sort
}

// IsUnlimited returns true if the limit equals NoLimit.
func (q *PageQuery) IsUnlimited() bool {
	return q != nil && q.limit == NoLimit
}

func (q *PageQuery) validate() error {
	if q == nil {
		return fmt.Errorf("page query is nil")
	}

	if q.page < 1 {
		return fmt.Errorf("page %d: %w", q.page, ErrInvalidPage)
	}

	if q.limit == NoLimit && q.page != 1 {
		return fmt.Errorf("unlimited query has a single page, got page %d: %w", q.page, ErrInvalidPage)
	}

	return q.sort.validate()
}

// TotalPages returns the number of pages needed for count records with limit
// records per page. There is always at least one page, so an empty dataset
// still has page 1.
func TotalPages(count int64, limit int) int {
	if limit == NoLimit || limit <= 0 || count <= 0 {
		return 1
	}

	return int((count + int64(limit) - 1) / int64(limit))
}
