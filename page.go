package pagebar

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Page is one page of a dataset together with what a page selector needs to
// render around it.
type Page[T any] struct {
	// Items result elements.
	Items []T
	// TotalItems number of elements in the whole dataset.
	TotalItems int64
	// TotalPages number of pages, at least 1.
	TotalPages int
	// CurrentPage 1-based number of this page.
	CurrentPage int
	// AppliedLimit effective limit used for the query.
	AppliedLimit int
}

// Controller returns a navigation controller positioned on this page.
func (p *Page[T]) Controller() (*Controller, error) {
	if p == nil {
		return nil, fmt.Errorf("page is nil")
	}

	return NewController(p.TotalPages, p.CurrentPage)
}

// Range returns the page selector slots for this page.
func (p *Page[T]) Range() (Range, error) {
	if p == nil {
		return nil, fmt.Errorf("page is nil")
	}

	return ComputeRange(p.TotalPages, p.CurrentPage)
}

// CountPages counts the records of the dataset and returns how many pages of
// limit records they fill.
func CountPages(ctx context.Context, db *gorm.DB, limit int) (int, error) {
	count, err := countRecords(ctx, db)
	if err != nil {
		return 0, err
	}

	return TotalPages(count, limit), nil
}

// FetchPage counts the dataset and reads the page requested by q. Returns an
// error wrapping ErrInvalidPage when the page lies past the last one.
//
// db must not carry ordering or limits of its own, q applies them.
func FetchPage[T any](ctx context.Context, db *gorm.DB, q *PageQuery) (*Page[T], error) {
	if err := q.validate(); err != nil {
		return nil, fmt.Errorf("cannot fetch page: %w", err)
	}

	count, err := countRecords(ctx, db)
	if err != nil {
		return nil, err
	}

	totalPages := TotalPages(count, q.GetLimit())
	if err = checkPage(q.GetPage(), totalPages); err != nil {
		return nil, fmt.Errorf("cannot fetch page: %w", err)
	}

	paged, err := q.Paginate(db.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	items := make([]T, 0)
	if err = paged.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("cannot fetch page %d: %w", q.GetPage(), err)
	}

	return &Page[T]{
		Items:        items,
		TotalItems:   count,
		TotalPages:   totalPages,
		CurrentPage:  q.GetPage(),
		AppliedLimit: q.GetLimit(),
	}, nil
}

func countRecords(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("cannot count records: %w", err)
	}

	return count, nil
}
