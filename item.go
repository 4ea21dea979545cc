package pagebar

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ItemKind tells a single page slot from an overflow group slot.
type ItemKind uint8

const (
	KindSingle ItemKind = iota + 1
	KindGroup
)

func (k ItemKind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Item is one slot of a page selector: either a single page or a group of
// pages collapsed behind an overflow trigger.
//
// A group is stored either as a span (first..last, never materialized) or as
// an explicit ascending list owned by the item. The zero Item is invalid.
type Item struct {
	kind ItemKind

	// page is the page number of a single item.
	page int

	// first and last bound a span group. The span is empty when last < first.
	first int
	last  int

	// pages holds the members of an explicit group, sorted ascending. nil for spans.
	pages []int
}

// Single returns an item showing page on its own.
func Single(page int) Item {
	return Item{kind: KindSingle, page: page}
}

// Span returns a group holding pages first..last inclusive. The group is empty
// when last < first; such a group is still a valid slot.
func Span(first, last int) Item {
	return Item{kind: KindGroup, first: first, last: last}
}

// Group returns a group holding the given pages in ascending order. The
// argument is copied before sorting, the caller's slice is left untouched.
func Group(pages ...int) Item {
	sorted := slices.Clone(pages)
	slices.Sort(sorted)
	if sorted == nil {
		sorted = []int{}
	}

	return Item{kind: KindGroup, pages: sorted}
}

func (i Item) Kind() ItemKind {
	return i.kind
}

func (i Item) IsGroup() bool {
	return i.kind == KindGroup
}

// Page returns the page number of a single item and 0 for groups.
func (i Item) Page() int {
	if i.kind != KindSingle {
		return 0
	}

	return i.page
}

// Len returns the number of pages the item covers.
func (i Item) Len() int {
	switch {
	case i.kind == KindSingle:
		return 1
	case i.kind != KindGroup:
		return 0
	case i.pages != nil:
		return len(i.pages)
	default:
		return max(i.last-i.first+1, 0)
	}
}

// Empty reports whether the item covers no pages. Only groups can be empty.
func (i Item) Empty() bool {
	return i.Len() == 0
}

// At returns the idx-th page of the item in ascending order. The second
// return value is false when idx is out of range.
func (i Item) At(idx int) (int, bool) {
	if idx < 0 || idx >= i.Len() {
		return 0, false
	}

	switch {
	case i.kind == KindSingle:
		return i.page, true
	case i.pages != nil:
		return i.pages[idx], true
	default:
		return i.first + idx, true
	}
}

// Contains reports whether page is covered by the item.
func (i Item) Contains(page int) bool {
	switch {
	case i.kind == KindSingle:
		return i.page == page
	case i.kind != KindGroup:
		return false
	case i.pages != nil:
		_, found := slices.BinarySearch(i.pages, page)
		return found
	default:
		return page >= i.first && page <= i.last
	}
}

// Pages returns the pages covered by the item as a new ascending slice.
// Spans are materialized here, so prefer Len and At for large groups.
func (i Item) Pages() []int {
	switch {
	case i.kind == KindSingle:
		return []int{i.page}
	case i.pages != nil:
		return slices.Clone(i.pages)
	default:
		return lo.RangeFrom(i.first, i.Len())
	}
}

// String - implements fmt.Stringer. Singles print as "7", spans as "[5..46]",
// explicit groups as "[2 3 9]" and empty groups as "[]".
func (i Item) String() string {
	switch {
	case i.kind == KindSingle:
		return strconv.Itoa(i.page)
	case i.kind != KindGroup:
		return "<invalid>"
	case i.Empty():
		return "[]"
	case i.pages != nil:
		return "[" + strings.Join(lo.Map(i.pages, func(p int, _ int) string { return strconv.Itoa(p) }), " ") + "]"
	default:
		return fmt.Sprintf("[%d..%d]", i.first, i.last)
	}
}

// Range is the ordered list of slots of one rendering of a page selector.
// It is derived from (total, current page) and never mutated afterwards.
type Range []Item

// Flatten expands every group and returns all covered pages in order.
func (r Range) Flatten() []int {
	return lo.FlatMap(r, func(item Item, _ int) []int {
		return item.Pages()
	})
}

// Groups returns the group slots of the range, empty ones included.
func (r Range) Groups() []Item {
	return lo.Filter(r, func(item Item, _ int) bool {
		return item.IsGroup()
	})
}

// ItemOf returns the index of the slot covering page, or -1.
func (r Range) ItemOf(page int) int {
	return slices.IndexFunc(r, func(item Item) bool {
		return item.Contains(page)
	})
}

func (r Range) String() string {
	return "[" + strings.Join(lo.Map(r, func(item Item, _ int) string { return item.String() }), " ") + "]"
}

var _ fmt.Stringer = Item{}
