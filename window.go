package pagebar

import (
	"math"

	"github.com/samber/lo"
)

// VirtualItem describes one rendered row of a windowed list.
type VirtualItem struct {
	// Index is the position of the row in the source list.
	Index int
	// Offset is the distance from the top of the content to the row.
	Offset float64
	// Extent is the size of the row.
	Extent float64
}

// Window is the result of windowing a list: the rows to render and the size
// of the whole scrollable content.
type Window struct {
	Items       []VirtualItem
	TotalExtent float64
}

// ComputeWindow returns the rows of a list of itemCount equally sized rows
// that intersect the viewport [scrollOffset, scrollOffset+viewportExtent).
//
// Row i occupies [i*itemExtent, (i+1)*itemExtent). No rows beyond the
// intersecting ones are returned. A non-positive or non-finite itemExtent
// yields an empty window. A non-positive viewportExtent, a NaN argument or a
// viewport that misses the content entirely yields no rows.
func ComputeWindow(itemCount int, itemExtent, viewportExtent, scrollOffset float64) Window {
	if itemCount <= 0 || !(itemExtent > 0) || math.IsInf(itemExtent, 1) {
		return Window{Items: []VirtualItem{}}
	}

	ret := Window{
		Items:       []VirtualItem{},
		TotalExtent: float64(itemCount) * itemExtent,
	}
	if !(viewportExtent > 0) || math.IsNaN(scrollOffset) {
		return ret
	}

	end := scrollOffset + viewportExtent
	if math.IsNaN(end) || scrollOffset >= ret.TotalExtent || end <= 0 {
		return ret
	}

	// Both bounds are clamped to [0, itemCount] before leaving float64.
	first := int(math.Floor(math.Max(scrollOffset, 0) / itemExtent))
	last := int(math.Min(math.Ceil(end/itemExtent), float64(itemCount))) - 1
	if first > last {
		return ret
	}

	ret.Items = make([]VirtualItem, 0, last-first+1)
	for i := first; i <= last; i++ {
		ret.Items = append(ret.Items, VirtualItem{
			Index:  i,
			Offset: float64(i) * itemExtent,
			Extent: itemExtent,
		})
	}

	return ret
}

// Viewport is the fixed geometry of a scrollable group list, supplied by the
// host.
type Viewport struct {
	// ItemExtent is the size of one row.
	ItemExtent float64 `json:"itemExtent"`
	// Extent is the visible size of the list.
	Extent float64 `json:"extent"`
}

// DefaultViewport returns a viewport of DefaultViewportExtent with rows of
// DefaultItemExtent.
func DefaultViewport() Viewport {
	return Viewport{
		ItemExtent: DefaultItemExtent,
		Extent:     DefaultViewportExtent,
	}
}

// Normalize replaces non-positive extents with the defaults.
func (v Viewport) Normalize() Viewport {
	return Viewport{
		ItemExtent: NormalizeExtent(v.ItemExtent, DefaultItemExtent),
		Extent:     NormalizeExtent(v.Extent, DefaultViewportExtent),
	}
}

// Window is ComputeWindow with the viewport geometry.
func (v Viewport) Window(itemCount int, scrollOffset float64) Window {
	return ComputeWindow(itemCount, v.ItemExtent, v.Extent, scrollOffset)
}

// MaxScrollOffset returns the largest scroll offset that still fills the
// viewport, 0 when the content fits.
func (v Viewport) MaxScrollOffset(itemCount int) float64 {
	return math.Max(float64(max(itemCount, 0))*v.ItemExtent-v.Extent, 0)
}

// ScrollTo returns the scroll offset that puts row index at the top of the
// viewport, clamped so the viewport never scrolls past the content.
func (v Viewport) ScrollTo(index, itemCount int) float64 {
	return lo.Clamp(float64(index)*v.ItemExtent, 0, v.MaxScrollOffset(itemCount))
}

// GroupSlot is a visible row of a windowed group together with its page.
type GroupSlot struct {
	VirtualItem
	Page int
}

// GroupWindow windows the pages of group. Pages are resolved row by row, so
// span groups are never materialized. Returns nil for single items.
func GroupWindow(group Item, vp Viewport, scrollOffset float64) []GroupSlot {
	if !group.IsGroup() {
		return nil
	}

	window := vp.Window(group.Len(), scrollOffset)

	return lo.Map(window.Items, func(vi VirtualItem, _ int) GroupSlot {
		page, _ := group.At(vi.Index)
		return GroupSlot{VirtualItem: vi, Page: page}
	})
}
