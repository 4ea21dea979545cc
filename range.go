package pagebar

import (
	"fmt"

	"github.com/samber/lo"
)

const (
	// edgeRun is the number of pages shown on their own at each end of the
	// selector while the current page sits near an edge.
	edgeRun = 4
	// middleRadius is the number of pages shown on each side of the current
	// page while it sits in the middle.
	middleRadius = 2
)

// ComputeRange returns the slots of a page selector for total pages with
// current as the selected page.
//
// The layout depends on where current sits:
//
//	total < 10:                      1 2 3 ... total
//	current < 4 or current > total-3: 1 2 3 4 [5..total-4] total-3 ... total
//	otherwise:                        1 [2..current-3] current-2 ... current+2 [current+3..total-1] total
//
// Groups are always emitted, even when they cover no pages, so the selector
// keeps the same number of slots. current is not validated, the caller is
// responsible for keeping it within [1, total]. Returns an error wrapping
// ErrInvalidArgument when total < 1.
func ComputeRange(total, current int) (Range, error) {
	if total < 1 {
		return nil, fmt.Errorf("cannot compute range for %d pages: %w", total, ErrInvalidArgument)
	}

	if total < SmallSetThreshold {
		return singles(1, total), nil
	}

	if current < edgeRun || current > total-(edgeRun-1) {
		ret := make(Range, 0, 2*edgeRun+1)
		ret = append(ret, singles(1, edgeRun)...)
		ret = append(ret, Span(edgeRun+1, total-edgeRun))
		ret = append(ret, singles(total-(edgeRun-1), total)...)

		return ret, nil
	}

	ret := make(Range, 0, 2*middleRadius+5)
	ret = append(ret, Single(1))
	ret = append(ret, Span(2, current-middleRadius-1))
	ret = append(ret, singles(current-middleRadius, current+middleRadius)...)
	ret = append(ret, Span(current+middleRadius+1, total-1))
	ret = append(ret, Single(total))

	return ret, nil
}

// MustComputeRange is ComputeRange for callers that already hold a valid
// total. Panics when total < 1.
func MustComputeRange(total, current int) Range {
	ret, err := ComputeRange(total, current)
	if err != nil {
		panic(err)
	}

	return ret
}

// singles returns Single(first) ... Single(last).
func singles(first, last int) Range {
	return lo.Map(lo.RangeFrom(first, last-first+1), func(page int, _ int) Item {
		return Single(page)
	})
}
