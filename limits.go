package pagebar

const (
	NoLimit      = -1
	MaxLimit     = 100
	DefaultLimit = 10
)

const (
	// SmallSetThreshold is the page count below which every page is shown on
	// its own and nothing is collapsed.
	SmallSetThreshold = 10

	// DefaultItemExtent is the size of one row inside a group list.
	DefaultItemExtent = 40.0
	// DefaultViewportExtent is the visible size of a group list, about five rows.
	DefaultViewportExtent = 186.0
)

func IsNormalizedLimitMax(limit int, maxLimit int) (int, bool) {
	if limit <= 0 {
		return DefaultLimit, false
	} else if limit > maxLimit {
		return maxLimit, false
	}

	return limit, true
}

func NormalizeLimitMax(limit int, maxLimit int) int {
	ret, _ := IsNormalizedLimitMax(limit, maxLimit)
	return ret
}

func NormalizeLimit(limit int) int {
	return NormalizeLimitMax(limit, MaxLimit)
}

// IsNormalizedExtent replaces a non-positive extent with def. The second
// return value reports whether extent was kept as is.
func IsNormalizedExtent(extent, def float64) (float64, bool) {
	if extent <= 0 {
		return def, false
	}

	return extent, true
}

func NormalizeExtent(extent, def float64) float64 {
	ret, _ := IsNormalizedExtent(extent, def)
	return ret
}
