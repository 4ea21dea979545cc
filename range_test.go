package pagebar

import (
	"errors"
	"fmt"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ComputeRange(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		current int
		want    Range
	}{
		{
			name:    "single page",
			total:   1,
			current: 1,
			want:    Range{Single(1)},
		},
		{
			name:    "small set is shown in full",
			total:   5,
			current: 3,
			want:    Range{Single(1), Single(2), Single(3), Single(4), Single(5)},
		},
		{
			name:    "largest small set",
			total:   9,
			current: 5,
			want:    singles(1, 9),
		},
		{
			name:    "edge low",
			total:   50,
			current: 1,
			want: Range{
				Single(1), Single(2), Single(3), Single(4),
				Span(5, 46),
				Single(47), Single(48), Single(49), Single(50),
			},
		},
		{
			name:    "edge high mirrors edge low",
			total:   50,
			current: 49,
			want: Range{
				Single(1), Single(2), Single(3), Single(4),
				Span(5, 46),
				Single(47), Single(48), Single(49), Single(50),
			},
		},
		{
			name:    "middle",
			total:   50,
			current: 25,
			want: Range{
				Single(1),
				Span(2, 22),
				Single(23), Single(24), Single(25), Single(26), Single(27),
				Span(28, 49),
				Single(50),
			},
		},
		{
			name:    "page 4 takes the middle branch",
			total:   50,
			current: 4,
			want: Range{
				Single(1),
				Span(2, 1),
				Single(2), Single(3), Single(4), Single(5), Single(6),
				Span(7, 49),
				Single(50),
			},
		},
		{
			name:    "page total-3 takes the middle branch",
			total:   50,
			current: 47,
			want: Range{
				Single(1),
				Span(2, 44),
				Single(45), Single(46), Single(47), Single(48), Single(49),
				Span(50, 49),
				Single(50),
			},
		},
		{
			name:    "page 3 takes the edge branch",
			total:   50,
			current: 3,
			want: Range{
				Single(1), Single(2), Single(3), Single(4),
				Span(5, 46),
				Single(47), Single(48), Single(49), Single(50),
			},
		},
		{
			name:    "smallest collapsing set at the edge",
			total:   10,
			current: 1,
			want: Range{
				Single(1), Single(2), Single(3), Single(4),
				Span(5, 6),
				Single(7), Single(8), Single(9), Single(10),
			},
		},
		{
			name:    "smallest collapsing set in the middle",
			total:   10,
			current: 5,
			want: Range{
				Single(1),
				Span(2, 2),
				Single(3), Single(4), Single(5), Single(6), Single(7),
				Span(8, 9),
				Single(10),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeRange(tt.total, tt.current)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_ComputeRange_InvalidTotal(t *testing.T) {
	for _, total := range []int{0, -1, -100} {
		t.Run(fmt.Sprintf("total %d", total), func(t *testing.T) {
			got, err := ComputeRange(total, 1)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.Nil(t, got)
		})
	}
}

func Test_ComputeRange_Coverage(t *testing.T) {
	for total := 1; total <= 60; total++ {
		want := lo.RangeFrom(1, total)
		for current := 1; current <= total; current++ {
			got, err := ComputeRange(total, current)
			require.NoError(t, err)

			if flat := got.Flatten(); !assert.Equal(t, want, flat) {
				t.Fatalf("total=%d current=%d: range %s", total, current, got)
			}
		}
	}
}

func Test_ComputeRange_BoundedWidth(t *testing.T) {
	for _, total := range []int{10, 11, 50, 1000, 1_000_000} {
		for _, current := range []int{1, 3, 4, 5, total / 2, total - 3, total - 2, total} {
			got, err := ComputeRange(total, current)
			require.NoError(t, err)
			assert.Len(t, got, 9, "total=%d current=%d", total, current)
		}
	}
}

func Test_ComputeRange_LargeTotalStaysLazy(t *testing.T) {
	got, err := ComputeRange(1_000_000_000, 500_000_000)
	require.NoError(t, err)

	groups := got.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, 499_999_996, groups[0].Len())
	assert.Equal(t, 499_999_997, groups[1].Len())

	last, ok := groups[1].At(groups[1].Len() - 1)
	require.True(t, ok)
	assert.Equal(t, 999_999_999, last)
}

func Test_ComputeRange_OutOfRangeCurrentIsAccepted(t *testing.T) {
	got, err := ComputeRange(50, 0)
	require.NoError(t, err)
	assert.Equal(t, MustComputeRange(50, 1), got)

	got, err = ComputeRange(50, 51)
	require.NoError(t, err)
	assert.Equal(t, MustComputeRange(50, 50), got)
}

func Test_ComputeRange_Idempotent(t *testing.T) {
	first := MustComputeRange(50, 25)
	second := MustComputeRange(50, 25)
	require.Equal(t, first, second)

	// Expanding a group of one result must not leak into the other.
	pages := first.Groups()[0].Pages()
	pages[0] = 999
	assert.Equal(t, second, MustComputeRange(50, 25))
	assert.Equal(t, first, second)
}

func Test_MustComputeRange_Panics(t *testing.T) {
	assert.Panics(t, func() { MustComputeRange(0, 1) })
}
