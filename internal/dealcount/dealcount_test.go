package dealcount

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoose(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n, k, want uint64
	}{
		{81, 2, 3240},
		{81, 4, 1663740},
		{81, 77, 1663740},
		{5, 0, 1},
		{5, 5, 1},
		{52, 5, 2598960},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Choose(tt.n, tt.k), "C(%d, %d)", tt.n, tt.k)
	}
}

func TestCountNullSuperSetsDealFour(t *testing.T) {
	t.Parallel()
	result, err := CountNullSuperSets(context.Background(), 4, 0)
	require.NoError(t, err)

	// 63_180 four-card deals contain a superset; the rest do not
	assert.Equal(t, uint64(1663740), result.Combinations)
	assert.Equal(t, uint64(1600560), result.NullDeals)
	assert.Equal(t, uint64(63180), result.SuperSetDeals())
	assert.InDelta(t, 96.20253, result.PctWithout(), 0.0001)
}

func TestCountNullSuperSetsRejectsTinyDeals(t *testing.T) {
	t.Parallel()
	_, err := CountNullSuperSets(context.Background(), 3, 0)
	assert.Error(t, err)
}

func TestCountNullSuperSetsCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CountNullSuperSets(ctx, 6, 1)
	assert.Error(t, err)
}
