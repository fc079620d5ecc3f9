package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tyrepage/internal/tyresize"
)

func TestRelatedSizesNearestByRimThenWidth(t *testing.T) {
	size := tyresize.TyreSize{Width: 225, Aspect: 45, Rim: 19}
	got := RelatedSizes(size, tyresize.SegmentSUV, testRelatedPool())
	require.Len(t, got, 5)
	// rim 19 first, then rim 18 ordered by width distance, then rim 17
	assert.Equal(t, "245/40R19", got[0])
	assert.Equal(t, "225/45R18", got[1])
	assert.Equal(t, "235/45R18", got[2])
	assert.Equal(t, "225/45R17", got[3])
	assert.Equal(t, "215/55R17", got[4])
}

func TestRelatedSizesExcludesSelf(t *testing.T) {
	size := tyresize.TyreSize{Width: 205, Aspect: 55, Rim: 16}
	got := RelatedSizes(size, tyresize.SegmentPassenger, testRelatedPool())
	assert.NotContains(t, got, size.Canonical())
	assert.GreaterOrEqual(t, len(got), RelatedMin)
}

func TestRelatedSizesDeterministic(t *testing.T) {
	size := tyresize.TyreSize{Width: 225, Aspect: 45, Rim: 19}
	a := RelatedSizes(size, tyresize.SegmentSUV, testRelatedPool())
	b := RelatedSizes(size, tyresize.SegmentSUV, testRelatedPool())
	assert.Equal(t, a, b)
}

func TestRelatedSizesNeighbourFallback(t *testing.T) {
	size := tyresize.TyreSize{Width: 225, Aspect: 45, Rim: 19}

	t.Run("empty pool", func(t *testing.T) {
		got := RelatedSizes(size, tyresize.SegmentSUV, nil)
		require.GreaterOrEqual(t, len(got), RelatedMin)
		assert.NotContains(t, got, size.Canonical())
		for _, c := range got {
			parsed, err := tyresize.Parse(c)
			require.NoError(t, err)
			assert.True(t, parsed.Valid())
		}
	})

	t.Run("pool of one", func(t *testing.T) {
		pool := []tyresize.TyreSize{{Width: 205, Aspect: 55, Rim: 16}}
		got := RelatedSizes(size, tyresize.SegmentPerformance, pool)
		require.GreaterOrEqual(t, len(got), RelatedMin)
		assert.Equal(t, "205/55R16", got[0])
	})

	t.Run("clamped at range edges", func(t *testing.T) {
		edge := tyresize.TyreSize{Width: tyresize.MaxWidth, Aspect: tyresize.MinAspect, Rim: tyresize.MaxRim}
		got := RelatedSizes(edge, tyresize.SegmentPerformance, nil)
		require.GreaterOrEqual(t, len(got), RelatedMin)
		for _, c := range got {
			parsed, err := tyresize.Parse(c)
			require.NoError(t, err)
			assert.True(t, parsed.Valid())
		}
	})
}

func TestRelatedSizesDeduplicatesPool(t *testing.T) {
	pool := []tyresize.TyreSize{
		{Width: 205, Aspect: 55, Rim: 16},
		{Width: 205, Aspect: 55, Rim: 16},
		{Width: 215, Aspect: 55, Rim: 17},
		{Width: 225, Aspect: 45, Rim: 17},
		{Width: 235, Aspect: 45, Rim: 18},
		{Width: 245, Aspect: 40, Rim: 19},
	}
	got := RelatedSizes(tyresize.TyreSize{Width: 225, Aspect: 45, Rim: 19}, tyresize.SegmentSUV, pool)
	seen := map[string]struct{}{}
	for _, c := range got {
		_, dup := seen[c]
		assert.False(t, dup, "duplicate %s", c)
		seen[c] = struct{}{}
	}
}
