package wishlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregatorCountsKnownAndDiscovered(t *testing.T) {
	agg := NewAggregator(nil)
	counts := agg.Count(viewFixture())

	want := []CategoryCount{
		{Name: AllCategory, Count: 5},
		{Name: "Clothing", Count: 1},
		{Name: "Electronics", Count: 2},
		{Name: "Home & Furniture", Count: 0},
		{Name: "Books", Count: 0},
		{Name: "Miscellaneous", Count: 0},
		{Name: UncategorizedCategory, Count: 1},
		{Name: "Gadgets", Count: 1},
	}
	assert.Equal(t, want, counts)
}

func TestAggregatorCountsSumToTotal(t *testing.T) {
	counts := NewAggregator([]string{"Books"}).Count(viewFixture())
	require.Equal(t, AllCategory, counts[0].Name)

	sum := 0
	for _, c := range counts[1:] {
		sum += c.Count
	}
	assert.Equal(t, counts[0].Count, sum)
}

func TestAggregatorDiscoversUncategorizedWhenNotKnown(t *testing.T) {
	items := []Item{item(1, "Lamp", "1", nil, nil, time.Now())}
	counts := NewAggregator([]string{"Books", "Books", " ", AllCategory}).Count(items)

	assert.Equal(t, []CategoryCount{
		{Name: AllCategory, Count: 1},
		{Name: "Books", Count: 0},
		{Name: UncategorizedCategory, Count: 1},
	}, counts)
}

func TestAggregatorEmptyStore(t *testing.T) {
	agg := NewAggregator([]string{"Books"})
	assert.Equal(t, []CategoryCount{{Name: AllCategory}, {Name: "Books"}}, agg.Count(nil))
	assert.Equal(t, []string{AllCategory, "Books"}, agg.Names(nil))
	assert.Equal(t, []string{"Books"}, agg.Known())
}

func TestEffectiveCategory(t *testing.T) {
	assert.Equal(t, UncategorizedCategory, EffectiveCategory(nil))
	assert.Equal(t, UncategorizedCategory, EffectiveCategory(strPtr("")))
	assert.Equal(t, UncategorizedCategory, EffectiveCategory(strPtr("  ")))
	assert.Equal(t, "Gadgets", EffectiveCategory(strPtr("Gadgets")))
}
