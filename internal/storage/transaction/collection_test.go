package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// -- price band helpers --

func TestBandLabels(t *testing.T) {
	assert.Equal(t, "0-100", bandLabel(0))
	assert.Equal(t, "101-200", bandLabel(101))
	assert.Equal(t, "801-900", bandLabel(801))
	assert.Equal(t, "901-above", bandLabel(901))
}

func TestFillPriceBands_NoRows(t *testing.T) {
	bands := fillPriceBands(nil)

	assert.Len(t, bands, 10)
	assert.Equal(t, "0-100", bands[0].Range)
	assert.Equal(t, "901-above", bands[9].Range)
	for _, band := range bands {
		assert.Equal(t, int64(0), band.Count)
	}
}

func TestFillPriceBands_SparseRows(t *testing.T) {
	bands := fillPriceBands([]priceBandRow{
		{ID: 101, Count: 1},
		{ID: 901, Count: 4},
	})

	assert.Len(t, bands, 10)
	assert.Equal(t, RangeCount{Range: "101-200", Count: 1}, bands[1])
	assert.Equal(t, RangeCount{Range: "901-above", Count: 4}, bands[9])
	assert.Equal(t, int64(0), bands[0].Count)
}

// -- category helpers --

func TestGroupCategories_FirstSeenOrder(t *testing.T) {
	counts := groupCategories([]categoryRow{
		{Category: "Electronics"},
		{Category: ""},
		{Category: "Clothing"},
		{Category: "Electronics"},
	})

	assert.Equal(t, []CategoryCount{
		{Category: "Electronics", Count: 2},
		{Category: "Uncategorized", Count: 1},
		{Category: "Clothing", Count: 1},
	}, counts)
}

func TestGroupCategories_NoRows(t *testing.T) {
	counts := groupCategories(nil)

	assert.NotNil(t, counts, "empty months report an empty list, not null")
	assert.Empty(t, counts)
}
