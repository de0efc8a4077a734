package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showroom/internal/models"
)

func fixture() []models.CarRecord {
	return []models.CarRecord{
		{ID: 3, Brand: "Aurora", Model: "GT", Type: "sports", Price: 120000, Horsepower: 520},
		{ID: 1, Brand: "Verdant", Model: "E1", Type: "electric", Price: 48000, Horsepower: 310},
		{ID: 2, Brand: "Koda", Model: "Trail", Type: "suv", Price: 61000, Horsepower: 400},
		{ID: 4, Brand: "Aurora", Model: "City", Type: "suv", Price: 61000, Horsepower: 250},
	}
}

func ids(cars []models.CarRecord) []int {
	out := make([]int, len(cars))
	for i, c := range cars {
		out[i] = c.ID
	}
	return out
}

func TestApply_PriceLowScenario(t *testing.T) {
	cars := []models.CarRecord{
		{ID: 1, Price: 100, Horsepower: 300},
		{ID: 2, Price: 50, Horsepower: 500},
	}

	got := Apply(cars, Criteria{PriceMin: 0, PriceMax: 3_000_000, Sort: SortPriceLow})
	assert.Equal(t, []int{2, 1}, ids(got))
}

func TestApply_DefaultSortIsAscendingID(t *testing.T) {
	// Insertion order is 3,1,2,4; default sort reorders regardless.
	got := Apply(fixture(), Criteria{})
	assert.Equal(t, []int{1, 2, 3, 4}, ids(got))
}

func TestApply_SearchMatchesBrandAndModel(t *testing.T) {
	cars := fixture()

	got := Apply(cars, Criteria{Search: "aurora"})
	assert.Equal(t, []int{3, 4}, ids(got))

	got = Apply(cars, Criteria{Search: "TRAIL"})
	assert.Equal(t, []int{2}, ids(got))

	got = Apply(cars, Criteria{Search: "nothing-matches"})
	assert.Empty(t, got)
}

func TestApply_TypeFilter(t *testing.T) {
	got := Apply(fixture(), Criteria{Type: "suv"})
	assert.Equal(t, []int{2, 4}, ids(got))

	got = Apply(fixture(), Criteria{Type: Wildcard})
	assert.Len(t, got, 4)
}

func TestApply_HorsepowerRangeKey(t *testing.T) {
	got := Apply(fixture(), Criteria{Horsepower: "300-500"})
	assert.Equal(t, []int{1, 2}, ids(got))

	// Bounds are closed
	got = Apply(fixture(), Criteria{Horsepower: "310-400"})
	assert.Equal(t, []int{1, 2}, ids(got))
}

func TestApply_PriceRangeAlwaysApplied(t *testing.T) {
	got := Apply(fixture(), Criteria{PriceMin: 50000, PriceMax: 100000})
	assert.Equal(t, []int{2, 4}, ids(got))

	// Zero PriceMax means the default ceiling, not "nothing"
	got = Apply(fixture(), Criteria{})
	assert.Len(t, got, 4)
}

func TestApply_FiltersAreANDCombined(t *testing.T) {
	got := Apply(fixture(), Criteria{
		Search:     "aurora",
		Type:       "suv",
		Horsepower: "200-300",
		PriceMin:   0,
		PriceMax:   3_000_000,
	})
	assert.Equal(t, []int{4}, ids(got))
}

func TestApply_SortOrders(t *testing.T) {
	cases := []struct {
		sort SortKey
		want []int
	}{
		{SortPriceLow, []int{1, 2, 4, 3}},  // tie 61000 keeps catalog order 2 before 4
		{SortPriceHigh, []int{3, 2, 4, 1}}, // stable tie again
		{SortHPLow, []int{4, 1, 2, 3}},
		{SortHPHigh, []int{3, 2, 1, 4}},
		{SortDefault, []int{1, 2, 3, 4}},
		{"bogus", []int{1, 2, 3, 4}}, // unknown keys fall back to default
	}

	for _, tc := range cases {
		t.Run(string(tc.sort), func(t *testing.T) {
			got := Apply(fixture(), Criteria{Sort: tc.sort})
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestApply_IsPure(t *testing.T) {
	cars := fixture()
	criteria := Criteria{Type: "suv", Sort: SortPriceHigh}

	first := Apply(cars, criteria)
	second := Apply(cars, criteria)
	assert.Equal(t, first, second)

	// Input untouched: still in insertion order
	assert.Equal(t, []int{3, 1, 2, 4}, ids(cars))

	// Output is a fresh slice, not an alias
	require.NotEmpty(t, first)
	first[0].Brand = "mutated"
	assert.NotEqual(t, "mutated", second[0].Brand)
}

func TestParseRangeKey(t *testing.T) {
	min, max, active := ParseRangeKey("300-500")
	assert.True(t, active)
	assert.Equal(t, 300, min)
	assert.Equal(t, 500, max)

	for _, key := range []string{"", "all", "fast", "100", "a-b"} {
		_, _, active := ParseRangeKey(key)
		assert.False(t, active, "key %q", key)
	}
}

func TestFromPreferences(t *testing.T) {
	c := FromPreferences(models.DefaultFilterPreferences())
	assert.Equal(t, Wildcard, c.Type)
	assert.Equal(t, Wildcard, c.Horsepower)
	assert.Equal(t, models.DefaultPriceMax, c.PriceMax)
	assert.Equal(t, SortDefault, c.Sort)
}
