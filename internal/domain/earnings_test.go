package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatasetKey(t *testing.T) {
	tests := []struct {
		dataset Dataset
		key     string
	}{
		{dataset: Dataset{EarningsLevel: "median"}, key: "earnings_median"},
		{dataset: Dataset{EarningsLevel: "median", FullTime: true}, key: "earnings_median_fulltime"},
		{dataset: Dataset{}, key: "earnings_median"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.dataset.Key())
		})
	}
}

func TestParseDatasetKey(t *testing.T) {
	dataset, ok := ParseDatasetKey("earnings_p75_fulltime")
	assert.True(t, ok)
	assert.Equal(t, Dataset{EarningsLevel: "p75", FullTime: true}, dataset)

	dataset, ok = ParseDatasetKey("earnings_median")
	assert.True(t, ok)
	assert.Equal(t, Dataset{EarningsLevel: "median"}, dataset)

	for _, key := range []string{"median", "earnings_", "earnings__fulltime", ""} {
		_, ok := ParseDatasetKey(key)
		assert.False(t, ok, key)
	}
}

func TestSelectionLabels(t *testing.T) {
	assert.Equal(t, []string{"Economics"}, Selection{Primary: "Economics"}.Labels())
	assert.Equal(t, []string{"Economics", "History"}, Selection{Primary: "Economics", Comparison: "History"}.Labels())
}

func TestGroupCategories(t *testing.T) {
	categories := GroupCategories([]string{
		"Average of all Majors",
		"Engineering - Civil",
		"History",
		"Engineering - Mechanical",
		"Business - Finance",
	})

	assert.Equal(t, []Category{
		{Name: "Average of all Majors"},
		{Name: "Engineering", Options: []string{"Civil", "Mechanical"}},
		{Name: "History"},
		{Name: "Business", Options: []string{"Finance"}},
	}, categories)
}
