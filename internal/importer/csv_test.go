package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/loan-earnings/internal/domain"
)

const sampleCSV = `Year,Average of all Majors,Engineering - Civil,Engineering - Mechanical,History
1,"38,000",55000,57000,31000
2,39500,56500,,32000
3,$41000,58000,60500,
`

func TestParseCSV(t *testing.T) {
	table, err := ParseCSV(strings.NewReader(sampleCSV), "earnings_median")

	require.NoError(t, err)
	assert.Equal(t, "earnings_median", table.Dataset)
	assert.Equal(t, []string{"Average of all Majors", "Engineering - Civil", "Engineering - Mechanical", "History"}, table.Labels)
	require.Len(t, table.Records, 3)

	assert.Equal(t, domain.IncomeRecord{Period: 1, AmountsByLabel: map[string]float64{
		"Average of all Majors":    38000,
		"Engineering - Civil":      55000,
		"Engineering - Mechanical": 57000,
		"History":                  31000,
	}}, table.Records[0])

	_, present := table.Records[1].AmountsByLabel["Engineering - Mechanical"]
	assert.False(t, present, "empty cells are missing observations")
	assert.Equal(t, 41000.0, table.Records[2].AmountsByLabel["Average of all Majors"])
	assert.Len(t, table.Records[2].AmountsByLabel, 3)
}

func TestParseCSV_SortsByPeriod(t *testing.T) {
	table, err := ParseCSV(strings.NewReader("Year,Nursing\n3,60000\n1,50000\n2,55000\n"), "earnings_median")

	require.NoError(t, err)
	periods := []int{}
	for _, record := range table.Records {
		periods = append(periods, record.Period)
	}
	assert.Equal(t, []int{1, 2, 3}, periods)
}

func TestParseCSV_ByteOrderMark(t *testing.T) {
	table, err := ParseCSV(strings.NewReader("\ufeffYear,Nursing\n1,50000\n"), "earnings_median")

	require.NoError(t, err)
	assert.Equal(t, []string{"Nursing"}, table.Labels)
}

func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{name: "empty input", input: "", contains: "read header"},
		{name: "missing year column", input: "Period,Nursing\n1,50000\n", contains: ErrMissingPeriodColumn.Error()},
		{name: "duplicate label", input: "Year,Nursing,Nursing\n1,1,2\n", contains: ErrDuplicateLabel.Error()},
		{name: "bad year", input: "Year,Nursing\nfirst,50000\n", contains: "line 2"},
		{name: "year zero", input: "Year,Nursing\n0,50000\n", contains: "at least 1"},
		{name: "bad amount", input: "Year,Nursing\n1,lots\n", contains: `invalid amount "lots"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.input), "earnings_median")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
