package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRecords(t *testing.T) {
	rows := []recordRow{
		{Period: 1, Label: "Economics", AnnualAmount: 41000},
		{Period: 1, Label: "History", AnnualAmount: 33000},
		{Period: 2, Label: "Economics", AnnualAmount: 43000},
		{Period: 4, Label: "History", AnnualAmount: 36000},
	}

	records := groupRecords(rows)

	require.Len(t, records, 3)
	assert.Equal(t, 1, records[0].Period)
	assert.Equal(t, map[string]float64{"Economics": 41000, "History": 33000}, records[0].AmountsByLabel)
	assert.Equal(t, 2, records[1].Period)
	assert.Equal(t, 4, records[2].Period)
	assert.Equal(t, 36000.0, records[2].AmountsByLabel["History"])
}

func TestGroupRecords_Empty(t *testing.T) {
	records := groupRecords(nil)

	assert.NotNil(t, records)
	assert.Empty(t, records)
}
