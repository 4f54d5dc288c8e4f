package utils

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "monthly payment", value: 280.21, expected: "280.21"},
		{name: "long total", value: 33625.85594909121, expected: "33625.86"},
		{name: "whole amount", value: 27000, expected: "27000"},
		{name: "negative", value: -12.345, expected: "-12.35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := decimal.RequireFromString(tt.expected)
			result := ToCurrency(tt.value)
			assert.True(t, result.Equal(expected), "Expected %v, but got %v", expected, result)
		})
	}
}

func TestToRatio(t *testing.T) {
	assert.True(t, ToRatio(0.0675).Equal(decimal.RequireFromString("0.0675")))
	assert.True(t, ToRatio(1.0/3).Equal(decimal.RequireFromString("0.3333")))
}

func TestToCount(t *testing.T) {
	assert.True(t, ToCount(120.00234091963603).Equal(decimal.NewFromInt(120)))
	assert.True(t, ToCount(97.968).Equal(decimal.RequireFromString("97.96")))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(280.21))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
}

