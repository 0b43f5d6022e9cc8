package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{
			name:     "whole dollars",
			amount:   decimal.NewFromInt(1),
			expected: "$1.00",
		},
		{
			name:     "zero",
			amount:   decimal.Zero,
			expected: "$0.00",
		},
		{
			name:     "single group",
			amount:   decimal.NewFromFloat(999.99),
			expected: "$999.99",
		},
		{
			name:     "thousands grouping",
			amount:   decimal.NewFromFloat(1234.5),
			expected: "$1,234.50",
		},
		{
			name:     "millions grouping",
			amount:   decimal.NewFromInt(10000000),
			expected: "$10,000,000.00",
		},
		{
			name:     "uneven leading group",
			amount:   decimal.NewFromFloat(1234567.89),
			expected: "$1,234,567.89",
		},
		{
			name:     "negative amount",
			amount:   decimal.NewFromInt(-5),
			expected: "$-5.00",
		},
		{
			name:     "negative with grouping",
			amount:   decimal.NewFromFloat(-5000.25),
			expected: "$-5,000.25",
		},
		{
			name:     "sub-cent rounds half away from zero",
			amount:   decimal.NewFromFloat(2.005),
			expected: "$2.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.amount))
		})
	}
}
