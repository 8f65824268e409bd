package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWhole(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{"zero", decimal.Zero, "$0"},
		{"small", decimal.NewFromInt(999), "$999"},
		{"thousands", decimal.NewFromInt(24500), "$24,500"},
		{"millions", decimal.NewFromInt(1234567), "$1,234,567"},
		{"half rounds to even down", decimal.RequireFromString("2.5"), "$2"},
		{"half rounds to even up", decimal.RequireFromString("3.5"), "$4"},
		{"negative", decimal.NewFromInt(-1500), "-$1,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Whole(tt.amount))
		})
	}
}

func TestCents(t *testing.T) {
	assert.Equal(t, "$1,234.56", Cents(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "$0.05", Cents(decimal.RequireFromString("0.05")))
	assert.Equal(t, "$1,319.23", Cents(decimal.NewFromInt(34300).Div(decimal.NewFromInt(26))))
}

func TestPlainAndPercent(t *testing.T) {
	assert.Equal(t, "150,000", Plain(decimal.NewFromInt(150000)))
	assert.Equal(t, "6%", Percent(decimal.RequireFromString("0.06")))
	assert.Equal(t, "2.5%", Percent(decimal.RequireFromString("0.025")))
}
