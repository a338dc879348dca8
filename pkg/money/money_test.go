package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMajor(t *testing.T) {
	assert.Equal(t, Amount(10000), FromMajor(100))
	assert.Equal(t, Amount(-1500), FromMajor(-15))
	assert.Equal(t, Amount(0), FromMajor(0))
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		amount   Amount
		percent  int64
		expected Amount
	}{
		{name: "ten percent of 100.00", amount: 10000, percent: 10, expected: 1000},
		{name: "rounds half up", amount: 105, percent: 10, expected: 11},    // 10.5 -> 11
		{name: "rounds below half down", amount: 104, percent: 10, expected: 10}, // 10.4 -> 10
		{name: "negative percent", amount: 10000, percent: -20, expected: -2000},
		{name: "negative amount rounds away from zero", amount: -105, percent: 10, expected: -11},
		{name: "zero percent", amount: 10000, percent: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.amount.Percent(tt.percent))
		})
	}
}

func TestAddPercent(t *testing.T) {
	// 100.00 +10% = 110.00, -15% = 85.00
	assert.Equal(t, FromMajor(110), FromMajor(100).AddPercent(10))
	assert.Equal(t, FromMajor(85), FromMajor(100).AddPercent(-15))
}

func TestMulAdd(t *testing.T) {
	assert.Equal(t, Amount(4000), Amount(500).Mul(2).Mul(4))
	assert.Equal(t, Amount(300), Amount(100).Add(200))
}

func TestString(t *testing.T) {
	tests := []struct {
		amount   Amount
		expected string
	}{
		{12550, "125.50"},
		{100, "1.00"},
		{5, "0.05"},
		{0, "0.00"},
		{-1500, "-15.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.amount.String())
	}
}
