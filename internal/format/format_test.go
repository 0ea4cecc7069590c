package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{124500, "$124,500.00"},
		{-2.5, "-$2.50"},
		{0, "$0.00"},
		{1234567.891, "$1,234,567.89"},
		{0.005, "$0.01"},
		{999.999, "$1,000.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Currency(tt.in), "Currency(%v)", tt.in)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{45678, "45,678"},
		{1234567, "1,234,567"},
		{12.4, "12.4"},
		{3.14159, "3.142"},
		{-9876.5, "-9,876.5"},
		{0, "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Number(tt.in), "Number(%v)", tt.in)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5.3, "+5.3%"},
		{-2.1, "-2.1%"},
		{0, "0.0%"},
		{14.83, "+14.8%"},
		{7.05, "+7.1%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percentage(tt.in), "Percentage(%v)", tt.in)
	}
}

func TestNonFinite(t *testing.T) {
	assert.Equal(t, "$NaN", Currency(math.NaN()))
	assert.Equal(t, "-∞", Number(math.Inf(-1)))
	assert.Equal(t, "∞%", Percentage(math.Inf(1)))
}
