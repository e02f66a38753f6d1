package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  int
	}{
		{name: "rounds down", input: 45.4, want: 45},
		{name: "rounds up", input: 45.5, want: 46},
		{name: "zero", input: 0, want: 0},
		{name: "over one hundred", input: 120.2, want: 120},
		{name: "NaN collapses to zero", input: math.NaN(), want: 0},
		{name: "Inf collapses to zero", input: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundPercent(tt.input))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 45.46, RoundWithTwoDecimalPlace(45.456))
	assert.Equal(t, float64(0), RoundWithTwoDecimalPlace(0))
}
