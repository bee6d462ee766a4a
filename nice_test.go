package ticks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundUpStep(t *testing.T) {
	tests := []struct {
		Raw  float64
		Want float64
	}{
		{Raw: 1, Want: 1},
		{Raw: 1.01, Want: 2},
		{Raw: 2, Want: 2},
		{Raw: 3.33, Want: 5},
		{Raw: 5, Want: 5},
		{Raw: 7, Want: 10},
		{Raw: 9.99, Want: 10},
		{Raw: 10, Want: 10},
		{Raw: 101, Want: 200},
		{Raw: 0.03, Want: 0.05},
		{Raw: 0.1028, Want: 0.2},
		{Raw: 1027.8, Want: 2000},
		{Raw: 0, Want: 1},
		{Raw: -4, Want: 1},
	}
	for _, tt := range tests {
		got := roundUpStep(tt.Raw)
		assert.InDelta(t, tt.Want, got.Value(), tt.Want*1e-12, "raw %f", tt.Raw)
		assert.Contains(t, []int{1, 2, 5}, got.mantissa, "raw %f", tt.Raw)
	}
}

func TestNiceStepNext(t *testing.T) {
	var (
		step = niceStep{mantissa: 1, exp: -1}
		want = []float64{0.2, 0.5, 1, 2, 5, 10}
	)
	for _, w := range want {
		step = step.next()
		assert.InDelta(t, w, step.Value(), 1e-12)
	}
}

func TestNiceStepDecimals(t *testing.T) {
	assert.Equal(t, 0, niceStep{mantissa: 5, exp: 2}.decimals())
	assert.Equal(t, 0, niceStep{mantissa: 5, exp: 0}.decimals())
	assert.Equal(t, 3, niceStep{mantissa: 2, exp: -3}.decimals())
}
