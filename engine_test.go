package ticks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFits(t *testing.T) {
	labels := []string{"ab", "abcd", "a"}
	assert.True(t, Fits(fixedWidth, labels, 31))
	assert.False(t, Fits(fixedWidth, labels, 30.8))
	assert.False(t, Fits(fixedWidth, labels, 0))
	assert.True(t, Fits(fixedWidth, nil, 0))
}

func TestCalculatorFitsVertical(t *testing.T) {
	wide := MeasureFunc(func(string) float64 { return 1e6 })
	c, _, err := newCalculator(DirectionY, 800, testStyle(), []Option{WithMeasurer(wide)})
	require.NoError(t, err)
	c.add(0, "very long label")
	assert.True(t, c.fits(1))

	c.dir = DirectionX
	assert.False(t, c.fits(1))
}

func TestNewCalculator(t *testing.T) {
	c, o, err := newCalculator(DirectionX, 800, testStyle(), nil)
	require.NoError(t, err)
	assert.Equal(t, 720.0, c.space)
	assert.Equal(t, 40.0, c.margin)
	assert.Equal(t, DefaultLadder().Len(), o.ladder.Len())
	assert.Equal(t, DefaultOvershootSteps, o.overshoot)

	_, o, err = newCalculator(DirectionX, 800, testStyle(), []Option{WithOvershoot(-1)})
	require.NoError(t, err)
	assert.Equal(t, DefaultOvershootSteps, o.overshoot)
}

func TestDefaultMeasurer(t *testing.T) {
	assert.Equal(t, 21.0, DefaultMeasurer(0).Measure("abc"))
	assert.Equal(t, 21.0, DefaultMeasurer(13).Measure("abc"))
	assert.Equal(t, 42.0, DefaultMeasurer(26).Measure("abc"))
	assert.Equal(t, 0.0, DefaultMeasurer(12).Measure(""))
}

func TestFontMeasurer(t *testing.T) {
	m, err := NewFontMeasurer(goregular.TTF, 12)
	require.NoError(t, err)

	var (
		wide   = m.Measure("WWWW")
		narrow = m.Measure("iiii")
	)
	assert.Greater(t, narrow, 0.0)
	assert.Greater(t, wide, narrow)
	assert.InDelta(t, 2*m.Measure("WW"), wide, 1)

	_, err = NewFontMeasurer([]byte("not a font"), 12)
	assert.Error(t, err)
}
