package ticks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogDecades(t *testing.T) {
	c, err := NewLog(DirectionX, 800, 1, 1000, testStyle(), WithMeasurer(fixedWidth))
	require.NoError(t, err)

	res := c.Result()
	assert.Equal(t, 1, c.Every())
	assert.Equal(t, []string{"1", "10", "100", "1,000"}, res.Labels)
	require.Equal(t, 4, res.Len())
	assert.InDelta(t, 40.0, res.Positions[0], 1e-9)
	assert.InDelta(t, 280.0, res.Positions[1], 1e-9)
	assert.InDelta(t, 760.0, res.Positions[3], 1e-9)
}

func TestLogFractions(t *testing.T) {
	c, err := NewLog(DirectionX, 800, 0.01, 100, testStyle(), WithMeasurer(fixedWidth))
	require.NoError(t, err)
	assert.Equal(t, []string{"0.01", "0.1", "1", "10", "100"}, c.Result().Labels)
}

func TestLogSkipsDecades(t *testing.T) {
	c, err := NewLog(DirectionX, 800, 1, 1e12, testStyle(), WithMeasurer(fixedWidth))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Every())
	assert.Equal(t, 5, c.Result().Len())
}

func TestLogInvalidRange(t *testing.T) {
	_, err := NewLog(DirectionX, 800, 0, 100, testStyle())
	assert.ErrorIs(t, err, ErrRange)
	_, err = NewLog(DirectionX, 800, -1, 100, testStyle())
	assert.ErrorIs(t, err, ErrRange)
}

func TestLogDegenerateRange(t *testing.T) {
	c, err := NewLog(DirectionX, 800, 10, 10, testStyle())
	require.NoError(t, err)
	assert.True(t, c.Result().Empty())
}
