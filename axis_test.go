package ticks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrientation(t *testing.T) {
	tests := map[string]Orientation{
		"top":    OrientTop,
		"Right":  OrientRight,
		"bottom": OrientBottom,
		"":       OrientBottom,
		"LEFT":   OrientLeft,
	}
	for str, want := range tests {
		got, err := ParseOrientation(str)
		require.NoError(t, err, str)
		assert.Equal(t, want, got, str)
	}
	_, err := ParseOrientation("diagonal")
	assert.Error(t, err)
}

func TestOrientationDirection(t *testing.T) {
	assert.Equal(t, DirectionX, OrientTop.Direction())
	assert.Equal(t, DirectionX, OrientBottom.Direction())
	assert.Equal(t, DirectionY, OrientLeft.Direction())
	assert.Equal(t, DirectionY, OrientRight.Direction())
	assert.True(t, OrientRight.Reverse())
	assert.False(t, OrientLeft.Reverse())
}

func TestAxisPlace(t *testing.T) {
	res := Result{
		Positions: []float64{0, 20, 100},
		Labels:    []string{"0", "20", "100"},
	}
	bottom := Axis{Orientation: OrientBottom, Length: 100, Left: 10, Top: 50}
	assert.Equal(t, []Point{{10, 50}, {30, 50}, {110, 50}}, bottom.Place(res))

	left := Axis{Orientation: OrientLeft, Length: 100, Left: 10, Top: 5}
	assert.Equal(t, []Point{{10, 105}, {10, 85}, {10, 5}}, left.Place(res))
}

func TestAxisAnchors(t *testing.T) {
	res := Result{
		Positions: []float64{0, 20},
		Labels:    []string{"0", "20"},
	}
	tests := []struct {
		Orient Orientation
		Want   []Point
	}{
		{Orient: OrientBottom, Want: []Point{{10, 58}, {30, 58}}},
		{Orient: OrientTop, Want: []Point{{10, 42}, {30, 42}}},
		{Orient: OrientLeft, Want: []Point{{2, 150}, {2, 130}}},
		{Orient: OrientRight, Want: []Point{{18, 150}, {18, 130}}},
	}
	for _, tt := range tests {
		axis := Axis{Orientation: tt.Orient, Length: 100, Left: 10, Top: 50}
		assert.Equal(t, tt.Want, axis.Anchors(res, 8), "orientation %d", tt.Orient)
	}
	bottom := Axis{Orientation: OrientBottom, Length: 100, Left: 10, Top: 50}
	assert.Equal(t, bottom.Place(res), bottom.Anchors(res, 0))
}

func TestAxisLine(t *testing.T) {
	fst, lst := Axis{Orientation: OrientBottom, Length: 100, Left: 10, Top: 50}.Line()
	assert.Equal(t, NewPoint(10, 50), fst)
	assert.Equal(t, NewPoint(110, 50), lst)

	fst, lst = Axis{Orientation: OrientLeft, Length: 100, Left: 10, Top: 5}.Line()
	assert.Equal(t, NewPoint(10, 5), fst)
	assert.Equal(t, NewPoint(10, 105), lst)
	assert.Equal(t, NewPoint(105, 10), lst.Reverse())
}

func TestResultClipAndTicks(t *testing.T) {
	res := Result{
		Positions: []float64{-10, 0, 50, 100, 110},
		Labels:    []string{"a", "b", "c", "d", "e"},
	}
	clip := res.Clip(100)
	assert.Equal(t, []string{"b", "c", "d"}, clip.Labels)
	assert.Equal(t, []Tick{{0, "b"}, {50, "c"}, {100, "d"}}, clip.Ticks())
	assert.True(t, Result{}.Empty())
}
