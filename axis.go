package ticks

import (
	"fmt"
	"strings"
)

type Direction int

const (
	DirectionX Direction = iota
	DirectionY
)

func (d Direction) String() string {
	if d == DirectionY {
		return "y"
	}
	return "x"
}

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func ParseOrientation(str string) (Orientation, error) {
	switch strings.ToLower(str) {
	case "top":
		return OrientTop, nil
	case "right":
		return OrientRight, nil
	case "bottom", "":
		return OrientBottom, nil
	case "left":
		return OrientLeft, nil
	default:
		return 0, fmt.Errorf("%s: unknown orientation", str)
	}
}

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

func (o Orientation) Direction() Direction {
	if o.Vertical() {
		return DirectionY
	}
	return DirectionX
}

type Tick struct {
	Position float64
	Label    string
}

// Result holds the ticks of an axis as two parallel slices ordered by
// ascending position: Labels[i] labels the tick at Positions[i].
type Result struct {
	Positions []float64
	Labels    []string
}

func (r Result) Len() int {
	return len(r.Positions)
}

func (r Result) Empty() bool {
	return r.Len() == 0
}

func (r Result) Ticks() []Tick {
	all := make([]Tick, len(r.Positions))
	for i := range r.Positions {
		all[i] = Tick{
			Position: r.Positions[i],
			Label:    r.Labels[i],
		}
	}
	return all
}

// Clip keeps only the ticks whose position falls in [0, length].
func (r Result) Clip(length float64) Result {
	var res Result
	for i, p := range r.Positions {
		if p < 0 || p > length {
			continue
		}
		res.Positions = append(res.Positions, p)
		res.Labels = append(res.Labels, r.Labels[i])
	}
	return res
}

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) Reverse() Point {
	return Point{
		X: p.Y,
		Y: p.X,
	}
}

// Axis places the one dimensional positions computed by a calculator into
// the coordinate space of the chart.
type Axis struct {
	Orientation
	Length float64
	Left   float64
	Top    float64
}

func (a Axis) Line() (Point, Point) {
	end := NewPoint(a.Length, 0)
	if a.Vertical() {
		end = end.Reverse()
	}
	return NewPoint(a.Left, a.Top), NewPoint(a.Left+end.X, a.Top+end.Y)
}

// Place converts tick positions into points. Vertical axes grow upward so
// their positions are measured from the bottom end of the axis.
func (a Axis) Place(res Result) []Point {
	all := make([]Point, len(res.Positions))
	for i, pos := range res.Positions {
		pt := NewPoint(pos, 0)
		if a.Vertical() {
			pt = NewPoint(a.Length-pos, 0).Reverse()
		}
		pt.X += a.Left
		pt.Y += a.Top
		all[i] = pt
	}
	return all
}

// Anchors gives the points where labels are drawn: offset pixels away from
// each tick, on the outer side of the axis. Labels of bottom and left axes
// go below and to the left, those of top and right axes above and to the
// right.
func (a Axis) Anchors(res Result, offset float64) []Point {
	if a.Reverse() {
		offset = -offset
	}
	shift := NewPoint(0, offset)
	if a.Vertical() {
		shift = NewPoint(0, -offset).Reverse()
	}
	all := a.Place(res)
	for i := range all {
		all[i].X += shift.X
		all[i].Y += shift.Y
	}
	return all
}
