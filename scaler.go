package ticks

import (
	"math"
)

type Range struct {
	F float64
	T float64
}

// NewRange builds a range, swapping the bounds when given in reverse order.
func NewRange(f, t float64) Range {
	if f > t {
		f, t = t, f
	}
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

func (r Range) Degenerate() bool {
	return r.Len() == 0
}

func (r Range) Valid() bool {
	return isFinite(r.F) && isFinite(r.T)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ToPixel maps value from data space to pixel space. max must differ from
// min.
func ToPixel(value, min, max, margin, space float64) float64 {
	return margin + (value-min)/(max-min)*space
}

// TickStartOffset gives the margin left before the first tick when only
// space pixels of working are used for ticks.
func TickStartOffset(working, space float64) float64 {
	return (working - space) / 2
}

type Scaler struct {
	Range
	Margin float64
	Space  float64
}

func NumberScaler(rg Range, working, space float64) Scaler {
	return Scaler{
		Range:  rg,
		Margin: TickStartOffset(working, space),
		Space:  space,
	}
}

func (s Scaler) Scale(v float64) float64 {
	return ToPixel(v, s.F, s.T, s.Margin, s.Space)
}

// Pixels gives the number of pixels covered by step data units.
func (s Scaler) Pixels(step float64) float64 {
	return step / s.Len() * s.Space
}

// LogScaler maps values on a base 10 logarithmic scale. Both bounds of rg
// must be strictly positive.
func LogScaler(rg Range, working, space float64) Scaler {
	rg = NewRange(math.Log10(rg.F), math.Log10(rg.T))
	return NumberScaler(rg, working, space)
}

type StringScaler struct {
	Strings []string
	Margin  float64
	Space   float64
}

func NewStringScaler(str []string, working, space float64) StringScaler {
	s := StringScaler{
		Margin: TickStartOffset(working, space),
		Space:  space,
	}
	s.Strings = append(s.Strings, str...)
	return s
}

// Scale gives the center of the band of v. Unknown values map to the
// first band.
func (s StringScaler) Scale(v string) float64 {
	var x int
	for i := range s.Strings {
		if s.Strings[i] == v {
			x = i
			break
		}
	}
	return s.at(x)
}

func (s StringScaler) Band() float64 {
	if len(s.Strings) == 0 {
		return 0
	}
	return s.Space / float64(len(s.Strings))
}

func (s StringScaler) at(i int) float64 {
	return s.Margin + s.Band()*(float64(i)+0.5)
}
