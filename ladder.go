package ticks

import (
	"fmt"
	"time"

	"github.com/midbel/ticks/timefmt"
)

const (
	MillisScale = int64(time.Millisecond / time.Millisecond)
	SecScale    = int64(time.Second / time.Millisecond)
	MinScale    = int64(time.Minute / time.Millisecond)
	HourScale   = int64(time.Hour / time.Millisecond)
	DayScale    = 24 * HourScale
	MonthScale  = 30 * DayScale
	YearScale   = 365 * DayScale
)

// Span is one entry of a ladder: a step of Magnitude times Unit
// milliseconds, labelled with Pattern by default.
type Span struct {
	Unit      int64
	Magnitude int
	Pattern   string
}

func NewSpan(unit int64, mag int, pattern string) Span {
	return Span{
		Unit:      unit,
		Magnitude: mag,
		Pattern:   pattern,
	}
}

func (s Span) Millis() int64 {
	return s.Unit * int64(s.Magnitude)
}

func (s Span) String() string {
	return fmt.Sprintf("%dx%dms (%s)", s.Magnitude, s.Unit, s.Pattern)
}

// Ladder is an ordered list of spans with strictly increasing steps. It has
// no mutators so a value can be shared freely between goroutines.
type Ladder struct {
	spans   []Span
	layouts []*timefmt.Layout
}

func NewLadder(spans ...Span) (Ladder, error) {
	var lad Ladder
	if len(spans) == 0 {
		return lad, LadderError{Index: 0, Message: "empty ladder"}
	}
	for i, s := range spans {
		if s.Unit <= 0 || s.Magnitude <= 0 {
			return lad, LadderError{Index: i, Message: "step must be positive"}
		}
		if s.Unit > maxStepMillis/int64(s.Magnitude) {
			return lad, LadderError{Index: i, Message: "step too large"}
		}
		if i > 0 && s.Millis() <= spans[i-1].Millis() {
			return lad, LadderError{Index: i, Message: "step not greater than previous step"}
		}
		layout, err := timefmt.Compile(s.Pattern)
		if err != nil {
			return lad, fmt.Errorf("%w: %w", LadderError{Index: i, Message: "bad pattern"}, err)
		}
		lad.layouts = append(lad.layouts, layout)
	}
	lad.spans = append(lad.spans, spans...)
	return lad, nil
}

func mustLadder(spans ...Span) Ladder {
	lad, err := NewLadder(spans...)
	if err != nil {
		panic(err)
	}
	return lad
}

var defaultLadder = mustLadder(
	NewSpan(MillisScale, 1, "ss.SSS"),
	NewSpan(MillisScale, 2, "ss.SSS"),
	NewSpan(MillisScale, 5, "ss.SSS"),
	NewSpan(MillisScale, 10, "ss.SSS"),
	NewSpan(MillisScale, 50, "ss.SS"),
	NewSpan(MillisScale, 100, "ss.SS"),
	NewSpan(MillisScale, 200, "ss.SS"),
	NewSpan(MillisScale, 500, "ss.SS"),

	NewSpan(SecScale, 1, "ss.SS"),
	NewSpan(SecScale, 2, "ss.S"),
	NewSpan(SecScale, 5, "ss.S"),
	NewSpan(SecScale, 10, "HH:mm:ss"),
	NewSpan(SecScale, 15, "HH:mm:ss"),
	NewSpan(SecScale, 20, "HH:mm:ss"),
	NewSpan(SecScale, 30, "HH:mm:ss"),

	NewSpan(MinScale, 1, "HH:mm:ss"),
	NewSpan(MinScale, 2, "HH:mm:ss"),
	NewSpan(MinScale, 5, "HH:mm:ss"),
	NewSpan(MinScale, 10, "HH:mm"),
	NewSpan(MinScale, 15, "HH:mm"),
	NewSpan(MinScale, 20, "HH:mm"),
	NewSpan(MinScale, 30, "HH:mm"),

	NewSpan(HourScale, 1, "HH:mm"),
	NewSpan(HourScale, 2, "HH:mm"),
	NewSpan(HourScale, 4, "HH:mm"),
	NewSpan(HourScale, 8, "HH:mm"),
	NewSpan(HourScale, 12, "HH:mm"),

	NewSpan(DayScale, 1, "EEE HH:mm"),
	NewSpan(DayScale, 2, "EEE HH:mm"),
	NewSpan(DayScale, 3, "EEE HH:mm"),
	NewSpan(DayScale, 5, "MM-dd"),
	NewSpan(DayScale, 10, "MM-dd"),
	NewSpan(DayScale, 15, "MM-dd"),

	NewSpan(MonthScale, 1, "MM-dd"),
	NewSpan(MonthScale, 2, "MM-dd"),
	NewSpan(MonthScale, 3, "MM-dd"),
	NewSpan(MonthScale, 4, "MM-dd"),
	NewSpan(MonthScale, 6, "yyyy-MM"),

	NewSpan(YearScale, 1, "yyyy-MM"),
	NewSpan(YearScale, 2, "yyyy-MM"),
	NewSpan(YearScale, 5, "yyyy"),
	NewSpan(YearScale, 10, "yyyy"),
	NewSpan(YearScale, 20, "yyyy"),
	NewSpan(YearScale, 100, "yyyy"),
	NewSpan(YearScale, 500, "yyyy"),
	NewSpan(YearScale, 1000, "yyyy"),
)

// DefaultLadder gives the spans used by date axes, from one millisecond to
// one thousand years.
func DefaultLadder() Ladder {
	return defaultLadder
}

func (l Ladder) Len() int {
	return len(l.spans)
}

func (l Ladder) At(i int) Span {
	return l.spans[i]
}

func (l Ladder) Millis(i int) int64 {
	return l.spans[i].Millis()
}

func (l Ladder) Spans() []Span {
	return append([]Span(nil), l.spans...)
}

func (l Ladder) layout(i int) *timefmt.Layout {
	return l.layouts[i]
}

func (l Ladder) midpoint(i int) float64 {
	return (float64(l.Millis(i)) + float64(l.Millis(i+1))) / 2
}

// selectPatternIndex gives the first span whose scale is comparable to
// span: the first i where span is below the midpoint between i and i+1.
// Spans past the last midpoint select the coarsest span.
func selectPatternIndex(l Ladder, span float64) int {
	for i := 0; i < l.Len()-1; i++ {
		if span < l.midpoint(i) {
			return i
		}
	}
	return l.Len() - 1
}

// refineStepIndex walks backward from the span before from and gives the
// first span whose step is strictly smaller than hint. It gives from when no
// span is smaller.
func refineStepIndex(l Ladder, from int, hint float64) int {
	for i := from - 1; i >= 0; i-- {
		if hint > float64(l.Millis(i)) {
			return i
		}
	}
	return from
}
