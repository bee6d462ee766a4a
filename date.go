package ticks

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/midbel/ticks/timefmt"
)

// DefaultOvershootSteps is the number of steps generated past the maximum
// of a date axis so that the last visible tick is never cut off before the
// caller clips the result.
const DefaultOvershootSteps = 2

const (
	// MaxDateMillis bounds the instants accepted by date axes, in
	// milliseconds on both sides of the epoch.
	MaxDateMillis = math.MaxInt64 / 4 * 3

	maxOvershootSteps = 64
	maxStepMillis     = 1 << 53
)

// DateCalculator places ticks on time axes. Values are milliseconds since
// the Unix epoch and steps are taken from a ladder of calendar spans.
type DateCalculator struct {
	calculator
	min       int64
	max       int64
	ladder    Ladder
	override  *timefmt.Layout
	overshoot int64

	patternIndex int
	stepIndex    int
	pattern      *timefmt.Layout
	values       []int64
}

// NewDate computes the ticks of an axis of working pixels showing the
// instants between min and max, given in milliseconds since the epoch.
//
// An invalid override pattern in style is reported as an error wrapping
// timefmt.ErrPattern. Instants beyond MaxDateMillis give ErrRange. A
// degenerate range or a tick space smaller than the spacing hint gives no
// ticks.
func NewDate(dir Direction, working float64, min, max int64, style Style, opts ...Option) (*DateCalculator, error) {
	if min > max {
		min, max = max, min
	}
	if min < -MaxDateMillis || max > MaxDateMillis {
		return nil, ErrRange
	}
	c, o, err := newCalculator(dir, working, style, opts)
	if err != nil {
		return nil, err
	}
	if o.ladder.Len() == 0 {
		return nil, LadderError{Message: "empty ladder"}
	}
	d := DateCalculator{
		calculator:   c,
		min:          min,
		max:          max,
		ladder:       o.ladder,
		overshoot:    int64(o.overshoot),
		patternIndex: -1,
		stepIndex:    -1,
	}
	switch {
	case style.DatePattern != "":
		d.override, err = timefmt.Compile(style.DatePattern)
		if err != nil {
			return nil, fmt.Errorf("date pattern: %w", err)
		}
	case style.DateFormat != "":
		d.override, err = timefmt.Strftime(style.DateFormat)
		if err != nil {
			return nil, fmt.Errorf("date format: %w", err)
		}
	}
	d.calculate()
	return &d, nil
}

func NewDateFromTime(dir Direction, working float64, from, to time.Time, style Style, opts ...Option) (*DateCalculator, error) {
	return NewDate(dir, working, from.UnixMilli(), to.UnixMilli(), style, opts...)
}

// Pattern gives the pattern used for the labels. It is empty when no ticks
// were produced.
func (d *DateCalculator) Pattern() string {
	if d.pattern == nil {
		return ""
	}
	return d.pattern.String()
}

// Values gives the instant of each tick in milliseconds since the epoch.
func (d *DateCalculator) Values() []int64 {
	return append([]int64(nil), d.values...)
}

// PatternSpan gives the span whose scale matches the data span and that
// provided the default pattern.
func (d *DateCalculator) PatternSpan() (Span, bool) {
	if d.patternIndex < 0 {
		return Span{}, false
	}
	return d.ladder.At(d.patternIndex), true
}

// StepSpan gives the span used as the distance between two ticks.
func (d *DateCalculator) StepSpan() (Span, bool) {
	if d.stepIndex < 0 {
		return Span{}, false
	}
	return d.ladder.At(d.stepIndex), true
}

func (d *DateCalculator) calculate() {
	if d.min == d.max {
		Logger().Debug("date axis: degenerate range", "min", d.min)
		return
	}
	hint := d.hint()
	if d.collapsed(hint) {
		Logger().Debug("date axis: collapsed tick space", "space", d.space, "hint", hint)
		return
	}
	var (
		span     = distance(d.max, d.min)
		stepHint = span / d.space * hint
	)
	d.patternIndex = selectPatternIndex(d.ladder, span)
	d.pattern = d.ladder.layout(d.patternIndex)
	if d.override != nil {
		d.pattern = d.override
	}
	index := refineStepIndex(d.ladder, d.patternIndex, stepHint)
	Logger().Debug("date axis: ladder",
		slog.String("pattern", d.ladder.At(d.patternIndex).String()),
		slog.String("step", d.ladder.At(index).String()),
		slog.Float64("hint", stepHint),
	)
	for {
		step := d.ladder.Millis(index)
		d.generate(step)
		px := float64(step) / span * d.space
		ok := len(d.positions) > 0 && d.fits(px)
		Logger().Debug("date axis: fit",
			slog.String("step", d.ladder.At(index).String()),
			slog.Int("ticks", len(d.positions)),
			slog.Float64("pixels", px),
			slog.Bool("fits", ok),
		)
		if ok || index == d.ladder.Len()-1 {
			break
		}
		index++
	}
	d.stepIndex = index
}

// generate produces the ticks from firstPosition up to overshoot steps past
// the maximum. Nothing is produced when there would be more than maxTicks
// of them.
func (d *DateCalculator) generate(step int64) {
	d.reset()
	d.values = d.values[:0]
	var (
		first = firstPosition(d.min, step)
		count = uint64(d.max-first)/uint64(step) + uint64(d.overshoot)
		span  = distance(d.max, d.min)
	)
	if count > maxTicks {
		Logger().Debug("date axis: too many ticks", "step", step, "ticks", count)
		return
	}
	for i := int64(0); i <= int64(count); i++ {
		ms := first + i*step
		d.values = append(d.values, ms)
		t := time.UnixMilli(ms).In(d.location)
		d.add(ToPixel(distance(ms, d.min), 0, span, d.margin, d.space), d.pattern.Format(t, d.locale))
	}
}

// firstPosition gives the multiple of step found by rounding min toward
// zero, less one step. It is never above min.
func firstPosition(min, step int64) int64 {
	return min - min%step - step
}

// distance gives a-b without overflowing int64.
func distance(a, b int64) float64 {
	if a >= b {
		return float64(uint64(a - b))
	}
	return -float64(uint64(b - a))
}
