package ticks

import (
	"log/slog"
	"math"
)

// NumericCalculator places ticks on continuous numeric axes. Steps are taken
// from the 1, 2, 5 ladder.
type NumericCalculator struct {
	calculator
	scaler Scaler
	step   niceStep
	values []float64
}

// NewNumeric computes the ticks of an axis of working pixels showing values
// between min and max. A degenerate range or a tick space smaller than the
// spacing hint gives no ticks.
func NewNumeric(dir Direction, working, min, max float64, style Style, opts ...Option) (*NumericCalculator, error) {
	rg := NewRange(min, max)
	if !rg.Valid() {
		return nil, ErrRange
	}
	c, _, err := newCalculator(dir, working, style, opts)
	if err != nil {
		return nil, err
	}
	n := NumericCalculator{
		calculator: c,
		scaler:     NumberScaler(rg, working, c.space),
	}
	n.calculate()
	return &n, nil
}

// Step gives the distance between two ticks in data units. It is zero when
// no ticks were produced.
func (n *NumericCalculator) Step() float64 {
	if len(n.positions) == 0 {
		return 0
	}
	return n.step.Value()
}

// Values gives the data value of each tick.
func (n *NumericCalculator) Values() []float64 {
	return append([]float64(nil), n.values...)
}

func (n *NumericCalculator) hint() float64 {
	hint := n.calculator.hint()
	if n.dir == DirectionY && n.space < shortAxisSpace {
		hint = shortAxisHint
	}
	return hint
}

func (n *NumericCalculator) calculate() {
	if n.scaler.Degenerate() {
		Logger().Debug("numeric axis: degenerate range", "min", n.scaler.Min())
		return
	}
	hint := n.hint()
	if n.collapsed(hint) {
		Logger().Debug("numeric axis: collapsed tick space", "space", n.space, "hint", hint)
		return
	}
	raw := n.scaler.Len() / (n.space / hint)
	n.step = roundUpStep(raw)
	for i := 0; i < maxEscalations; i++ {
		n.generate(n.step)
		px := n.scaler.Pixels(n.step.Value())
		ok := n.fits(px)
		Logger().Debug("numeric axis: fit",
			slog.String("step", n.step.String()),
			slog.Int("ticks", len(n.positions)),
			slog.Float64("pixels", px),
			slog.Bool("fits", ok),
		)
		if ok || len(n.positions) <= minTicksForFit {
			break
		}
		n.step = n.step.next()
	}
}

// generate produces the multiples of step from the smallest one not below
// the minimum to the first one not below the maximum. Nothing is produced
// when the multiples can not be told apart in float64 or when there would
// be more than maxTicks of them.
func (n *NumericCalculator) generate(step niceStep) {
	n.reset()
	n.values = n.values[:0]
	var (
		size = step.Value()
		fst  = math.Ceil(n.scaler.Min()/size - niceEpsilon)
		lst  = math.Ceil(n.scaler.Max()/size - niceEpsilon)
	)
	if fst+1 == fst || lst-fst > maxTicks {
		Logger().Debug("numeric axis: step out of precision",
			slog.String("step", step.String()),
			slog.Float64("first", fst),
			slog.Float64("last", lst),
		)
		return
	}
	count := int(lst - fst)
	for i := 0; i <= count; i++ {
		v := (fst + float64(i)) * size
		n.values = append(n.values, v)
		n.add(n.scaler.Scale(v), n.formatNumber(v, step.decimals()))
	}
}
