package ticks

import (
	"log/slog"
	"math"
)

// LogCalculator places ticks at the powers of ten of a logarithmic axis.
// When the labels overlap, only every n-th decade is kept.
type LogCalculator struct {
	calculator
	rg     Range
	scaler Scaler
	every  int
}

func NewLog(dir Direction, working, min, max float64, style Style, opts ...Option) (*LogCalculator, error) {
	rg := NewRange(min, max)
	if !rg.Valid() || rg.Min() <= 0 {
		return nil, ErrRange
	}
	c, _, err := newCalculator(dir, working, style, opts)
	if err != nil {
		return nil, err
	}
	l := LogCalculator{
		calculator: c,
		rg:         rg,
		scaler:     LogScaler(rg, working, c.space),
	}
	l.calculate()
	return &l, nil
}

// Every gives the number of decades between two ticks.
func (l *LogCalculator) Every() int {
	return l.every
}

func (l *LogCalculator) calculate() {
	if l.rg.Degenerate() {
		Logger().Debug("log axis: degenerate range", "min", l.rg.Min())
		return
	}
	if hint := l.hint(); l.collapsed(hint) {
		Logger().Debug("log axis: collapsed tick space", "space", l.space, "hint", hint)
		return
	}
	var (
		fst = math.Floor(l.scaler.Min() + niceEpsilon)
		lst = math.Ceil(l.scaler.Max() - niceEpsilon)
	)
	for l.every = 1; ; l.every++ {
		l.generate(fst, lst)
		px := l.scaler.Pixels(float64(l.every))
		ok := l.fits(px)
		Logger().Debug("log axis: fit",
			slog.Int("every", l.every),
			slog.Int("ticks", len(l.positions)),
			slog.Float64("pixels", px),
			slog.Bool("fits", ok),
		)
		if ok || len(l.positions) <= minTicksForFit || l.every >= maxEscalations {
			break
		}
	}
}

func (l *LogCalculator) generate(fst, lst float64) {
	l.reset()
	for e := fst; e <= lst; e += float64(l.every) {
		var decimals int
		if e < 0 {
			decimals = int(-e)
		}
		l.add(l.scaler.Scale(e), l.formatNumber(pow10(int(e)), decimals))
	}
}
