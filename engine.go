package ticks

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/midbel/ticks/timefmt"
)

// LabelClearance is the factor applied to the widest label before it is
// compared with the pixels between two ticks.
const LabelClearance = 1.1

const (
	shortAxisSpace = 160
	shortAxisHint  = 25
	maxEscalations = 64
	minTicksForFit = 2
	maxTicks       = 1 << 16
)

type Option func(*options)

type options struct {
	measurer  Measurer
	ladder    Ladder
	overshoot int
}

// WithMeasurer sets the measurer used by the fit test. By default labels
// are measured with a fixed width face at the size given by the style.
func WithMeasurer(m Measurer) Option {
	return func(o *options) {
		o.measurer = m
	}
}

// WithLadder replaces the ladder of date calculators.
func WithLadder(l Ladder) Option {
	return func(o *options) {
		o.ladder = l
	}
}

// WithOvershoot sets how many steps past the maximum date axes generate.
// Negative values are ignored and values above 64 are capped.
func WithOvershoot(steps int) Option {
	return func(o *options) {
		if steps >= 0 {
			o.overshoot = min(steps, maxOvershootSteps)
		}
	}
}

func defaultOptions(style Style) options {
	return options{
		measurer:  DefaultMeasurer(style.Text.Size),
		ladder:    DefaultLadder(),
		overshoot: DefaultOvershootSteps,
	}
}

// calculator holds what every tick calculator shares: the pixel budget,
// the resolved style and the ticks generated by the last iteration.
type calculator struct {
	dir     Direction
	working float64
	space   float64
	margin  float64

	style    Style
	tag      language.Tag
	location *time.Location
	locale   timefmt.Locale
	printer  *message.Printer
	measurer Measurer

	positions []float64
	labels    []string
}

func newCalculator(dir Direction, working float64, style Style, opts []Option) (calculator, options, error) {
	var c calculator
	tag, loc, err := style.resolve()
	if err != nil {
		return c, options{}, err
	}
	o := defaultOptions(style)
	for _, fn := range opts {
		fn(&o)
	}
	c = calculator{
		dir:      dir,
		working:  working,
		space:    style.TickSpace * working,
		style:    style,
		tag:      tag,
		location: loc,
		locale:   timefmt.LocaleFor(tag),
		printer:  message.NewPrinter(tag),
		measurer: o.measurer,
	}
	c.margin = TickStartOffset(c.working, c.space)
	return c, o, nil
}

func (c *calculator) hint() float64 {
	return c.style.Hint(c.dir)
}

// collapsed reports whether the tick space is too small to hold even one
// tick spacing. Calculators give no ticks in that case.
func (c *calculator) collapsed(hint float64) bool {
	return c.space < hint
}

func (c *calculator) reset() {
	c.positions = c.positions[:0]
	c.labels = c.labels[:0]
}

func (c *calculator) add(pos float64, label string) {
	c.positions = append(c.positions, pos)
	c.labels = append(c.labels, label)
}

// fits runs the fit test on the labels of the current iteration. Labels of
// vertical axes are written horizontally and are assumed to always fit.
func (c *calculator) fits(gridStepPixels float64) bool {
	if c.dir == DirectionY {
		return true
	}
	return Fits(c.measurer, c.labels, gridStepPixels)
}

func (c *calculator) formatNumber(v float64, decimals int) string {
	if v == 0 {
		v = 0
	}
	return c.printer.Sprint(number.Decimal(v, number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)))
}

// Result gives a copy of the ticks computed by the calculator.
func (c *calculator) Result() Result {
	return Result{
		Positions: append([]float64(nil), c.positions...),
		Labels:    append([]string(nil), c.labels...),
	}
}

func (c *calculator) Direction() Direction {
	return c.dir
}

// Fits reports whether the widest of labels, with some clearance, is
// narrower than gridStepPixels.
func Fits(m Measurer, labels []string, gridStepPixels float64) bool {
	if len(labels) == 0 {
		return true
	}
	var widest float64
	for _, str := range labels {
		if w := m.Measure(str); w > widest {
			widest = w
		}
	}
	return widest*LabelClearance < gridStepPixels
}
