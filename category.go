package ticks

// CategoryCalculator places one tick in the middle of the band of each
// category. Labels are the category names.
type CategoryCalculator struct {
	calculator
	scaler StringScaler
}

func NewCategory(dir Direction, working float64, names []string, style Style, opts ...Option) (*CategoryCalculator, error) {
	c, _, err := newCalculator(dir, working, style, opts)
	if err != nil {
		return nil, err
	}
	cat := CategoryCalculator{
		calculator: c,
		scaler:     NewStringScaler(names, working, c.space),
	}
	cat.calculate()
	return &cat, nil
}

// Band gives the width in pixels allotted to each category.
func (c *CategoryCalculator) Band() float64 {
	return c.scaler.Band()
}

// Fits reports whether the category names fit in their band.
func (c *CategoryCalculator) Fits() bool {
	return c.fits(c.Band())
}

func (c *CategoryCalculator) calculate() {
	if c.space <= 0 {
		return
	}
	for i, str := range c.scaler.Strings {
		c.add(c.scaler.at(i), str)
	}
}
