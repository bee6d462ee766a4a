package ticks

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Measurer gives the width in pixels of a string rendered in the font of
// the tick labels.
type Measurer interface {
	Measure(string) float64
}

type MeasureFunc func(string) float64

func (f MeasureFunc) Measure(str string) float64 {
	return f(str)
}

// FontMeasurer measures strings with a font face. Widths are multiplied by
// Scale when it is not zero.
type FontMeasurer struct {
	Face  font.Face
	Scale float64
}

// DefaultMeasurer measures with the fixed 7x13 face scaled to size pixels.
func DefaultMeasurer(size float64) FontMeasurer {
	var scale float64
	if size > 0 {
		scale = size / float64(basicfont.Face7x13.Height)
	}
	return FontMeasurer{
		Face:  basicfont.Face7x13,
		Scale: scale,
	}
}

// NewFontMeasurer parses TrueType or OpenType data and measures strings at
// size points with 72 DPI.
func NewFontMeasurer(data []byte, size float64) (FontMeasurer, error) {
	var m FontMeasurer
	f, err := opentype.Parse(data)
	if err != nil {
		return m, fmt.Errorf("font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return m, fmt.Errorf("font: %w", err)
	}
	m.Face = face
	return m, nil
}

func (m FontMeasurer) Measure(str string) float64 {
	width := fixedToFloat(font.MeasureString(m.Face, str))
	if m.Scale != 0 {
		width *= m.Scale
	}
	return width
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
