package ticks

import (
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTickSpace    = 0.9
	DefaultSpacingHint  = 74
	DefaultYSpacingHint = 44
	DefaultFontSize     = 12.0
	DefaultLocale       = "en-US"
	DefaultTimezone     = "UTC"
)

// Style is the read-only configuration shared by every calculator. A copy
// is taken when a calculator is built.
type Style struct {
	// TickSpace is the fraction of the working space where ticks are
	// placed. The rest is split evenly into margins on both ends.
	TickSpace float64 `yaml:"tick-space"`

	SpacingHint  float64 `yaml:"spacing-hint"`
	YSpacingHint float64 `yaml:"y-spacing-hint"`

	// DatePattern overrides the pattern of the selected ladder span when
	// not empty.
	DatePattern string `yaml:"date-pattern"`
	// DateFormat is the same override written with strftime specifiers. It
	// is ignored when DatePattern is set.
	DateFormat string `yaml:"date-format"`

	Locale   string `yaml:"locale"`
	Timezone string `yaml:"timezone"`

	Text struct {
		Size float64 `yaml:"size"`
	} `yaml:"text"`
}

func DefaultStyle() Style {
	var s Style
	s.TickSpace = DefaultTickSpace
	s.SpacingHint = DefaultSpacingHint
	s.YSpacingHint = DefaultYSpacingHint
	s.Locale = DefaultLocale
	s.Timezone = DefaultTimezone
	s.Text.Size = DefaultFontSize
	return s
}

// LoadStyle decodes a YAML style document. Keys missing from the document
// keep their default value.
func LoadStyle(r io.Reader) (Style, error) {
	s := DefaultStyle()
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("style: %w", err)
	}
	return s, s.Validate()
}

func (s Style) Validate() error {
	_, _, err := s.resolve()
	return err
}

// Hint gives the spacing hint for axes running in the given direction.
func (s Style) Hint(dir Direction) float64 {
	if dir == DirectionY {
		return s.YSpacingHint
	}
	return s.SpacingHint
}

func (s Style) resolve() (language.Tag, *time.Location, error) {
	if s.TickSpace <= 0 || s.TickSpace > 1 {
		return language.Und, nil, StyleError{Field: "tick-space", Value: s.TickSpace}
	}
	if s.SpacingHint <= 0 {
		return language.Und, nil, StyleError{Field: "spacing-hint", Value: s.SpacingHint}
	}
	if s.YSpacingHint <= 0 {
		return language.Und, nil, StyleError{Field: "y-spacing-hint", Value: s.YSpacingHint}
	}
	locale := s.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, nil, StyleError{Field: "locale", Value: locale, Err: err}
	}
	zone := s.Timezone
	if zone == "" {
		zone = DefaultTimezone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return language.Und, nil, StyleError{Field: "timezone", Value: zone, Err: err}
	}
	return tag, loc, nil
}
