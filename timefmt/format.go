// Package timefmt formats times with the letter patterns used by chart date
// axes, such as "yyyy-MM-dd" or "EEE HH:mm".
package timefmt

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

var ErrPattern = errors.New("invalid date pattern")

type PatternError struct {
	Pattern string
	Offset  int
	Message string
}

func (e PatternError) Error() string {
	return fmt.Sprintf("%s at offset %d in %q", e.Message, e.Offset, e.Pattern)
}

func (e PatternError) Unwrap() error {
	return ErrPattern
}

const quote = '\''

var letters = map[rune]string{
	'y': "year",
	'M': "month",
	'd': "day of month",
	'D': "day of year",
	'E': "day of week",
	'a': "am/pm marker",
	'H': "hour (0-23)",
	'k': "hour (1-24)",
	'K': "hour (0-11)",
	'h': "hour (1-12)",
	'm': "minute",
	's': "second",
	'S': "fraction of second",
	'z': "zone name",
	'Z': "zone offset",
}

type field struct {
	letter  rune
	count   int
	literal string
	blank   bool
}

type Layout struct {
	pattern string
	fields  []field
}

func MustCompile(pattern string) *Layout {
	l, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return l
}

// Compile parses pattern. Letters a-z and A-Z are reserved for fields and
// any other text is copied as is. Text between single quotes is taken
// literally and two consecutive quotes produce one quote.
func Compile(pattern string) (*Layout, error) {
	var (
		layout = Layout{pattern: pattern}
		lit    strings.Builder
		offset int
	)
	flush := func() {
		if lit.Len() == 0 {
			return
		}
		layout.fields = append(layout.fields, field{literal: lit.String()})
		lit.Reset()
	}
	for offset < len(pattern) {
		r, n := utf8.DecodeRuneInString(pattern[offset:])
		if r == utf8.RuneError {
			return nil, PatternError{Pattern: pattern, Offset: offset, Message: "invalid character"}
		}
		switch {
		case r == quote:
			if strings.HasPrefix(pattern[offset+n:], "'") {
				lit.WriteRune(quote)
				offset += 2 * n
				break
			}
			var (
				at     = offset
				closed bool
			)
			for offset += n; offset < len(pattern); {
				if pattern[offset] != quote {
					_, z := utf8.DecodeRuneInString(pattern[offset:])
					lit.WriteString(pattern[offset : offset+z])
					offset += z
					continue
				}
				if strings.HasPrefix(pattern[offset+1:], "'") {
					lit.WriteRune(quote)
					offset += 2
					continue
				}
				offset++
				closed = true
				break
			}
			if !closed {
				return nil, PatternError{Pattern: pattern, Offset: at, Message: "unterminated quote"}
			}
		case isLetter(r):
			if _, ok := letters[r]; !ok {
				return nil, PatternError{Pattern: pattern, Offset: offset, Message: fmt.Sprintf("unknown pattern letter %c", r)}
			}
			flush()
			count := 1
			for offset+count < len(pattern) && rune(pattern[offset+count]) == r {
				count++
			}
			layout.fields = append(layout.fields, field{letter: r, count: count})
			offset += count
		default:
			lit.WriteRune(r)
			offset += n
		}
	}
	flush()
	return &layout, nil
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func (l *Layout) String() string {
	return l.pattern
}

// Format renders t as described by the layout. Names of months, days and
// the am/pm marker are translated into loc.
func (l *Layout) Format(t time.Time, loc Locale) string {
	var w strings.Builder
	for _, f := range l.fields {
		if f.letter == 0 {
			w.WriteString(f.literal)
			continue
		}
		w.WriteString(f.format(t, loc))
	}
	return w.String()
}

func (f field) format(t time.Time, loc Locale) string {
	switch f.letter {
	case 'y':
		if f.count == 2 {
			return t.Format("06")
		}
		return f.pad(t.Year())
	case 'M':
		switch {
		case f.count >= 4:
			return monday.Format(t, "January", monday.Locale(loc))
		case f.count == 3:
			return monday.Format(t, "Jan", monday.Locale(loc))
		default:
			return f.pad(int(t.Month()))
		}
	case 'd':
		return f.pad(t.Day())
	case 'D':
		return f.pad(t.YearDay())
	case 'E':
		if f.count >= 4 {
			return monday.Format(t, "Monday", monday.Locale(loc))
		}
		return monday.Format(t, "Mon", monday.Locale(loc))
	case 'a':
		return monday.Format(t, "PM", monday.Locale(loc))
	case 'H':
		return f.pad(t.Hour())
	case 'k':
		h := t.Hour()
		if h == 0 {
			h = 24
		}
		return f.pad(h)
	case 'K':
		return f.pad(t.Hour()%12)
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return f.pad(h)
	case 'm':
		return f.pad(t.Minute())
	case 's':
		return f.pad(t.Second())
	case 'S':
		return fraction(t.Nanosecond(), f.count)
	case 'z':
		return t.Format("MST")
	case 'Z':
		return t.Format("-0700")
	default:
		return ""
	}
}

// pad pads v to the width of the field, with spaces for blank fields.
func (f field) pad(v int) string {
	if f.blank {
		return fmt.Sprintf("%*d", f.count, v)
	}
	return pad(v, f.count)
}

func pad(v, n int) string {
	return fmt.Sprintf("%0*d", n, v)
}

// fraction gives the first n digits of the fractional part of a second.
func fraction(nsec, n int) string {
	str := fmt.Sprintf("%09d", nsec)
	if n <= len(str) {
		return str[:n]
	}
	return str + strings.Repeat("0", n-len(str))
}

type Locale string

const English = Locale(monday.LocaleEnUS)

var supported = sortedLocales()

func sortedLocales() []monday.Locale {
	list := monday.ListLocales()
	slices.Sort(list)
	return list
}

// LocaleFor picks the locale used to translate names for tag. Languages
// without translations fall back to English.
func LocaleFor(tag language.Tag) Locale {
	var (
		base, _   = tag.Base()
		region, _ = tag.Region()
		want      = monday.Locale(base.String() + "_" + region.String())
		prefix    = base.String() + "_"
	)
	for _, loc := range supported {
		if loc == want {
			return Locale(loc)
		}
	}
	for _, loc := range supported {
		if strings.HasPrefix(string(loc), prefix) {
			return Locale(loc)
		}
	}
	return English
}
