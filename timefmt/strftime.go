package timefmt

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const percent = '%'

var specifiers = map[rune][]field{
	'D': {{letter: 'M', count: 2}, {literal: "/"}, {letter: 'd', count: 2}, {literal: "/"}, {letter: 'y', count: 2}},
	'Y': {{letter: 'y', count: 4}},
	'y': {{letter: 'y', count: 2}},
	'm': {{letter: 'M', count: 2}},
	'B': {{letter: 'M', count: 4}},
	'b': {{letter: 'M', count: 3}},
	'h': {{letter: 'M', count: 3}},
	'd': {{letter: 'd', count: 2}},
	'e': {{letter: 'd', count: 2, blank: true}},
	'j': {{letter: 'D', count: 3}},
	'A': {{letter: 'E', count: 4}},
	'a': {{letter: 'E', count: 3}},
	'H': {{letter: 'H', count: 2}},
	'I': {{letter: 'h', count: 2}},
	'l': {{letter: 'h', count: 2, blank: true}},
	'k': {{letter: 'H', count: 2, blank: true}},
	'M': {{letter: 'm', count: 2}},
	'S': {{letter: 's', count: 2}},
	'L': {{letter: 'S', count: 3}},
	'p': {{letter: 'a', count: 1}},
	'T': {{letter: 'H', count: 2}, {literal: ":"}, {letter: 'm', count: 2}, {literal: ":"}, {letter: 's', count: 2}},
	'F': {{letter: 'y', count: 4}, {literal: "-"}, {letter: 'M', count: 2}, {literal: "-"}, {letter: 'd', count: 2}},
	'R': {{letter: 'H', count: 2}, {literal: ":"}, {letter: 'm', count: 2}},
	'z': {{letter: 'Z', count: 1}},
	'Z': {{letter: 'z', count: 1}},
	'%': {{literal: "%"}},
	'n': {{literal: "\n"}},
	't': {{literal: "\t"}},
}

// Strftime compiles a format made of %-specifiers, as used by strftime, into
// a layout.
func Strftime(format string) (*Layout, error) {
	var (
		layout = Layout{pattern: format}
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
	for offset < len(format) {
		r, n := utf8.DecodeRuneInString(format[offset:])
		if r == utf8.RuneError {
			return nil, PatternError{Pattern: format, Offset: offset, Message: "invalid character"}
		}
		if r != percent {
			lit.WriteRune(r)
			offset += n
			continue
		}
		x, z := utf8.DecodeRuneInString(format[offset+n:])
		fields, ok := specifiers[x]
		if !ok {
			return nil, PatternError{Pattern: format, Offset: offset, Message: fmt.Sprintf("invalid specifier %%%c", x)}
		}
		flush()
		layout.fields = append(layout.fields, fields...)
		offset += n + z
	}
	flush()
	return &layout, nil
}
