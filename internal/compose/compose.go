// Package compose renders message templates and records where each
// substituted value ends up, in the UTF-16 units Telegram entities use.
package compose

import (
	"strings"
	"unicode/utf16"
)

// Placeholder marks a substitution point in a template
const Placeholder = '&'

// Span is a substituted value's position in the rendered text
type Span struct {
	Offset int
	Length int
}

// Compose replaces each Placeholder, left to right, with the next value.
// Placeholders left over once values run out are kept as literal text.
func Compose(template string, values ...string) (string, []Span) {
	var (
		b     strings.Builder
		spans = make([]Span, 0, len(values))
		pos   int
		next  int
	)

	b.Grow(len(template))

	for _, r := range template {
		if r == Placeholder && next < len(values) {
			v := values[next]
			n := utf16Len(v)
			b.WriteString(v)
			spans = append(spans, Span{Offset: pos, Length: n})
			pos += n
			next++
			continue
		}

		b.WriteRune(r)
		pos += utf16.RuneLen(r)
	}

	return b.String(), spans
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
