// Package markup parses the small **bold** subset of markdown used in
// chat message text.
package markup

import "strings"

// Span is a run of text rendered either plain or bold.
type Span struct {
	Text string
	Bold bool
}

// Parse splits text on **...** delimiters into renderable spans. A segment
// is bold only when it is fully delimited; unmatched markers degrade to
// plain text. Empty spans are dropped.
func Parse(text string) []Span {
	if text == "" {
		return nil
	}

	spans := make([]Span, 0, 4)
	rest := text
	for {
		start := strings.Index(rest, "**")
		if start < 0 {
			break
		}
		end := strings.Index(rest[start+2:], "**")
		if end < 0 {
			// Unmatched opener: the remainder stays plain.
			break
		}
		end += start + 2

		if start > 0 {
			spans = append(spans, Span{Text: rest[:start]})
		}
		if inner := rest[start+2 : end]; inner != "" {
			spans = append(spans, Span{Text: inner, Bold: true})
		}
		rest = rest[end+2:]
	}

	if rest != "" {
		spans = append(spans, Span{Text: rest})
	}
	return spans
}

// Strip returns text with all bold markers removed.
func Strip(text string) string {
	var b strings.Builder
	for _, span := range Parse(text) {
		b.WriteString(span.Text)
	}
	return b.String()
}
