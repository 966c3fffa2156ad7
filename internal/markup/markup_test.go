package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Span
	}{
		{
			name:  "Single bold segment",
			input: "Hello **World**!",
			expected: []Span{
				{Text: "Hello "},
				{Text: "World", Bold: true},
				{Text: "!"},
			},
		},
		{
			name:     "No markup",
			input:    "Just plain text",
			expected: []Span{{Text: "Just plain text"}},
		},
		{
			name:     "Unmatched marker degrades to plain",
			input:    "**Oops",
			expected: []Span{{Text: "**Oops"}},
		},
		{
			name:  "Trailing unmatched marker stays plain",
			input: "**Bold** and **broken",
			expected: []Span{
				{Text: "Bold", Bold: true},
				{Text: " and **broken"},
			},
		},
		{
			name:  "Multiple bold segments",
			input: "**A** then **B**",
			expected: []Span{
				{Text: "A", Bold: true},
				{Text: " then "},
				{Text: "B", Bold: true},
			},
		},
		{
			name:  "Bold at start",
			input: "**Order #12345** confirmed",
			expected: []Span{
				{Text: "Order #12345", Bold: true},
				{Text: " confirmed"},
			},
		},
		{
			name:     "Empty bold segment dropped",
			input:    "a****b",
			expected: []Span{{Text: "a"}, {Text: "b"}},
		},
		{
			name:     "Empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.input))
		})
	}
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "Hello World!", Strip("Hello **World**!"))
	assert.Equal(t, "**Oops", Strip("**Oops"))
	assert.Equal(t, "", Strip(""))
}
