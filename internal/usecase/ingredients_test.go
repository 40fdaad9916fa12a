package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIngredients(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "splits on commas",
			raw:      "Sugar, Salt, Water",
			expected: []string{"Sugar", "Salt", "Water"},
		},
		{
			name:     "splits on mixed delimiters",
			raw:      "Sugar, Salt;Water•Milk",
			expected: []string{"Sugar", "Salt", "Water", "Milk"},
		},
		{
			name:     "empty input yields empty list",
			raw:      "",
			expected: []string{},
		},
		{
			name:     "whitespace-only fragments are dropped",
			raw:      "  , ,",
			expected: []string{},
		},
		{
			name:     "trims surrounding whitespace",
			raw:      "  Whole wheat flour ;  water  ",
			expected: []string{"Whole wheat flour", "water"},
		},
		{
			name:     "no delimiter yields single entry",
			raw:      "Carbonated water",
			expected: []string{"Carbonated water"},
		},
		{
			name:     "duplicates are preserved in order",
			raw:      "Sugar, Water, Sugar",
			expected: []string{"Sugar", "Water", "Sugar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseIngredients(tt.raw)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseIngredients_NoEmptyEntries(t *testing.T) {
	inputs := []string{
		"a,,b",
		";;;",
		"•  • x •",
		", trailing,",
	}

	for _, raw := range inputs {
		for _, item := range ParseIngredients(raw) {
			assert.NotEmpty(t, item, "input %q produced an empty entry", raw)
		}
	}
}
