package usecase

import (
	"regexp"
	"strings"
)

// Ingredient lists arrive as free text; entries are separated by commas,
// semicolons, or bullet characters depending on who entered the data.
var ingredientDelimiterRegex = regexp.MustCompile(`[,;•]`)

// ParseIngredients converts a raw ingredients string into a clean list.
// Fragments are trimmed and empty entries dropped; input order is preserved
// and nothing is deduplicated. An empty input yields an empty list.
func ParseIngredients(raw string) []string {
	cleaned := []string{}
	if raw == "" {
		return cleaned
	}

	for _, part := range ingredientDelimiterRegex.Split(raw, -1) {
		if item := strings.TrimSpace(part); item != "" {
			cleaned = append(cleaned, item)
		}
	}

	return cleaned
}
