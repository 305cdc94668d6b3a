package suggest

import (
	"encoding/json"
	"fmt"
	"strings"

	"conmates/logger"
	"conmates/models"
)

// Parse strictly interprets raw model output as a JSON array of strings.
// Callers map the error to a fallback list; keeping the substitution at the
// call site keeps the never-fails guarantee auditable.
func Parse(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)

	var suggestions []string
	if err := json.Unmarshal([]byte(trimmed), &suggestions); err != nil {
		return nil, fmt.Errorf("model output is not a JSON array of strings: %w", err)
	}
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("model returned an empty suggestion array")
	}
	return suggestions, nil
}

// ParseSuggestions is the total variant of Parse: any parse failure resolves
// to the static fallback list for the category, so the result is never empty
// and never an error. A successfully parsed array is returned as-is without
// post-hoc count validation.
func ParseSuggestions(raw string, category models.Category) []string {
	suggestions, err := Parse(raw)
	if err != nil {
		logger.WarnWithFields("unparseable model output, using fallback", logger.Fields{
			"category":    string(category),
			"parse_error": err.Error(),
		})
		return FallbackFor(category)
	}
	return suggestions
}
