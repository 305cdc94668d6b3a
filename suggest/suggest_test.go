package suggest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"conmates/models"
	"conmates/suggest"
)

func TestParseSuggestionsValidJSON(t *testing.T) {
	raw := `["How long is the notice period?", "Can I negotiate the rent?", "What happens if I break the lease?"]`
	got := suggest.ParseSuggestions(raw, models.CategoryLeaseHelp)
	assert.Equal(t, []string{
		"How long is the notice period?",
		"Can I negotiate the rent?",
		"What happens if I break the lease?",
	}, got)
}

func TestParseSuggestionsTotalFunction(t *testing.T) {
	// Whatever the model returns, the result is a non-empty list of strings.
	inputs := []string{
		"not json",
		"",
		"{\"suggestions\": [\"a\"]}",
		"[1, 2, 3]",
		"null",
		"[]",
		"[\"ok\", 42]",
	}
	categories := []models.Category{
		models.CategoryLeaseHelp,
		models.CategoryPlatformHelp,
		models.CategoryLegalAdvice,
		models.CategoryGeneral,
		models.Category("no-such-category"),
	}

	for _, raw := range inputs {
		for _, cat := range categories {
			got := suggest.ParseSuggestions(raw, cat)
			assert.NotEmpty(t, got, "raw=%q category=%q", raw, cat)
		}
	}
}

func TestParseSuggestionsCategoryFallbacks(t *testing.T) {
	// Each known category falls back to its own list, not the general one.
	for _, cat := range []models.Category{
		models.CategoryLeaseHelp,
		models.CategoryPlatformHelp,
		models.CategoryLegalAdvice,
	} {
		got := suggest.ParseSuggestions("not json", cat)
		assert.Equal(t, suggest.FallbackFor(cat), got)
		assert.NotEqual(t, suggest.FallbackFor(models.CategoryGeneral), got)
	}
}

func TestParseSuggestionsLeaseHelpFallbackContent(t *testing.T) {
	got := suggest.ParseSuggestions("garbage", models.CategoryLeaseHelp)
	assert.Equal(t, []string{
		"Explain this clause in simple terms",
		"What should I watch out for?",
		"Is this standard in most leases?",
		"What are my options here?",
	}, got)
}

func TestParseSuggestionsGeneralFallbackContent(t *testing.T) {
	got := suggest.ParseSuggestions("not json", models.CategoryGeneral)
	assert.Len(t, got, 4)
	assert.Equal(t, "Tell me more about this", got[0])
}

func TestFallbackForUnknownCategoryDeterministic(t *testing.T) {
	first := suggest.FallbackFor(models.Category("made-up"))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, suggest.FallbackFor(models.Category("made-up")))
	}
	assert.Equal(t, suggest.FallbackFor(models.CategoryGeneral), first)
}

func TestFallbackForReturnsCopy(t *testing.T) {
	got := suggest.FallbackFor(models.CategoryLeaseHelp)
	got[0] = "mutated"
	assert.Equal(t, "Explain this clause in simple terms",
		suggest.FallbackFor(models.CategoryLeaseHelp)[0])
}
