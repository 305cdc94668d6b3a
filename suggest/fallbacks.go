package suggest

import "conmates/models"

// fallbacks maps each known category to its canned suggestion list. The
// tables are fixed at compile time and must never be mutated; FallbackFor
// always hands out a copy.
var fallbacks = map[models.Category][]string{
	models.CategoryLeaseHelp: {
		"Explain this clause in simple terms",
		"What should I watch out for?",
		"Is this standard in most leases?",
		"What are my options here?",
	},
	models.CategoryPlatformHelp: {
		"How do I upload my lease?",
		"Where can I find my lease summary?",
		"How do I message my landlord?",
		"What do the paid plans include?",
	},
	models.CategoryLegalAdvice: {
		"What are my rights as a tenant?",
		"Is this legal in my state?",
		"Should I talk to a lawyer about this?",
		"What does the law say about this?",
	},
	models.CategoryGeneral: {
		"Tell me more about this",
		"What should I do next?",
		"Where can I learn more?",
		"Can you give me an example?",
	},
}

// FallbackFor returns the canned suggestion list for a category. Unknown
// categories degrade to the general list, never to an empty result.
func FallbackFor(category models.Category) []string {
	list, ok := fallbacks[category]
	if !ok {
		list = fallbacks[models.CategoryGeneral]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
