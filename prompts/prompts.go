package prompts

import (
	"fmt"
	"strings"

	"conmates/models"
)

// historyWindow is how many of the most recent messages are included in the
// suggestion prompt context block.
const historyWindow = 3

const suggestionSystemInstruction = `You are a helpful assistant for a rental housing support platform.
Given the topic of an ongoing support conversation and its most recent
messages, propose 3-4 short follow-up questions the renter is likely to ask
next.
Each suggestion must be a single short question, phrased from the renter's
point of view.
Respond with only a JSON array of strings. Do not wrap the output in a
markdown code block and do not add any text before or after the array.`

const leaseAnalysisSystemInstruction = `You are a lease review assistant for renters. Analyze the provided lease text and cover the following five dimensions:
1. Key clauses: the terms that matter most (rent, deposit, duration, renewal, termination).
2. Red flags: clauses that are unusual, one-sided, or potentially unenforceable.
3. Missing protections: standard tenant protections the lease does not include.
4. Rights and responsibilities: what the tenant must do and what they are entitled to.
5. Important dates: deadlines, notice periods, and other dates the tenant should track.
Write for a non-lawyer. Be concrete and cite the relevant lease language where possible.`

// BuildSuggestionPrompt formats a chat context into the instruction and task
// strings for a suggestion-generation call. Pure: identical input yields
// identical output, no I/O.
func BuildSuggestionPrompt(ctx models.ChatContext) (system string, task string) {
	system = suggestionSystemInstruction

	task = fmt.Sprintf("Conversation topic: %s\n\nRecent messages:\n%s\n\nReturn only a JSON array of strings.",
		ctx.Category, formatHistory(ctx.PreviousMessages))
	return system, task
}

// formatHistory renders at most the last historyWindow messages as
// "role: content" lines in chronological order. Empty history produces an
// empty block; the prompt stays well-formed either way.
func formatHistory(messages []models.ChatMessage) string {
	if len(messages) == 0 {
		return ""
	}

	start := 0
	if len(messages) > historyWindow {
		start = len(messages) - historyWindow
	}

	lines := make([]string, 0, historyWindow)
	for _, m := range messages[start:] {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Role, m.Content))
	}
	return strings.Join(lines, "\n")
}

// BuildLeaseAnalysisPrompt formats raw lease text into the instruction and
// task strings for an analysis call. The caller is responsible for bounding
// the input size; no truncation happens here.
func BuildLeaseAnalysisPrompt(leaseText string) (system string, task string) {
	system = leaseAnalysisSystemInstruction
	task = fmt.Sprintf("Analyze the following lease document:\n\n%s", leaseText)
	return system, task
}
