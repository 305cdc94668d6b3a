package prompts_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conmates/models"
	"conmates/prompts"
)

func message(role, content string) models.ChatMessage {
	return models.ChatMessage{Role: role, Content: content, Timestamp: time.Now()}
}

func TestBuildSuggestionPromptDeterministic(t *testing.T) {
	ctx := models.ChatContext{
		SessionID: "s-1",
		Category:  models.CategoryLeaseHelp,
		PreviousMessages: []models.ChatMessage{
			message(models.RoleUser, "What does clause 7 mean?"),
			message(models.RoleAssistant, "Clause 7 covers subletting."),
		},
	}

	sys1, task1 := prompts.BuildSuggestionPrompt(ctx)
	sys2, task2 := prompts.BuildSuggestionPrompt(ctx)
	assert.Equal(t, sys1, sys2)
	assert.Equal(t, task1, task2)
}

func TestBuildSuggestionPromptEmbedsCategory(t *testing.T) {
	ctx := models.ChatContext{SessionID: "s-1", Category: models.CategoryLegalAdvice}
	_, task := prompts.BuildSuggestionPrompt(ctx)
	assert.Contains(t, task, "legal-advice")
}

func TestBuildSuggestionPromptRequestsJSONArray(t *testing.T) {
	ctx := models.ChatContext{SessionID: "s-1", Category: models.CategoryGeneral}
	sys, task := prompts.BuildSuggestionPrompt(ctx)
	assert.Contains(t, sys, "JSON array of strings")
	assert.Contains(t, task, "JSON array of strings")
}

func TestBuildSuggestionPromptHistoryWindow(t *testing.T) {
	makeMessages := func(n int) []models.ChatMessage {
		msgs := make([]models.ChatMessage, 0, n)
		for i := 0; i < n; i++ {
			role := models.RoleUser
			if i%2 == 1 {
				role = models.RoleAssistant
			}
			msgs = append(msgs, message(role, fmt.Sprintf("message %d", i)))
		}
		return msgs
	}

	cases := []struct {
		history  int
		included int
	}{
		{history: 0, included: 0},
		{history: 1, included: 1},
		{history: 3, included: 3},
		{history: 10, included: 3},
	}

	for _, tc := range cases {
		msgs := makeMessages(tc.history)
		ctx := models.ChatContext{SessionID: "s-1", Category: models.CategoryGeneral, PreviousMessages: msgs}
		_, task := prompts.BuildSuggestionPrompt(ctx)

		for i := 0; i < tc.history; i++ {
			line := fmt.Sprintf("message %d", i)
			if i >= tc.history-tc.included {
				assert.Contains(t, task, line, "history=%d should include %q", tc.history, line)
			} else {
				assert.NotContains(t, task, line, "history=%d should exclude %q", tc.history, line)
			}
		}
	}
}

func TestBuildSuggestionPromptHistoryOrder(t *testing.T) {
	msgs := []models.ChatMessage{
		message(models.RoleUser, "first question"),
		message(models.RoleAssistant, "first answer"),
		message(models.RoleUser, "second question"),
		message(models.RoleAssistant, "second answer"),
		message(models.RoleUser, "third question"),
	}
	ctx := models.ChatContext{SessionID: "s-1", Category: models.CategoryLeaseHelp, PreviousMessages: msgs}
	_, task := prompts.BuildSuggestionPrompt(ctx)

	// Only the last three messages appear, as "role: content" lines in
	// chronological order.
	assert.NotContains(t, task, "first question")
	assert.NotContains(t, task, "first answer")

	second := strings.Index(task, "user: second question")
	answer := strings.Index(task, "assistant: second answer")
	third := strings.Index(task, "user: third question")
	require.GreaterOrEqual(t, second, 0)
	require.GreaterOrEqual(t, answer, 0)
	require.GreaterOrEqual(t, third, 0)
	assert.Less(t, second, answer)
	assert.Less(t, answer, third)
}

func TestBuildLeaseAnalysisPrompt(t *testing.T) {
	leaseText := "Rent is $1200/month payable on the first."

	sys1, task1 := prompts.BuildLeaseAnalysisPrompt(leaseText)
	sys2, task2 := prompts.BuildLeaseAnalysisPrompt(leaseText)
	assert.Equal(t, sys1, sys2)
	assert.Equal(t, task1, task2)

	assert.Contains(t, task1, leaseText)
	for _, dimension := range []string{
		"Key clauses",
		"Red flags",
		"Missing protections",
		"Rights and responsibilities",
		"Important dates",
	} {
		assert.Contains(t, sys1, dimension)
	}
}
