package services

import (
	"context"
	"time"

	"conmates/llm"
	"conmates/logger"
	"conmates/models"
	"conmates/prompts"
	"conmates/quota"
	"conmates/suggest"
)

// Suggestion calls run hot: variety matters more than consistency, and the
// output is short.
const (
	suggestionTemperature     = 0.8
	suggestionMaxOutputTokens = 200
)

// SuggestionSource tells a caller where the returned list came from.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// AILogSink records one model call for diagnostics. Recording is
// best-effort; implementations must be safe for concurrent use.
type AILogSink interface {
	Insert(ctx context.Context, doc models.AILog) error
}

// SuggestionService produces follow-up question suggestions for an ongoing
// support conversation. It never fails for model reasons: every failure path
// resolves to the deterministic fallback list for the conversation category.
type SuggestionService struct {
	invoker llm.Invoker
	quota   *quota.LLMQuotaLimiter
	aiLogs  AILogSink
}

// NewSuggestionService wires the suggestion pipeline. quota and aiLogs may
// be nil (unlimited, unlogged).
func NewSuggestionService(invoker llm.Invoker, q *quota.LLMQuotaLimiter, aiLogs AILogSink) *SuggestionService {
	return &SuggestionService{invoker: invoker, quota: q, aiLogs: aiLogs}
}

// Generate returns 3-4 short follow-up questions plus the source they came
// from. The returned list is never empty. Invocation failures and
// unparseable model output take the same fallback path but are logged as
// distinct events.
func (s *SuggestionService) Generate(ctx context.Context, chatCtx models.ChatContext) ([]string, string) {
	if s.quota != nil {
		ok, err := s.quota.WaitAndReserve(ctx)
		if err != nil || !ok {
			logger.WarnWithFields("llm quota denied suggestion call, using fallback", logger.Fields{
				"category":   string(chatCtx.Category),
				"session_id": chatCtx.SessionID,
			})
			return suggest.FallbackFor(chatCtx.Category), SourceFallback
		}
	}

	system, task := prompts.BuildSuggestionPrompt(chatCtx)

	requestedAt := time.Now()
	raw, err := s.invoker.Invoke(ctx, llm.Request{
		System:          system,
		Task:            task,
		Temperature:     suggestionTemperature,
		MaxOutputTokens: suggestionMaxOutputTokens,
	})
	s.recordCall(ctx, "suggestions", task, raw, requestedAt, err)

	if err != nil {
		logger.ErrorWithFields("suggestion model invocation failed, using fallback", logger.Fields{
			"category":   string(chatCtx.Category),
			"session_id": chatCtx.SessionID,
			"error":      err.Error(),
		})
		return suggest.FallbackFor(chatCtx.Category), SourceFallback
	}

	suggestions, parseErr := suggest.Parse(raw)
	if parseErr != nil {
		logger.WarnWithFields("unparseable suggestion model output, using fallback", logger.Fields{
			"category":    string(chatCtx.Category),
			"session_id":  chatCtx.SessionID,
			"parse_error": parseErr.Error(),
		})
		return suggest.FallbackFor(chatCtx.Category), SourceFallback
	}

	return suggestions, SourceModel
}

func (s *SuggestionService) recordCall(ctx context.Context, operation, prompt, response string, requestedAt time.Time, callErr error) {
	if s.aiLogs == nil {
		return
	}
	doc := models.AILog{
		Operation:      operation,
		ModelName:      s.invoker.Model(),
		DurationMs:     time.Since(requestedAt).Milliseconds(),
		InputPrompt:    prompt,
		OutputResponse: response,
		RequestedAt:    requestedAt,
		CompletedAt:    time.Now(),
	}
	if callErr != nil {
		msg := callErr.Error()
		doc.ErrorMessage = &msg
	}
	if err := s.aiLogs.Insert(ctx, doc); err != nil {
		logger.Log.Warnf("failed to record ai log: %v", err)
	}
}
