package services

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"conmates/llm"
	"conmates/logger"
	"conmates/models"
	"conmates/prompts"
	"conmates/quota"
	"conmates/store"
)

// Analysis calls run cool: consistency beats variety when the output is the
// product's core value.
const (
	analysisTemperature     = 0.3
	analysisMaxOutputTokens = 1500
)

// AnalysisService runs the lease-analysis pipeline. Unlike suggestions, a
// failed model call propagates to the caller: presenting fabricated analysis
// content would be worse than an explicit error.
type AnalysisService struct {
	invoker       llm.Invoker
	quota         *quota.LLMQuotaLimiter
	snapshots     store.Store
	aiLogs        AILogSink
	maxLeaseBytes int
}

// NewAnalysisService wires the analysis pipeline. quota and aiLogs may be
// nil; snapshots must not be. maxLeaseBytes at or below zero falls back to
// the default cap.
func NewAnalysisService(invoker llm.Invoker, q *quota.LLMQuotaLimiter, snapshots store.Store, aiLogs AILogSink, maxLeaseBytes int) *AnalysisService {
	if maxLeaseBytes <= 0 {
		maxLeaseBytes = 200_000
	}
	return &AnalysisService{
		invoker:       invoker,
		quota:         q,
		snapshots:     snapshots,
		aiLogs:        aiLogs,
		maxLeaseBytes: maxLeaseBytes,
	}
}

// Analyze sends the lease text to the model and returns its raw output
// unmodified. On success the result is also persisted under the fixed
// snapshot key (best effort, last write wins); on failure nothing is
// written and the error propagates.
func (s *AnalysisService) Analyze(ctx context.Context, leaseText string) (models.LeaseAnalysisResult, *APIError) {
	if strings.TrimSpace(leaseText) == "" {
		return models.LeaseAnalysisResult{}, &APIError{StatusCode: http.StatusBadRequest, ErrorCode: "invalid_request"}
	}
	if len(leaseText) > s.maxLeaseBytes {
		return models.LeaseAnalysisResult{}, &APIError{StatusCode: http.StatusBadRequest, ErrorCode: "lease_text_too_large"}
	}

	if s.quota != nil {
		ok, err := s.quota.WaitAndReserve(ctx)
		if err != nil {
			return models.LeaseAnalysisResult{}, &APIError{StatusCode: http.StatusInternalServerError, ErrorCode: "analysis_failed", Cause: err}
		}
		if !ok {
			return models.LeaseAnalysisResult{}, &APIError{StatusCode: http.StatusTooManyRequests, ErrorCode: "rate_limited"}
		}
	}

	system, task := prompts.BuildLeaseAnalysisPrompt(leaseText)

	requestedAt := time.Now()
	raw, err := s.invoker.Invoke(ctx, llm.Request{
		System:          system,
		Task:            task,
		Temperature:     analysisTemperature,
		MaxOutputTokens: analysisMaxOutputTokens,
	})
	s.recordCall(ctx, "lease_analysis", task, raw, requestedAt, err)

	if err != nil {
		logger.ErrorWithFields("lease analysis model invocation failed", logger.Fields{
			"error": err.Error(),
		})
		return models.LeaseAnalysisResult{}, &APIError{StatusCode: http.StatusServiceUnavailable, ErrorCode: "analysis_failed", Cause: err}
	}

	result := models.LeaseAnalysisResult{
		Analysis:    raw,
		ModelName:   s.invoker.Model(),
		GeneratedAt: time.Now(),
	}

	s.persist(ctx, result)
	return result, nil
}

// persist writes the snapshot best-effort: a storage failure is logged but
// does not fail an analysis the model already produced.
func (s *AnalysisService) persist(ctx context.Context, result models.LeaseAnalysisResult) {
	if s.snapshots == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		logger.Log.Warnf("failed to serialize analysis snapshot: %v", err)
		return
	}
	if err := s.snapshots.Set(ctx, models.SnapshotKeyLeaseAnalysis, raw); err != nil {
		logger.Log.Warnf("failed to store analysis snapshot: %v", err)
	}
}

// LoadSnapshot reads back the stored analysis. Absence is a normal state:
// found is false and the zero value is returned. A snapshot that cannot be
// deserialized is treated as absent rather than surfacing an error to a
// rendering consumer.
func (s *AnalysisService) LoadSnapshot(ctx context.Context) (models.LeaseAnalysisResult, bool, *APIError) {
	if s.snapshots == nil {
		return models.LeaseAnalysisResult{}, false, nil
	}

	raw, ok, err := s.snapshots.Get(ctx, models.SnapshotKeyLeaseAnalysis)
	if err != nil {
		return models.LeaseAnalysisResult{}, false, &APIError{StatusCode: http.StatusInternalServerError, ErrorCode: "snapshot_load_failed", Cause: err}
	}
	if !ok {
		return models.LeaseAnalysisResult{}, false, nil
	}

	var result models.LeaseAnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		logger.Log.Warnf("stored analysis snapshot is not deserializable, treating as absent: %v", err)
		return models.LeaseAnalysisResult{}, false, nil
	}
	return result, true, nil
}

func (s *AnalysisService) recordCall(ctx context.Context, operation, prompt, response string, requestedAt time.Time, callErr error) {
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
