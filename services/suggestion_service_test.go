package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conmates/llm"
	"conmates/models"
	"conmates/services"
	"conmates/suggest"
)

// fakeInvoker returns a fixed response or error and remembers the last
// request it saw.
type fakeInvoker struct {
	mu       sync.Mutex
	response string
	err      error
	lastReq  llm.Request
	calls    int
}

func (f *fakeInvoker) Invoke(_ context.Context, req llm.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastReq = req
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeInvoker) Model() string { return "fake-model" }

type recordingLogSink struct {
	mu   sync.Mutex
	docs []models.AILog
}

func (r *recordingLogSink) Insert(_ context.Context, doc models.AILog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs = append(r.docs, doc)
	return nil
}

func leaseHelpContext() models.ChatContext {
	return models.ChatContext{
		SessionID: "session-1",
		Category:  models.CategoryLeaseHelp,
		PreviousMessages: []models.ChatMessage{
			{Role: models.RoleUser, Content: "My landlord wants to raise rent mid-lease."},
		},
	}
}

func TestGenerateModelSuccess(t *testing.T) {
	inv := &fakeInvoker{response: `["Can they do that?", "What notice is required?", "Should I push back?"]`}
	svc := services.NewSuggestionService(inv, nil, nil)

	got, source := svc.Generate(context.Background(), leaseHelpContext())

	assert.Equal(t, services.SourceModel, source)
	assert.Equal(t, []string{"Can they do that?", "What notice is required?", "Should I push back?"}, got)
}

func TestGenerateUsesSuggestionParameters(t *testing.T) {
	inv := &fakeInvoker{response: `["a", "b", "c"]`}
	svc := services.NewSuggestionService(inv, nil, nil)

	svc.Generate(context.Background(), leaseHelpContext())

	assert.InDelta(t, 0.8, inv.lastReq.Temperature, 0.001)
	assert.Equal(t, 200, inv.lastReq.MaxOutputTokens)
	assert.Contains(t, inv.lastReq.Task, "lease-help")
}

func TestGenerateInvocationFailureFallsBack(t *testing.T) {
	// End-to-end scenario: category lease-help, model invocation fails.
	inv := &fakeInvoker{err: &llm.InvocationError{Type: llm.ErrTypeNetwork, Operation: "chat_completion", Message: "connection refused"}}
	svc := services.NewSuggestionService(inv, nil, nil)

	got, source := svc.Generate(context.Background(), leaseHelpContext())

	assert.Equal(t, services.SourceFallback, source)
	assert.Equal(t, []string{
		"Explain this clause in simple terms",
		"What should I watch out for?",
		"Is this standard in most leases?",
		"What are my options here?",
	}, got)
}

func TestGenerateUnparseableOutputFallsBack(t *testing.T) {
	// End-to-end scenario: category general, model returns "not json".
	inv := &fakeInvoker{response: "not json"}
	svc := services.NewSuggestionService(inv, nil, nil)

	ctx := models.ChatContext{SessionID: "session-2", Category: models.CategoryGeneral}
	got, source := svc.Generate(context.Background(), ctx)

	assert.Equal(t, services.SourceFallback, source)
	assert.Equal(t, suggest.FallbackFor(models.CategoryGeneral), got)
	assert.Len(t, got, 4)
	assert.Equal(t, "Tell me more about this", got[0])
}

func TestGenerateUnknownCategoryFallsBackToGeneral(t *testing.T) {
	inv := &fakeInvoker{err: errors.New("boom")}
	svc := services.NewSuggestionService(inv, nil, nil)

	ctx := models.ChatContext{SessionID: "session-3", Category: models.Category("billing")}
	got, _ := svc.Generate(context.Background(), ctx)

	assert.Equal(t, suggest.FallbackFor(models.CategoryGeneral), got)
}

func TestGenerateNeverReturnsEmpty(t *testing.T) {
	for _, inv := range []*fakeInvoker{
		{response: ""},
		{response: "[]"},
		{response: `{"items": []}`},
		{err: errors.New("service unavailable")},
	} {
		svc := services.NewSuggestionService(inv, nil, nil)
		got, _ := svc.Generate(context.Background(), leaseHelpContext())
		assert.NotEmpty(t, got)
	}
}

func TestGenerateRecordsAILogOnFailure(t *testing.T) {
	inv := &fakeInvoker{err: errors.New("rate limited")}
	sink := &recordingLogSink{}
	svc := services.NewSuggestionService(inv, nil, sink)

	svc.Generate(context.Background(), leaseHelpContext())

	require.Len(t, sink.docs, 1)
	doc := sink.docs[0]
	assert.Equal(t, "suggestions", doc.Operation)
	assert.Equal(t, "fake-model", doc.ModelName)
	require.NotNil(t, doc.ErrorMessage)
	assert.Contains(t, *doc.ErrorMessage, "rate limited")
}
