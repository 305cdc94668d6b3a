package llm

import (
	"context"
	"fmt"

	"conmates/config"
)

// Request carries everything a single text-generation call needs. The model
// receives System as its instruction and Task as the user content.
type Request struct {
	Model           string
	System          string
	Task            string
	Temperature     float32
	MaxOutputTokens int
}

// Invoker performs exactly one call to an external text-generation service
// and returns its raw output. No retry, no parsing: callers decide what to
// do with the text and with failures.
type Invoker interface {
	Invoke(ctx context.Context, req Request) (string, error)
	Model() string
}

// NewInvoker builds the provider selected by configuration.
func NewInvoker(cfg config.LLMConfig) (Invoker, error) {
	switch cfg.Provider {
	case "google":
		return NewGoogleInvoker(cfg)
	case "openai":
		return NewOpenAIInvoker(cfg)
	default:
		return nil, NewConfigError(fmt.Sprintf("unsupported llm provider: %q", cfg.Provider))
	}
}
