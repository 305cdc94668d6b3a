package llm

import (
	"context"
	"net/http"
	"os"

	"google.golang.org/genai"

	"conmates/config"
)

// GoogleInvoker calls the Gemini API through the official genai SDK.
type GoogleInvoker struct {
	client *genai.Client
	model  string
}

func NewGoogleInvoker(cfg config.LLMConfig) (*GoogleInvoker, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, NewConfigError("GEMINI_API_KEY environment variable is not set")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: cfg.TimeoutDuration()},
	})
	if err != nil {
		return nil, NewProviderError("client_init", "failed to create genai client", err)
	}

	return &GoogleInvoker{client: client, model: cfg.Model}, nil
}

func (g *GoogleInvoker) Model() string { return g.model }

func (g *GoogleInvoker) Invoke(ctx context.Context, req Request) (string, error) {
	model := req.Model
	if model == "" {
		model = g.model
	}

	result, err := g.client.Models.GenerateContent(
		ctx,
		model,
		genai.Text(req.Task),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: req.System}}},
			Temperature:       genai.Ptr(req.Temperature),
			MaxOutputTokens:   int32(req.MaxOutputTokens),
		},
	)
	if err != nil {
		return "", NewProviderError("generate_content", "model call failed", err)
	}

	text := result.Text()
	if text == "" {
		return "", &InvocationError{
			Type:      ErrTypeProvider,
			Operation: "generate_content",
			Message:   "empty completion response",
		}
	}

	return text, nil
}
