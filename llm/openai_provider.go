package llm

import (
	"context"
	"net/http"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"conmates/config"
)

// OpenAIInvoker calls any OpenAI-compatible chat-completion endpoint.
// The base URL is configurable so self-hosted gateways work too.
type OpenAIInvoker struct {
	client *openai.Client
	model  string
}

func NewOpenAIInvoker(cfg config.LLMConfig) (*OpenAIInvoker, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, NewConfigError("OPENAI_API_KEY environment variable is not set")
	}

	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.TimeoutDuration()}
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIInvoker{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}, nil
}

func (p *OpenAIInvoker) Model() string { return p.model }

func (p *OpenAIInvoker) Invoke(ctx context.Context, req Request) (string, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	resp, err := p.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: req.System,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: req.Task,
				},
			},
			Temperature: req.Temperature,
			MaxTokens:   req.MaxOutputTokens,
		},
	)
	if err != nil {
		return "", NewProviderError("chat_completion", "model call failed", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &InvocationError{
			Type:      ErrTypeProvider,
			Operation: "chat_completion",
			Message:   "empty completion response",
		}
	}

	return resp.Choices[0].Message.Content, nil
}
