package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const DefaultModel = "gpt-4-1106-preview"

// ChatCompleter is the subset of *openai.Client the oracle needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type OpenAIOracle struct {
	Client  ChatCompleter
	Model   string
	Timeout time.Duration
}

type RateLimitError struct {
	Message string
}

func (r RateLimitError) Error() string {
	if r.Message != "" {
		return "oracle rate limited: " + r.Message
	}
	return "oracle rate limited"
}

// NewOpenAIOracle builds a client for api.openai.com, or for any
// OpenAI-compatible endpoint when baseURL is set.
func NewOpenAIOracle(apiKey, baseURL, model string, timeout time.Duration) *OpenAIOracle {
	cfg := openai.DefaultConfig(apiKey)
	if strings.TrimSpace(baseURL) != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &OpenAIOracle{
		Client:  openai.NewClientWithConfig(cfg),
		Model:   model,
		Timeout: timeout,
	}
}

func (o *OpenAIOracle) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if o.Client == nil {
		return "", fmt.Errorf("oracle client is not initialized")
	}
	model := o.Model
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}

	resp, err := o.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", translateError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty oracle response")
	}
	return resp.Choices[0].Message.Content, nil
}

func translateError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("oracle request timed out: %w", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("oracle request timed out: %w", err)
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return RateLimitError{Message: apiErr.Message}
	}
	return fmt.Errorf("oracle request failed: %w", err)
}
