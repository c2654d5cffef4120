package ai

import "context"

// Oracle is the language-model collaborator. It returns the raw completion
// text; callers own parsing and validation.
type Oracle interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
