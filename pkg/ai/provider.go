package ai

import (
	"context"
	"fmt"

	"github.com/leadinsights/fireflies-analyzer/pkg/config"
)

// Provider is the single capability the analysis pipeline needs from an LLM
// backend: send a system instruction plus user prompt, get text back.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Name() string
}

// NewProvider selects the configured backend
func NewProvider(cfg *config.AIConfig) (Provider, error) {
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicClient(cfg), nil
	case "openai":
		return NewOpenAIClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %s", cfg.Provider)
	}
}
