package tagger

import (
	"fmt"
	"time"

	"speak-byte/internal/domain"

	"github.com/tmc/langchaingo/llms/ollama"
)

// NewOllamaRoleTagger creates an LLM role tagger served by Ollama.
func NewOllamaRoleTagger(serverURL, modelName string, timeout time.Duration) (domain.RoleTagger, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	llm, err := ollama.New(
		ollama.WithModel(modelName),
		ollama.WithServerURL(serverURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo Ollama LLM client: %w", err)
	}
	return NewLLMRoleTagger(llm, timeout), nil
}
