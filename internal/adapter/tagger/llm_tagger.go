package tagger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"speak-byte/internal/domain"
	"speak-byte/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

const rolePrompt = `You are an English grammar analyzer. Identify the core grammatical roles of the sentence and respond with ONLY a JSON object in the following format:
{
    "subjects": ["subject words"],
    "verbs": ["main verbs"],
    "objects": ["object or other non-subject nouns"]
}

Sentence: %s

Rules:
1. Use single lowercase words exactly as they appear in the sentence
2. Keep the order in which the words appear
3. Use an empty array when a role is absent`

// llmRoleTagger implements domain.RoleTagger on top of a langchaingo model
type llmRoleTagger struct {
	llm     llms.Model
	timeout time.Duration
}

// NewLLMRoleTagger creates a role tagger backed by the given model
func NewLLMRoleTagger(llm llms.Model, timeout time.Duration) domain.RoleTagger {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &llmRoleTagger{
		llm:     llm,
		timeout: timeout,
	}
}

// TagRoles implements domain.RoleTagger
func (t *llmRoleTagger) TagRoles(ctx context.Context, text string) (domain.Roles, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Roles{}, nil
	}

	l := logger.Get()
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	raw, err := llms.GenerateFromSinglePrompt(ctx, t.llm, fmt.Sprintf(rolePrompt, text), llms.WithTemperature(0))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("LLM role tagging timed out", zap.Error(err))
		}
		return domain.Roles{}, domain.NewError(domain.CodeTaggerError, "LLM role tagging failed", err)
	}

	l.Debug("Raw LLM role response received", zap.String("raw_response", raw))
	return parseRoles(raw)
}

// parseRoles pulls the JSON object out of a model reply, dropping any
// <think> block reasoning models prepend.
func parseRoles(raw string) (domain.Roles, error) {
	cleaned := strings.TrimSpace(raw)
	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd > thinkStart {
			cleaned = strings.TrimSpace(cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):])
		}
	}

	jsonStart := strings.Index(cleaned, "{")
	jsonEnd := strings.LastIndex(cleaned, "}")
	if jsonStart == -1 || jsonEnd <= jsonStart {
		return domain.Roles{}, domain.NewError(domain.CodeTaggerError,
			"no JSON object found in LLM response", fmt.Errorf("response: %s", cleaned))
	}

	var resp struct {
		Subjects []string `json:"subjects"`
		Verbs    []string `json:"verbs"`
		Objects  []string `json:"objects"`
	}
	if err := json.Unmarshal([]byte(cleaned[jsonStart:jsonEnd+1]), &resp); err != nil {
		return domain.Roles{}, domain.NewError(domain.CodeTaggerError, "failed to unmarshal LLM role response", err)
	}

	return domain.Roles{
		Subjects: cleanWords(resp.Subjects),
		Verbs:    cleanWords(resp.Verbs),
		Objects:  cleanWords(resp.Objects),
	}, nil
}

func cleanWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}
