package services

import (
	"context"
	"fmt"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// LLMService wraps the process-wide Gemini client. It is constructed once at
// startup, is read-only afterwards, and implements extract.Inferencer.
type LLMService struct {
	client llms.Model
}

// NewLLMService initializes the Gemini client from GEMINI_API_KEY. An error
// here means the semantic inference capability is unavailable; the caller
// decides whether to degrade the endpoints that need it.
func NewLLMService(ctx context.Context) (*LLMService, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &LLMService{client: llm}, nil
}

// Infer sends one free-text prompt and returns the model's raw answer.
func (s *LLMService) Infer(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, s.client, prompt)
}
