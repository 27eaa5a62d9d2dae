package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/campushub/lor-service/internal/config"
	"google.golang.org/genai"
)

// GeminiService is the Gemini-backed Provider.
type GeminiService struct {
	Client *genai.Client
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	if geminiConfig.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create gemini client: %w", err)
	}
	return &GeminiService{Client: client}, nil
}

func (s *GeminiService) Name() string {
	return "gemini"
}

// Generate issues a single completion call and normalizes SDK failures into
// ProviderError so the generator can tell qualifying failures apart.
func (s *GeminiService) Generate(ctx context.Context, model, prompt string) (string, error) {
	if model == "" {
		return "", &ProviderError{Message: "model name cannot be empty"}
	}
	if strings.TrimSpace(prompt) == "" {
		return "", &ProviderError{Message: "prompt cannot be empty"}
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.3)),
	}

	result, err := s.Client.Models.GenerateContent(ctx, model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", mapGeminiError(err)
	}
	if err := validateGenerateResponse(result); err != nil {
		return "", &ProviderError{Message: err.Error(), Err: err}
	}
	return result.Text(), nil
}

// mapGeminiError carries the API status code through, and classifies
// transport-level failures as 503 so they count as qualifying failures.
func mapGeminiError(err error) error {
	if apiErr, ok := err.(*genai.APIError); ok {
		return &ProviderError{Status: apiErr.Code, Message: apiErr.Message, Err: err}
	}

	msg := err.Error()
	if strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "temporary failure") ||
		strings.Contains(msg, "EOF") {
		return &ProviderError{Status: 503, Message: msg, Err: err}
	}
	return &ProviderError{Message: msg, Err: err}
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}
