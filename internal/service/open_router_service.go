package service

import (
	"context"
	"fmt"

	"github.com/campushub/lor-service/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterService is the OpenRouter-backed Provider, an alternative to
// Gemini behind the same chat-completions shape.
type OpenRouterService struct {
	APIKey string
	client *resty.Client
}

func NewOpenRouterService() (*OpenRouterService, error) {
	apiKey := config.LoadOpenRouterConfig().APIKey
	if apiKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
	}
	return &OpenRouterService{
		APIKey: apiKey,
		client: resty.New().SetBaseURL(openRouterBaseURL),
	}, nil
}

func (s *OpenRouterService) Name() string {
	return "openrouter"
}

func (s *OpenRouterService) Generate(ctx context.Context, model, prompt string) (string, error) {
	if model == "" {
		return "", &ProviderError{Message: "model name cannot be empty"}
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": model,
			"messages": []map[string]string{
				{"role": "system", "content": "You are an assistant writing formal letters of recommendation for college students."},
				{"role": "user", "content": prompt},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		// Transport failures are treated like an unavailable provider.
		return "", &ProviderError{Status: 503, Message: err.Error(), Err: err}
	}

	if resp.IsError() {
		message := gjson.Get(resp.String(), "error.message").String()
		if message == "" {
			message = resp.Status()
		}
		return "", &ProviderError{Status: resp.StatusCode(), Message: message}
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", &ProviderError{Message: "no content in provider response"}
	}
	return text, nil
}
