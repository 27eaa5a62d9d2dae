package config

import (
	"os"
	"sync"
)

type OpenRouterConfig struct {
	APIKey        string
	Model         string
	FallbackModel string
}

var (
	openRouterConfig *OpenRouterConfig
	openRouterOnce   sync.Once
)

func LoadOpenRouterConfig() *OpenRouterConfig {
	openRouterOnce.Do(func() {
		model := os.Getenv("OPENROUTER_MODEL")
		if model == "" {
			model = "openai/gpt-4o-mini"
		}
		openRouterConfig = &OpenRouterConfig{
			APIKey:        os.Getenv("OPENROUTER_API_KEY"),
			Model:         model,
			FallbackModel: os.Getenv("OPENROUTER_FALLBACK_MODEL"),
		}
	})
	return openRouterConfig
}
