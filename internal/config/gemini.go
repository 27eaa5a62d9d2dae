package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

type GeminiConfig struct {
	APIKey           string
	Model            string
	FallbackModel    string
	MaxRetries       int
	BaseDelay        time.Duration
	CircuitThreshold int
	CircuitCooldown  time.Duration
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		// GEMINI_MODEL_CANDIDATES is a comma-separated ranked list; explicit
		// GEMINI_MODEL / GEMINI_FALLBACK_MODEL override it.
		var candidates []string
		for _, c := range strings.Split(os.Getenv("GEMINI_MODEL_CANDIDATES"), ",") {
			if c = strings.TrimSpace(c); c != "" {
				candidates = append(candidates, c)
			}
		}

		model := os.Getenv("GEMINI_MODEL")
		if model == "" && len(candidates) > 0 {
			model = candidates[0]
		}
		if model == "" {
			model = "gemini-1.5-flash"
		}

		fallback := os.Getenv("GEMINI_FALLBACK_MODEL")
		if fallback == "" && len(candidates) > 1 {
			fallback = candidates[1]
		}
		if fallback == "" {
			fallback = "gemini-1.5-flash-latest"
		}

		geminiConfig = &GeminiConfig{
			APIKey:           os.Getenv("GEMINI_API_KEY"),
			Model:            model,
			FallbackModel:    fallback,
			MaxRetries:       envInt("GEMINI_RETRY_MAX", 3),
			BaseDelay:        time.Duration(envInt("GEMINI_RETRY_BASE_MS", 500)) * time.Millisecond,
			CircuitThreshold: envInt("GEMINI_CIRCUIT_THRESHOLD", 5),
			CircuitCooldown:  time.Duration(envInt("GEMINI_CIRCUIT_COOLDOWN_MS", 60000)) * time.Millisecond,
		}
	})
	return geminiConfig
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
