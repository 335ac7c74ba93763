package ai

import "fmt"

// Config holds AI provider configuration. The Ollama settings are
// resolved through getters so the runtime settings API can change them
// without a restart.
type Config struct {
	Provider ProviderType // "gemini", "ollama" or "auto"

	GeminiAPIKey string

	GetOllamaBaseURL func() string
	GetOllamaModel   func() string
}

// NewInsightService creates an InsightService based on the config.
// Switch AI provider by changing Provider.
func NewInsightService(cfg Config) (InsightService, error) {
	ollama := NewOllamaServiceWithGetters(cfg.GetOllamaBaseURL, cfg.GetOllamaModel)

	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return NewGeminiService(cfg.GeminiAPIKey), nil

	case ProviderOllama:
		return ollama, nil

	default:
		// Auto: Gemini with Ollama fallback when a key is available,
		// otherwise Ollama alone.
		if cfg.GeminiAPIKey != "" {
			return NewFallbackService(NewGeminiService(cfg.GeminiAPIKey), ollama), nil
		}
		return ollama, nil
	}
}
