package ai

import (
	"context"
	"fmt"
	"log"
	"net"
	"strings"
)

// FallbackService routes insight requests across providers:
// Gemini first (better structured output), Ollama on connection or
// quota errors, with one retry of the other side before giving up.
type FallbackService struct {
	gemini InsightService
	ollama *OllamaService
}

// NewFallbackService creates a new fallback service with both providers
func NewFallbackService(gemini InsightService, ollama *OllamaService) *FallbackService {
	return &FallbackService{
		gemini: gemini,
		ollama: ollama,
	}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(net.Error); ok {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"eof",
	}

	for _, indicator := range connectionIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	quotaIndicators := []string{
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
	}

	for _, indicator := range quotaIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// GenerateInsights tries Gemini first, falls back to Ollama on quota or
// connection errors.
func (f *FallbackService) GenerateInsights(ctx context.Context, snapshot Snapshot) (*Insights, error) {
	if f.gemini != nil {
		log.Println("[AI] Trying Gemini for insights...")
		result, err := f.gemini.GenerateInsights(ctx, snapshot)
		if err == nil {
			log.Println("[AI] Gemini insights successful")
			return result, nil
		}

		if isQuotaError(err) {
			log.Printf("[AI] Gemini quota exhausted: %v, falling back to Ollama", err)
		} else {
			log.Printf("[AI] Gemini error: %v, falling back to Ollama", err)
		}
	}

	if f.ollama != nil {
		log.Println("[AI] Using Ollama for insights...")
		result, err := f.ollama.GenerateInsights(ctx, snapshot)
		if err == nil {
			log.Println("[AI] Ollama insights successful")
			return result, nil
		}

		// If Ollama also fails with a connection error, retry Gemini once
		if isConnectionError(err) && f.gemini != nil {
			log.Printf("[AI] Ollama connection failed: %v, retrying Gemini", err)
			return f.gemini.GenerateInsights(ctx, snapshot)
		}

		return nil, fmt.Errorf("ollama insights failed: %w", err)
	}

	return nil, fmt.Errorf("no AI provider available for insights")
}
