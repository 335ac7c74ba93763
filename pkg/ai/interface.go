package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Insights is the structured coach response rendered by the AI panel.
// All three fields are required in a successful provider response.
type Insights struct {
	ProductivityScore float64  `json:"productivityScore"`
	Summary           string   `json:"summary"`
	Suggestions       []string `json:"suggestions"`
}

// Snapshot is an immutable, pre-rendered copy of the collection state
// handed to a provider. Providers never see domain types directly.
type Snapshot struct {
	Kind          string   // "task" or "habit"
	Items         []string // one line per item, e.g. "Meditate: 12/20 days"
	MetricSummary string   // trailing daily metrics, habit variant only
	StatsSummary  string   // lifetime / compliance line
}

// Empty reports whether the snapshot carries no items at all. Empty
// snapshots short-circuit to the onboarding payload without a remote call.
func (s Snapshot) Empty() bool {
	return len(s.Items) == 0
}

// InsightService is the interface for AI coach providers.
// Implement this interface to add new providers (Gemini, Ollama, ...).
type InsightService interface {
	GenerateInsights(ctx context.Context, snapshot Snapshot) (*Insights, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)

// BuildPrompt renders the coach prompt shared by all providers.
func BuildPrompt(snapshot Snapshot) string {
	var b strings.Builder
	b.WriteString("You are a high-performance life coach. Analyze this month's data and metrics.\n")
	fmt.Fprintf(&b, "%s: %s.\n", titleCase(snapshot.Kind)+"s", strings.Join(snapshot.Items, ", "))
	if snapshot.MetricSummary != "" {
		fmt.Fprintf(&b, "Recent Metrics: %s.\n", snapshot.MetricSummary)
	}
	if snapshot.StatsSummary != "" {
		fmt.Fprintf(&b, "Current Stats: %s.\n", snapshot.StatsSummary)
	}
	b.WriteString("Provide a productivity score (0-100), a concise summary, and 3 actionable self-correction suggestions.\n")
	b.WriteString(`Respond with JSON only, matching {"productivityScore": number, "summary": string, "suggestions": [string, string, string]}.`)
	return b.String()
}

// ParseInsights decodes a provider's JSON text into Insights, rejecting
// responses with any required field missing.
func ParseInsights(text string) (*Insights, error) {
	text = stripCodeFence(text)

	var wire struct {
		ProductivityScore *float64 `json:"productivityScore"`
		Summary           *string  `json:"summary"`
		Suggestions       []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return nil, fmt.Errorf("malformed insights JSON: %w", err)
	}
	if wire.ProductivityScore == nil || wire.Summary == nil || wire.Suggestions == nil {
		return nil, fmt.Errorf("insights response missing required field")
	}

	return &Insights{
		ProductivityScore: *wire.ProductivityScore,
		Summary:           *wire.Summary,
		Suggestions:       wire.Suggestions,
	}, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// stripCodeFence removes markdown fences some models wrap around JSON.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if i := strings.LastIndex(text, "```"); i >= 0 {
			text = text[:i]
		}
	}
	return strings.TrimSpace(text)
}
