package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent"

type GeminiService struct {
	ApiKey   string
	Endpoint string // overridable for tests
}

func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{ApiKey: apiKey, Endpoint: defaultGeminiEndpoint}
}

// GenerateInsights asks Gemini for a structured coach response. The
// response schema pins the exact JSON shape so parsing stays strict.
func (g *GeminiService) GenerateInsights(ctx context.Context, snapshot Snapshot) (*Insights, error) {
	url := g.Endpoint + "?key=" + g.ApiKey

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": BuildPrompt(snapshot)}}},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
			"responseSchema": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"productivityScore": map[string]string{"type": "NUMBER"},
					"summary":           map[string]string{"type": "STRING"},
					"suggestions": map[string]interface{}{
						"type":  "ARRAY",
						"items": map[string]string{"type": "STRING"},
					},
				},
				"required": []string{"productivityScore", "summary", "suggestions"},
			},
		},
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Gemini API error: %s", string(respBody))
	}

	text, err := extractGeminiText(respBody)
	if err != nil {
		return nil, err
	}

	return ParseInsights(text)
}

// extractGeminiText walks candidates[0].content.parts[0].text out of the
// generateContent response.
func extractGeminiText(respBody []byte) (string, error) {
	var result map[string]interface{}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}

	if c, ok := result["candidates"].([]interface{}); ok && len(c) > 0 {
		if cand, ok := c[0].(map[string]interface{}); ok {
			if content, ok := cand["content"].(map[string]interface{}); ok {
				if parts, ok := content["parts"].([]interface{}); ok && len(parts) > 0 {
					if part, ok := parts[0].(map[string]interface{}); ok {
						if text, ok := part["text"].(string); ok {
							return text, nil
						}
					}
				}
			}
		}
	}
	return "", fmt.Errorf("no insights returned")
}
