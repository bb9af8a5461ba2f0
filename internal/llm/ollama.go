package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"time"
)

// ollamaClient snakker med en lokal ollama-server over HTTP.
// Generering kan ta lang tid på store modeller, derav den rause timeouten.
type ollamaClient struct {
	baseURL string
	model   string
	http    *http.Client
}

func newOllamaClient(baseURL, model string) *ollamaClient {
	return &ollamaClient{
		baseURL: baseURL,
		model:   model,
		http:    &http.Client{Timeout: 300 * time.Second},
	}
}

func (c *ollamaClient) name() string { return "ollama" }

type ollamaRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	System  string         `json:"system,omitempty"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options"`
}

type ollamaResponse struct {
	Response     string `json:"response"`
	EvalCount    int    `json:"eval_count"`
	EvalDuration int64  `json:"eval_duration"` // nanosekunder
}

func (c *ollamaClient) generate(ctx context.Context, prompt, system string) (string, *TokenStats, error) {
	payload := ollamaRequest{
		Model:  c.model,
		Prompt: prompt,
		System: system,
		Stream: false,
		Options: map[string]any{
			"temperature": 0.3,
			"top_p":       0.9,
			"num_predict": 4096,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("ollama-kall feilet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", nil, fmt.Errorf("ollama svarte %d: %s", resp.StatusCode, msg)
	}

	var out ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", nil, fmt.Errorf("ugyldig svar fra ollama: %w", err)
	}

	var stats *TokenStats
	if out.EvalCount > 0 && out.EvalDuration > 0 {
		tps := float64(out.EvalCount) / (float64(out.EvalDuration) / 1e9)
		stats = &TokenStats{
			TokensPerSecond: math.Round(tps*100) / 100,
			TotalTokens:     out.EvalCount,
			GPUAccelerated:  true,
		}
	}
	return out.Response, stats, nil
}

func (c *ollamaClient) checkHealth(ctx context.Context) Health {
	health := Health{Provider: "ollama", Status: "unknown"}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		health.Status = "error"
		health.Message = err.Error()
		return health
	}

	resp, err := c.http.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
			health.Status = "offline"
			health.Message = "Ollama kjører ikke. Start med: ollama serve"
		} else {
			health.Status = "error"
			health.Message = err.Error()
		}
		return health
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		var tags struct {
			Models []struct {
				Name string `json:"name"`
			} `json:"models"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&tags); err == nil {
			health.Status = "healthy"
			for _, m := range tags.Models {
				health.AvailableModels = append(health.AvailableModels, m.Name)
			}
		}
	}
	return health
}
