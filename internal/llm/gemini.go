package llm

import (
	"context"
	"errors"
	"fmt"

	genai "google.golang.org/genai"
)

// geminiClient bruker det offisielle genai-biblioteket mot Gemini API.
type geminiClient struct {
	cli   *genai.Client
	model string
}

func newGeminiClient(ctx context.Context, apiKey, model string) (*geminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &geminiClient{cli: cli, model: model}, nil
}

func (c *geminiClient) name() string { return "gemini" }

func (c *geminiClient) generate(ctx context.Context, prompt, system string) (string, *TokenStats, error) {
	full := prompt
	if system != "" {
		full = system + "\n\n" + prompt
	}

	temp := float32(0.3)
	resp, err := c.cli.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: full}}}},
		&genai.GenerateContentConfig{
			Temperature:     &temp,
			MaxOutputTokens: 4096,
		},
	)
	if err != nil {
		return "", nil, fmt.Errorf("gemini-kall feilet: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil, errors.New("tomt svar fra gemini")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil, nil
}

func (c *geminiClient) checkHealth(_ context.Context) Health {
	return Health{Provider: "gemini", Status: "api_mode"}
}
