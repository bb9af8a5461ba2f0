// Package llm tilbyr tekstgenerering via en av tre leverandører:
// ollama (lokal modell), openai eller gemini. Tjenesten samler enkle
// ytelsesmetrikker på tvers av kall.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/jonmartinstorm/repodokka/internal/config"
)

// Generator er den smale flaten resten av systemet bruker mot en LLM.
type Generator interface {
	Generate(ctx context.Context, prompt, system string) (string, error)
}

// TokenStats rapporteres av leverandører som eksponerer gjennomstrømning.
type TokenStats struct {
	TokensPerSecond float64
	TotalTokens     int
	GPUAccelerated  bool
}

type provider interface {
	generate(ctx context.Context, prompt, system string) (string, *TokenStats, error)
	checkHealth(ctx context.Context) Health
	name() string
}

// Health beskriver tilstanden til leverandøren, for /api/health.
type Health struct {
	Provider        string   `json:"provider"`
	Status          string   `json:"status"`
	Message         string   `json:"message,omitempty"`
	AvailableModels []string `json:"available_models,omitempty"`
}

// Metrics er de sist observerte ytelsestallene.
type Metrics struct {
	LastGenerationTime float64 `json:"last_generation_time,omitempty"`
	LastProvider       string  `json:"last_provider,omitempty"`
	TokensPerSecond    float64 `json:"tokens_per_second,omitempty"`
	TotalTokens        int     `json:"total_tokens,omitempty"`
	GPUAccelerated     bool    `json:"gpu_accelerated,omitempty"`
}

// Service ruter genereringskall til valgt leverandør og samler metrikker.
type Service struct {
	p provider

	mu      sync.Mutex
	metrics Metrics
}

// NewService bygger en tjeneste fra konfigurasjonen. Ukjent leverandør er
// en konfigurasjonsfeil og fanges normalt allerede av ValidateConfig.
func NewService(ctx context.Context, cfg config.Config) (*Service, error) {
	var p provider
	var err error
	switch cfg.LLM {
	case config.ProviderOllama:
		p = newOllamaClient(cfg.OllamaBaseURL, cfg.OllamaModel)
	case config.ProviderOpenAI:
		p = newOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel)
	case config.ProviderGemini:
		p, err = newGeminiClient(ctx, cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("kunne ikke opprette gemini-klient: %w", err)
		}
	default:
		return nil, fmt.Errorf("ukjent LLM-leverandør: %s", cfg.LLM)
	}
	return &Service{p: p}, nil
}

// Generate sender prompten til leverandøren og oppdaterer metrikker.
func (s *Service) Generate(ctx context.Context, prompt, system string) (string, error) {
	start := time.Now()
	text, stats, err := s.p.generate(ctx, prompt, system)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.metrics.LastGenerationTime = math.Round(time.Since(start).Seconds()*100) / 100
	s.metrics.LastProvider = s.p.name()
	if stats != nil {
		s.metrics.TokensPerSecond = stats.TokensPerSecond
		s.metrics.TotalTokens = stats.TotalTokens
		s.metrics.GPUAccelerated = stats.GPUAccelerated
	}
	s.mu.Unlock()

	slog.Debug("llm-generering ferdig",
		"provider", s.p.name(),
		"varighet", time.Since(start),
		"svarlengde", len(text))
	return text, nil
}

// CheckHealth spør leverandøren om tilstand. API-leverandørene svarer
// alltid "api_mode" uten nettverkskall.
func (s *Service) CheckHealth(ctx context.Context) Health {
	return s.p.checkHealth(ctx)
}

// Metrics gir en kopi av de sist observerte tallene.
func (s *Service) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metrics
}
