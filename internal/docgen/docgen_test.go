package docgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

// fakeLLM svarer med faste tekster i rekkefølge, eller feiler.
type fakeLLM struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
	systems   []string
}

func (f *fakeLLM) Generate(_ context.Context, prompt, system string) (string, error) {
	i := f.calls
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.systems = append(f.systems, system)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", errors.New("ingen flere svar")
}

func eksempelAnalyse() models.RepoAnalysis {
	return models.RepoAnalysis{
		RepoName: "demorepo",
		Languages: []models.LanguageCount{
			{Language: "Python", Lines: 1000},
		},
		Frameworks: []models.FrameworkInfo{
			{Name: "django", Category: "backend", Confidence: 1.0},
		},
		Dependencies: []models.Dependency{
			{Name: "django", Version: "4.2.0", Kind: models.KindRuntime},
		},
		KeyFiles:   map[string]string{"README.md": "# demorepo", "main.py": "print('hei')"},
		FileCount:  10,
		TotalLines: 1000,
		HasTests:   true,
	}
}

const llmSvar = `## Project Overview
Dette er et demoprosjekt.
---SECTION_BREAK---
## Technology Stack
Python og django.
---SECTION_BREAK---
## Getting Started
Kjør pip install.
---SECTION_BREAK---
## API Documentation
GET /api/ting
---SECTION_BREAK---
## Key Features
Mange fine ting.`

func TestGenerateFullPakke(t *testing.T) {
	f := &fakeLLM{responses: []string{llmSvar, "Grundig kodegjennomgang her."}}
	g := NewGenerator(f)

	docs, err := g.Generate(context.Background(), eksempelAnalyse())
	if err != nil {
		t.Fatalf("uventet feil: %v", err)
	}

	if docs.RepoName != "demorepo" {
		t.Errorf("uventet reponavn: %s", docs.RepoName)
	}
	if !strings.Contains(docs.Overview, "demoprosjekt") {
		t.Errorf("oversikten skal komme fra Overview-seksjonen: %q", docs.Overview)
	}
	if !strings.Contains(docs.TechStack, "django") {
		t.Errorf("teknologiseksjonen mangler: %q", docs.TechStack)
	}
	if !strings.Contains(docs.SetupGuide, "pip install") {
		t.Errorf("oppsettsguiden mangler: %q", docs.SetupGuide)
	}
	if !strings.Contains(docs.APIDocs, "GET /api/ting") {
		t.Errorf("API-dokumentasjonen mangler: %q", docs.APIDocs)
	}

	// API-seksjonen skal beholdes i restlisten sammen med Key Features.
	if len(docs.Sections) != 2 {
		t.Errorf("forventet 2 gjenværende seksjoner, fikk %d", len(docs.Sections))
	}

	if len(docs.Diagrams) != 4 {
		t.Errorf("forventet 4 diagrammer, fikk %d", len(docs.Diagrams))
	}
	if docs.HealthScore == nil || docs.HealthScore.Grade == "" {
		t.Error("helsescore mangler")
	}
	if docs.VulnerabilityScan == nil {
		t.Error("sårbarhetsskann mangler")
	} else if docs.VulnerabilityScan.VulnerabilitiesFound != 1 {
		// django 4.2.0 er under 4.2.8
		t.Errorf("forventet 1 sårbarhetsfunn, fikk %d", docs.VulnerabilityScan.VulnerabilitiesFound)
	}
	if len(docs.Badges) == 0 {
		t.Error("badger mangler")
	}
	if docs.ComplexityMetrics == nil {
		t.Error("kompleksitetsmetrikker mangler")
	}
	if !strings.Contains(docs.ContributingMD, "# Contributing to demorepo") {
		t.Error("CONTRIBUTING mangler")
	}
	if docs.AICodeReview != "Grundig kodegjennomgang her." {
		t.Errorf("uventet kodegjennomgang: %q", docs.AICodeReview)
	}
	if !strings.HasPrefix(docs.FullMarkdown, "# demorepo") {
		t.Errorf("full markdown skal starte med reponavnet: %q", docs.FullMarkdown[:40])
	}
}

func TestGenerateLLMFeilErFatal(t *testing.T) {
	f := &fakeLLM{errs: []error{errors.New("modellen er nede")}}
	g := NewGenerator(f)

	if _, err := g.Generate(context.Background(), eksempelAnalyse()); err == nil {
		t.Fatal("hoveddokumentasjonen skal feile når LLM er nede")
	}
}

func TestGenerateReviewFeilGirReservetekst(t *testing.T) {
	f := &fakeLLM{
		responses: []string{llmSvar, ""},
		errs:      []error{nil, errors.New("timeout")},
	}
	g := NewGenerator(f)

	docs, err := g.Generate(context.Background(), eksempelAnalyse())
	if err != nil {
		t.Fatalf("feil i kodegjennomgangen skal ikke være fatal: %v", err)
	}
	if docs.AICodeReview != reviewFallback {
		t.Errorf("forventet reservetekst, fikk %q", docs.AICodeReview)
	}
	// De heuristiske resultatene skal fortsatt være fulle.
	if docs.HealthScore == nil || len(docs.Diagrams) != 4 {
		t.Error("heuristiske resultater skal overleve LLM-feil i gjennomgangen")
	}
}

func TestGeneratePrompterInneholderAnalyse(t *testing.T) {
	f := &fakeLLM{responses: []string{llmSvar, "ok"}}
	g := NewGenerator(f)

	if _, err := g.Generate(context.Background(), eksempelAnalyse()); err != nil {
		t.Fatalf("uventet feil: %v", err)
	}
	if len(f.prompts) != 2 {
		t.Fatalf("forventet 2 LLM-kall, fikk %d", len(f.prompts))
	}
	if !strings.Contains(f.prompts[0], "**Name**: demorepo") {
		t.Error("analysis-prompten mangler repoinfo")
	}
	if !strings.Contains(f.prompts[0], SectionBreak) {
		t.Error("analysis-prompten skal be om seksjonsskille")
	}
	if !strings.Contains(f.prompts[1], ReviewBreak) {
		t.Error("review-prompten skal be om gjennomgangsskille")
	}
	if !strings.Contains(f.systems[0], "repodokka") {
		t.Error("systemprompten skal presentere verktøyet")
	}
}
