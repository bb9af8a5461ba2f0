// Package docgen orkestrerer full dokumentasjonsgenerering: diagrammer,
// heuristiske rapporter og LLM-skrevne seksjoner.
package docgen

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonmartinstorm/repodokka/internal/diagram"
	"github.com/jonmartinstorm/repodokka/internal/llm"
	"github.com/jonmartinstorm/repodokka/internal/models"
	"github.com/jonmartinstorm/repodokka/internal/report"
)

const reviewFallback = "Code review generation failed - LLM may be unavailable."

// Generator binder sammen LLM-tjenesten og de rene generatorene.
type Generator struct {
	llm llm.Generator
}

func NewGenerator(l llm.Generator) *Generator {
	return &Generator{llm: l}
}

// Generate bygger hele dokumentasjonspakken for en analyse. De heuristiske
// rapportene er rene funksjoner og kjøres parallelt; feiler LLM-kallet for
// kodegjennomgangen brukes en reservetekst, hoveddokumentasjonen er fatal.
func (g *Generator) Generate(ctx context.Context, a models.RepoAnalysis) (models.GeneratedDocs, error) {
	var (
		diagrams     []models.DiagramData
		health       models.CodeHealthScore
		vuln         models.VulnerabilityScan
		badges       []models.BadgeInfo
		complexity   models.ComplexityMetrics
		contributing string
	)

	grp, _ := errgroup.WithContext(ctx)
	grp.Go(func() error { diagrams = diagram.GenerateAll(a); return nil })
	grp.Go(func() error { health = report.ComputeHealthScore(a); return nil })
	grp.Go(func() error { vuln = report.ScanVulnerabilities(a); return nil })
	grp.Go(func() error { complexity = report.ComputeComplexity(a); return nil })
	grp.Go(func() error { contributing = report.GenerateContributing(a); return nil })
	if err := grp.Wait(); err != nil {
		return models.GeneratedDocs{}, err
	}
	badges = report.GenerateBadges(a, health)

	system, user := BuildAnalysisPrompt(a)
	raw, err := g.llm.Generate(ctx, user, system)
	if err != nil {
		return models.GeneratedDocs{}, err
	}
	sections := ParseSections(raw)

	overview, techStack, setupGuide, apiDocs, remaining := routeSections(sections)

	review := g.codeReview(ctx, a)

	docs := models.GeneratedDocs{
		RepoName:          a.RepoName,
		Overview:          overview,
		Sections:          remaining,
		Diagrams:          diagrams,
		TechStack:         techStack,
		SetupGuide:        setupGuide,
		APIDocs:           apiDocs,
		HealthScore:       &health,
		VulnerabilityScan: &vuln,
		Badges:            badges,
		ComplexityMetrics: &complexity,
		ContributingMD:    contributing,
		AICodeReview:      review,
	}
	docs.FullMarkdown = RenderMarkdown(docs)
	return docs, nil
}

// routeSections plukker ut de velkjente seksjonene på tittel. API-seksjonen
// beholdes også i restlisten, slik at den dukker opp begge steder.
func routeSections(sections []models.DocSection) (overview, techStack, setupGuide, apiDocs string, remaining []models.DocSection) {
	for _, sec := range sections {
		t := strings.ToLower(sec.Title)
		switch {
		case strings.Contains(t, "overview") || strings.Contains(t, "description"):
			overview = sec.Content
		case strings.Contains(t, "technology") || strings.Contains(t, "tech stack"):
			techStack = sec.Content
		case strings.Contains(t, "setup") || strings.Contains(t, "getting started") || strings.Contains(t, "installation"):
			setupGuide = sec.Content
		case strings.Contains(t, "api"):
			apiDocs = sec.Content
			remaining = append(remaining, sec)
		default:
			remaining = append(remaining, sec)
		}
	}
	if overview == "" && len(sections) > 0 {
		overview = sections[0].Content
	}
	if remaining == nil {
		remaining = sections
	}
	return
}

func (g *Generator) codeReview(ctx context.Context, a models.RepoAnalysis) string {
	system, user := BuildReviewPrompt(a)
	review, err := g.llm.Generate(ctx, user, system)
	if err != nil {
		slog.Warn("kodegjennomgang feilet, bruker reservetekst", "error", err)
		return reviewFallback
	}
	return review
}
