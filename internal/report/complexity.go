package report

import (
	"math"
	"sort"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

// ComputeComplexity oppsummerer struktur- og størrelsesmetrikker for repoet.
// Språkfordelingen viser de inntil 10 største språkene med prosentandel.
func ComputeComplexity(a models.RepoAnalysis) models.ComplexityMetrics {
	totalCode := 0
	for _, l := range a.Languages {
		totalCode += l.Lines
	}

	dist := []models.LanguageShare{}
	for i, l := range a.Languages {
		if i >= 10 {
			break
		}
		pct := 0.0
		if totalCode > 0 {
			pct = round1(float64(l.Lines) / float64(totalCode) * 100)
		}
		dist = append(dist, models.LanguageShare{
			Language:   l.Language,
			Lines:      l.Lines,
			Percentage: pct,
		})
	}

	avg := float64(a.TotalLines) / math.Max(float64(a.FileCount), 1)

	topDirs := a.TopDirs()
	sort.Strings(topDirs)
	if len(topDirs) > 10 {
		topDirs = topDirs[:10]
	}

	categories := map[string][]string{}
	for _, fw := range a.Frameworks {
		categories[fw.Category] = append(categories[fw.Category], fw.Name)
	}

	runtime, dev := 0, 0
	for _, d := range a.Dependencies {
		if d.Kind == models.KindDev {
			dev++
		} else {
			runtime++
		}
	}

	return models.ComplexityMetrics{
		TotalFiles:           a.FileCount,
		TotalLines:           a.TotalLines,
		AvgLinesPerFile:      round1(avg),
		LanguageDistribution: dist,
		TopModules:           topDirs,
		FrameworkCategories:  categories,
		DependencyStats: models.DependencyStats{
			Total:   len(a.Dependencies),
			Runtime: runtime,
			Dev:     dev,
		},
		CodebaseSize: categorizeSize(a.TotalLines),
	}
}

func categorizeSize(lines int) string {
	switch {
	case lines < 500:
		return "Micro"
	case lines < 2000:
		return "Small"
	case lines < 10000:
		return "Medium"
	case lines < 50000:
		return "Large"
	default:
		return "Enterprise"
	}
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
