// Package bqwriter lagrer fullførte analyser i BigQuery.
package bqwriter

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/jonmartinstorm/repodokka/internal/config"
	"github.com/jonmartinstorm/repodokka/internal/dbwriter"
	"github.com/jonmartinstorm/repodokka/internal/models"
)

type BigQueryWriter struct {
	Client  *bigquery.Client
	Dataset string
}

func NewBigQueryWriter(ctx context.Context, cfg config.Config) (*BigQueryWriter, error) {
	var opts []option.ClientOption
	if cfg.BQCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.BQCredentials))
	}

	client, err := bigquery.NewClient(ctx, cfg.BQProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("kan ikke opprette BigQuery-klient: %w", err)
	}

	// Sørg for at hver tabell finnes
	tables := map[string]any{
		"analyses":              BGAnalysis{},
		"analysis_languages":    BGLanguage{},
		"analysis_dependencies": BGDependency{},
		"analysis_frameworks":   BGFramework{},
	}

	for tableName, schemaExample := range tables {
		if err := ensureTableExists(ctx, client, cfg.BQDataset, tableName, schemaExample); err != nil {
			return nil, fmt.Errorf("kunne ikke sikre tabell %s: %w", tableName, err)
		}
	}

	return &BigQueryWriter{
		Client:  client,
		Dataset: cfg.BQDataset,
	}, nil
}

// SaveAnalysis skriver analysen og dokumentnøkkeltallene som rader.
func (w *BigQueryWriter) SaveAnalysis(ctx context.Context, a models.RepoAnalysis, docs models.GeneratedDocs) error {
	now := time.Now().UTC()
	row := ConvertAnalysis(a, docs, now)
	langs := ConvertLanguages(a, now)
	deps := ConvertDependencies(a, now)
	fws := ConvertFrameworks(a, now)

	if err := insert(ctx, w.Client, w.Dataset, "analyses", []BGAnalysis{row}); err != nil {
		return fmt.Errorf("analyses insert feilet: %w", err)
	}
	if err := insert(ctx, w.Client, w.Dataset, "analysis_languages", langs); err != nil {
		return fmt.Errorf("analysis_languages insert feilet: %w", err)
	}
	if err := insert(ctx, w.Client, w.Dataset, "analysis_dependencies", deps); err != nil {
		return fmt.Errorf("analysis_dependencies insert feilet: %w", err)
	}
	if err := insert(ctx, w.Client, w.Dataset, "analysis_frameworks", fws); err != nil {
		return fmt.Errorf("analysis_frameworks insert feilet: %w", err)
	}
	return nil
}

func (w *BigQueryWriter) Close() error {
	return w.Client.Close()
}

func insert[T any](ctx context.Context, client *bigquery.Client, dataset, table string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	inserter := client.Dataset(dataset).Table(table).Inserter()
	return inserter.Put(ctx, rows)
}

// ==== Data-strukturer ====

type BGAnalysis struct {
	RepoName     string    `bigquery:"repo_name"`
	Description  string    `bigquery:"description"`
	AnalyzedAt   time.Time `bigquery:"analyzed_at"`
	FileCount    int64     `bigquery:"file_count"`
	TotalLines   int64     `bigquery:"total_lines"`
	HasTests     bool      `bigquery:"has_tests"`
	HasCI        bool      `bigquery:"has_ci"`
	HasDocker    bool      `bigquery:"has_docker"`
	License      string    `bigquery:"license"`
	HealthScore  int64     `bigquery:"health_score"`
	HealthGrade  string    `bigquery:"health_grade"`
	RiskLevel    string    `bigquery:"risk_level"`
	FullMarkdown string    `bigquery:"full_markdown"`
}

type BGLanguage struct {
	RepoName   string    `bigquery:"repo_name"`
	AnalyzedAt time.Time `bigquery:"analyzed_at"`
	Language   string    `bigquery:"language"`
	Lines      int64     `bigquery:"lines"`
}

type BGDependency struct {
	RepoName   string    `bigquery:"repo_name"`
	AnalyzedAt time.Time `bigquery:"analyzed_at"`
	Name       string    `bigquery:"name"`
	Version    string    `bigquery:"version"`
	Kind       string    `bigquery:"kind"`
	Path       string    `bigquery:"path"`
}

type BGFramework struct {
	RepoName   string    `bigquery:"repo_name"`
	AnalyzedAt time.Time `bigquery:"analyzed_at"`
	Name       string    `bigquery:"name"`
	Category   string    `bigquery:"category"`
	Confidence float64   `bigquery:"confidence"`
}

// ==== Mapping ====

func ConvertAnalysis(a models.RepoAnalysis, docs models.GeneratedDocs, snapshot time.Time) BGAnalysis {
	return BGAnalysis{
		RepoName:     a.RepoName,
		Description:  a.Description,
		AnalyzedAt:   snapshot,
		FileCount:    int64(a.FileCount),
		TotalLines:   int64(a.TotalLines),
		HasTests:     a.HasTests,
		HasCI:        a.HasCI,
		HasDocker:    a.HasDocker,
		License:      a.License,
		HealthScore:  dbwriter.SafeScore(docs.HealthScore),
		HealthGrade:  dbwriter.SafeGrade(docs.HealthScore),
		RiskLevel:    dbwriter.SafeRisk(docs.VulnerabilityScan),
		FullMarkdown: docs.FullMarkdown,
	}
}

func ConvertLanguages(a models.RepoAnalysis, snapshot time.Time) []BGLanguage {
	rows := make([]BGLanguage, 0, len(a.Languages))
	for _, l := range a.Languages {
		rows = append(rows, BGLanguage{
			RepoName:   a.RepoName,
			AnalyzedAt: snapshot,
			Language:   l.Language,
			Lines:      int64(l.Lines),
		})
	}
	return rows
}

func ConvertDependencies(a models.RepoAnalysis, snapshot time.Time) []BGDependency {
	rows := make([]BGDependency, 0, len(a.Dependencies))
	for _, d := range a.Dependencies {
		rows = append(rows, BGDependency{
			RepoName:   a.RepoName,
			AnalyzedAt: snapshot,
			Name:       d.Name,
			Version:    d.Version,
			Kind:       string(d.Kind),
			Path:       d.Path,
		})
	}
	return rows
}

func ConvertFrameworks(a models.RepoAnalysis, snapshot time.Time) []BGFramework {
	rows := make([]BGFramework, 0, len(a.Frameworks))
	for _, fw := range a.Frameworks {
		rows = append(rows, BGFramework{
			RepoName:   a.RepoName,
			AnalyzedAt: snapshot,
			Name:       fw.Name,
			Category:   fw.Category,
			Confidence: fw.Confidence,
		})
	}
	return rows
}

func ensureTableExists(ctx context.Context, client *bigquery.Client, dataset, table string, exampleStruct any) error {
	tbl := client.Dataset(dataset).Table(table)
	_, err := tbl.Metadata(ctx)
	if err == nil {
		return nil // tabellen finnes
	}

	if gErr, ok := err.(*googleapi.Error); !ok || gErr.Code != 404 {
		return fmt.Errorf("feil ved henting av tabell-metadata: %w", err)
	}

	schema, err := bigquery.InferSchema(exampleStruct)
	if err != nil {
		return fmt.Errorf("klarte ikke å generere schema for %s: %w", table, err)
	}

	if err := tbl.Create(ctx, &bigquery.TableMetadata{Schema: schema}); err != nil {
		return fmt.Errorf("klarte ikke å opprette tabell %s: %w", table, err)
	}

	return nil
}
