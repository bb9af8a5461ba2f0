// Package dbwriter lagrer fullførte analyser i PostgreSQL.
package dbwriter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

type PostgresWriter struct {
	DB *sql.DB
}

func NewPostgresWriter(postgresdsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", postgresdsn)
	if err != nil {
		slog.Error("Kunne ikke åpne PostgreSQL-database", "error", err)
		return nil, fmt.Errorf("kunne ikke åpne PostgreSQL-database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(10 * time.Minute)

	return &PostgresWriter{DB: db}, nil
}

// SaveAnalysis skriver analysen og dokumentpakken i én transaksjon.
// Hovedraden er fatal; feil på enkeltrader for språk, avhengigheter og
// rammeverk logges og hoppes over.
func (p *PostgresWriter) SaveAnalysis(ctx context.Context, a models.RepoAnalysis, docs models.GeneratedDocs) error {
	return ImportAnalysis(ctx, p.DB, a, docs)
}

func (p *PostgresWriter) Close() error {
	return p.DB.Close()
}

func ImportAnalysis(ctx context.Context, db *sql.DB, a models.RepoAnalysis, docs models.GeneratedDocs) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("start tx: %w", err)
	}

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO analyses (
			repo_name, description, analyzed_at, file_count, total_lines,
			has_tests, has_ci, has_docker, license,
			health_score, health_grade, risk_level, full_markdown
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING id`,
		a.RepoName, a.Description, time.Now().UTC(), a.FileCount, a.TotalLines,
		a.HasTests, a.HasCI, a.HasDocker, a.License,
		SafeScore(docs.HealthScore), SafeGrade(docs.HealthScore),
		SafeRisk(docs.VulnerabilityScan), docs.FullMarkdown,
	).Scan(&id)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("insert analyses feilet: %v (rollback feilet: %w)", err, rbErr)
		}
		return fmt.Errorf("insert analyses feilet: %w", err)
	}

	insertLanguages(ctx, tx, id, a)
	insertDependencies(ctx, tx, id, a)
	insertFrameworks(ctx, tx, id, a)

	if err := tx.Commit(); err != nil {
		slog.Error("Commit-feil", "repo", a.RepoName, "error", err)
		return fmt.Errorf("commit feilet: %w", err)
	}
	return nil
}

func insertLanguages(ctx context.Context, tx *sql.Tx, id int64, a models.RepoAnalysis) {
	for _, l := range a.Languages {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO analysis_languages (analysis_id, language, lines)
			VALUES ($1,$2,$3)`, id, l.Language, l.Lines)
		if err != nil {
			slog.Warn("Språkfeil", "repo", a.RepoName, "language", l.Language, "error", err)
		}
	}
}

func insertDependencies(ctx context.Context, tx *sql.Tx, id int64, a models.RepoAnalysis) {
	for _, d := range a.Dependencies {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO analysis_dependencies (analysis_id, name, version, kind, path)
			VALUES ($1,$2,$3,$4,$5)`, id, d.Name, d.Version, string(d.Kind), d.Path)
		if err != nil {
			slog.Warn("Avhengighetsfeil", "repo", a.RepoName, "dep", d.Name, "error", err)
		}
	}
}

func insertFrameworks(ctx context.Context, tx *sql.Tx, id int64, a models.RepoAnalysis) {
	for _, fw := range a.Frameworks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO analysis_frameworks (analysis_id, name, category, confidence)
			VALUES ($1,$2,$3,$4)`, id, fw.Name, fw.Category, fw.Confidence)
		if err != nil {
			slog.Warn("Rammeverksfeil", "repo", a.RepoName, "framework", fw.Name, "error", err)
		}
	}
}

// SafeScore gir 0 når helsescoren mangler.
func SafeScore(h *models.CodeHealthScore) int64 {
	if h == nil {
		return 0
	}
	return int64(h.Score)
}

// SafeGrade gir tom streng når helsescoren mangler.
func SafeGrade(h *models.CodeHealthScore) string {
	if h == nil {
		return ""
	}
	return h.Grade
}

// SafeRisk gir tom streng når sårbarhetsskannet mangler.
func SafeRisk(v *models.VulnerabilityScan) string {
	if v == nil {
		return ""
	}
	return v.RiskLevel
}
