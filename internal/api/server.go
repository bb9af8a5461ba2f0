// Package api eksponerer dokumentasjonsgenereringen over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/jonmartinstorm/repodokka/internal/analyzer"
	"github.com/jonmartinstorm/repodokka/internal/docgen"
	"github.com/jonmartinstorm/repodokka/internal/llm"
	"github.com/jonmartinstorm/repodokka/internal/models"
	"github.com/jonmartinstorm/repodokka/internal/tasks"
)

const version = "1.0.0"

// RepoCloner er flaten serveren trenger mot gitclone.
type RepoCloner interface {
	Clone(ctx context.Context, repoURL, branch, token string) (string, error)
	Cleanup(localPath string)
}

// Storage tar imot fullførte analyser for varig lagring. Lagringsfeil er
// ikke fatale for genereringen.
type Storage interface {
	SaveAnalysis(ctx context.Context, analysis models.RepoAnalysis, docs models.GeneratedDocs) error
}

// Server binder sammen kloning, analyse og generering bak HTTP-endepunktene.
type Server struct {
	store   tasks.Store
	cloner  RepoCloner
	llm     *llm.Service
	gen     *docgen.Generator
	storage Storage // valgfri

	// analyze kan byttes ut i tester.
	analyze func(root string) (models.RepoAnalysis, error)

	// sem begrenser antall samtidige genereringsoppgaver.
	sem chan struct{}
}

func NewServer(store tasks.Store, cloner RepoCloner, llmService *llm.Service, storage Storage, parallelism int) *Server {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Server{
		store:   store,
		cloner:  cloner,
		llm:     llmService,
		gen:     docgen.NewGenerator(llmService),
		storage: storage,
		analyze: analyzer.Analyze,
		sem:     make(chan struct{}, parallelism),
	}
}

// Routes registrerer alle endepunktene.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /api/status/{id}", s.handleStatus)
	mux.HandleFunc("GET /api/result/{id}", s.handleResult)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/metrics", s.handleMetrics)
	return mux
}
