package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jonmartinstorm/repodokka/internal/llm"
	"github.com/jonmartinstorm/repodokka/internal/models"
	"github.com/jonmartinstorm/repodokka/internal/tasks"
)

// GenerateRequest er kroppen til POST /api/generate.
type GenerateRequest struct {
	RepoURL     string `json:"repo_url"`
	Branch      string `json:"branch"`
	GitHubToken string `json:"github_token,omitempty"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "ugyldig JSON i forespørselen")
		return
	}
	if req.RepoURL == "" {
		writeError(w, http.StatusBadRequest, "repo_url er påkrevd")
		return
	}
	if req.Branch == "" {
		req.Branch = "main"
	}

	id := s.store.Create()
	go s.runTask(id, req)

	writeJSON(w, http.StatusOK, map[string]string{"task_id": id, "status": "started"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	task, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	task, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Result not found")
		return
	}
	if task.Status == models.StatusComplete && task.Result != nil {
		writeJSON(w, http.StatusOK, map[string]any{"status": "complete", "result": task.Result})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": task.Status, "message": task.Message})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	var llmHealth llm.Health
	if s.llm != nil {
		llmHealth = s.llm.CheckHealth(r.Context())
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"llm":     llmHealth,
		"version": version,
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	var m llm.Metrics
	if s.llm != nil {
		m = s.llm.Metrics()
	}
	writeJSON(w, http.StatusOK, map[string]any{"llm_metrics": m})
}

// runTask kjører hele pipelinen i bakgrunnen: klone, analysere, generere,
// eventuelt lagre. Parallellitet begrenses av semaforen.
func (s *Server) runTask(id string, req GenerateRequest) {
	s.sem <- struct{}{}
	defer func() { <-s.sem }()

	ctx := context.Background()

	fail := func(stage string, err error) {
		slog.Error("genereringsoppgave feilet", "task", id, "stage", stage, "error", err)
		if serr := s.store.SetError(id, fmt.Sprintf("Error: %v", err)); serr != nil {
			slog.Warn("kunne ikke oppdatere oppgavestatus", "task", id, "error", serr)
		}
	}

	s.progress(id, models.StatusCloning, 10, "Kloner repo …")
	localPath, err := s.cloner.Clone(ctx, req.RepoURL, req.Branch, req.GitHubToken)
	if err != nil {
		fail("clone", err)
		return
	}
	defer s.cloner.Cleanup(localPath)

	s.progress(id, models.StatusAnalyzing, 30, "Analyserer kodebasen …")
	analysis, err := s.analyze(localPath)
	if err != nil {
		fail("analyze", err)
		return
	}

	s.progress(id, models.StatusGenerating, 50, "Genererer dokumentasjon med AI …")
	docs, err := s.gen.Generate(ctx, analysis)
	if err != nil {
		fail("generate", err)
		return
	}

	s.progress(id, models.StatusGenerating, 80, "Kjører helse- og sårbarhetsskann …")

	if s.storage != nil {
		if err := s.storage.SaveAnalysis(ctx, analysis, docs); err != nil {
			// Lagring er best effort; resultatet leveres uansett.
			slog.Warn("kunne ikke lagre analysen", "task", id, "error", err)
		}
	}

	if err := s.store.SetResult(id, &docs); err != nil {
		slog.Warn("kunne ikke lagre resultatet", "task", id, "error", err)
	}
	slog.Info("dokumentasjon generert", "task", id, "repo", analysis.RepoName)
}

func (s *Server) progress(id string, status models.TaskStatus, pct int, msg string) {
	if err := s.store.Update(id, status, pct, msg); err != nil && err != tasks.ErrNotFound {
		slog.Warn("kunne ikke oppdatere fremdrift", "task", id, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("kunne ikke skrive svar", "error", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"detail": msg})
}
