package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonmartinstorm/repodokka/internal/docgen"
	"github.com/jonmartinstorm/repodokka/internal/models"
	"github.com/jonmartinstorm/repodokka/internal/tasks"
)

type fakeCloner struct {
	path    string
	err     error
	cleaned bool
}

func (f *fakeCloner) Clone(_ context.Context, _, _, _ string) (string, error) {
	return f.path, f.err
}
func (f *fakeCloner) Cleanup(string) { f.cleaned = true }

type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) Generate(_ context.Context, _, _ string) (string, error) {
	return f.response, f.err
}

type fakeStorage struct {
	saved int
	err   error
}

func (f *fakeStorage) SaveAnalysis(context.Context, models.RepoAnalysis, models.GeneratedDocs) error {
	f.saved++
	return f.err
}

func testServer(cloner RepoCloner, storage Storage) (*Server, tasks.Store) {
	store := tasks.NewMemoryStore()
	s := &Server{
		store:   store,
		cloner:  cloner,
		gen:     docgen.NewGenerator(&fakeLLM{response: "## Overview\nTestoversikt."}),
		storage: storage,
		analyze: func(root string) (models.RepoAnalysis, error) {
			return models.RepoAnalysis{RepoName: "demorepo", FileCount: 3, TotalLines: 100}, nil
		},
		sem: make(chan struct{}, 1),
	}
	return s, store
}

// ventPaaStatus poller til oppgaven når ønsket status, med kort frist.
func ventPaaStatus(t *testing.T, store tasks.Store, id string, want models.TaskStatus) models.TaskProgress {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		task, err := store.Get(id)
		if err == nil && task.Status == want {
			return task
		}
		time.Sleep(10 * time.Millisecond)
	}
	task, _ := store.Get(id)
	t.Fatalf("oppgaven nådde aldri %s, sist: %+v", want, task)
	return models.TaskProgress{}
}

func TestGenerateEndeTilEnde(t *testing.T) {
	cloner := &fakeCloner{path: "/tmp/demo"}
	s, store := testServer(cloner, nil)
	srv := httptest.NewServer(s.Routes())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/generate", "application/json",
		strings.NewReader(`{"repo_url":"https://github.com/demobruker/demorepo"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("forventet 200, fikk %d", resp.StatusCode)
	}

	var started struct {
		TaskID string `json:"task_id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&started); err != nil {
		t.Fatal(err)
	}
	if started.TaskID == "" || started.Status != "started" {
		t.Fatalf("uventet svar: %+v", started)
	}

	task := ventPaaStatus(t, store, started.TaskID, models.StatusComplete)
	if task.Progress != 100 || task.Result == nil {
		t.Errorf("fullført oppgave skal ha resultat og 100%%: %+v", task)
	}
	if task.Result.RepoName != "demorepo" {
		t.Errorf("uventet reponavn i resultatet: %s", task.Result.RepoName)
	}
	if !cloner.cleaned {
		t.Error("klonen skal ryddes etter generering")
	}

	// Resultatendepunktet skal nå gi hele pakken.
	res, err := http.Get(srv.URL + "/api/result/" + started.TaskID)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	var result struct {
		Status string                `json:"status"`
		Result *models.GeneratedDocs `json:"result"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if result.Status != "complete" || result.Result == nil {
		t.Errorf("uventet resultat: %+v", result)
	}
}

func TestGenerateKloningFeiler(t *testing.T) {
	s, store := testServer(&fakeCloner{err: errors.New("repo finnes ikke")}, nil)
	srv := httptest.NewServer(s.Routes())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/generate", "application/json",
		strings.NewReader(`{"repo_url":"https://github.com/demobruker/finnesikke"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var started struct {
		TaskID string `json:"task_id"`
	}
	json.NewDecoder(resp.Body).Decode(&started)

	task := ventPaaStatus(t, store, started.TaskID, models.StatusError)
	if !strings.Contains(task.Message, "repo finnes ikke") {
		t.Errorf("feilmeldingen skal forklare årsaken: %q", task.Message)
	}
}

func TestGenerateValidering(t *testing.T) {
	s, _ := testServer(&fakeCloner{}, nil)
	srv := httptest.NewServer(s.Routes())
	defer srv.Close()

	for _, body := range []string{`{}`, `ikke json`} {
		resp, err := http.Post(srv.URL+"/api/generate", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("body %q: forventet 400, fikk %d", body, resp.StatusCode)
		}
	}
}

func TestStatusUkjentOppgave(t *testing.T) {
	s, _ := testServer(&fakeCloner{}, nil)
	srv := httptest.NewServer(s.Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/status/finnes-ikke")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("forventet 404, fikk %d", resp.StatusCode)
	}
}

func TestResultFoerFullfoering(t *testing.T) {
	s, store := testServer(&fakeCloner{}, nil)
	srv := httptest.NewServer(s.Routes())
	defer srv.Close()

	id := store.Create()
	store.Update(id, models.StatusAnalyzing, 30, "Analyserer kodebasen …")

	resp, err := http.Get(srv.URL + "/api/result/" + id)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var out struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Status != "analyzing" {
		t.Errorf("forventet analyzing, fikk %s", out.Status)
	}
}

func TestHealthOgMetrics(t *testing.T) {
	s, _ := testServer(&fakeCloner{}, nil)
	srv := httptest.NewServer(s.Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var health struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatal(err)
	}
	if health.Status != "healthy" || health.Version != version {
		t.Errorf("uventet helsesvar: %+v", health)
	}

	mresp, err := http.Get(srv.URL + "/api/metrics")
	if err != nil {
		t.Fatal(err)
	}
	mresp.Body.Close()
	if mresp.StatusCode != http.StatusOK {
		t.Errorf("forventet 200 fra metrics, fikk %d", mresp.StatusCode)
	}
}

func TestLagringKallesMenFeilErIkkeFatal(t *testing.T) {
	storage := &fakeStorage{err: errors.New("databasen er nede")}
	s, store := testServer(&fakeCloner{path: "/tmp/demo"}, storage)
	srv := httptest.NewServer(s.Routes())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/generate", "application/json",
		strings.NewReader(`{"repo_url":"https://github.com/demobruker/demorepo"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var started struct {
		TaskID string `json:"task_id"`
	}
	json.NewDecoder(resp.Body).Decode(&started)

	task := ventPaaStatus(t, store, started.TaskID, models.StatusComplete)
	if task.Result == nil {
		t.Error("lagringsfeil skal ikke hindre resultatet")
	}
	if storage.saved != 1 {
		t.Errorf("lagringen skal kalles nøyaktig én gang, ble kalt %d", storage.saved)
	}
}
