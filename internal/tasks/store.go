// Package tasks holder status for pågående genereringsoppgaver.
package tasks

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

var ErrNotFound = errors.New("ukjent oppgave-id")

// Store er flaten API-laget bruker for å følge oppgaver.
type Store interface {
	Create() string
	Update(id string, status models.TaskStatus, progress int, message string) error
	SetResult(id string, result *models.GeneratedDocs) error
	SetError(id string, message string) error
	Get(id string) (models.TaskProgress, error)
}

// MemoryStore er en trådsikker in-memory-implementasjon. Oppgaver lever så
// lenge prosessen kjører; det finnes ingen opprydding.
type MemoryStore struct {
	mu    sync.RWMutex
	tasks map[string]models.TaskProgress
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tasks: make(map[string]models.TaskProgress)}
}

// Create registrerer en ny oppgave i pending-tilstand og returnerer id-en.
func (s *MemoryStore) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.tasks[id] = models.TaskProgress{
		Status:   models.StatusPending,
		Progress: 0,
		Message:  "Oppgaven er i kø",
	}
	s.mu.Unlock()
	return id
}

func (s *MemoryStore) Update(id string, status models.TaskStatus, progress int, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[id]
	if !ok {
		return ErrNotFound
	}
	task.Status = status
	task.Progress = progress
	task.Message = message
	s.tasks[id] = task
	return nil
}

// SetResult markerer oppgaven som fullført med resultatet vedlagt.
func (s *MemoryStore) SetResult(id string, result *models.GeneratedDocs) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[id]
	if !ok {
		return ErrNotFound
	}
	task.Status = models.StatusComplete
	task.Progress = 100
	task.Message = "Dokumentasjonen er klar"
	task.Result = result
	s.tasks[id] = task
	return nil
}

func (s *MemoryStore) SetError(id string, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[id]
	if !ok {
		return ErrNotFound
	}
	task.Status = models.StatusError
	task.Message = message
	s.tasks[id] = task
	return nil
}

func (s *MemoryStore) Get(id string) (models.TaskProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[id]
	if !ok {
		return models.TaskProgress{}, ErrNotFound
	}
	return task, nil
}
