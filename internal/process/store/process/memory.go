// Package process provides implementations of the ProcessStore port.
package process

import (
	"context"
	"sync"

	"dossier/internal/process/models"
	id "dossier/pkg/domain"
	"dossier/pkg/platform/sentinel"
)

// InMemory is a mutex-guarded map store for tests and local development.
// Values are deep-copied on the way in and out so callers never alias stored
// state.
type InMemory struct {
	mu        sync.RWMutex
	processes map[id.ProcessID]*models.Process
}

func NewInMemory() *InMemory {
	return &InMemory{processes: make(map[id.ProcessID]*models.Process)}
}

func (s *InMemory) Create(_ context.Context, process *models.Process) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.processes[process.ID]; exists {
		return sentinel.ErrConflict
	}
	s.processes[process.ID] = process.Clone()
	return nil
}

func (s *InMemory) FindByID(_ context.Context, processID id.ProcessID) (*models.Process, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	process, ok := s.processes[processID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return process.Clone(), nil
}

func (s *InMemory) Update(_ context.Context, process *models.Process) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.processes[process.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.processes[process.ID] = process.Clone()
	return nil
}
