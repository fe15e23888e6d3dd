package pending

import (
	"context"
	"sync"

	"dossier/internal/process/models"
	id "dossier/pkg/domain"
	"dossier/pkg/platform/sentinel"
)

// InMemory keeps pending patches in a map. Used in tests and when Redis is
// not configured; retention then only survives the process lifetime.
type InMemory struct {
	mu      sync.Mutex
	patches map[id.ProcessID]models.Patch
}

func NewInMemory() *InMemory {
	return &InMemory{patches: make(map[id.ProcessID]models.Patch)}
}

func (s *InMemory) Save(_ context.Context, processID id.ProcessID, patch models.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patches[processID] = patch
	return nil
}

func (s *InMemory) Find(_ context.Context, processID id.ProcessID) (*models.Patch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch, ok := s.patches[processID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &patch, nil
}

func (s *InMemory) Delete(_ context.Context, processID id.ProcessID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.patches, processID)
	return nil
}
