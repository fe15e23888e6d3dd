package ports

import (
	"context"

	"dossier/internal/process/models"
	id "dossier/pkg/domain"
)

// ProcessStore is the system of record for process aggregates. Implementations
// return pkg/platform/sentinel errors for infrastructure facts.
type ProcessStore interface {
	Create(ctx context.Context, process *models.Process) error
	FindByID(ctx context.Context, processID id.ProcessID) (*models.Process, error)
	Update(ctx context.Context, process *models.Process) error
}

// PendingPatchStore retains merge patches whose save failed so operators can
// retry persistence without re-running extraction.
type PendingPatchStore interface {
	Save(ctx context.Context, processID id.ProcessID, patch models.Patch) error
	Find(ctx context.Context, processID id.ProcessID) (*models.Patch, error)
	Delete(ctx context.Context, processID id.ProcessID) error
}
