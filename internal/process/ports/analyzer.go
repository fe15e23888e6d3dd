// Package ports defines the interfaces the process service depends on.
package ports

import (
	"context"

	"dossier/internal/extraction"
)

//go:generate mockgen -destination=../service/mocks/mocks.go -package=mocks dossier/internal/process/ports DocumentAnalyzer,ProcessStore,PendingPatchStore,AuditPublisher

// DocumentAnalyzer is the external document-analysis service. It turns a
// stored document into a typed extraction result. Failures here are reported
// to the operator before the field mapper is ever invoked.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, documentURL string, hint extraction.DocumentType) (extraction.Result, error)
}
