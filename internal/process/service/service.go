// Package service orchestrates process operations: creation, document
// analysis and merge, status changes, and timeline views.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dossier/internal/phase"
	processmetrics "dossier/internal/process/metrics"
	"dossier/internal/process/models"
	"dossier/internal/process/ports"
	id "dossier/pkg/domain"
	dErrors "dossier/pkg/domain-errors"
	"dossier/pkg/platform/audit"
	"dossier/pkg/platform/sentinel"
	"dossier/pkg/requestcontext"
)

// Service owns the process aggregate's use cases. The mapper and the timeline
// reconstructor stay pure; everything stateful (stores, analyzer, audit)
// flows through here.
type Service struct {
	processes ports.ProcessStore
	analyzer  ports.DocumentAnalyzer
	pending   ports.PendingPatchStore
	catalog   phase.Catalog
	logger    *slog.Logger
	metrics   *processmetrics.Metrics
	auditor   ports.AuditPublisher
}

// Option configures optional service dependencies.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(metrics *processmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = metrics }
}

func WithAuditPublisher(publisher ports.AuditPublisher) Option {
	return func(s *Service) { s.auditor = publisher }
}

// New constructs the service. The process store, analyzer, and pending-patch
// store are required; the rest is optional.
func New(processes ports.ProcessStore, analyzer ports.DocumentAnalyzer, pending ports.PendingPatchStore, catalog phase.Catalog, opts ...Option) (*Service, error) {
	if processes == nil {
		return nil, fmt.Errorf("process store is required")
	}
	if analyzer == nil {
		return nil, fmt.Errorf("document analyzer is required")
	}
	if pending == nil {
		return nil, fmt.Errorf("pending patch store is required")
	}
	svc := &Service{
		processes: processes,
		analyzer:  analyzer,
		pending:   pending,
		catalog:   catalog,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// CreateProcess opens a new client transaction in the initial phase.
func (s *Service) CreateProcess(ctx context.Context, clientName string) (*models.Process, error) {
	now := requestcontext.Now(ctx)
	process, err := models.NewProcess(id.NewProcessID(), clientName, now)
	if err != nil {
		return nil, err
	}
	if err := s.processes.Create(ctx, process); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "process already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create process")
	}

	s.emit(ctx, audit.Event{
		Timestamp: now,
		ProcessID: process.ID,
		Action:    audit.ActionProcessCreated,
	})
	if s.metrics != nil {
		s.metrics.IncrementProcessCreated()
	}
	return process, nil
}

// GetProcess returns the aggregate snapshot.
func (s *Service) GetProcess(ctx context.Context, processID id.ProcessID) (*models.Process, error) {
	process, err := s.processes.FindByID(ctx, processID)
	if err != nil {
		return nil, wrapProcessErr(err)
	}
	return process, nil
}

// ChangeStatus records a phase transition. History is append-only; revisits
// append a new event.
func (s *Service) ChangeStatus(ctx context.Context, processID id.ProcessID, target phase.ID) (*models.Process, error) {
	target = s.catalog.Canonical(target)

	process, err := s.processes.FindByID(ctx, processID)
	if err != nil {
		return nil, wrapProcessErr(err)
	}
	if err := process.CanChangeStatusTo(target); err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.New(dErrors.CodeConflict, "process is already in this phase")
		}
		return nil, err
	}

	now := requestcontext.Now(ctx)
	process.ApplyStatusChange(target, now)
	if err := s.processes.Update(ctx, process); err != nil {
		return nil, wrapProcessErr(err)
	}

	s.emit(ctx, audit.Event{
		Timestamp: now,
		ProcessID: process.ID,
		Action:    audit.ActionStatusChanged,
		Subject:   string(target),
	})
	if s.metrics != nil {
		s.metrics.RecordPhaseChange(string(target))
	}
	return process, nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	event.Operator = requestcontext.Operator(ctx)
	event.RequestID = requestcontext.RequestID(ctx)
	if err := s.auditor.Publish(ctx, event); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "audit publish failed",
			"action", event.Action,
			"process_id", event.ProcessID,
			"error", err,
		)
	}
}

func wrapProcessErr(err error) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "process not found")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeConflict, "conflicting process write")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "process store failure")
	}
}
