package service

import (
	"context"
	"errors"
	"time"

	"dossier/internal/extraction"
	"dossier/internal/mapper"
	"dossier/internal/process/models"
	id "dossier/pkg/domain"
	dErrors "dossier/pkg/domain-errors"
	"dossier/pkg/platform/audit"
	"dossier/pkg/platform/sentinel"
	"dossier/pkg/requestcontext"
)

// AnalyzeDocument runs the extraction service on a stored document, merges
// the result into the process's canonical fields, and persists the patch.
//
// When the save fails after a successful extraction, the computed patch is
// retained in the pending-patch store and the returned error says so:
// extraction is costly and possibly non-repeatable, so the operator retries
// the save, never the extraction.
func (s *Service) AnalyzeDocument(ctx context.Context, processID id.ProcessID, documentURL string, hint extraction.DocumentType) (*models.Process, error) {
	start := time.Now()
	now := requestcontext.Now(ctx)

	process, err := s.processes.FindByID(ctx, processID)
	if err != nil {
		return nil, wrapProcessErr(err)
	}

	result, err := s.analyzer.Analyze(ctx, documentURL, hint)
	if err != nil {
		s.recordAnalysis(string(hint), "analysis_failed")
		s.emit(ctx, audit.Event{
			Timestamp: now,
			ProcessID: processID,
			Action:    audit.ActionDocumentAnalyzed,
			Subject:   string(hint),
			Outcome:   "failed",
		})
		return nil, err
	}

	s.emit(ctx, audit.Event{
		Timestamp: now,
		ProcessID: processID,
		Action:    audit.ActionDocumentAnalyzed,
		Subject:   string(result.Type),
		Outcome:   "ok",
	})

	patch := mapper.Merge(result, process.Snapshot())
	process.ApplyPatch(patch, now)

	if err := s.processes.Update(ctx, process); err != nil {
		return nil, s.retainPatch(ctx, processID, patch, string(result.Type), err)
	}

	s.pruneResolvedPatch(ctx, processID)
	s.recordAnalysis(string(result.Type), "merged")
	if s.metrics != nil {
		s.metrics.ObserveMerge(start)
	}
	s.emit(ctx, audit.Event{
		Timestamp: now,
		ProcessID: processID,
		Action:    audit.ActionFieldsMerged,
		Subject:   string(result.Type),
		Outcome:   "saved",
	})
	return process, nil
}

// RetryPendingPatch re-applies a retained merge patch after a failed save.
func (s *Service) RetryPendingPatch(ctx context.Context, processID id.ProcessID) (*models.Process, error) {
	patch, err := s.pending.Find(ctx, processID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "no pending patch for this process")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "pending patch lookup failed")
	}

	process, err := s.processes.FindByID(ctx, processID)
	if err != nil {
		return nil, wrapProcessErr(err)
	}

	now := requestcontext.Now(ctx)
	process.ApplyPatch(*patch, now)
	if err := s.processes.Update(ctx, process); err != nil {
		// Patch stays retained; the operator can try again.
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "save failed again; extracted data still retained")
	}

	if err := s.pending.Delete(ctx, processID); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "pending patch cleanup failed",
			"process_id", processID,
			"error", err,
		)
	}
	if s.metrics != nil {
		s.metrics.PendingPatchResolved()
	}
	s.emit(ctx, audit.Event{
		Timestamp: now,
		ProcessID: processID,
		Action:    audit.ActionPatchRetried,
		Outcome:   "saved",
	})
	return process, nil
}

// retainPatch stores the unsaved patch for retry and returns the error the
// operator sees. If even retention fails, the patch is surfaced in the log so
// the extracted data is not silently discarded.
func (s *Service) retainPatch(ctx context.Context, processID id.ProcessID, patch models.Patch, documentType string, cause error) error {
	now := requestcontext.Now(ctx)
	s.recordAnalysis(documentType, "save_failed")

	if saveErr := s.pending.Save(ctx, processID, patch); saveErr != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "merge patch retention failed, extracted data at risk",
				"process_id", processID,
				"document_type", documentType,
				"patch", patch,
				"error", saveErr,
			)
		}
		return dErrors.Wrap(cause, dErrors.CodeInternal, "process save failed and patch retention failed")
	}

	if s.metrics != nil {
		s.metrics.PendingPatchRetained()
	}
	s.emit(ctx, audit.Event{
		Timestamp: now,
		ProcessID: processID,
		Action:    audit.ActionMergeRetained,
		Subject:   documentType,
		Outcome:   "retained",
	})
	return dErrors.Wrap(cause, dErrors.CodeUnavailable, "process save failed; extracted data retained for retry")
}

// pruneResolvedPatch drops a stale pending patch once a newer merge saved
// successfully; the retained patch would only resurrect older values.
func (s *Service) pruneResolvedPatch(ctx context.Context, processID id.ProcessID) {
	if _, err := s.pending.Find(ctx, processID); err != nil {
		return
	}
	if err := s.pending.Delete(ctx, processID); err == nil && s.metrics != nil {
		s.metrics.PendingPatchResolved()
	}
}

func (s *Service) recordAnalysis(documentType, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordDocumentAnalyzed(documentType, outcome)
	}
}
