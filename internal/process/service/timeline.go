package service

import (
	"context"

	"dossier/internal/timeline"
	id "dossier/pkg/domain"
	"dossier/pkg/requestcontext"
)

// TimelineView is the reconstructed timeline plus the aggregates derived from
// it. The reconstructor owns only the entries; the counts are computed here.
type TimelineView struct {
	Entries          []timeline.Entry
	CompletedPhases  int
	TotalTrackedDays int
}

// Timeline reconstructs the ordered phase view for a process. The "now" used
// for the open phase's elapsed days is the request-scoped time, which keeps
// the view deterministic for a given request.
func (s *Service) Timeline(ctx context.Context, processID id.ProcessID) (*TimelineView, error) {
	process, err := s.processes.FindByID(ctx, processID)
	if err != nil {
		return nil, wrapProcessErr(err)
	}

	entries := timeline.Reconstruct(process.StatusHistory, process.Status, s.catalog, requestcontext.Now(ctx))

	view := &TimelineView{Entries: entries}
	for _, entry := range entries {
		if entry.IsCompleted {
			view.CompletedPhases++
		}
		if entry.DaysInPhase != nil {
			view.TotalTrackedDays += *entry.DaysInPhase
		}
	}

	if s.metrics != nil {
		s.metrics.IncrementTimelinesBuilt()
	}
	return view, nil
}
