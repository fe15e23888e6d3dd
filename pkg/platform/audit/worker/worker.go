package worker

import (
	"context"
	"log/slog"

	"dossier/pkg/platform/audit"
)

// Worker consumes audit events from a channel and persists them. A failed
// append is logged and skipped; the trail is best effort and one bad event
// must not stall the drain.
type Worker struct {
	store  audit.Store
	inbox  <-chan audit.Event
	logger *slog.Logger
}

func New(store audit.Store, inbox <-chan audit.Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil && w.logger != nil {
				w.logger.ErrorContext(ctx, "audit append failed",
					"action", event.Action,
					"process_id", event.ProcessID,
					"error", err,
				)
			}
		}
	}
}
