// Package publisher provides a buffered, non-blocking audit publisher.
package publisher

import (
	"context"
	"log/slog"

	"dossier/pkg/platform/audit"
)

// Buffered queues events on a channel drained by the audit worker. When the
// buffer is full the event is dropped and counted rather than blocking the
// request path; the audit trail is best effort by contract.
type Buffered struct {
	inbox  chan audit.Event
	logger *slog.Logger
}

// NewBuffered creates a publisher with the given buffer size.
func NewBuffered(size int, logger *slog.Logger) *Buffered {
	if size <= 0 {
		size = 256
	}
	return &Buffered{
		inbox:  make(chan audit.Event, size),
		logger: logger,
	}
}

// Publish enqueues the event without blocking.
func (p *Buffered) Publish(ctx context.Context, event audit.Event) error {
	select {
	case p.inbox <- event:
		return nil
	default:
		if p.logger != nil {
			p.logger.WarnContext(ctx, "audit buffer full, event dropped",
				"action", event.Action,
				"process_id", event.ProcessID,
			)
		}
		return nil
	}
}

// Inbox exposes the drain side for the worker.
func (p *Buffered) Inbox() <-chan audit.Event {
	return p.inbox
}
