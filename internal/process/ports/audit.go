package ports

import (
	"context"

	"dossier/pkg/platform/audit"
)

// AuditPublisher records domain events for the back-office trail. Emission is
// best effort from the service's point of view; losing an audit event never
// fails the business operation.
type AuditPublisher interface {
	Publish(ctx context.Context, event audit.Event) error
}
