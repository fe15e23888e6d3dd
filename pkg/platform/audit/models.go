// Package audit defines the domain event trail for back-office operations.
package audit

import (
	"context"
	"time"

	id "dossier/pkg/domain"
)

// Action names what happened. Keep values stable: they are queried by
// compliance reviews of client data changes.
type Action string

const (
	ActionProcessCreated   Action = "process_created"
	ActionDocumentAnalyzed Action = "document_analyzed"
	ActionFieldsMerged     Action = "fields_merged"
	ActionMergeRetained    Action = "merge_retained"
	ActionPatchRetried     Action = "patch_retried"
	ActionStatusChanged    Action = "status_changed"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time    `json:"timestamp"`
	ProcessID id.ProcessID `json:"process_id"`
	Action    Action       `json:"action"`
	// Subject narrows the action: a document type for analysis events, a
	// phase id for status events.
	Subject   string `json:"subject,omitempty"`
	Outcome   string `json:"outcome,omitempty"`
	Operator  string `json:"operator,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// Publisher accepts events for asynchronous persistence.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
