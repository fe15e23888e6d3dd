// Package postgres persists audit events in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"dossier/pkg/platform/audit"
)

// Store appends audit events to the audit_events table.
//
// Schema:
//
//	CREATE TABLE audit_events (
//	    id          BIGSERIAL PRIMARY KEY,
//	    occurred_at TIMESTAMPTZ NOT NULL,
//	    process_id  UUID NOT NULL,
//	    action      TEXT NOT NULL,
//	    subject     TEXT NOT NULL DEFAULT '',
//	    outcome     TEXT NOT NULL DEFAULT '',
//	    operator    TEXT NOT NULL DEFAULT '',
//	    request_id  TEXT NOT NULL DEFAULT ''
//	);
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Append(ctx context.Context, event audit.Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_events (occurred_at, process_id, action, subject, outcome, operator, request_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		event.Timestamp,
		uuid.UUID(event.ProcessID),
		string(event.Action),
		event.Subject,
		event.Outcome,
		event.Operator,
		event.RequestID,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}
