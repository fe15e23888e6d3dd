//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	id "dossier/pkg/domain"
	"dossier/pkg/platform/audit"
	"dossier/pkg/platform/audit/store/postgres"
	"dossier/pkg/testutil/containers"
)

func TestAppendPersistsEvent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pg := containers.NewPostgresContainer(t)
	store := postgres.New(pg.DB)
	ctx := context.Background()

	event := audit.Event{
		Timestamp: time.Now().UTC().Truncate(time.Microsecond),
		ProcessID: id.NewProcessID(),
		Action:    audit.ActionFieldsMerged,
		Subject:   "identity_document",
		Outcome:   "saved",
		Operator:  "op-17",
		RequestID: "req-abc",
	}
	require.NoError(t, store.Append(ctx, event))

	row := pg.DB.QueryRowContext(ctx, `
		SELECT occurred_at, process_id, action, subject, outcome, operator, request_id
		FROM audit_events WHERE process_id = $1`,
		uuid.UUID(event.ProcessID),
	)
	var (
		occurredAt time.Time
		processID  uuid.UUID
		action     string
		subject    string
		outcome    string
		operator   string
		requestID  string
	)
	require.NoError(t, row.Scan(&occurredAt, &processID, &action, &subject, &outcome, &operator, &requestID))
	require.True(t, event.Timestamp.Equal(occurredAt))
	require.Equal(t, uuid.UUID(event.ProcessID), processID)
	require.Equal(t, string(audit.ActionFieldsMerged), action)
	require.Equal(t, "identity_document", subject)
	require.Equal(t, "saved", outcome)
	require.Equal(t, "op-17", operator)
	require.Equal(t, "req-abc", requestID)
}
