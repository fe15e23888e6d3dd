package publisher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "dossier/pkg/domain"
	"dossier/pkg/platform/audit"
)

func TestPublishEnqueues(t *testing.T) {
	p := NewBuffered(2, nil)
	event := audit.Event{ProcessID: id.NewProcessID(), Action: audit.ActionProcessCreated}

	require.NoError(t, p.Publish(context.Background(), event))

	got := <-p.Inbox()
	assert.Equal(t, event, got)
}

func TestPublishNeverBlocksWhenFull(t *testing.T) {
	p := NewBuffered(1, nil)
	ctx := context.Background()

	require.NoError(t, p.Publish(ctx, audit.Event{Action: audit.ActionProcessCreated}))
	// Buffer is full: the second event is dropped, not queued behind a
	// blocked request.
	require.NoError(t, p.Publish(ctx, audit.Event{Action: audit.ActionStatusChanged}))

	got := <-p.Inbox()
	assert.Equal(t, audit.ActionProcessCreated, got.Action)
	select {
	case unexpected := <-p.Inbox():
		t.Fatalf("dropped event was delivered: %v", unexpected)
	default:
	}
}

func TestZeroSizeGetsDefaultBuffer(t *testing.T) {
	p := NewBuffered(0, nil)
	require.NoError(t, p.Publish(context.Background(), audit.Event{}))
}
