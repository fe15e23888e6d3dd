// Package pending retains computed merge patches whose save failed, so the
// operator can retry persistence instead of re-running a costly extraction.
package pending

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dossier/internal/process/models"
	id "dossier/pkg/domain"
	"dossier/pkg/platform/sentinel"
)

// Redis stores one pending patch per process under a TTL. A newer failed
// merge overwrites the older pending patch; only the latest is worth
// retrying since patches carry fully merged values.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func key(processID id.ProcessID) string {
	return "pending_patch:" + processID.String()
}

func (s *Redis) Save(ctx context.Context, processID id.ProcessID, patch models.Patch) error {
	payload, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("marshal pending patch: %w", err)
	}
	if err := s.client.Set(ctx, key(processID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save pending patch: %w", err)
	}
	return nil
}

func (s *Redis) Find(ctx context.Context, processID id.ProcessID) (*models.Patch, error) {
	payload, err := s.client.Get(ctx, key(processID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find pending patch: %w", err)
	}
	var patch models.Patch
	if err := json.Unmarshal(payload, &patch); err != nil {
		return nil, fmt.Errorf("unmarshal pending patch: %w", err)
	}
	return &patch, nil
}

func (s *Redis) Delete(ctx context.Context, processID id.ProcessID) error {
	if err := s.client.Del(ctx, key(processID)).Err(); err != nil {
		return fmt.Errorf("delete pending patch: %w", err)
	}
	return nil
}
