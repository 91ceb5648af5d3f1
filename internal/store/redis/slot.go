package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/makerhub/internal/persist"
)

// Slot stores the session record under a single Redis string key.
type Slot struct {
	client redis.UniversalClient
	key    string
}

// NewSlot creates a slot writing to key. An empty key selects DefaultStateKey.
func NewSlot(client redis.UniversalClient, key string) *Slot {
	if key == "" {
		key = DefaultStateKey
	}
	return &Slot{
		client: client,
		key:    key,
	}
}

// Key returns the Redis key in use.
func (s *Slot) Key() string {
	return s.key
}

// Read returns the stored record, or persist.ErrEmpty when the key is missing.
func (s *Slot) Read(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, persist.ErrEmpty
		}
		return nil, fmt.Errorf("failed to get session state: %w", err)
	}
	return data, nil
}

// Write overwrites the record. The previous value is kept under BackupKey
// in the same transaction, so a bad write can be rolled back by hand.
func (s *Slot) Write(ctx context.Context, data []byte) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Copy(ctx, s.key, BackupKey(s.key), 0, true)
		pipe.Set(ctx, s.key, data, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save session state: %w", err)
	}
	return nil
}

// Name identifies the backend in logs.
func (s *Slot) Name() string {
	return "redis:" + s.key
}

// Ping checks that Redis answers.
func (s *Slot) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
