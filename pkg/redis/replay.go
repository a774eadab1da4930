package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const replayNamespace = "wishlist:replay"

// ReplayRecord is the stored outcome of a keyed request.
type ReplayRecord struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type,omitempty"`
	Body        []byte `json:"body"`
	RequestHash string `json:"request_hash"`
}

// ReplayStore keeps the first response seen for a (scope, key) pair.
// LookupReplay returns nil, nil when nothing is stored.
type ReplayStore interface {
	LookupReplay(ctx context.Context, scope, key string) (*ReplayRecord, error)
	SaveReplay(ctx context.Context, scope, key string, record ReplayRecord, ttl time.Duration) (bool, error)
}

// ReplayKey builds the Redis key for a scoped client key, skipping blank parts.
func ReplayKey(scope, key string) string {
	parts := []string{replayNamespace}
	for _, part := range []string{scope, key} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ":")
}

// LookupReplay loads the record stored for scope and key.
func (c *Client) LookupReplay(ctx context.Context, scope, key string) (*ReplayRecord, error) {
	if c == nil || c.raw == nil {
		return nil, errNotInitialized
	}
	payload, err := c.raw.Get(ctx, ReplayKey(scope, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get replay record: %w", err)
	}
	var record ReplayRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("decode replay record: %w", err)
	}
	return &record, nil
}

// SaveReplay stores record unless one already exists; the bool reports
// whether this call wrote it.
func (c *Client) SaveReplay(ctx context.Context, scope, key string, record ReplayRecord, ttl time.Duration) (bool, error) {
	if c == nil || c.raw == nil {
		return false, errNotInitialized
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return false, fmt.Errorf("encode replay record: %w", err)
	}
	stored, err := c.raw.SetNX(ctx, ReplayKey(scope, key), payload, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("set replay record: %w", err)
	}
	return stored, nil
}
