package referencedata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"contactregistry/internal/platform/metrics"
)

// CachedStore is a redis read-through decorator over a Store. Reference codes
// change rarely, so a short TTL keeps the catalogue fresh without a hot path
// to the database on every validation.
//
// Redis failures degrade to the inner store; the cache is never load-bearing.
type CachedStore struct {
	inner   Store
	client  *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewCachedStore(inner Store, client *redis.Client, ttl time.Duration, logger *slog.Logger, m *metrics.Metrics) *CachedStore {
	return &CachedStore{inner: inner, client: client, ttl: ttl, logger: logger, metrics: m}
}

func (s *CachedStore) Lookup(ctx context.Context, group Group, code string) (*Code, error) {
	key := cacheKey(group, code)
	payload, err := s.client.Get(ctx, key).Bytes()
	if err == nil {
		var entry Code
		if err := json.Unmarshal(payload, &entry); err == nil {
			s.metrics.RecordRefDataCache("hit")
			return &entry, nil
		}
		// A corrupt entry falls through to the inner store and gets rewritten.
		s.metrics.RecordRefDataCache("miss")
	} else if errors.Is(err, redis.Nil) {
		s.metrics.RecordRefDataCache("miss")
	} else {
		s.metrics.RecordRefDataCache("error")
		s.logger.WarnContext(ctx, "reference code cache read failed", "key", key, "error", err)
	}

	entry, err := s.inner.Lookup(ctx, group, code)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(entry); err == nil {
		if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
			s.logger.WarnContext(ctx, "reference code cache write failed", "key", key, "error", err)
		}
	}
	return entry, nil
}

// ListByGroup always hits the inner store. Group listings serve the thin
// reference-data endpoints, not the per-write validation path.
func (s *CachedStore) ListByGroup(ctx context.Context, group Group) ([]*Code, error) {
	return s.inner.ListByGroup(ctx, group)
}

func cacheKey(group Group, code string) string {
	return fmt.Sprintf("refdata:%s:%s", group, strings.ToUpper(code))
}
