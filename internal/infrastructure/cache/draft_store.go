package cache

import (
	"context"
	"time"
)

const draftNamespace = "intake:"

// DraftStore keeps intake drafts in Redis with a sliding expiry: every save
// pushes the expiry out by ttl.
type DraftStore struct {
	redis *Redis
	ttl   time.Duration
}

func NewDraftStore(r *Redis, ttl time.Duration) *DraftStore {
	return &DraftStore{redis: r, ttl: ttl}
}

func (s *DraftStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	return s.redis.Get(ctx, draftNamespace+key)
}

func (s *DraftStore) Save(ctx context.Context, key string, data []byte) error {
	return s.redis.Set(ctx, draftNamespace+key, data, s.ttl)
}

func (s *DraftStore) Delete(ctx context.Context, key string) error {
	return s.redis.Delete(ctx, draftNamespace+key)
}
