package cache

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"
)

func TestDraftStore_UnavailableRedisIsNoop(t *testing.T) {
	r := NewRedisFromClient(nil, log.New(io.Discard, "", 0))
	s := NewDraftStore(r, time.Hour)
	ctx := context.Background()

	if err := s.Save(ctx, "draft-candidate:u1", []byte(`{}`)); err != nil {
		t.Fatalf("save should be a no-op, got %v", err)
	}
	if _, ok, err := s.Load(ctx, "draft-candidate:u1"); ok || err != nil {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}
	if err := s.Delete(ctx, "draft-candidate:u1"); err != nil {
		t.Fatalf("delete should be a no-op, got %v", err)
	}
	if err := r.Ping(ctx); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
