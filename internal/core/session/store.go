package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 24 * time.Hour

// Commands is the subset of the go-redis client the store needs.
type Commands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store keeps session states in Redis under session:<id>, JSON-encoded. The
// TTL is refreshed on every save, so a session lives as long as it stays
// active.
type Store struct {
	rdb Commands
	ttl time.Duration
}

// NewStore wraps the given Redis client. A non-positive ttl falls back to 24h.
func NewStore(rdb Commands, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

// Create persists a fresh empty State and returns its new session ID.
func (s *Store) Create(ctx context.Context) (string, *State, error) {
	sid := uuid.New().String()
	state := &State{}
	if err := s.Save(ctx, sid, state); err != nil {
		return "", nil, err
	}
	return sid, state, nil
}

// Get loads the state for sid. A missing or expired session yields
// (nil, nil); the caller creates a new one.
func (s *Store) Get(ctx context.Context, sid string) (*State, error) {
	raw, err := s.rdb.Get(ctx, key(sid)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}
	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}
	return &state, nil
}

// Save writes the state back and refreshes the TTL.
func (s *Store) Save(ctx context.Context, sid string, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.rdb.Set(ctx, key(sid), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

// Delete destroys the session outright (logout).
func (s *Store) Delete(ctx context.Context, sid string) error {
	if err := s.rdb.Del(ctx, key(sid)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func key(sid string) string {
	return "session:" + sid
}
