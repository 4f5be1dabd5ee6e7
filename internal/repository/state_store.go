package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gunpla-hub/service-storefront/internal/domain/session"
)

const stateKeyPrefix = "storefront:session:"

// RedisStateStore keeps each session's state as one JSON blob with a
// sliding TTL.
type RedisStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStateStore creates a store on client. A zero ttl keeps keys forever.
func NewRedisStateStore(client *redis.Client, ttl time.Duration) *RedisStateStore {
	return &RedisStateStore{client: client, ttl: ttl}
}

// Load returns the stored state or a fresh one.
func (s *RedisStateStore) Load(ctx context.Context, id string) (*session.State, error) {
	raw, err := s.client.Get(ctx, stateKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return session.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	return decodeState(raw)
}

// Save writes the state and refreshes its TTL.
func (s *RedisStateStore) Save(ctx context.Context, id string, st *session.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, stateKeyPrefix+id, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session %s: %w", id, err)
	}
	return nil
}

// Delete drops the session.
func (s *RedisStateStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, stateKeyPrefix+id).Err()
}

// MemoryStateStore keeps session blobs in process memory. Entries are
// serialized so callers never share state with the store.
type MemoryStateStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStateStore creates an empty store.
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{blobs: make(map[string][]byte)}
}

// Load returns the stored state or a fresh one.
func (s *MemoryStateStore) Load(_ context.Context, id string) (*session.State, error) {
	s.mu.RLock()
	raw, ok := s.blobs[id]
	s.mu.RUnlock()
	if !ok {
		return session.New(), nil
	}
	return decodeState(raw)
}

// Save writes the state.
func (s *MemoryStateStore) Save(_ context.Context, id string, st *session.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	s.mu.Lock()
	s.blobs[id] = raw
	s.mu.Unlock()
	return nil
}

// Delete drops the session.
func (s *MemoryStateStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.blobs, id)
	s.mu.Unlock()
	return nil
}

func decodeState(raw []byte) (*session.State, error) {
	st := session.New()
	if err := json.Unmarshal(raw, st); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return st, nil
}
