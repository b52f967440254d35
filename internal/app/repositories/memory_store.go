package repositories

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/ogulcan/coursepilot/internal/pkg/apperrors"
)

const sessionShardCount = 32

type sessionShard struct {
	mu       sync.Mutex
	sessions map[string][]string
}

// MemorySessionStore is the in-process SessionStore. Sessions are
// sharded by id hash so writes to different sessions rarely contend,
// while writes to the same session always serialize on its shard lock.
type MemorySessionStore struct {
	shards [sessionShardCount]*sessionShard
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	store := &MemorySessionStore{}
	for i := range store.shards {
		store.shards[i] = &sessionShard{sessions: make(map[string][]string)}
	}
	return store
}

func (s *MemorySessionStore) shardFor(sessionID string) *sessionShard {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return s.shards[h.Sum32()%sessionShardCount]
}

// GetHistory implements SessionStore.
func (s *MemorySessionStore) GetHistory(_ context.Context, sessionID string) ([]string, error) {
	shard := s.shardFor(sessionID)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	history, ok := shard.sessions[sessionID]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return append([]string(nil), history...), nil
}

// ReplaceHistory implements SessionStore.
func (s *MemorySessionStore) ReplaceHistory(_ context.Context, sessionID string, courseIDs []string) error {
	shard := s.shardFor(sessionID)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	shard.sessions[sessionID] = dedupe(courseIDs)
	return nil
}

// AppendHistory implements SessionStore.
func (s *MemorySessionStore) AppendHistory(_ context.Context, sessionID string, courseIDs []string) ([]string, error) {
	shard := s.shardFor(sessionID)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	updated := merge(shard.sessions[sessionID], dedupe(courseIDs))
	shard.sessions[sessionID] = updated
	return append([]string(nil), updated...), nil
}
