package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in a map. Used by tests and broker-less dev
// runs; expiry is checked lazily on Get.
type MemoryStore struct {
	mu  sync.RWMutex
	m   map[string]memorySession
	ttl time.Duration
}

type memorySession struct {
	sess      Session
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{m: make(map[string]memorySession), ttl: ttl}
}

func (s *MemoryStore) Create(_ context.Context, sess Session) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	s.m[token] = memorySession{sess: sess, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.RLock()
	entry, ok := s.m[token]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.m, token)
		s.mu.Unlock()
		return nil, nil
	}
	sess := entry.sess
	return &sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.m, token)
	s.mu.Unlock()
	return nil
}
