package quiz

import (
	"context"
	"sync"
	"time"
)

const defaultRecentTTL = 30 * time.Minute

// RecentStore remembers which questions a session was recently served.
type RecentStore interface {
	Seen(ctx context.Context, sessionID, fingerprint string) (bool, error)
	Remember(ctx context.Context, sessionID, fingerprint string) error
}

// MemoryRecentStore keeps recent questions in process memory.
type MemoryRecentStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]map[string]time.Time
}

var _ RecentStore = (*MemoryRecentStore)(nil)

func NewMemoryRecentStore(ttl time.Duration) *MemoryRecentStore {
	if ttl <= 0 {
		ttl = defaultRecentTTL
	}
	return &MemoryRecentStore{ttl: ttl, now: time.Now, entries: map[string]map[string]time.Time{}}
}

func (s *MemoryRecentStore) Seen(_ context.Context, sessionID, fingerprint string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expires, ok := s.entries[sessionID][fingerprint]
	if !ok {
		return false, nil
	}
	if s.now().After(expires) {
		delete(s.entries[sessionID], fingerprint)
		return false, nil
	}
	return true, nil
}

func (s *MemoryRecentStore) Remember(_ context.Context, sessionID, fingerprint string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.entries[sessionID]
	if !ok {
		session = map[string]time.Time{}
		s.entries[sessionID] = session
	}
	session[fingerprint] = s.now().Add(s.ttl)
	return nil
}
