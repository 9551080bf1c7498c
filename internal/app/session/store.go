package session

import (
	"context"
	"sync"
	"time"

	"s3-audio-translate/internal/app/model"
)

// DefaultTTL ends an idle interaction.
const DefaultTTL = 2 * time.Hour

// Record is what a Store keeps per session id: the view state plus the
// latest workflow result, which backs the download links.
type Record struct {
	Session Session                 `json:"session"`
	Result  *model.TranscriptResult `json:"result,omitempty"`
}

// Store keeps Records between requests of one interaction.
type Store interface {
	// Load returns found=false for unknown or expired ids.
	Load(ctx context.Context, id string) (rec Record, found bool, err error)
	Save(ctx context.Context, id string, rec Record) error
	Delete(ctx context.Context, id string) error
}

type memoryEntry struct {
	rec     Record
	expires time.Time
}

// MemoryStore is a process-local Store with idle expiry.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates a MemoryStore. A non-positive ttl uses DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Load(_ context.Context, id string) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return Record{}, false, nil
	}
	if !s.now().Before(e.expires) {
		delete(s.entries, id)
		return Record{}, false, nil
	}
	return e.rec, true, nil
}

func (s *MemoryStore) Save(_ context.Context, id string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = memoryEntry{rec: rec, expires: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}

// Len returns the number of live sessions after dropping expired ones.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, id)
		}
	}
	return len(s.entries)
}
