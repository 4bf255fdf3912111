package ratelimiter

import (
	"sync"
	"time"
)

type Store interface {
	Increment(key string, now time.Time) ClientWindow
	Sweep(now time.Time) (removed int, remaining int)
	Len() int
}

// ClientWindow is a snapshot of one identity's fixed window.
type ClientWindow struct {
	RequestCount int
	ResetAt      time.Time
}

type InMemoryStore struct {
	validDuration time.Duration
	storage       map[string]*entry
	sync.Mutex
}

type entry struct {
	requestCount int
	resetAt      time.Time
}

// expired reports whether the window has ended; a window ends exactly at resetAt.
func (e *entry) expired(now time.Time) bool {
	return !now.Before(e.resetAt)
}

func NewStore(validDuration time.Duration) *InMemoryStore {
	return &InMemoryStore{
		validDuration: validDuration,
		storage:       make(map[string]*entry),
	}
}

func (s *InMemoryStore) Increment(key string, now time.Time) ClientWindow {
	s.Lock()
	defer s.Unlock()

	e, ok := s.storage[key]
	if !ok || e.expired(now) {
		e = &entry{resetAt: now.Add(s.validDuration)}
		s.storage[key] = e
	}
	e.requestCount++

	return ClientWindow{RequestCount: e.requestCount, ResetAt: e.resetAt}
}

func (s *InMemoryStore) Sweep(now time.Time) (int, int) {
	s.Lock()
	defer s.Unlock()

	removed := 0
	for k, e := range s.storage {
		if e.expired(now) {
			delete(s.storage, k)
			removed++
		}
	}
	return removed, len(s.storage)
}

func (s *InMemoryStore) Len() int {
	s.Lock()
	defer s.Unlock()
	return len(s.storage)
}

var _ Store = &InMemoryStore{}
