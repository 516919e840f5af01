package app

import (
	"sync"

	"github.com/kritsw/lexiscan/internal/model"
)

// SessionStore accumulates the batches produced during one session.
// The store is caller-owned: create it at startup, Clear it on the
// user's explicit request, and let it die with the process. Nothing is
// persisted.
type SessionStore struct {
	mu      sync.Mutex
	batches []*model.AnalysisBatch
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Add appends a finished batch.
func (s *SessionStore) Add(batch *model.AnalysisBatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, batch)
}

// All returns a snapshot of the accumulated batches in insertion order.
func (s *SessionStore) All() []*model.AnalysisBatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.AnalysisBatch, len(s.batches))
	copy(out, s.batches)
	return out
}

// Len reports the number of accumulated batches.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.batches)
}

// Clear drops all accumulated batches.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = nil
}
