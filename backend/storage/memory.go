package storage

import (
	"sync"

	"quizlab/backend/models"
)

// MemoryStore holds the last result in process memory. It is the fallback
// when no database is configured or reachable; results do not survive a
// restart.
type MemoryStore struct {
	mu   sync.Mutex
	last *models.Result
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(r *models.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *r
	s.last = &copied
	return nil
}

func (s *MemoryStore) Last() (*models.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return nil, ErrNoResult
	}
	copied := *s.last
	return &copied, nil
}
