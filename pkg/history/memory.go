package history

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore implements the Store interface using an in-memory slice.
// It is intended for testing.
type MemoryStore struct {
	runs []*Run
	mu   sync.RWMutex
}

// NewMemoryStore creates a new in-memory history backend.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Record persists a finished run in memory.
func (s *MemoryStore) Record(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCopy := *run
	s.runs = append(s.runs, &runCopy)
	return nil
}

// Recent returns up to limit runs, most recent first.
func (s *MemoryStore) Recent(ctx context.Context, limit int) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	results := make([]*Run, 0, len(s.runs))
	for _, run := range s.runs {
		runCopy := *run
		results = append(results, &runCopy)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].StartedAt.After(results[j].StartedAt)
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Count returns the total number of recorded runs.
func (s *MemoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.runs)), nil
}

// Prune deletes runs that started more than retentionDays ago.
func (s *MemoryStore) Prune(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	kept := s.runs[:0]
	var deleted int64
	for _, run := range s.runs {
		if run.StartedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, run)
	}
	s.runs = kept
	return deleted, nil
}

// Close is a no-op for the memory backend.
func (s *MemoryStore) Close() error {
	return nil
}
