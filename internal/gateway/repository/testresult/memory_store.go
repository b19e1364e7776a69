package testresult

import (
	"context"
	"sync"
)

// NameResolver looks up a display name for a user id. The in-memory user
// store provides it so reads can attach names the way the SQL join does.
type NameResolver func(ctx context.Context, userID int64) string

type MemoryStore struct {
	nameOf NameResolver

	mu      sync.RWMutex
	nextID  int64
	records []Record
}

func NewMemoryStore(nameOf NameResolver) *MemoryStore {
	if nameOf == nil {
		nameOf = func(context.Context, int64) string { return "" }
	}
	return &MemoryStore{nameOf: nameOf, nextID: 1}
}

func (s *MemoryStore) Add(_ context.Context, rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = s.nextID
	rec.UserName = ""
	s.nextID++
	s.records = append(s.records, rec)
	return rec, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		rec := s.records[i]
		rec.UserName = s.nameOf(ctx, rec.UserID)
		out = append(out, rec)
	}
	return out, nil
}

func (s *MemoryStore) CountByCareer(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int)
	for _, rec := range s.records {
		out[rec.RecommendedCareer]++
	}
	return out, nil
}
