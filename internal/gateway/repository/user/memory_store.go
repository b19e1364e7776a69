package user

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore is the DATABASE_URL-less fallback with the same behavior as
// the Postgres store.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]User
	order  []int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, byID: make(map[int64]User)}
}

func (s *MemoryStore) Create(_ context.Context, u User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(u.Email))
	for _, existing := range s.byID {
		if existing.Email == email {
			return User{}, ErrEmailTaken
		}
	}
	u.ID = s.nextID
	u.Email = email
	s.nextID++
	s.byID[u.ID] = u
	s.order = append(s.order, u.ID)
	return u, nil
}

func (s *MemoryStore) GetByEmail(_ context.Context, email string) (User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.byID {
		if u.Email == email {
			return u, true, nil
		}
	}
	return User{}, false, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id int64) (User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	return u, ok, nil
}

func (s *MemoryStore) ListStudents(_ context.Context) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]User, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		u := s.byID[s.order[i]]
		if u.Role == "student" {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *MemoryStore) SetFollowUpStatus(_ context.Context, id int64, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.FollowUpStatus = status
	s.byID[id] = u
	return nil
}
