package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lifebridge/lifebridge/internal/domain"
)

// MemoryStore keeps profiles in a map. Used by tests and `serve --memory`.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]StoredProfile
	now      func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]StoredProfile),
		now:      time.Now,
	}
}

func (s *MemoryStore) Save(ctx context.Context, p StoredProfile) (StoredProfile, error) {
	if err := domain.Validate(&p.Profile); err != nil {
		return StoredProfile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	if p.ID == "" {
		p.ID = uuid.NewString()
		p.CreatedAt = now
	} else {
		existing, ok := s.profiles[p.ID]
		if !ok {
			return StoredProfile{}, fmt.Errorf("%w: %s", ErrNotFound, p.ID)
		}
		p.CreatedAt = existing.CreatedAt
	}
	p.UpdatedAt = now
	p.Profile = p.Profile.Clone()

	s.profiles[p.ID] = p
	return p, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (StoredProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	if !ok {
		return StoredProfile{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	p.Profile = p.Profile.Clone()
	return p, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]StoredProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]StoredProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		p.Profile = p.Profile.Clone()
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.profiles, id)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
