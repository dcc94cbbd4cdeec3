package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/pilgrim-travel/internal/repository"
)

// CatalogStore implements repository.CatalogRepository for any schema.
type CatalogStore[T any] struct {
	mu     sync.RWMutex
	schema repository.Schema[T]
	items  map[string]T
	now    func() time.Time
}

func NewCatalogStore[T any](schema repository.Schema[T]) *CatalogStore[T] {
	return &CatalogStore[T]{
		schema: schema,
		items:  map[string]T{},
		now:    time.Now,
	}
}

func (s *CatalogStore[T]) Create(_ context.Context, item *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	meta := s.schema.Meta(item)
	meta.ID = uuid.NewString()
	meta.CreatedAt = now
	meta.UpdatedAt = now
	s.items[meta.ID] = *item
	return nil
}

func (s *CatalogStore[T]) Update(_ context.Context, item *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := s.schema.Meta(item)
	existing, ok := s.items[meta.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	meta.CreatedAt = s.schema.Meta(&existing).CreatedAt
	meta.UpdatedAt = s.now().UTC()
	s.items[meta.ID] = *item
	return nil
}

func (s *CatalogStore[T]) GetByID(_ context.Context, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &item, nil
}

func (s *CatalogStore[T]) List(_ context.Context, filter repository.ListFilter) ([]T, error) {
	s.mu.RLock()
	matched := s.filter(filter)
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := &matched[i], &matched[j]
		if s.schema.Less != nil {
			return s.schema.Less(a, b)
		}
		ma, mb := s.schema.Meta(a), s.schema.Meta(b)
		if !ma.CreatedAt.Equal(mb.CreatedAt) {
			return ma.CreatedAt.After(mb.CreatedAt)
		}
		return ma.ID < mb.ID
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return []T{}, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (s *CatalogStore[T]) Count(_ context.Context, filter repository.ListFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.filter(filter)), nil
}

func (s *CatalogStore[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.items, id)
	return nil
}

// filter must be called with s.mu held.
func (s *CatalogStore[T]) filter(filter repository.ListFilter) []T {
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		item := item
		if filter.ParentID != "" && s.schema.Parent != nil && s.schema.Parent(&item) != filter.ParentID {
			continue
		}
		if filter.OnlyVisible && s.schema.Visible != nil && !s.schema.Visible(&item) {
			continue
		}
		out = append(out, item)
	}
	return out
}
