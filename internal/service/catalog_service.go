package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/pilgrim-travel/internal/events"
	"github.com/spec-kit/pilgrim-travel/internal/repository"
	apperrors "github.com/spec-kit/pilgrim-travel/pkg/util"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Rules holds the per-entity checks a CatalogService runs before writes.
type Rules[T any] struct {
	// Prepare fills derived fields. existing is nil on create.
	Prepare func(item, existing *T, now time.Time)
	// Validate reports field errors on the prepared item.
	Validate   func(item *T, errs fieldErrors)
	References []Reference[T]
}

// Reference is a foreign key that must resolve before a write.
type Reference[T any] struct {
	Field  string
	ID     func(*T) string
	Exists func(ctx context.Context, id string) (bool, error)
}

// RefersTo builds a Reference checked against repo.
func RefersTo[T, P any](field string, id func(*T) string, repo repository.CatalogRepository[P]) Reference[T] {
	return Reference[T]{
		Field: field,
		ID:    id,
		Exists: func(ctx context.Context, id string) (bool, error) {
			if !validID(id) {
				return false, nil
			}
			_, err := repo.GetByID(ctx, id)
			if repository.IsNotFound(err) {
				return false, nil
			}
			return err == nil, err
		},
	}
}

// ListQuery describes a paginated listing request.
type ListQuery struct {
	Page        int
	PageSize    int
	ParentID    string
	OnlyVisible bool
}

func (q ListQuery) normalized() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	return q
}

// Page is one slice of a listing.
type Page[T any] struct {
	Items    []T `json:"items"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

// CatalogService implements CRUD for one catalog resource.
type CatalogService[T any] struct {
	resource   string
	repo       repository.CatalogRepository[T]
	schema     repository.Schema[T]
	rules      Rules[T]
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// NewCatalogService wires a resource service.
func NewCatalogService[T any](repo repository.CatalogRepository[T], schema repository.Schema[T], rules Rules[T], dispatcher events.Dispatcher, logger *zap.Logger) *CatalogService[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService[T]{
		resource:   schema.Resource,
		repo:       repo,
		schema:     schema,
		rules:      rules,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// Resource returns the singular resource name used in messages.
func (s *CatalogService[T]) Resource() string {
	return s.resource
}

func (s *CatalogService[T]) List(ctx context.Context, q ListQuery) (*Page[T], error) {
	q = q.normalized()
	filter := repository.ListFilter{
		ParentID:    q.ParentID,
		OnlyVisible: q.OnlyVisible,
		Limit:       q.PageSize,
		Offset:      (q.Page - 1) * q.PageSize,
	}
	if filter.ParentID != "" && !validID(filter.ParentID) {
		return nil, apperrors.NewValidationError("validation failed", map[string]any{"parent_id": "must be a valid id"})
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Page: q.Page, PageSize: q.PageSize, Total: total}, nil
}

// Get returns the record or a NOT_FOUND error.
func (s *CatalogService[T]) Get(ctx context.Context, id string) (*T, error) {
	if !validID(id) {
		return nil, s.notFound(id)
	}
	item, err := s.repo.GetByID(ctx, id)
	if repository.IsNotFound(err) {
		return nil, s.notFound(id)
	}
	return item, err
}

// GetVisible is Get restricted to records the public site may show.
func (s *CatalogService[T]) GetVisible(ctx context.Context, id string) (*T, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.schema.Visible != nil && !s.schema.Visible(item) {
		return nil, s.notFound(id)
	}
	return item, nil
}

func (s *CatalogService[T]) Create(ctx context.Context, actorID string, item *T) (*T, error) {
	if err := s.check(ctx, item, nil); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	id := s.schema.Meta(item).ID
	s.publish(ctx, actorID, id, events.CatalogCreated)
	return item, nil
}

// Update replaces every writable field of the record identified by id.
func (s *CatalogService[T]) Update(ctx context.Context, actorID, id string, item *T) (*T, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	meta := s.schema.Meta(item)
	prev := s.schema.Meta(existing)
	meta.ID = prev.ID
	meta.CreatedAt = prev.CreatedAt

	if err := s.check(ctx, item, existing); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		if repository.IsNotFound(err) {
			return nil, s.notFound(id)
		}
		return nil, err
	}
	s.publish(ctx, actorID, id, events.CatalogUpdated)
	return item, nil
}

func (s *CatalogService[T]) Delete(ctx context.Context, actorID, id string) error {
	if !validID(id) {
		return s.notFound(id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return s.notFound(id)
		}
		return err
	}
	s.publish(ctx, actorID, id, events.CatalogDeleted)
	return nil
}

// Count returns the number of records, optionally restricted to visible ones.
func (s *CatalogService[T]) Count(ctx context.Context, onlyVisible bool) (int, error) {
	return s.repo.Count(ctx, repository.ListFilter{OnlyVisible: onlyVisible})
}

func (s *CatalogService[T]) check(ctx context.Context, item, existing *T) error {
	if s.rules.Prepare != nil {
		s.rules.Prepare(item, existing, s.now().UTC())
	}
	errs := fieldErrors{}
	if s.rules.Validate != nil {
		s.rules.Validate(item, errs)
	}
	for _, ref := range s.rules.References {
		id := ref.ID(item)
		if id == "" {
			continue
		}
		ok, err := ref.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			errs.add(ref.Field, "referenced record does not exist")
		}
	}
	return errs.err()
}

func (s *CatalogService[T]) publish(ctx context.Context, actorID, id string, action events.CatalogAction) {
	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventCatalogChanged,
		ActorID:   actorID,
		Timestamp: s.now().UTC(),
		Payload:   events.CatalogChangedPayload{Resource: s.resource, ID: id, Action: action},
	})
	if err != nil {
		s.logger.Warn("catalog event handler failed", zap.String("resource", s.resource), zap.Error(err))
	}
}

func (s *CatalogService[T]) notFound(id string) error {
	return apperrors.NewNotFound(s.resource, map[string]any{"id": id})
}
