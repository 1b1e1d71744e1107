package service

import (
	"context"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/repo"
)

// CrudService is the generic service behind entities with plain CRUD
// semantics (the narrative report types). Entity-specific rules plug in as
// injected hooks instead of overridden methods.
type CrudService[T any] struct {
	repo *repo.Repo[T]

	// Validate checks field rules before create and update. Optional.
	Validate func(m *T) error
	// BeforeCreate assigns id and creator audit fields.
	BeforeCreate func(m *T, creadorID string)
	// ApplyUpdate copies client-writable fields from src onto dst and sets
	// the updater audit field.
	ApplyUpdate func(dst, src *T, editorID string)
	// NotFoundMsg names the entity in 404 messages.
	NotFoundMsg string
}

func NewCrudService[T any](r *repo.Repo[T]) *CrudService[T] {
	return &CrudService[T]{repo: r, NotFoundMsg: "registro no encontrado"}
}

func (s *CrudService[T]) Create(ctx context.Context, m *T, creadorID string) (*T, error) {
	if s.Validate != nil {
		if err := s.Validate(m); err != nil {
			return nil, err
		}
	}
	if s.BeforeCreate != nil {
		s.BeforeCreate(m, creadorID)
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *CrudService[T]) Get(ctx context.Context, id string) (*T, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.NotFound(s.NotFoundMsg)
	}
	return m, nil
}

func (s *CrudService[T]) Update(ctx context.Context, id string, in *T, editorID string) (*T, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Validate != nil {
		if err := s.Validate(in); err != nil {
			return nil, err
		}
	}
	if s.ApplyUpdate != nil {
		s.ApplyUpdate(cur, in, editorID)
	}
	if err := s.repo.Save(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *CrudService[T]) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound(s.NotFoundMsg)
	}
	return nil
}

func (s *CrudService[T]) List(ctx context.Context, scope repo.Scope, q PageQuery) (*Paged[T], error) {
	q = q.Normalize()
	items, total, err := s.repo.FindAll(ctx, scope, q.Offset(), q.Limit, "")
	if err != nil {
		return nil, err
	}
	return NewPaged(items, q, total), nil
}
