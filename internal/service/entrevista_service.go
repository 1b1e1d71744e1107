package service

import (
	"context"
	"strings"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
	"github.com/Bjohan23/SIGES-sub000/internal/repo"
	"github.com/Bjohan23/SIGES-sub000/pkg/utils"
)

type entrevistaStore interface {
	Create(ctx context.Context, m *domain.Entrevista) error
	FindByID(ctx context.Context, id string) (*domain.Entrevista, error)
	Save(ctx context.Context, m *domain.Entrevista) error
	List(ctx context.Context, f repo.EntrevistaFilter, offset, limit int) ([]domain.Entrevista, int64, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type fichaGetter interface {
	FindByID(ctx context.Context, id string) (*domain.FichaSocial, error)
}

type EntrevistaService struct {
	repo   entrevistaStore
	fichas fichaGetter
}

func NewEntrevistaService(r entrevistaStore, fichas fichaGetter) *EntrevistaService {
	return &EntrevistaService{repo: r, fichas: fichas}
}

func (s *EntrevistaService) validate(ctx context.Context, e *domain.Entrevista) error {
	if strings.TrimSpace(e.FichaSocialID) == "" {
		return apperr.Validation("fichaSocialId es requerido")
	}
	f, err := s.fichas.FindByID(ctx, e.FichaSocialID)
	if err != nil {
		return err
	}
	if f == nil {
		return apperr.Validation("la ficha social referida no existe")
	}
	if strings.TrimSpace(e.Nombres) == "" {
		return apperr.Validation("nombres es requerido")
	}
	if strings.TrimSpace(e.Apellidos) == "" {
		return apperr.Validation("apellidos es requerido")
	}
	return nil
}

func (s *EntrevistaService) derive(e *domain.Entrevista, currentEstado string) {
	e.PorcentajeCompletado = EntrevistaPorcentaje(e)
	e.Estado = DeriveEstado(e.PorcentajeCompletado, currentEstado)
}

func (s *EntrevistaService) Create(ctx context.Context, e *domain.Entrevista, creadorID string) (*domain.Entrevista, error) {
	if err := s.validate(ctx, e); err != nil {
		return nil, err
	}
	e.ID = utils.NewID()
	e.CreadoPorID = creadorID
	e.ActualizadoPorID = nil
	s.derive(e, "")
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EntrevistaService) Get(ctx context.Context, id string) (*domain.Entrevista, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("entrevista no encontrada")
	}
	return e, nil
}

func (s *EntrevistaService) Update(ctx context.Context, id string, in *domain.Entrevista, editorID string) (*domain.Entrevista, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.FichaSocialID == "" {
		in.FichaSocialID = cur.FichaSocialID
	}
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	cur.FichaSocialID = in.FichaSocialID
	cur.EstudianteID = in.EstudianteID
	cur.Nombres = in.Nombres
	cur.Apellidos = in.Apellidos
	cur.Aula = in.Aula
	cur.Grado = in.Grado
	cur.Respuestas = in.Respuestas
	cur.ActualizadoPorID = &editorID
	s.derive(cur, cur.Estado)

	if err := s.repo.Save(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *EntrevistaService) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("entrevista no encontrada")
	}
	return nil
}

func (s *EntrevistaService) List(ctx context.Context, f repo.EntrevistaFilter, q PageQuery) (*Paged[domain.Entrevista], error) {
	q = q.Normalize()
	items, total, err := s.repo.List(ctx, f, q.Offset(), q.Limit)
	if err != nil {
		return nil, err
	}
	return NewPaged(items, q, total), nil
}

func (s *EntrevistaService) ListByFicha(ctx context.Context, fichaID string, q PageQuery) (*Paged[domain.Entrevista], error) {
	return s.List(ctx, repo.EntrevistaFilter{FichaSocialID: fichaID}, q)
}
