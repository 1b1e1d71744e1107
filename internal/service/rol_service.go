package service

import (
	"context"
	"strings"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
	"github.com/Bjohan23/SIGES-sub000/internal/repo"
	"github.com/Bjohan23/SIGES-sub000/pkg/utils"
)

type RolService struct {
	repo    *repo.RolRepo
	modulos *repo.Repo[domain.Modulo]
}

func NewRolService(r *repo.RolRepo, modulos *repo.Repo[domain.Modulo]) *RolService {
	return &RolService{repo: r, modulos: modulos}
}

type RolInput struct {
	Nombre      string   `json:"nombre"`
	Descripcion string   `json:"descripcion"`
	ModuloIDs   []string `json:"moduloIds"`
}

func (s *RolService) resolveModulos(ctx context.Context, ids []string) ([]*domain.Modulo, error) {
	out := make([]*domain.Modulo, 0, len(ids))
	for _, id := range ids {
		m, err := s.modulos.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, apperr.Validationf("módulo no encontrado: %s", id)
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *RolService) Create(ctx context.Context, in *RolInput) (*domain.Rol, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, apperr.Validation("nombre es requerido")
	}
	if dup, err := s.repo.FindByNombre(ctx, in.Nombre); err != nil {
		return nil, err
	} else if dup != nil {
		return nil, apperr.Validation("rol ya existe")
	}
	mods, err := s.resolveModulos(ctx, in.ModuloIDs)
	if err != nil {
		return nil, err
	}

	rol := &domain.Rol{
		ID:          utils.NewID(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Modulos:     mods,
	}
	if err := s.repo.Create(ctx, rol); err != nil {
		return nil, err
	}
	return rol, nil
}

func (s *RolService) Get(ctx context.Context, id string) (*domain.Rol, error) {
	rol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rol == nil {
		return nil, apperr.NotFound("rol no encontrado")
	}
	return rol, nil
}

func (s *RolService) Update(ctx context.Context, id string, in *RolInput) (*domain.Rol, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, apperr.Validation("nombre es requerido")
	}
	if in.Nombre != cur.Nombre {
		if dup, err := s.repo.FindByNombre(ctx, in.Nombre); err != nil {
			return nil, err
		} else if dup != nil {
			return nil, apperr.Validation("rol ya existe")
		}
	}
	mods, err := s.resolveModulos(ctx, in.ModuloIDs)
	if err != nil {
		return nil, err
	}

	cur.Nombre = in.Nombre
	cur.Descripcion = in.Descripcion
	if err := s.repo.Save(ctx, cur); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceModulos(ctx, cur, mods); err != nil {
		return nil, err
	}
	cur.Modulos = mods
	return cur, nil
}

func (s *RolService) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("rol no encontrado")
	}
	return nil
}

func (s *RolService) List(ctx context.Context, q PageQuery) (*Paged[domain.Rol], error) {
	q = q.Normalize()
	items, total, err := s.repo.FindAll(ctx, nil, q.Offset(), q.Limit, "nombre ASC")
	if err != nil {
		return nil, err
	}
	return NewPaged(items, q, total), nil
}

func (s *RolService) ListModulos(ctx context.Context) ([]domain.Modulo, error) {
	items, _, err := s.modulos.FindAll(ctx, nil, 0, 100, "codigo ASC")
	return items, err
}
