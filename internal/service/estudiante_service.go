package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
	"github.com/Bjohan23/SIGES-sub000/internal/repo"
	"github.com/Bjohan23/SIGES-sub000/pkg/utils"
)

var dniRe = regexp.MustCompile(`^\d{8}$`)

type estudianteStore interface {
	Create(ctx context.Context, m *domain.Estudiante) error
	FindByID(ctx context.Context, id string) (*domain.Estudiante, error)
	Save(ctx context.Context, m *domain.Estudiante) error
	List(ctx context.Context, f repo.EstudianteFilter, offset, limit int) ([]domain.Estudiante, int64, error)
	Search(ctx context.Context, term string, offset, limit int) ([]domain.Estudiante, int64, error)
	FindActivoByCodigo(ctx context.Context, codigo string) (*domain.Estudiante, error)
	FindActivoByDNI(ctx context.Context, dni string) (*domain.Estudiante, error)
	SoftDelete(ctx context.Context, id string) (bool, error)
}

type EstudianteService struct {
	repo estudianteStore
}

func NewEstudianteService(r estudianteStore) *EstudianteService {
	return &EstudianteService{repo: r}
}

func sameDNI(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// validate covers format rules shared by create and update; a blank DNI is
// normalized to nil so the column stays NULL. Uniqueness is checked separately
// because updates only re-check changed fields.
func (s *EstudianteService) validate(e *domain.Estudiante) error {
	if strings.TrimSpace(e.Codigo) == "" {
		return apperr.Validation("codigo es requerido")
	}
	if strings.TrimSpace(e.Nombres) == "" {
		return apperr.Validation("nombres es requerido")
	}
	if strings.TrimSpace(e.Apellidos) == "" {
		return apperr.Validation("apellidos es requerido")
	}
	if e.DNI != nil {
		if strings.TrimSpace(*e.DNI) == "" {
			e.DNI = nil
		} else if !dniRe.MatchString(*e.DNI) {
			return apperr.Validation("dni debe tener 8 dígitos numéricos")
		}
	}
	return nil
}

// checkUnique enforces active-only uniqueness of codigo and dni. The schema
// carries no unique index so soft-deleted identifiers stay reusable; this is
// the single enforcement point.
func (s *EstudianteService) checkUnique(ctx context.Context, e *domain.Estudiante, excludeID string) error {
	if dup, err := s.repo.FindActivoByCodigo(ctx, e.Codigo); err != nil {
		return err
	} else if dup != nil && dup.ID != excludeID {
		return apperr.Validationf("ya existe un estudiante activo con código %s", e.Codigo)
	}
	if e.DNI != nil {
		if dup, err := s.repo.FindActivoByDNI(ctx, *e.DNI); err != nil {
			return err
		} else if dup != nil && dup.ID != excludeID {
			return apperr.Validationf("ya existe un estudiante activo con DNI %s", *e.DNI)
		}
	}
	return nil
}

func (s *EstudianteService) Create(ctx context.Context, e *domain.Estudiante, creadorID string) (*domain.Estudiante, error) {
	if err := s.validate(e); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, e, ""); err != nil {
		return nil, err
	}
	e.ID = utils.NewID()
	e.Activo = true
	e.CreadoPorID = creadorID
	e.ActualizadoPorID = nil
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EstudianteService) Get(ctx context.Context, id string) (*domain.Estudiante, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("estudiante no encontrado")
	}
	return e, nil
}

func (s *EstudianteService) Update(ctx context.Context, id string, in *domain.Estudiante, editorID string) (*domain.Estudiante, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(in); err != nil {
		return nil, err
	}
	if in.Codigo != cur.Codigo || !sameDNI(in.DNI, cur.DNI) {
		if err := s.checkUnique(ctx, in, id); err != nil {
			return nil, err
		}
	}

	cur.Codigo = in.Codigo
	cur.DNI = in.DNI
	cur.Nombres = in.Nombres
	cur.Apellidos = in.Apellidos
	cur.FechaNacimiento = in.FechaNacimiento
	cur.Aula = in.Aula
	cur.Grado = in.Grado
	cur.ActualizadoPorID = &editorID

	if err := s.repo.Save(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

// Delete is a soft delete: the row stays, default listings exclude it.
func (s *EstudianteService) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("estudiante no encontrado")
	}
	return nil
}

func (s *EstudianteService) List(ctx context.Context, f repo.EstudianteFilter, q PageQuery) (*Paged[domain.Estudiante], error) {
	q = q.Normalize()
	items, total, err := s.repo.List(ctx, f, q.Offset(), q.Limit)
	if err != nil {
		return nil, err
	}
	return NewPaged(items, q, total), nil
}

func (s *EstudianteService) Search(ctx context.Context, term string, q PageQuery) (*Paged[domain.Estudiante], error) {
	if strings.TrimSpace(term) == "" {
		return nil, apperr.Validation("término de búsqueda vacío")
	}
	q = q.Normalize()
	items, total, err := s.repo.Search(ctx, term, q.Offset(), q.Limit)
	if err != nil {
		return nil, err
	}
	return NewPaged(items, q, total), nil
}
