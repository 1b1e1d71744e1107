package service

import (
	"context"
	"strings"
	"time"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/core/cache"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
	"github.com/Bjohan23/SIGES-sub000/internal/repo"
	"github.com/Bjohan23/SIGES-sub000/pkg/utils"
)

const statsKey = "fichas:statistics"

type fichaStore interface {
	Create(ctx context.Context, m *domain.FichaSocial) error
	FindByID(ctx context.Context, id string) (*domain.FichaSocial, error)
	Save(ctx context.Context, m *domain.FichaSocial) error
	List(ctx context.Context, f repo.FichaFilter, offset, limit int) ([]domain.FichaSocial, int64, error)
	DeleteCascade(ctx context.Context, id string) (bool, error)
	CountByEstado(ctx context.Context) (map[string]int64, error)
}

type FichaService struct {
	repo  fichaStore
	cache *cache.Cache
}

func NewFichaService(r fichaStore, c *cache.Cache) *FichaService {
	return &FichaService{repo: r, cache: c}
}

func (s *FichaService) validate(f *domain.FichaSocial) error {
	if strings.TrimSpace(f.Nombres) == "" {
		return apperr.Validation("nombres es requerido")
	}
	if strings.TrimSpace(f.Apellidos) == "" {
		return apperr.Validation("apellidos es requerido")
	}
	if f.DNI != "" && !dniRe.MatchString(f.DNI) {
		return apperr.Validation("dni debe tener 8 dígitos numéricos")
	}
	return nil
}

// derive recomputes porcentaje and estado server-side; whatever the client
// sent in those fields is discarded.
func (s *FichaService) derive(f *domain.FichaSocial, currentEstado string) {
	f.PorcentajeCompletado = FichaPorcentaje(f)
	f.Estado = DeriveEstado(f.PorcentajeCompletado, currentEstado)
}

func (s *FichaService) Create(ctx context.Context, f *domain.FichaSocial, creadorID string) (*domain.FichaSocial, error) {
	if err := s.validate(f); err != nil {
		return nil, err
	}
	f.ID = utils.NewID()
	f.CreadoPorID = creadorID
	f.ActualizadoPorID = nil
	s.derive(f, "")
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	s.invalidateStats(ctx)
	return f, nil
}

func (s *FichaService) Get(ctx context.Context, id string) (*domain.FichaSocial, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, apperr.NotFound("ficha social no encontrada")
	}
	return f, nil
}

func (s *FichaService) Update(ctx context.Context, id string, in *domain.FichaSocial, editorID string) (*domain.FichaSocial, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(in); err != nil {
		return nil, err
	}

	cur.Nombres = in.Nombres
	cur.Apellidos = in.Apellidos
	cur.DNI = in.DNI
	cur.FechaNacimiento = in.FechaNacimiento
	cur.Direccion = in.Direccion
	cur.Telefono = in.Telefono
	cur.ComposicionFamiliar = in.ComposicionFamiliar
	cur.DatosEconomicos = in.DatosEconomicos
	cur.Vivienda = in.Vivienda
	cur.Salud = in.Salud
	cur.DeclaracionJurada = in.DeclaracionJurada
	cur.ActualizadoPorID = &editorID
	s.derive(cur, cur.Estado)

	if err := s.repo.Save(ctx, cur); err != nil {
		return nil, err
	}
	s.invalidateStats(ctx)
	return cur, nil
}

// Delete removes the ficha and cascades to its entrevistas.
func (s *FichaService) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.DeleteCascade(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("ficha social no encontrada")
	}
	s.invalidateStats(ctx)
	return nil
}

func (s *FichaService) List(ctx context.Context, f repo.FichaFilter, q PageQuery) (*Paged[domain.FichaSocial], error) {
	q = q.Normalize()
	items, total, err := s.repo.List(ctx, f, q.Offset(), q.Limit)
	if err != nil {
		return nil, err
	}
	return NewPaged(items, q, total), nil
}

// Progreso reports the stored percentage and estado for one ficha.
func (s *FichaService) Progreso(ctx context.Context, id string) (map[string]any, error) {
	f, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":                   f.ID,
		"porcentajeCompletado": f.PorcentajeCompletado,
		"estado":               f.Estado,
	}, nil
}

// CambiarEstado applies an explicit workflow-state override (EN_REVISION,
// APROBADA, RECHAZADA, or back to the derived pair).
func (s *FichaService) CambiarEstado(ctx context.Context, id, estado, editorID string) (*domain.FichaSocial, error) {
	if !domain.EstadoValido(estado) {
		return nil, apperr.Validationf("estado inválido: %s", estado)
	}
	cur, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cur.Estado = estado
	cur.ActualizadoPorID = &editorID
	if err := s.repo.Save(ctx, cur); err != nil {
		return nil, err
	}
	s.invalidateStats(ctx)
	return cur, nil
}

type Estadisticas struct {
	Total     int64            `json:"total"`
	PorEstado map[string]int64 `json:"porEstado"`
	Generado  time.Time        `json:"generado"`
}

// Estadisticas aggregates counts by estado, cached for 60s.
func (s *FichaService) Estadisticas(ctx context.Context) (*Estadisticas, error) {
	load := func(ctx context.Context) (*Estadisticas, error) {
		byEstado, err := s.repo.CountByEstado(ctx)
		if err != nil {
			return nil, err
		}
		var total int64
		for _, n := range byEstado {
			total += n
		}
		return &Estadisticas{Total: total, PorEstado: byEstado, Generado: time.Now()}, nil
	}
	if s.cache == nil {
		return load(ctx)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, statsKey, 60*time.Second, load)
}

func (s *FichaService) invalidateStats(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, statsKey)
	}
}
