package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Bjohan23/SIGES-sub000/internal/domain"
)

type EntrevistaFilter struct {
	FichaSocialID string
	EstudianteID  string
	Nombres       string
	Apellidos     string
	Aula          string
	Grado         string
	Estado        string
}

func (f EntrevistaFilter) scope() Scope {
	return func(q *gorm.DB) *gorm.DB {
		if f.FichaSocialID != "" {
			q = q.Where("ficha_social_id = ?", f.FichaSocialID)
		}
		if f.EstudianteID != "" {
			q = q.Where("estudiante_id = ?", f.EstudianteID)
		}
		if s := strings.TrimSpace(f.Nombres); s != "" {
			q = ILike("nombres", s)(q)
		}
		if s := strings.TrimSpace(f.Apellidos); s != "" {
			q = ILike("apellidos", s)(q)
		}
		if f.Aula != "" {
			q = q.Where("aula = ?", f.Aula)
		}
		if f.Grado != "" {
			q = q.Where("grado = ?", f.Grado)
		}
		if f.Estado != "" {
			q = q.Where("estado = ?", f.Estado)
		}
		return q
	}
}

type EntrevistaRepo struct {
	*Repo[domain.Entrevista]
}

func NewEntrevistaRepo(db *gorm.DB) *EntrevistaRepo {
	return &EntrevistaRepo{Repo: NewRepo[domain.Entrevista](db)}
}

func (r *EntrevistaRepo) List(ctx context.Context, f EntrevistaFilter, offset, limit int) ([]domain.Entrevista, int64, error) {
	return r.FindAll(ctx, f.scope(), offset, limit, "")
}

func (r *EntrevistaRepo) ListByFicha(ctx context.Context, fichaID string, offset, limit int) ([]domain.Entrevista, int64, error) {
	return r.List(ctx, EntrevistaFilter{FichaSocialID: fichaID}, offset, limit)
}
