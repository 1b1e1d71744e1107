package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
)

// EstudianteFilter narrows list queries. Text fields match case-insensitive
// substrings; DNI and Codigo match exactly; Activo nil lists active rows only.
type EstudianteFilter struct {
	Nombres   string
	Apellidos string
	DNI       string
	Codigo    string
	Aula      string
	Grado     string
	Activo    *bool
}

func (f EstudianteFilter) scope() Scope {
	return func(q *gorm.DB) *gorm.DB {
		if f.Activo != nil {
			q = q.Where("activo = ?", *f.Activo)
		} else {
			q = q.Where("activo = ?", true)
		}
		if s := strings.TrimSpace(f.Nombres); s != "" {
			q = ILike("nombres", s)(q)
		}
		if s := strings.TrimSpace(f.Apellidos); s != "" {
			q = ILike("apellidos", s)(q)
		}
		if f.DNI != "" {
			q = q.Where("dni = ?", f.DNI)
		}
		if f.Codigo != "" {
			q = q.Where("codigo = ?", f.Codigo)
		}
		if f.Aula != "" {
			q = q.Where("aula = ?", f.Aula)
		}
		if f.Grado != "" {
			q = q.Where("grado = ?", f.Grado)
		}
		return q
	}
}

type EstudianteRepo struct {
	*Repo[domain.Estudiante]
}

func NewEstudianteRepo(db *gorm.DB) *EstudianteRepo {
	return &EstudianteRepo{Repo: NewRepo[domain.Estudiante](db)}
}

func (r *EstudianteRepo) List(ctx context.Context, f EstudianteFilter, offset, limit int) ([]domain.Estudiante, int64, error) {
	return r.FindAll(ctx, f.scope(), offset, limit, "")
}

// Search matches a single term against codigo, dni, nombres and apellidos on
// active rows.
func (r *EstudianteRepo) Search(ctx context.Context, term string, offset, limit int) ([]domain.Estudiante, int64, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	scope := func(q *gorm.DB) *gorm.DB {
		return q.Where("activo = ?", true).
			Where("LOWER(codigo) LIKE ? OR dni LIKE ? OR LOWER(nombres) LIKE ? OR LOWER(apellidos) LIKE ?",
				pattern, pattern, pattern, pattern)
	}
	return r.FindAll(ctx, scope, offset, limit, "apellidos ASC, nombres ASC")
}

// FindActivoByCodigo ignores soft-deleted rows; uniqueness checks only care
// about active records.
func (r *EstudianteRepo) FindActivoByCodigo(ctx context.Context, codigo string) (*domain.Estudiante, error) {
	return r.findActivoBy(ctx, "codigo = ?", codigo)
}

func (r *EstudianteRepo) FindActivoByDNI(ctx context.Context, dni string) (*domain.Estudiante, error) {
	return r.findActivoBy(ctx, "dni = ?", dni)
}

func (r *EstudianteRepo) findActivoBy(ctx context.Context, cond string, arg any) (*domain.Estudiante, error) {
	var e domain.Estudiante
	err := r.DB().WithContext(ctx).Where("activo = ?", true).First(&e, cond, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Database("find estudiante failed", err)
	}
	return &e, nil
}

// SoftDelete flips activo; the row stays retrievable by id. False when absent.
func (r *EstudianteRepo) SoftDelete(ctx context.Context, id string) (bool, error) {
	res := r.DB().WithContext(ctx).Model(&domain.Estudiante{}).
		Where("id = ?", id).
		Update("activo", false)
	if res.Error != nil {
		return false, apperr.Database("soft delete failed", res.Error)
	}
	return res.RowsAffected > 0, nil
}
