package repo

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
)

type FichaFilter struct {
	Nombres   string
	Apellidos string
	DNI       string
	Estado    string
	Desde     *time.Time
	Hasta     *time.Time
}

func (f FichaFilter) scope() Scope {
	return func(q *gorm.DB) *gorm.DB {
		if s := strings.TrimSpace(f.Nombres); s != "" {
			q = ILike("nombres", s)(q)
		}
		if s := strings.TrimSpace(f.Apellidos); s != "" {
			q = ILike("apellidos", s)(q)
		}
		if f.DNI != "" {
			q = q.Where("dni = ?", f.DNI)
		}
		if f.Estado != "" {
			q = q.Where("estado = ?", f.Estado)
		}
		if f.Desde != nil {
			q = q.Where("created_at >= ?", *f.Desde)
		}
		if f.Hasta != nil {
			// Hasta is a date at midnight; the exclusive bound on the next
			// day keeps rows created later that day in range.
			q = q.Where("created_at < ?", f.Hasta.Add(24*time.Hour))
		}
		return q
	}
}

type FichaRepo struct {
	*Repo[domain.FichaSocial]
}

func NewFichaRepo(db *gorm.DB) *FichaRepo {
	return &FichaRepo{Repo: NewRepo[domain.FichaSocial](db)}
}

func (r *FichaRepo) List(ctx context.Context, f FichaFilter, offset, limit int) ([]domain.FichaSocial, int64, error) {
	return r.FindAll(ctx, f.scope(), offset, limit, "")
}

// DeleteCascade removes the ficha and its entrevistas in one transaction.
// The FK also cascades at the schema level; the explicit delete keeps the
// behaviour identical on databases migrated without the constraint.
func (r *FichaRepo) DeleteCascade(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ficha_social_id = ?", id).Delete(&domain.Entrevista{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&domain.FichaSocial{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return false, apperr.Database("delete ficha failed", err)
	}
	return affected > 0, nil
}

// CountByEstado feeds the statistics endpoint.
func (r *FichaRepo) CountByEstado(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Estado string
		N      int64
	}
	var rows []row
	err := r.DB().WithContext(ctx).Model(&domain.FichaSocial{}).
		Select("estado, COUNT(*) AS n").
		Group("estado").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Database("count by estado failed", err)
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Estado] = r.N
	}
	return out, nil
}
