package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
)

type RolRepo struct {
	*Repo[domain.Rol]
}

func NewRolRepo(db *gorm.DB) *RolRepo {
	return &RolRepo{Repo: NewRepo[domain.Rol](db)}
}

func (r *RolRepo) FindByNombre(ctx context.Context, nombre string) (*domain.Rol, error) {
	var rol domain.Rol
	err := r.DB().WithContext(ctx).First(&rol, "nombre = ?", nombre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Database("find rol failed", err)
	}
	return &rol, nil
}

// ModuloCodes returns the permission codes linked to a rol via roles_modulos.
func (r *RolRepo) ModuloCodes(ctx context.Context, rolID string) ([]string, error) {
	var codes []string
	err := r.DB().WithContext(ctx).
		Table("modulos").
		Select("modulos.codigo").
		Joins("JOIN roles_modulos ON roles_modulos.modulo_id = modulos.id").
		Where("roles_modulos.rol_id = ?", rolID).
		Scan(&codes).Error
	if err != nil {
		return nil, apperr.Database("list modulos failed", err)
	}
	return codes, nil
}

// ReplaceModulos resets the rol's modulo associations.
func (r *RolRepo) ReplaceModulos(ctx context.Context, rol *domain.Rol, modulos []*domain.Modulo) error {
	if err := r.DB().WithContext(ctx).Model(rol).Association("Modulos").Replace(modulos); err != nil {
		return apperr.Database("replace modulos failed", err)
	}
	return nil
}
