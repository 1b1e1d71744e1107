package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
)

type UsuarioRepo struct {
	*Repo[domain.Usuario]
}

func NewUsuarioRepo(db *gorm.DB) *UsuarioRepo {
	return &UsuarioRepo{Repo: NewRepo[domain.Usuario](db)}
}

func (r *UsuarioRepo) FindByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	var u domain.Usuario
	err := r.DB().WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Database("find by email failed", err)
	}
	return &u, nil
}

func (r *UsuarioRepo) TouchUltimoAcceso(ctx context.Context, id string) error {
	now := time.Now()
	err := r.DB().WithContext(ctx).Model(&domain.Usuario{}).
		Where("id = ?", id).
		Update("ultimo_acceso", &now).Error
	if err != nil {
		return apperr.Database("touch ultimo_acceso failed", err)
	}
	return nil
}

func (r *UsuarioRepo) UpdatePassword(ctx context.Context, id, hash string) error {
	err := r.DB().WithContext(ctx).Model(&domain.Usuario{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
	if err != nil {
		return apperr.Database("update password failed", err)
	}
	return nil
}
