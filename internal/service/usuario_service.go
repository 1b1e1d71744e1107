package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
	"github.com/Bjohan23/SIGES-sub000/internal/repo"
	"github.com/Bjohan23/SIGES-sub000/pkg/utils"
)

// UsuarioService backs the admin-gated user management surface.
type UsuarioService struct {
	repo  *repo.UsuarioRepo
	roles *repo.RolRepo
}

func NewUsuarioService(r *repo.UsuarioRepo, roles *repo.RolRepo) *UsuarioService {
	return &UsuarioService{repo: r, roles: roles}
}

type UsuarioInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
	RolID     string `json:"rolId"`
	Activo    *bool  `json:"activo"`
}

func (s *UsuarioService) validate(in *UsuarioInput, creating bool) error {
	if !strings.Contains(in.Email, "@") {
		return apperr.Validation("email inválido")
	}
	if creating && len(in.Password) < 8 {
		return apperr.Validation("la contraseña debe tener al menos 8 caracteres")
	}
	if strings.TrimSpace(in.Nombres) == "" || strings.TrimSpace(in.Apellidos) == "" {
		return apperr.Validation("nombres y apellidos son requeridos")
	}
	if strings.TrimSpace(in.RolID) == "" {
		return apperr.Validation("rolId es requerido")
	}
	return nil
}

func (s *UsuarioService) checkRol(ctx context.Context, rolID string) error {
	rol, err := s.roles.FindByID(ctx, rolID)
	if err != nil {
		return err
	}
	if rol == nil {
		return apperr.Validation("el rol referido no existe")
	}
	return nil
}

func (s *UsuarioService) Create(ctx context.Context, in *UsuarioInput) (*domain.Usuario, error) {
	if err := s.validate(in, true); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if dup, err := s.repo.FindByEmail(ctx, email); err != nil {
		return nil, err
	} else if dup != nil {
		return nil, apperr.Validation("email ya registrado")
	}
	if err := s.checkRol(ctx, in.RolID); err != nil {
		return nil, err
	}

	u := &domain.Usuario{
		ID:           utils.NewID(),
		Email:        email,
		PasswordHash: utils.HashPassword(in.Password),
		Nombres:      in.Nombres,
		Apellidos:    in.Apellidos,
		RolID:        in.RolID,
		Activo:       true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if repo.IsDuplicate(err) {
			return nil, apperr.Validation("email ya registrado")
		}
		return nil, err
	}
	return u, nil
}

func (s *UsuarioService) Get(ctx context.Context, id string) (*domain.Usuario, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("usuario no encontrado")
	}
	return u, nil
}

func (s *UsuarioService) Update(ctx context.Context, id string, in *UsuarioInput) (*domain.Usuario, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(in, false); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != cur.Email {
		if dup, err := s.repo.FindByEmail(ctx, email); err != nil {
			return nil, err
		} else if dup != nil {
			return nil, apperr.Validation("email ya registrado")
		}
	}
	if in.RolID != cur.RolID {
		if err := s.checkRol(ctx, in.RolID); err != nil {
			return nil, err
		}
	}

	cur.Email = email
	cur.Nombres = in.Nombres
	cur.Apellidos = in.Apellidos
	cur.RolID = in.RolID
	if in.Activo != nil {
		cur.Activo = *in.Activo
	}
	if in.Password != "" {
		if len(in.Password) < 8 {
			return nil, apperr.Validation("la contraseña debe tener al menos 8 caracteres")
		}
		cur.PasswordHash = utils.HashPassword(in.Password)
	}
	if err := s.repo.Save(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

// Delete deactivates the account; history keeps its creator references.
func (s *UsuarioService) Delete(ctx context.Context, id string) error {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	cur.Activo = false
	return s.repo.Save(ctx, cur)
}

func (s *UsuarioService) List(ctx context.Context, term string, q PageQuery) (*Paged[domain.Usuario], error) {
	q = q.Normalize()
	var scope repo.Scope
	if t := strings.TrimSpace(term); t != "" {
		pattern := "%" + strings.ToLower(t) + "%"
		scope = func(db *gorm.DB) *gorm.DB {
			return db.Where("LOWER(email) LIKE ? OR LOWER(nombres) LIKE ? OR LOWER(apellidos) LIKE ?",
				pattern, pattern, pattern)
		}
	}
	items, total, err := s.repo.FindAll(ctx, scope, q.Offset(), q.Limit, "")
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].PasswordHash = ""
	}
	return NewPaged(items, q, total), nil
}
