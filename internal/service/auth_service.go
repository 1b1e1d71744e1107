package service

import (
	"context"
	"strings"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/core/auth"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
	"github.com/Bjohan23/SIGES-sub000/pkg/utils"
)

// credentialMsg is deliberately the same for missing user, inactive user and
// hash mismatch so responses cannot be used to enumerate accounts.
const credentialMsg = "credenciales inválidas"

type usuarioStore interface {
	FindByID(ctx context.Context, id string) (*domain.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*domain.Usuario, error)
	TouchUltimoAcceso(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, hash string) error
}

type permisoResolver interface {
	Permisos(ctx context.Context, usuarioID string) ([]string, error)
}

type refreshStore interface {
	Issue(ctx context.Context, uid string) (string, error)
	Revoke(ctx context.Context, tok string) error
	Rotate(ctx context.Context, old string) (uid, fresh string, err error)
}

type AuthService struct {
	usuarios usuarioStore
	permisos permisoResolver
	tokens   refreshStore
	jwter    *auth.JWTer
}

func NewAuthService(usuarios usuarioStore, permisos permisoResolver, tokens refreshStore, jwter *auth.JWTer) *AuthService {
	return &AuthService{usuarios: usuarios, permisos: permisos, tokens: tokens, jwter: jwter}
}

type LoginResult struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"-"` // delivered as an HTTP-only cookie
	Usuario      map[string]any `json:"usuario"`
	Permisos     []string       `json:"permisos"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.usuarios.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.Activo || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, apperr.Authentication(credentialMsg)
	}

	permisos, err := s.permisos.Permisos(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	access, err := s.jwter.Issue(u.ID, u.Email, u.Nombres, u.Apellidos, permisos)
	if err != nil {
		return nil, apperr.Internal("issue token failed", err)
	}
	refresh, err := s.tokens.Issue(ctx, u.ID)
	if err != nil {
		return nil, apperr.Internal("issue refresh token failed", err)
	}
	_ = s.usuarios.TouchUltimoAcceso(ctx, u.ID)

	return &LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		Usuario:      u.Publico(),
		Permisos:     permisos,
	}, nil
}

// Refresh rotates the refresh token and issues a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	uid, fresh, err := s.tokens.Rotate(ctx, refreshToken)
	if err != nil {
		return nil, apperr.Internal("refresh failed", err)
	}
	if uid == "" {
		return nil, apperr.Authentication("sesión expirada")
	}
	u, err := s.usuarios.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.Activo {
		return nil, apperr.Authentication("sesión expirada")
	}
	permisos, err := s.permisos.Permisos(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	access, err := s.jwter.Issue(u.ID, u.Email, u.Nombres, u.Apellidos, permisos)
	if err != nil {
		return nil, apperr.Internal("issue token failed", err)
	}
	return &LoginResult{
		AccessToken:  access,
		RefreshToken: fresh,
		Usuario:      u.Publico(),
		Permisos:     permisos,
	}, nil
}

// Logout revokes the refresh token server-side; access tokens simply age out.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.tokens.Revoke(ctx, refreshToken)
}

// Validate parses the access token and returns its claims.
func (s *AuthService) Validate(tokenStr string) (*auth.Claims, error) {
	claims, err := s.jwter.Parse(tokenStr)
	if err != nil {
		return nil, apperr.Authentication("token inválido")
	}
	return claims, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, uid, current, next string) error {
	if len(next) < 8 {
		return apperr.Validation("la nueva contraseña debe tener al menos 8 caracteres")
	}
	u, err := s.usuarios.FindByID(ctx, uid)
	if err != nil {
		return err
	}
	if u == nil || !utils.CheckPassword(current, u.PasswordHash) {
		return apperr.Authentication(credentialMsg)
	}
	return s.usuarios.UpdatePassword(ctx, uid, utils.HashPassword(next))
}

func (s *AuthService) Profile(ctx context.Context, uid string) (map[string]any, error) {
	u, err := s.usuarios.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("usuario no encontrado")
	}
	permisos, err := s.permisos.Permisos(ctx, uid)
	if err != nil {
		return nil, err
	}
	out := u.Publico()
	out["permisos"] = permisos
	out["ultimoAcceso"] = u.UltimoAcceso
	return out, nil
}
