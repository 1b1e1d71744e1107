package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/core/auth"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
	"github.com/Bjohan23/SIGES-sub000/pkg/utils"
)

type fakeUsuarioStore struct {
	byEmail map[string]*domain.Usuario
	byID    map[string]*domain.Usuario
	touched []string
	newHash string
}

func (f *fakeUsuarioStore) FindByID(_ context.Context, id string) (*domain.Usuario, error) {
	return f.byID[id], nil
}

func (f *fakeUsuarioStore) FindByEmail(_ context.Context, email string) (*domain.Usuario, error) {
	return f.byEmail[email], nil
}

func (f *fakeUsuarioStore) TouchUltimoAcceso(_ context.Context, id string) error {
	f.touched = append(f.touched, id)
	return nil
}

func (f *fakeUsuarioStore) UpdatePassword(_ context.Context, _, hash string) error {
	f.newHash = hash
	return nil
}

type fakePermisos struct{ set []string }

func (f *fakePermisos) Permisos(_ context.Context, _ string) ([]string, error) {
	return f.set, nil
}

type fakeRefreshStore struct {
	issued  int
	revoked []string
	// Rotate answers: old token -> uid. Missing tokens resolve to "".
	sessions map[string]string
}

func (f *fakeRefreshStore) Issue(_ context.Context, uid string) (string, error) {
	f.issued++
	return fmt.Sprintf("refresh-%d", f.issued), nil
}

func (f *fakeRefreshStore) Revoke(_ context.Context, tok string) error {
	f.revoked = append(f.revoked, tok)
	return nil
}

func (f *fakeRefreshStore) Rotate(_ context.Context, old string) (string, string, error) {
	uid := f.sessions[old]
	if uid == "" {
		return "", "", nil
	}
	f.issued++
	return uid, fmt.Sprintf("refresh-%d", f.issued), nil
}

func testJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "siges-test", TTL: time.Minute}
}

func authFixture() (*AuthService, *fakeUsuarioStore, *fakeRefreshStore) {
	u := &domain.Usuario{
		ID:           "u1",
		Email:        "ana@colegio.edu.pe",
		PasswordHash: utils.HashPassword("clave-correcta"),
		Nombres:      "Ana",
		Apellidos:    "Quispe",
		RolID:        "r1",
		Activo:       true,
	}
	inactivo := &domain.Usuario{
		ID:           "u2",
		Email:        "baja@colegio.edu.pe",
		PasswordHash: utils.HashPassword("clave-correcta"),
		Activo:       false,
	}
	usuarios := &fakeUsuarioStore{
		byEmail: map[string]*domain.Usuario{u.Email: u, inactivo.Email: inactivo},
		byID:    map[string]*domain.Usuario{u.ID: u, inactivo.ID: inactivo},
	}
	tokens := &fakeRefreshStore{sessions: map[string]string{"valid-refresh": "u1"}}
	permisos := &fakePermisos{set: []string{domain.PermFichasLectura}}
	return NewAuthService(usuarios, permisos, tokens, testJWTer()), usuarios, tokens
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues both tokens and touches last access", func(t *testing.T) {
		svc, usuarios, _ := authFixture()
		res, err := svc.Login(ctx, "ana@colegio.edu.pe", "clave-correcta")
		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
		assert.Equal(t, []string{domain.PermFichasLectura}, res.Permisos)
		assert.Equal(t, []string{"u1"}, usuarios.touched)

		claims, err := testJWTer().Parse(res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UID)
		assert.Equal(t, []string{domain.PermFichasLectura}, claims.Permisos)
	})

	t.Run("email is trimmed and lowercased", func(t *testing.T) {
		svc, _, _ := authFixture()
		_, err := svc.Login(ctx, "  ANA@Colegio.edu.pe ", "clave-correcta")
		assert.NoError(t, err)
	})

	t.Run("password hash never leaks through usuario payload", func(t *testing.T) {
		svc, _, _ := authFixture()
		res, err := svc.Login(ctx, "ana@colegio.edu.pe", "clave-correcta")
		require.NoError(t, err)
		_, present := res.Usuario["passwordHash"]
		assert.False(t, present)
	})

	// The same message for every failure mode keeps responses from
	// revealing which accounts exist.
	t.Run("uniform credential error", func(t *testing.T) {
		svc, _, _ := authFixture()
		for name, attempt := range map[string][2]string{
			"wrong password": {"ana@colegio.edu.pe", "clave-mala"},
			"unknown email":  {"nadie@colegio.edu.pe", "clave-correcta"},
			"inactive user":  {"baja@colegio.edu.pe", "clave-correcta"},
		} {
			_, err := svc.Login(ctx, attempt[0], attempt[1])
			require.Error(t, err, name)
			ae := apperr.From(err)
			assert.Equal(t, 401, ae.Status, name)
			assert.Equal(t, "credenciales inválidas", ae.Msg, name)
		}
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token rotates and re-issues access", func(t *testing.T) {
		svc, _, _ := authFixture()
		res, err := svc.Refresh(ctx, "valid-refresh")
		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEqual(t, "valid-refresh", res.RefreshToken)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		svc, _, _ := authFixture()
		_, err := svc.Refresh(ctx, "stale-refresh")
		require.Error(t, err)
		assert.Equal(t, 401, apperr.From(err).Status)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	svc, _, tokens := authFixture()

	require.NoError(t, svc.Logout(ctx, "valid-refresh"))
	assert.Equal(t, []string{"valid-refresh"}, tokens.revoked)

	// No cookie, nothing to revoke.
	require.NoError(t, svc.Logout(ctx, ""))
	assert.Len(t, tokens.revoked, 1)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("short password rejected", func(t *testing.T) {
		svc, _, _ := authFixture()
		err := svc.ChangePassword(ctx, "u1", "clave-correcta", "corta")
		require.Error(t, err)
		assert.Equal(t, 400, apperr.From(err).Status)
	})

	t.Run("wrong current password rejected", func(t *testing.T) {
		svc, usuarios, _ := authFixture()
		err := svc.ChangePassword(ctx, "u1", "clave-mala", "nueva-clave-larga")
		require.Error(t, err)
		assert.Equal(t, 401, apperr.From(err).Status)
		assert.Empty(t, usuarios.newHash)
	})

	t.Run("stores a hash of the new password", func(t *testing.T) {
		svc, usuarios, _ := authFixture()
		require.NoError(t, svc.ChangePassword(ctx, "u1", "clave-correcta", "nueva-clave-larga"))
		assert.NotEmpty(t, usuarios.newHash)
		assert.NotEqual(t, "nueva-clave-larga", usuarios.newHash)
		assert.True(t, utils.CheckPassword("nueva-clave-larga", usuarios.newHash))
	})
}

func TestValidate(t *testing.T) {
	svc, _, _ := authFixture()

	tok, err := testJWTer().Issue("u1", "ana@colegio.edu.pe", "Ana", "Quispe", nil)
	require.NoError(t, err)

	claims, err := svc.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UID)

	_, err = svc.Validate("not-a-token")
	require.Error(t, err)
	assert.Equal(t, 401, apperr.From(err).Status)
}
