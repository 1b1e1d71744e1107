package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bjohan23/SIGES-sub000/internal/domain"
)

type fakeUsuarioReader struct {
	usuarios map[string]*domain.Usuario
}

func (f *fakeUsuarioReader) FindByID(_ context.Context, id string) (*domain.Usuario, error) {
	return f.usuarios[id], nil
}

type fakeModuloReader struct {
	codes map[string][]string
}

func (f *fakeModuloReader) ModuloCodes(_ context.Context, rolID string) ([]string, error) {
	return f.codes[rolID], nil
}

func newPermisoFixture() *PermissionService {
	usuarios := &fakeUsuarioReader{usuarios: map[string]*domain.Usuario{
		"u-trabajadora": {ID: "u-trabajadora", RolID: "r-social", Activo: true},
		"u-admin":       {ID: "u-admin", RolID: "r-admin", Activo: true},
		"u-baja":        {ID: "u-baja", RolID: "r-social", Activo: false},
	}}
	roles := &fakeModuloReader{codes: map[string][]string{
		"r-social": {domain.PermFichasLectura, domain.PermFichasEscritura, domain.PermFichasLectura},
		"r-admin":  {domain.AdminWildcard},
	}}
	return NewPermissionService(usuarios, roles)
}

func TestPermisos(t *testing.T) {
	s := newPermisoFixture()
	ctx := context.Background()

	t.Run("union without duplicates", func(t *testing.T) {
		got, err := s.Permisos(ctx, "u-trabajadora")
		require.NoError(t, err)
		assert.Equal(t, []string{domain.PermFichasLectura, domain.PermFichasEscritura}, got)
	})

	t.Run("unknown user gets empty set", func(t *testing.T) {
		got, err := s.Permisos(ctx, "no-such-user")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("inactive user gets empty set", func(t *testing.T) {
		got, err := s.Permisos(ctx, "u-baja")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestHasPermission(t *testing.T) {
	s := newPermisoFixture()
	ctx := context.Background()

	t.Run("granted code passes", func(t *testing.T) {
		ok, err := s.HasPermission(ctx, "u-trabajadora", domain.PermFichasEscritura)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing code denied", func(t *testing.T) {
		ok, err := s.HasPermission(ctx, "u-trabajadora", domain.PermUsuariosGestion)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("admin wildcard grants everything", func(t *testing.T) {
		for _, code := range domain.PermisoCodes() {
			ok, err := s.HasPermission(ctx, "u-admin", code)
			require.NoError(t, err)
			assert.True(t, ok, code)
		}
	})

	t.Run("unknown user denied by default", func(t *testing.T) {
		ok, err := s.HasPermission(ctx, "no-such-user", domain.PermFichasLectura)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestContainsPermiso(t *testing.T) {
	assert.False(t, ContainsPermiso(nil, domain.PermFichasLectura))
	assert.True(t, ContainsPermiso([]string{domain.AdminWildcard}, "anything"))
	assert.True(t, ContainsPermiso([]string{domain.PermFichasLectura}, domain.PermFichasLectura))
	assert.False(t, ContainsPermiso([]string{domain.PermFichasLectura}, domain.PermFichasEscritura))
}
