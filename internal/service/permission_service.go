package service

import (
	"context"

	"github.com/Bjohan23/SIGES-sub000/internal/domain"
)

// permisoReader is the slice of the repos the resolver needs; tests inject
// fakes.
type permisoReader interface {
	FindByID(ctx context.Context, id string) (*domain.Usuario, error)
}

type moduloReader interface {
	ModuloCodes(ctx context.Context, rolID string) ([]string, error)
}

// PermissionService resolves a user's effective permission set. Every check
// re-queries current rol/modulo state; there is no cache to invalidate.
type PermissionService struct {
	usuarios permisoReader
	roles    moduloReader
}

func NewPermissionService(usuarios permisoReader, roles moduloReader) *PermissionService {
	return &PermissionService{usuarios: usuarios, roles: roles}
}

// Permisos returns the union of modulo codes attached to the user's rol.
// Unknown or inactive users get the empty set: deny by default.
func (s *PermissionService) Permisos(ctx context.Context, usuarioID string) ([]string, error) {
	u, err := s.usuarios.FindByID(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.Activo {
		return []string{}, nil
	}
	codes, err := s.roles.ModuloCodes(ctx, u.RolID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

// HasPermission reports whether the user's set contains code or the ADMIN
// wildcard.
func (s *PermissionService) HasPermission(ctx context.Context, usuarioID, code string) (bool, error) {
	permisos, err := s.Permisos(ctx, usuarioID)
	if err != nil {
		return false, err
	}
	return ContainsPermiso(permisos, code), nil
}

func ContainsPermiso(permisos []string, code string) bool {
	for _, p := range permisos {
		if p == code || p == domain.AdminWildcard {
			return true
		}
	}
	return false
}
