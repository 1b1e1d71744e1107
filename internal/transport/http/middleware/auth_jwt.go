package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/core/auth"
	"github.com/Bjohan23/SIGES-sub000/internal/transport/http/response"
)

const (
	KeyClaims = "claims"
	KeyUserID = "userId"
)

// AuthJWT requires a valid bearer token and stores its claims in the context.
// The token only identifies the caller; authorization is resolved per request
// by Gate.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			response.AbortFail(c, apperr.Authentication("token requerido"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			response.AbortFail(c, apperr.Authentication("token inválido"))
			return
		}
		c.Set(KeyClaims, claims)
		c.Set(KeyUserID, claims.UID)
		c.Next()
	}
}

// PermissionChecker resolves a user's current permission set. Every check
// re-queries rol/modulo state, so revoking a modulo takes effect immediately
// instead of waiting out the access-token TTL.
type PermissionChecker interface {
	HasPermission(ctx context.Context, usuarioID, code string) (bool, error)
}

// Gate builds permission middleware over the live checker.
type Gate struct {
	Checker PermissionChecker
}

// Require gates a route on a permission code; the ADMIN wildcard is honoured
// inside the checker.
func (g *Gate) Require(code string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil {
			response.AbortFail(c, apperr.Authentication("token requerido"))
			return
		}
		ok, err := g.Checker.HasPermission(c.Request.Context(), claims.UID, code)
		if err != nil {
			response.AbortFail(c, err)
			return
		}
		if !ok {
			response.AbortFail(c, apperr.Forbidden("permiso insuficiente"))
			return
		}
		c.Next()
	}
}

// Claims returns the parsed token claims, or nil outside the auth group.
func Claims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(KeyClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
