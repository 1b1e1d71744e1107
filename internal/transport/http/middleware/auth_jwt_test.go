package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bjohan23/SIGES-sub000/internal/core/auth"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
	"github.com/Bjohan23/SIGES-sub000/internal/transport/http/response"
)

// fakeChecker grants per user/code and can be mutated between requests to
// model a permiso being revoked while a token is still live.
type fakeChecker struct {
	grants map[string]map[string]bool
}

func (f *fakeChecker) HasPermission(_ context.Context, usuarioID, code string) (bool, error) {
	return f.grants[usuarioID][code], nil
}

func (f *fakeChecker) set(usuarioID, code string, ok bool) {
	if f.grants == nil {
		f.grants = map[string]map[string]bool{}
	}
	if f.grants[usuarioID] == nil {
		f.grants[usuarioID] = map[string]bool{}
	}
	f.grants[usuarioID][code] = ok
}

func newAuthTestRouter(j *auth.JWTer, checker PermissionChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("", AuthJWT(j))
	g.GET("/abierto", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetString(KeyUserID)})
	})
	gate := &Gate{Checker: checker}
	g.GET("/protegido", gate.Require(domain.PermFichasEstado), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(t *testing.T, r *gin.Engine, path, token string) (*httptest.ResponseRecorder, response.Body) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body response.Body
	if w.Code != http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestAuthJWT(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("mw-test-secret"), Issuer: "siges-test", TTL: time.Minute}
	r := newAuthTestRouter(j, &fakeChecker{})

	t.Run("missing token", func(t *testing.T) {
		w, body := doGet(t, r, "/abierto", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "AUTHENTICATION_ERROR", body.Error.Code)
		assert.False(t, body.Success)
	})

	t.Run("malformed token", func(t *testing.T) {
		w, body := doGet(t, r, "/abierto", "nonsense")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "AUTHENTICATION_ERROR", body.Error.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := &auth.JWTer{Secret: []byte("evil"), Issuer: "siges-test", TTL: time.Minute}
		tok, err := other.Issue("u1", "a@b", "", "", nil)
		require.NoError(t, err)
		w, _ := doGet(t, r, "/abierto", tok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token exposes uid", func(t *testing.T) {
		tok, err := j.Issue("u1", "a@b", "", "", nil)
		require.NoError(t, err)
		w, _ := doGet(t, r, "/abierto", tok)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"uid":"u1"`)
	})
}

func TestGateRequire(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("mw-test-secret"), Issuer: "siges-test", TTL: time.Minute}
	checker := &fakeChecker{}
	r := newAuthTestRouter(j, checker)

	t.Run("missing permission is forbidden", func(t *testing.T) {
		tok, err := j.Issue("u1", "a@b", "", "", nil)
		require.NoError(t, err)
		w, body := doGet(t, r, "/protegido", tok)
		assert.Equal(t, http.StatusForbidden, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "FORBIDDEN", body.Error.Code)
	})

	t.Run("granted permission passes", func(t *testing.T) {
		checker.set("u2", domain.PermFichasEstado, true)
		tok, err := j.Issue("u2", "a@b", "", "", nil)
		require.NoError(t, err)
		w, _ := doGet(t, r, "/protegido", tok)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("revocation applies to a live token", func(t *testing.T) {
		// The token embeds the permiso list from issue time, but the gate
		// consults the checker on every request, so pulling the grant
		// locks the caller out without waiting for the token to expire.
		checker.set("u3", domain.PermFichasEstado, true)
		tok, err := j.Issue("u3", "a@b", "", "", []string{domain.PermFichasEstado})
		require.NoError(t, err)

		w, _ := doGet(t, r, "/protegido", tok)
		require.Equal(t, http.StatusOK, w.Code)

		checker.set("u3", domain.PermFichasEstado, false)
		w, body := doGet(t, r, "/protegido", tok)
		assert.Equal(t, http.StatusForbidden, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "FORBIDDEN", body.Error.Code)
	})

	t.Run("permisos in the token alone do not authorize", func(t *testing.T) {
		tok, err := j.Issue("u4", "a@b", "", "", []string{domain.AdminWildcard, domain.PermFichasEstado})
		require.NoError(t, err)
		w, _ := doGet(t, r, "/protegido", tok)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
