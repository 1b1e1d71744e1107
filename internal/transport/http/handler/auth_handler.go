package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/service"
	"github.com/Bjohan23/SIGES-sub000/internal/transport/http/middleware"
	"github.com/Bjohan23/SIGES-sub000/internal/transport/http/response"
)

type AuthHandler struct {
	svc          *service.AuthService
	cookieName   string
	cookieMaxAge int // seconds
	cookieSecure bool
}

func NewAuthHandler(svc *service.AuthService, cookieName string, cookieMaxAge int, cookieSecure bool) *AuthHandler {
	return &AuthHandler{svc: svc, cookieName: cookieName, cookieMaxAge: cookieMaxAge, cookieSecure: cookieSecure}
}

// Mount registers public routes on pub and token-guarded ones on priv.
func (h *AuthHandler) Mount(pub, priv *gin.RouterGroup) {
	pub.POST("/auth/login", h.login)
	pub.POST("/auth/refresh", h.refresh)
	pub.POST("/auth/logout", h.logout)
	pub.POST("/auth/validate", h.validate)
	priv.POST("/auth/change-password", h.changePassword)
	priv.GET("/auth/profile", h.profile)
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	// HTTP-only: the browser never exposes the refresh token to scripts.
	c.SetCookie(h.cookieName, token, h.cookieMaxAge, "/", "", h.cookieSecure, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", h.cookieSecure, true)
}

type loginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.Validation("email y contraseña son requeridos"))
		return
	}
	res, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		response.Fail(c, err)
		return
	}
	h.setRefreshCookie(c, res.RefreshToken)
	response.OK(c, res)
}

func (h *AuthHandler) refresh(c *gin.Context) {
	tok, err := c.Cookie(h.cookieName)
	if err != nil || tok == "" {
		response.Fail(c, apperr.Authentication("sesión expirada"))
		return
	}
	res, err := h.svc.Refresh(c.Request.Context(), tok)
	if err != nil {
		h.clearRefreshCookie(c)
		response.Fail(c, err)
		return
	}
	h.setRefreshCookie(c, res.RefreshToken)
	response.OK(c, res)
}

func (h *AuthHandler) logout(c *gin.Context) {
	tok, _ := c.Cookie(h.cookieName)
	if err := h.svc.Logout(c.Request.Context(), tok); err != nil {
		response.Fail(c, err)
		return
	}
	h.clearRefreshCookie(c)
	response.OK(c, gin.H{"message": "sesión cerrada"})
}

type validateIn struct {
	Token string `json:"token" binding:"required"`
}

func (h *AuthHandler) validate(c *gin.Context) {
	var in validateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.Validation("token es requerido"))
		return
	}
	claims, err := h.svc.Validate(in.Token)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{
		"uid":       claims.UID,
		"email":     claims.Email,
		"nombres":   claims.Nombres,
		"apellidos": claims.Apellidos,
		"permisos":  claims.Permisos,
		"expira":    claims.ExpiresAt,
	})
}

type changePasswordIn struct {
	PasswordActual string `json:"passwordActual" binding:"required"`
	PasswordNueva  string `json:"passwordNueva" binding:"required"`
}

func (h *AuthHandler) changePassword(c *gin.Context) {
	var in changePasswordIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.Validation("contraseña actual y nueva son requeridas"))
		return
	}
	uid := c.GetString(middleware.KeyUserID)
	if err := h.svc.ChangePassword(c.Request.Context(), uid, in.PasswordActual, in.PasswordNueva); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"message": "contraseña actualizada"})
}

func (h *AuthHandler) profile(c *gin.Context) {
	uid := c.GetString(middleware.KeyUserID)
	out, err := h.svc.Profile(c.Request.Context(), uid)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, out)
}
