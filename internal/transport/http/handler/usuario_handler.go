package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
	"github.com/Bjohan23/SIGES-sub000/internal/service"
	mdw "github.com/Bjohan23/SIGES-sub000/internal/transport/http/middleware"
	"github.com/Bjohan23/SIGES-sub000/internal/transport/http/response"
)

// UsuarioHandler is the admin surface: user and role management, gated by
// USUARIOS_GESTION (or the ADMIN wildcard).
type UsuarioHandler struct {
	usuarios *service.UsuarioService
	roles    *service.RolService
}

func NewUsuarioHandler(usuarios *service.UsuarioService, roles *service.RolService) *UsuarioHandler {
	return &UsuarioHandler{usuarios: usuarios, roles: roles}
}

func (h *UsuarioHandler) Mount(g *gin.RouterGroup, permisos *mdw.Gate) {
	gate := permisos.Require(domain.PermUsuariosGestion)

	g.GET("/usuarios", gate, h.listUsuarios)
	g.GET("/usuarios/:id", gate, h.getUsuario)
	g.POST("/usuarios", gate, h.createUsuario)
	g.PUT("/usuarios/:id", gate, h.updateUsuario)
	g.DELETE("/usuarios/:id", gate, h.deleteUsuario)

	g.GET("/roles", gate, h.listRoles)
	g.GET("/roles/:id", gate, h.getRol)
	g.POST("/roles", gate, h.createRol)
	g.PUT("/roles/:id", gate, h.updateRol)
	g.DELETE("/roles/:id", gate, h.deleteRol)
	g.GET("/modulos", gate, h.listModulos)
}

type usuarioListQ struct {
	service.PageQuery
	Q string `form:"q"`
}

func (h *UsuarioHandler) listUsuarios(c *gin.Context) {
	var q usuarioListQ
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, apperr.Validation(err.Error()))
		return
	}
	page, err := h.usuarios.List(c.Request.Context(), q.Q, q.PageQuery)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OKPaged(c, page)
}

func (h *UsuarioHandler) getUsuario(c *gin.Context) {
	u, err := h.usuarios.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, u.Publico())
}

func (h *UsuarioHandler) createUsuario(c *gin.Context) {
	var in service.UsuarioInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.Validation(err.Error()))
		return
	}
	u, err := h.usuarios.Create(c.Request.Context(), &in)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, u.Publico())
}

func (h *UsuarioHandler) updateUsuario(c *gin.Context) {
	var in service.UsuarioInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.Validation(err.Error()))
		return
	}
	u, err := h.usuarios.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, u.Publico())
}

func (h *UsuarioHandler) deleteUsuario(c *gin.Context) {
	if err := h.usuarios.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"id": c.Param("id"), "activo": false})
}

func (h *UsuarioHandler) listRoles(c *gin.Context) {
	var q service.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, apperr.Validation(err.Error()))
		return
	}
	page, err := h.roles.List(c.Request.Context(), q)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OKPaged(c, page)
}

func (h *UsuarioHandler) getRol(c *gin.Context) {
	rol, err := h.roles.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, rol)
}

func (h *UsuarioHandler) createRol(c *gin.Context) {
	var in service.RolInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.Validation(err.Error()))
		return
	}
	rol, err := h.roles.Create(c.Request.Context(), &in)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, rol)
}

func (h *UsuarioHandler) updateRol(c *gin.Context) {
	var in service.RolInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.Validation(err.Error()))
		return
	}
	rol, err := h.roles.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, rol)
}

func (h *UsuarioHandler) deleteRol(c *gin.Context) {
	if err := h.roles.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"id": c.Param("id")})
}

func (h *UsuarioHandler) listModulos(c *gin.Context) {
	mods, err := h.roles.ListModulos(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, mods)
}
