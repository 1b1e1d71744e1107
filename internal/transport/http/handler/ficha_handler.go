package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
	"github.com/Bjohan23/SIGES-sub000/internal/repo"
	"github.com/Bjohan23/SIGES-sub000/internal/service"
	mdw "github.com/Bjohan23/SIGES-sub000/internal/transport/http/middleware"
	"github.com/Bjohan23/SIGES-sub000/internal/transport/http/response"
)

type FichaHandler struct {
	svc *service.FichaService
}

func NewFichaHandler(svc *service.FichaService) *FichaHandler {
	return &FichaHandler{svc: svc}
}

func (h *FichaHandler) Mount(g *gin.RouterGroup, gate *mdw.Gate) {
	read := gate.Require(domain.PermFichasLectura)
	write := gate.Require(domain.PermFichasEscritura)

	g.GET("/fichas-sociales", read, h.list)
	g.GET("/fichas-sociales/statistics", read, h.statistics)
	g.GET("/fichas-sociales/:id", read, h.get)
	g.GET("/fichas-sociales/:id/progreso", read, h.progreso)
	g.POST("/fichas-sociales", write, h.create)
	g.PUT("/fichas-sociales/:id", write, h.update)
	g.PATCH("/fichas-sociales/:id/estado", gate.Require(domain.PermFichasEstado), h.cambiarEstado)
	g.DELETE("/fichas-sociales/:id", write, h.delete)
}

type fichaListQ struct {
	service.PageQuery
	Nombres   string `form:"nombres"`
	Apellidos string `form:"apellidos"`
	DNI       string `form:"dni"`
	Estado    string `form:"estado"`
	Desde     string `form:"desde"` // YYYY-MM-DD
	Hasta     string `form:"hasta"`
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, apperr.Validationf("fecha inválida: %s", s)
	}
	return &t, nil
}

func (h *FichaHandler) list(c *gin.Context) {
	var q fichaListQ
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, apperr.Validation(err.Error()))
		return
	}
	desde, err := parseDate(q.Desde)
	if err != nil {
		response.Fail(c, err)
		return
	}
	hasta, err := parseDate(q.Hasta)
	if err != nil {
		response.Fail(c, err)
		return
	}
	f := repo.FichaFilter{
		Nombres:   q.Nombres,
		Apellidos: q.Apellidos,
		DNI:       q.DNI,
		Estado:    q.Estado,
		Desde:     desde,
		Hasta:     hasta,
	}
	page, err := h.svc.List(c.Request.Context(), f, q.PageQuery)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OKPaged(c, page)
}

func (h *FichaHandler) get(c *gin.Context) {
	f, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, f)
}

func (h *FichaHandler) create(c *gin.Context) {
	var in domain.FichaSocial
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.Validation(err.Error()))
		return
	}
	f, err := h.svc.Create(c.Request.Context(), &in, c.GetString(mdw.KeyUserID))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, f)
}

func (h *FichaHandler) update(c *gin.Context) {
	var in domain.FichaSocial
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.Validation(err.Error()))
		return
	}
	f, err := h.svc.Update(c.Request.Context(), c.Param("id"), &in, c.GetString(mdw.KeyUserID))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, f)
}

func (h *FichaHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"id": c.Param("id")})
}

func (h *FichaHandler) progreso(c *gin.Context) {
	out, err := h.svc.Progreso(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, out)
}

type estadoIn struct {
	Estado string `json:"estado" binding:"required"`
}

func (h *FichaHandler) cambiarEstado(c *gin.Context) {
	var in estadoIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.Validation("estado es requerido"))
		return
	}
	f, err := h.svc.CambiarEstado(c.Request.Context(), c.Param("id"), in.Estado, c.GetString(mdw.KeyUserID))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, f)
}

func (h *FichaHandler) statistics(c *gin.Context) {
	out, err := h.svc.Estadisticas(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, out)
}
