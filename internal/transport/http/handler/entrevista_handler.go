package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
	"github.com/Bjohan23/SIGES-sub000/internal/repo"
	"github.com/Bjohan23/SIGES-sub000/internal/service"
	mdw "github.com/Bjohan23/SIGES-sub000/internal/transport/http/middleware"
	"github.com/Bjohan23/SIGES-sub000/internal/transport/http/response"
)

type EntrevistaHandler struct {
	svc *service.EntrevistaService
}

func NewEntrevistaHandler(svc *service.EntrevistaService) *EntrevistaHandler {
	return &EntrevistaHandler{svc: svc}
}

func (h *EntrevistaHandler) Mount(g *gin.RouterGroup, gate *mdw.Gate) {
	read := gate.Require(domain.PermEntrevistasLectura)
	write := gate.Require(domain.PermEntrevistasEscritura)

	g.GET("/entrevistas", read, h.list)
	g.GET("/entrevistas/ficha/:fichaId", read, h.listByFicha)
	g.GET("/entrevistas/:id", read, h.get)
	g.POST("/entrevistas", write, h.create)
	g.PUT("/entrevistas/:id", write, h.update)
	g.DELETE("/entrevistas/:id", write, h.delete)
}

type entrevistaListQ struct {
	service.PageQuery
	FichaSocialID string `form:"fichaSocialId"`
	EstudianteID  string `form:"estudianteId"`
	Nombres       string `form:"nombres"`
	Apellidos     string `form:"apellidos"`
	Aula          string `form:"aula"`
	Grado         string `form:"grado"`
	Estado        string `form:"estado"`
}

func (h *EntrevistaHandler) list(c *gin.Context) {
	var q entrevistaListQ
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, apperr.Validation(err.Error()))
		return
	}
	f := repo.EntrevistaFilter{
		FichaSocialID: q.FichaSocialID,
		EstudianteID:  q.EstudianteID,
		Nombres:       q.Nombres,
		Apellidos:     q.Apellidos,
		Aula:          q.Aula,
		Grado:         q.Grado,
		Estado:        q.Estado,
	}
	page, err := h.svc.List(c.Request.Context(), f, q.PageQuery)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OKPaged(c, page)
}

func (h *EntrevistaHandler) listByFicha(c *gin.Context) {
	var q service.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, apperr.Validation(err.Error()))
		return
	}
	page, err := h.svc.ListByFicha(c.Request.Context(), c.Param("fichaId"), q)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OKPaged(c, page)
}

func (h *EntrevistaHandler) get(c *gin.Context) {
	e, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, e)
}

func (h *EntrevistaHandler) create(c *gin.Context) {
	var in domain.Entrevista
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.Validation(err.Error()))
		return
	}
	e, err := h.svc.Create(c.Request.Context(), &in, c.GetString(mdw.KeyUserID))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, e)
}

func (h *EntrevistaHandler) update(c *gin.Context) {
	var in domain.Entrevista
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.Validation(err.Error()))
		return
	}
	e, err := h.svc.Update(c.Request.Context(), c.Param("id"), &in, c.GetString(mdw.KeyUserID))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, e)
}

func (h *EntrevistaHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"id": c.Param("id")})
}
