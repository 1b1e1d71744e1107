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

type EstudianteHandler struct {
	svc *service.EstudianteService
}

func NewEstudianteHandler(svc *service.EstudianteService) *EstudianteHandler {
	return &EstudianteHandler{svc: svc}
}

func (h *EstudianteHandler) Mount(g *gin.RouterGroup, gate *mdw.Gate) {
	read := gate.Require(domain.PermEstudiantesLectura)
	write := gate.Require(domain.PermEstudiantesEscritura)

	g.GET("/estudiantes", read, h.list)
	g.GET("/estudiantes/search/:query", read, h.search)
	g.GET("/estudiantes/:id", read, h.get)
	g.POST("/estudiantes", write, h.create)
	g.PUT("/estudiantes/:id", write, h.update)
	g.DELETE("/estudiantes/:id", write, h.delete)
}

type estudianteListQ struct {
	service.PageQuery
	Nombres   string `form:"nombres"`
	Apellidos string `form:"apellidos"`
	DNI       string `form:"dni"`
	Codigo    string `form:"codigo"`
	Aula      string `form:"aula"`
	Grado     string `form:"grado"`
	Inactivos bool   `form:"inactivos"`
}

func (h *EstudianteHandler) list(c *gin.Context) {
	var q estudianteListQ
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, apperr.Validation(err.Error()))
		return
	}
	f := repo.EstudianteFilter{
		Nombres:   q.Nombres,
		Apellidos: q.Apellidos,
		DNI:       q.DNI,
		Codigo:    q.Codigo,
		Aula:      q.Aula,
		Grado:     q.Grado,
	}
	if q.Inactivos {
		inactivo := false
		f.Activo = &inactivo
	}
	page, err := h.svc.List(c.Request.Context(), f, q.PageQuery)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OKPaged(c, page)
}

func (h *EstudianteHandler) search(c *gin.Context) {
	var q service.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, apperr.Validation(err.Error()))
		return
	}
	page, err := h.svc.Search(c.Request.Context(), c.Param("query"), q)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OKPaged(c, page)
}

func (h *EstudianteHandler) get(c *gin.Context) {
	e, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, e)
}

func (h *EstudianteHandler) create(c *gin.Context) {
	var in domain.Estudiante
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

func (h *EstudianteHandler) update(c *gin.Context) {
	var in domain.Estudiante
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

func (h *EstudianteHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"id": c.Param("id"), "activo": false})
}
