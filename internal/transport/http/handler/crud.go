package handler

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/repo"
	"github.com/Bjohan23/SIGES-sub000/internal/service"
	mdw "github.com/Bjohan23/SIGES-sub000/internal/transport/http/middleware"
	"github.com/Bjohan23/SIGES-sub000/internal/transport/http/response"
)

// CrudMount registers the standard five routes for an entity served by the
// generic service. The narrative report types share this path; anything with
// more behaviour gets its own handler.
type CrudMount[T any] struct {
	Svc       *service.CrudService[T]
	Gate      *mdw.Gate
	Path      string // e.g. "/informes-visita"
	ReadPerm  string
	WritePerm string
	// ListScope builds the list filter from the request. Optional.
	ListScope func(c *gin.Context) repo.Scope
}

func MountCrud[T any](g *gin.RouterGroup, m CrudMount[T]) {
	read := m.Gate.Require(m.ReadPerm)
	write := m.Gate.Require(m.WritePerm)

	g.GET(m.Path, read, func(c *gin.Context) {
		var q service.PageQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			response.Fail(c, apperr.Validation(err.Error()))
			return
		}
		var scope repo.Scope
		if m.ListScope != nil {
			scope = m.ListScope(c)
		}
		page, err := m.Svc.List(c.Request.Context(), scope, q)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OKPaged(c, page)
	})

	g.GET(m.Path+"/:id", read, func(c *gin.Context) {
		out, err := m.Svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, out)
	})

	g.POST(m.Path, write, func(c *gin.Context) {
		in := new(T)
		if err := c.ShouldBindJSON(in); err != nil {
			response.Fail(c, apperr.Validation(err.Error()))
			return
		}
		out, err := m.Svc.Create(c.Request.Context(), in, c.GetString(mdw.KeyUserID))
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.Created(c, out)
	})

	g.PUT(m.Path+"/:id", write, func(c *gin.Context) {
		in := new(T)
		if err := c.ShouldBindJSON(in); err != nil {
			response.Fail(c, apperr.Validation(err.Error()))
			return
		}
		out, err := m.Svc.Update(c.Request.Context(), c.Param("id"), in, c.GetString(mdw.KeyUserID))
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, out)
	})

	g.DELETE(m.Path+"/:id", write, func(c *gin.Context) {
		if err := m.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, gin.H{"id": c.Param("id")})
	})
}

// ByEstudianteScope filters list queries on the estudianteId query param,
// shared by every narrative report mount.
func ByEstudianteScope(c *gin.Context) repo.Scope {
	id := c.Query("estudianteId")
	if id == "" {
		return nil
	}
	return func(q *gorm.DB) *gorm.DB { return q.Where("estudiante_id = ?", id) }
}
