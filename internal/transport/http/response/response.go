package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/service"
)

// Uniform envelope: {success, data | error, timestamp}; list endpoints add
// a pagination block.

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Body struct {
	Success    bool       `json:"success"`
	Data       any        `json:"data,omitempty"`
	Pagination any        `json:"pagination,omitempty"`
	Error      *ErrorBody `json:"error,omitempty"`
	Timestamp  string     `json:"timestamp"`
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data, Timestamp: now()})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Body{Success: true, Data: data, Timestamp: now()})
}

// OKPaged flattens a service page into the envelope.
func OKPaged[T any](c *gin.Context, p *service.Paged[T]) {
	c.JSON(http.StatusOK, Body{
		Success:    true,
		Data:       p.Data,
		Pagination: p.Pagination,
		Timestamp:  now(),
	})
}

// Fail maps any error to its HTTP status; non-apperr errors become opaque
// 500s. The cause stays in logs via the gin error list.
func Fail(c *gin.Context, err error) {
	ae := apperr.From(err)
	if ae.Err != nil {
		_ = c.Error(ae.Err)
	}
	c.JSON(ae.Status, Body{
		Success:   false,
		Error:     &ErrorBody{Code: ae.Code, Message: ae.Msg},
		Timestamp: now(),
	})
}

// AbortFail is Fail for middleware paths.
func AbortFail(c *gin.Context, err error) {
	ae := apperr.From(err)
	c.AbortWithStatusJSON(ae.Status, Body{
		Success:   false,
		Error:     &ErrorBody{Code: ae.Code, Message: ae.Msg},
		Timestamp: now(),
	})
}
