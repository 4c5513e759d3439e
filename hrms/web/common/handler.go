package common

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"hrmslite.com/hrms/core"
	hrms "hrmslite.com/hrms/hrms/core"
	web "hrmslite.com/hrms/web/common"
)

type Handler struct {
	Dm *core.DatabaseManager
}

// Exec runs fn in one transaction bound to the request context.
func (h *Handler) Exec(c *gin.Context, fn func(tx *gorm.DB) error) error {
	return h.Dm.Exec(c.Request.Context(), fn)
}

// WriteError answers with the status matching err and a {detail} body.
func WriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, hrms.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, web.NewErrorResponse(err.Error()))
	case errors.Is(err, hrms.ErrNotFound):
		c.JSON(http.StatusNotFound, web.NewErrorResponse(err.Error()))
	case errors.Is(err, hrms.ErrConflict):
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
	default:
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(http.StatusText(http.StatusInternalServerError)))
	}
}

// WriteBindingError answers a request whose body or query failed to bind.
func WriteBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, web.NewErrorResponse(web.FormatBindingError(err)))
}

// ParseEmployeeID reads an employee id path parameter. Any integer parses;
// one that can never match a row (zero or negative) is reported as not found.
func ParseEmployeeID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, &hrms.Error{Kind: hrms.ErrValidation, Detail: "Field '" + name + "' should be of type int"}
	}
	if id <= 0 {
		return 0, &hrms.Error{Kind: hrms.ErrNotFound, Detail: fmt.Sprintf("Employee with ID %d not found", id)}
	}
	return uint(id), nil
}
