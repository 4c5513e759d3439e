package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/hrms/web/handlers/attendance"
	"hrmslite.com/hrms/hrms/web/handlers/dashboard"
	"hrmslite.com/hrms/hrms/web/handlers/employees"
	web "hrmslite.com/hrms/web/common"
	"hrmslite.com/hrms/web/middlewares"
)

type Options struct {
	AllowOrigins []string
}

// New builds the HTTP engine serving the HRMS API on top of dm.
func New(dm *core.DatabaseManager, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Cors(opts.AllowOrigins))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, web.NewMessageResponse("HRMS Lite API is running"))
	})

	r.GET("/health", func(c *gin.Context) {
		if err := dm.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, web.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		employees.Register(api, dm)
		attendance.Register(api, dm)
		dashboard.Register(api, dm)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Not Found"))
	})

	return r
}
