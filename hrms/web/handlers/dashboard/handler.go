package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"hrmslite.com/hrms/core"
	hrms "hrmslite.com/hrms/hrms/core"
	common "hrmslite.com/hrms/hrms/web/common"
)

type Endpoint struct {
	base common.Handler
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: common.Handler{Dm: dm}}
	r.GET("/dashboard/summary", endpoint.Summary)
}

func (ep *Endpoint) Summary(c *gin.Context) {
	var summary *hrms.DashboardSummary
	if err := ep.base.Exec(c, func(tx *gorm.DB) error {
		var err error
		summary, err = hrms.Dashboard(tx)
		return err
	}); err != nil {
		common.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
