package attendance

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"hrmslite.com/hrms/core"
	hrms "hrmslite.com/hrms/hrms/core"
	"hrmslite.com/hrms/hrms/model"
	common "hrmslite.com/hrms/hrms/web/common"
	"hrmslite.com/hrms/utils"
	web "hrmslite.com/hrms/web/common"
)

type Endpoint struct {
	base common.Handler
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: common.Handler{Dm: dm}}
	r.POST("/attendance", endpoint.Mark)
	r.GET("/attendance", endpoint.List)
	r.GET("/attendance/:employee_id", endpoint.ListForEmployee)
	r.GET("/attendance/:employee_id/summary", endpoint.Summary)
}

type MarkAttendanceDTO struct {
	EmployeeID int                    `json:"employee_id" binding:"required,gt=0"`
	Date       *web.DateOnly          `json:"date" binding:"required"`
	Status     model.AttendanceStatus `json:"status" binding:"required,oneof=Present Absent"`
}

type ListAttendanceQuery struct {
	EmployeeID *int   `form:"employee_id" binding:"omitempty,min=0"`
	StartDate  string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate    string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

func (q ListAttendanceQuery) filter() hrms.AttendanceFilter {
	var f hrms.AttendanceFilter
	if q.EmployeeID != nil {
		f.EmployeeID = uint(*q.EmployeeID)
	}
	f.StartDate = parseOptionalDate(q.StartDate)
	f.EndDate = parseOptionalDate(q.EndDate)
	return f
}

func parseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	d, err := utils.ParseDate(s)
	if err != nil {
		return nil
	}
	return &d
}

// Mark answers 201 for both the first mark of a day and an overwrite.
func (ep *Endpoint) Mark(c *gin.Context) {
	var dto MarkAttendanceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		common.WriteBindingError(c, err)
		return
	}

	var rec *model.Attendance
	if err := ep.base.Exec(c, func(tx *gorm.DB) error {
		var err error
		rec, err = hrms.MarkAttendance(tx, hrms.AttendanceInput{
			EmployeeID: uint(dto.EmployeeID),
			Date:       dto.Date.Time,
			Status:     dto.Status,
		})
		return err
	}); err != nil {
		common.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

func (ep *Endpoint) List(c *gin.Context) {
	var query ListAttendanceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		common.WriteBindingError(c, err)
		return
	}

	var records []model.Attendance
	if err := ep.base.Exec(c, func(tx *gorm.DB) error {
		var err error
		records, err = hrms.ListAttendance(tx, query.filter())
		return err
	}); err != nil {
		common.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (ep *Endpoint) ListForEmployee(c *gin.Context) {
	id, err := common.ParseEmployeeID(c, "employee_id")
	if err != nil {
		common.WriteError(c, err)
		return
	}

	var records []model.Attendance
	if err := ep.base.Exec(c, func(tx *gorm.DB) error {
		var err error
		records, err = hrms.ListEmployeeAttendance(tx, id)
		return err
	}); err != nil {
		common.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (ep *Endpoint) Summary(c *gin.Context) {
	id, err := common.ParseEmployeeID(c, "employee_id")
	if err != nil {
		common.WriteError(c, err)
		return
	}

	var summary *hrms.AttendanceSummary
	if err := ep.base.Exec(c, func(tx *gorm.DB) error {
		var err error
		summary, err = hrms.AttendanceSummaryFor(tx, id)
		return err
	}); err != nil {
		common.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
