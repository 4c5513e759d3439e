package employees

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"hrmslite.com/hrms/core"
	hrms "hrmslite.com/hrms/hrms/core"
	"hrmslite.com/hrms/hrms/model"
	common "hrmslite.com/hrms/hrms/web/common"
)

type Endpoint struct {
	base common.Handler
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: common.Handler{Dm: dm}}
	r.POST("/employees", endpoint.Create)
	r.GET("/employees", endpoint.List)
	r.GET("/employees/:id", endpoint.Get)
	r.DELETE("/employees/:id", endpoint.Delete)
}

func (ep *Endpoint) Create(c *gin.Context) {
	var input hrms.EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.WriteBindingError(c, err)
		return
	}

	var emp *model.Employee
	if err := ep.base.Exec(c, func(tx *gorm.DB) error {
		var err error
		emp, err = hrms.CreateEmployee(tx, input)
		return err
	}); err != nil {
		common.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, emp)
}

func (ep *Endpoint) List(c *gin.Context) {
	var employees []model.Employee
	if err := ep.base.Exec(c, func(tx *gorm.DB) error {
		var err error
		employees, err = hrms.ListEmployees(tx)
		return err
	}); err != nil {
		common.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (ep *Endpoint) Get(c *gin.Context) {
	id, err := common.ParseEmployeeID(c, "id")
	if err != nil {
		common.WriteError(c, err)
		return
	}

	var emp *model.Employee
	if err := ep.base.Exec(c, func(tx *gorm.DB) error {
		var err error
		emp, err = hrms.GetEmployee(tx, id)
		return err
	}); err != nil {
		common.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, emp)
}

func (ep *Endpoint) Delete(c *gin.Context) {
	id, err := common.ParseEmployeeID(c, "id")
	if err != nil {
		common.WriteError(c, err)
		return
	}

	if err := ep.base.Exec(c, func(tx *gorm.DB) error {
		return hrms.DeleteEmployee(tx, id)
	}); err != nil {
		common.WriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
