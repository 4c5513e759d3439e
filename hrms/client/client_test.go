package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hrmslite.com/hrms/core/coretest"
	hrms "hrmslite.com/hrms/hrms/core"
	"hrmslite.com/hrms/hrms/model"
	"hrmslite.com/hrms/hrms/web/server"
	"hrmslite.com/hrms/utils"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dm := coretest.NewDatabaseManager(t, model.Models()...)
	srv := httptest.NewServer(server.New(dm, server.Options{AllowOrigins: []string{"*"}}))
	t.Cleanup(srv.Close)
	return New(srv.URL, srv.Client())
}

func TestClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	emp, err := c.Employees.Create(ctx, hrms.EmployeeInput{
		EmployeeID: "E1",
		FullName:   "Jane Doe",
		Email:      "jane@x.com",
		Department: "Eng",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), emp.ID)

	got, err := c.Employees.Get(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", got.Email)

	for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		_, err := c.Attendance.Mark(ctx, hrms.AttendanceInput{
			EmployeeID: emp.ID,
			Date:       utils.MustParseDate(day),
			Status:     model.StatusPresent,
		})
		require.NoError(t, err)
	}
	rec, err := c.Attendance.Mark(ctx, hrms.AttendanceInput{
		EmployeeID: emp.ID,
		Date:       utils.MustParseDate("2024-01-02"),
		Status:     model.StatusAbsent,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusAbsent, rec.Status)

	start := utils.MustParseDate("2024-01-02")
	records, err := c.Attendance.List(ctx, hrms.AttendanceFilter{EmployeeID: emp.ID, StartDate: &start})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-01-03", records[0].Date)
	require.NotNil(t, records[0].Employee)
	assert.Equal(t, "Jane Doe", records[0].Employee.FullName)

	own, err := c.Attendance.ListForEmployee(ctx, emp.ID)
	require.NoError(t, err)
	assert.Len(t, own, 3)

	summary, err := c.Attendance.Summary(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, hrms.AttendanceSummary{
		EmployeeID:   emp.ID,
		EmployeeName: "Jane Doe",
		TotalRecords: 3,
		PresentDays:  2,
		AbsentDays:   1,
	}, *summary)

	dash, err := c.Dashboard.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, hrms.DashboardSummary{TotalEmployees: 1, TotalAttendanceRecords: 3}, *dash)

	require.NoError(t, c.Employees.Delete(ctx, emp.ID))
	employees, err := c.Employees.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestClientErrors(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	_, err := c.Employees.Get(ctx, 42)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Employee with ID 42 not found", apiErr.Detail)

	input := hrms.EmployeeInput{EmployeeID: "E1", FullName: "Jane", Email: "jane@x.com", Department: "Eng"}
	_, err = c.Employees.Create(ctx, input)
	require.NoError(t, err)
	_, err = c.Employees.Create(ctx, input)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "hrms api: 400 Employee ID 'E1' already exists", apiErr.Error())

	_, err = c.Attendance.Summary(ctx, 9)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}
