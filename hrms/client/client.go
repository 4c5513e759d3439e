// Package client is a typed HTTP client for the HRMS API.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	hrms "hrmslite.com/hrms/hrms/core"
	"hrmslite.com/hrms/hrms/model"
	"hrmslite.com/hrms/utils"
)

type Client struct {
	Transport  *Transport
	Employees  *EmployeeEndpoint
	Attendance *AttendanceEndpoint
	Dashboard  *DashboardEndpoint
}

// New initializes the client for the API served at baseURL (e.g. "http://localhost:8001").
func New(baseURL string, httpClient *http.Client) *Client {
	t := NewTransport(baseURL, httpClient)
	return &Client{
		Transport:  t,
		Employees:  &EmployeeEndpoint{transport: t},
		Attendance: &AttendanceEndpoint{transport: t},
		Dashboard:  &DashboardEndpoint{transport: t},
	}
}

type EmployeeEndpoint struct {
	transport *Transport
}

func (ep *EmployeeEndpoint) Create(ctx context.Context, input hrms.EmployeeInput) (*model.Employee, error) {
	var emp model.Employee
	if err := ep.transport.Do(ctx, http.MethodPost, "/api/employees", nil, input, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (ep *EmployeeEndpoint) List(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	if err := ep.transport.Do(ctx, http.MethodGet, "/api/employees", nil, nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (ep *EmployeeEndpoint) Get(ctx context.Context, id uint) (*model.Employee, error) {
	var emp model.Employee
	if err := ep.transport.Do(ctx, http.MethodGet, fmt.Sprintf("/api/employees/%d", id), nil, nil, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (ep *EmployeeEndpoint) Delete(ctx context.Context, id uint) error {
	return ep.transport.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/employees/%d", id), nil, nil, nil)
}

type AttendanceEndpoint struct {
	transport *Transport
}

type markAttendanceRequest struct {
	EmployeeID uint                   `json:"employee_id"`
	Date       string                 `json:"date"`
	Status     model.AttendanceStatus `json:"status"`
}

func (ep *AttendanceEndpoint) Mark(ctx context.Context, input hrms.AttendanceInput) (*model.Attendance, error) {
	req := markAttendanceRequest{
		EmployeeID: input.EmployeeID,
		Date:       input.Date.Format(utils.DateLayout),
		Status:     input.Status,
	}
	var rec model.Attendance
	if err := ep.transport.Do(ctx, http.MethodPost, "/api/attendance", nil, req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (ep *AttendanceEndpoint) List(ctx context.Context, filter hrms.AttendanceFilter) ([]model.Attendance, error) {
	query := url.Values{}
	if filter.EmployeeID != 0 {
		query.Set("employee_id", strconv.FormatUint(uint64(filter.EmployeeID), 10))
	}
	setDate(query, "start_date", filter.StartDate)
	setDate(query, "end_date", filter.EndDate)

	var records []model.Attendance
	if err := ep.transport.Do(ctx, http.MethodGet, "/api/attendance", query, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func setDate(query url.Values, key string, t *time.Time) {
	if t != nil {
		query.Set(key, t.Format(utils.DateLayout))
	}
}

func (ep *AttendanceEndpoint) ListForEmployee(ctx context.Context, employeeID uint) ([]model.Attendance, error) {
	var records []model.Attendance
	if err := ep.transport.Do(ctx, http.MethodGet, fmt.Sprintf("/api/attendance/%d", employeeID), nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (ep *AttendanceEndpoint) Summary(ctx context.Context, employeeID uint) (*hrms.AttendanceSummary, error) {
	var summary hrms.AttendanceSummary
	if err := ep.transport.Do(ctx, http.MethodGet, fmt.Sprintf("/api/attendance/%d/summary", employeeID), nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

type DashboardEndpoint struct {
	transport *Transport
}

func (ep *DashboardEndpoint) Summary(ctx context.Context) (*hrms.DashboardSummary, error) {
	var summary hrms.DashboardSummary
	if err := ep.transport.Do(ctx, http.MethodGet, "/api/dashboard/summary", nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
