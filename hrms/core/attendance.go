package core

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"hrmslite.com/hrms/hrms/model"
	"hrmslite.com/hrms/utils"
)

type AttendanceInput struct {
	EmployeeID uint
	Date       time.Time
	Status     model.AttendanceStatus
}

// AttendanceFilter narrows ListAttendance. Zero values leave a side unbounded.
type AttendanceFilter struct {
	EmployeeID uint
	StartDate  *time.Time
	EndDate    *time.Time
}

type AttendanceSummary struct {
	EmployeeID   uint   `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	TotalRecords int    `json:"total_records"`
	PresentDays  int    `json:"present_days"`
	AbsentDays   int    `json:"absent_days"`
}

// MarkAttendance records the status for (employee, date). A second call for the
// same pair overwrites the status of the existing row; id and created_at stay.
func MarkAttendance(tx *gorm.DB, input AttendanceInput) (*model.Attendance, error) {
	if !input.Status.Valid() {
		return nil, validationError("invalid attendance status %q", string(input.Status))
	}
	if input.Date.IsZero() {
		return nil, validationError("date is required")
	}
	if _, err := GetEmployee(tx, input.EmployeeID); err != nil {
		return nil, err
	}

	date := input.Date.Format(utils.DateLayout)
	row := model.Attendance{
		EmployeeID: input.EmployeeID,
		Date:       date,
		Status:     input.Status,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}}, // conflict key
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("mark attendance: %w", err)
	}

	var saved model.Attendance
	if err := tx.Where("employee_id = ? AND date = ?", input.EmployeeID, date).
		Take(&saved).Error; err != nil {
		return nil, fmt.Errorf("reload attendance: %w", err)
	}
	return &saved, nil
}

// ListAttendance returns records newest first with the owning employee attached.
func ListAttendance(tx *gorm.DB, filter AttendanceFilter) ([]model.Attendance, error) {
	query := tx.Model(&model.Attendance{}).Preload("Employee")

	if filter.EmployeeID != 0 {
		if _, err := GetEmployee(tx, filter.EmployeeID); err != nil {
			return nil, err
		}
		query = query.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate.Format(utils.DateLayout))
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate.Format(utils.DateLayout))
	}

	records := []model.Attendance{}
	if err := query.Order("date DESC").Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}

func ListEmployeeAttendance(tx *gorm.DB, employeeID uint) ([]model.Attendance, error) {
	if _, err := GetEmployee(tx, employeeID); err != nil {
		return nil, err
	}
	records := []model.Attendance{}
	if err := tx.Where("employee_id = ?", employeeID).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list attendance of employee %d: %w", employeeID, err)
	}
	return records, nil
}

// AttendanceSummaryFor counts every record of the employee, regardless of date.
func AttendanceSummaryFor(tx *gorm.DB, employeeID uint) (*AttendanceSummary, error) {
	emp, err := GetEmployee(tx, employeeID)
	if err != nil {
		return nil, err
	}

	var records []model.Attendance
	if err := tx.Where("employee_id = ?", employeeID).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("summarise attendance of employee %d: %w", employeeID, err)
	}

	summary := &AttendanceSummary{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		TotalRecords: len(records),
	}
	for _, r := range records {
		switch r.Status {
		case model.StatusPresent:
			summary.PresentDays++
		case model.StatusAbsent:
			summary.AbsentDays++
		default:
			return nil, fmt.Errorf("attendance %d has unknown status %q", r.ID, string(r.Status))
		}
	}
	return summary, nil
}
