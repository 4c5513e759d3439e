package core

import (
	"fmt"

	"gorm.io/gorm"
	"hrmslite.com/hrms/hrms/model"
)

type DashboardSummary struct {
	TotalEmployees         int64 `json:"total_employees"`
	TotalAttendanceRecords int64 `json:"total_attendance_records"`
}

func Dashboard(tx *gorm.DB) (*DashboardSummary, error) {
	var summary DashboardSummary
	if err := tx.Model(&model.Employee{}).Count(&summary.TotalEmployees).Error; err != nil {
		return nil, fmt.Errorf("count employees: %w", err)
	}
	if err := tx.Model(&model.Attendance{}).Count(&summary.TotalAttendanceRecords).Error; err != nil {
		return nil, fmt.Errorf("count attendance: %w", err)
	}
	return &summary, nil
}
