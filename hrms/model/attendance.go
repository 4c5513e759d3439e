package model

import (
	"fmt"
	"time"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// AttendanceStatuses lists every status in display order.
var AttendanceStatuses = []AttendanceStatus{StatusPresent, StatusAbsent}

func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	for _, status := range AttendanceStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid attendance status %q, must be one of Present, Absent", s)
}

func (s AttendanceStatus) Valid() bool {
	_, err := ParseAttendanceStatus(string(s))
	return err == nil
}

func (s AttendanceStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid attendance status %q", string(s))
	}
	return []byte(s), nil
}

func (s *AttendanceStatus) UnmarshalText(b []byte) error {
	status, err := ParseAttendanceStatus(string(b))
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// Attendance is one employee's status for one calendar day.
// Date is stored as YYYY-MM-DD so that text order is calendar order.
type Attendance struct {
	ID         uint             `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	EmployeeID uint             `gorm:"column:employee_id;not null;uniqueIndex:idx_attendance_employee_date,priority:1" json:"employee_id"`
	Date       string           `gorm:"column:date;type:varchar(10);not null;uniqueIndex:idx_attendance_employee_date,priority:2;index:idx_attendance_date" json:"date"`
	Status     AttendanceStatus `gorm:"column:status;type:varchar(10);not null" json:"status"`
	CreatedAt  time.Time        `gorm:"column:created_at;not null;autoCreateTime;<-:create" json:"created_at"`

	Employee *Employee `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE" json:"employee,omitempty"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// Models returns every table in migration order.
func Models() []interface{} {
	return []interface{}{
		&Employee{},
		&Attendance{},
	}
}
