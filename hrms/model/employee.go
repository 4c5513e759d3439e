package model

import "time"

// Employee is a staff member. Code is the human-assigned identifier exposed as
// employee_id; ID is the surrogate key that attendance rows reference.
type Employee struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Code       string    `gorm:"column:employee_id;type:varchar(20);not null;uniqueIndex:idx_employees_employee_id" json:"employee_id"`
	FullName   string    `gorm:"column:full_name;type:varchar(100);not null" json:"full_name"`
	Email      string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_employees_email" json:"email"`
	Department string    `gorm:"column:department;type:varchar(100);not null" json:"department"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;autoCreateTime;<-:create" json:"created_at"`
}

func (Employee) TableName() string {
	return "employees"
}
