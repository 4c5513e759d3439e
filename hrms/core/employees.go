package core

import (
	"fmt"

	"gorm.io/gorm"
	store "hrmslite.com/hrms/core"
	"hrmslite.com/hrms/hrms/model"
)

type EmployeeInput struct {
	EmployeeID string `json:"employee_id" binding:"required,min=1,max=20"`
	FullName   string `json:"full_name" binding:"required,min=1,max=100"`
	Email      string `json:"email" binding:"required,email,max=255"`
	Department string `json:"department" binding:"required,min=1,max=100"`
}

// CreateEmployee inserts a new employee. The employee code is checked before the
// email, and a duplicate that only the store catches is reported the same way.
func CreateEmployee(tx *gorm.DB, input EmployeeInput) (*model.Employee, error) {
	exists, err := employeeExistsWhere(tx, "employee_id = ?", input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflictError("Employee ID '%s' already exists", input.EmployeeID)
	}

	exists, err = employeeExistsWhere(tx, "email = ?", input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflictError("Email '%s' is already registered", input.Email)
	}

	emp := model.Employee{
		Code:       input.EmployeeID,
		FullName:   input.FullName,
		Email:      input.Email,
		Department: input.Department,
	}
	if err := tx.Create(&emp).Error; err != nil {
		return nil, translateCreateError(err)
	}
	return &emp, nil
}

func translateCreateError(err error) error {
	if store.IsDuplicateKey(err) {
		return conflictError("Employee with this ID or email already exists")
	}
	return fmt.Errorf("create employee: %w", err)
}

func ListEmployees(tx *gorm.DB) ([]model.Employee, error) {
	employees := []model.Employee{}
	if err := tx.Order("id ASC").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func GetEmployee(tx *gorm.DB, id uint) (*model.Employee, error) {
	var employees []model.Employee
	if err := tx.Where("id = ?", id).Limit(1).Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("get employee %d: %w", id, err)
	}
	if len(employees) == 0 {
		return nil, employeeNotFound(id)
	}
	return &employees[0], nil
}

// DeleteEmployee removes the employee and every attendance record it owns.
func DeleteEmployee(tx *gorm.DB, id uint) error {
	if _, err := GetEmployee(tx, id); err != nil {
		return err
	}
	if err := tx.Where("employee_id = ?", id).Delete(&model.Attendance{}).Error; err != nil {
		return fmt.Errorf("delete attendance of employee %d: %w", id, err)
	}
	if err := tx.Delete(&model.Employee{}, id).Error; err != nil {
		return fmt.Errorf("delete employee %d: %w", id, err)
	}
	return nil
}

func employeeExistsWhere(tx *gorm.DB, query string, args ...interface{}) (bool, error) {
	var count int64
	if err := tx.Model(&model.Employee{}).Where(query, args...).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check employee: %w", err)
	}
	return count > 0, nil
}
