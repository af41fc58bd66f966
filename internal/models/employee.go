package models

import "time"

// Employee is the database representation of an employee row.
type Employee struct {
	EmployeeID string    `json:"employeeID" db:"employee_id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Credential string    `json:"-" db:"credential"`
	HireDate   time.Time `json:"hireDate" db:"hire_date"`
	TeamID     string    `json:"teamID" db:"team_id"`
	RoleID     int       `json:"roleID" db:"role_id"`
}
