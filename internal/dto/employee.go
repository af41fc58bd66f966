package dto

import (
	"time"

	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
)

// RegisterEmployeeRequest defines the data required to register a new employee.
// Dates travel as plain calendar days; the service parses and checks them
// against the clock.
type RegisterEmployeeRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	HireDate string `json:"hireDate" binding:"required,datetime=2006-01-02"`
	TeamID   string `json:"teamID" binding:"required"`
	RoleID   int    `json:"roleID" binding:"required"`
}

// UpdateEmployeeRequest defines the data allowed for updating an employee.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateEmployeeRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password"`
	HireDate *string `json:"hireDate" binding:"omitempty,datetime=2006-01-02"`
	TeamID   *string `json:"teamID"`
	RoleID   *int    `json:"roleID"`
}

// EmployeeResponse is the outward representation of an employee.
// The stored credential never leaves the service layer.
type EmployeeResponse struct {
	EmployeeID string    `json:"employeeID"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	HireDate   time.Time `json:"hireDate"`
	TeamID     string    `json:"teamID"`
	RoleID     int       `json:"roleID"`
}

// ToEmployeeResponse converts a domain.Employee to its response DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Email:      e.Email,
		HireDate:   e.HireDate,
		TeamID:     e.TeamID,
		RoleID:     e.RoleID,
	}
}

// ListEmployeesResponse wraps the list of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToListEmployeesResponse converts a slice of domain.Employee to its response DTO.
func ToListEmployeesResponse(employees []domain.Employee) ListEmployeesResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = ToEmployeeResponse(&employees[i])
	}
	return ListEmployeesResponse{Employees: responses}
}
