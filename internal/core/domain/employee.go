package domain

import "time"

// Employee represents a member of staff in the domain.
// Email is unique across all employees; the credential is stored as-is and
// only ever touched through utils.CompareCredential.
type Employee struct {
	EmployeeID string    `json:"employeeID"` // Primary Key (UUID)
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Credential string    `json:"-"` // never serialized
	HireDate   time.Time `json:"hireDate"`
	TeamID     string    `json:"teamID"` // FK to Team
	RoleID     int       `json:"roleID"` // FK to Role
}
