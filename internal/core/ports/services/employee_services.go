package services

import (
	"context"

	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	"github.com/vivabem/wellbeing_tracker_app/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee data
type EmployeeReaderSvc interface {
	// GetEmployeeByID retrieves an employee by ID.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// GetEmployeeByEmail retrieves an employee by email.
	GetEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error)

	// ListEmployees retrieves all employees.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employee data
type EmployeeWriterSvc interface {
	// RegisterEmployee creates a new employee on behalf of actorID.
	// Only HR actors may register; email must be unique.
	RegisterEmployee(ctx context.Context, req dto.RegisterEmployeeRequest, actorID string) (*domain.Employee, error)

	// UpdateEmployee updates an existing employee. The email uniqueness
	// check excludes the employee's own row.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
}

// EmployeeLifecycleSvc defines employee removal.
type EmployeeLifecycleSvc interface {
	// DeleteEmployee removes the employee and all dependent mood entries and
	// favorite links in one transaction.
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// EmployeeAuthSvc defines login.
type EmployeeAuthSvc interface {
	// Authenticate returns the employee matching email and credential, or
	// ErrUnauthorized on any mismatch.
	Authenticate(ctx context.Context, email, credential string) (*domain.Employee, error)
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
	EmployeeLifecycleSvc
	EmployeeAuthSvc
}
