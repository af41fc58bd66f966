package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by their ID.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployeeByEmail retrieves an employee by their (unique) email.
	FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error)

	// FindEmployees retrieves all employees ordered by name.
	FindEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee updates an existing employee's details.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
}

// EmployeeLifecycleManager defines operations for removing employees.
type EmployeeLifecycleManager interface {
	// DeleteEmployee removes the employee row. Returns ErrNotFound when no
	// row was affected. Dependent rows must already be gone; the service
	// orchestrates the cascade inside one transaction.
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
	EmployeeLifecycleManager
}

// EmployeeRepositoryWithTx extends the facade with transaction capabilities
type EmployeeRepositoryWithTx interface {
	EmployeeRepositoryFacade
	TransactionManager

	// WithTx returns a facade whose operations run inside the given transaction
	WithTx(tx pgx.Tx) EmployeeRepositoryFacade
}
