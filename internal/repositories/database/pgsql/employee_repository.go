package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vivabem/wellbeing_tracker_app/internal/apperrors"
	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	portsrepo "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/repositories"
	"github.com/vivabem/wellbeing_tracker_app/internal/models"
	"github.com/vivabem/wellbeing_tracker_app/internal/utils/mapping"
)

type PgxEmployeeRepository struct {
	BaseRepository
	db querier
}

// newPgxEmployeeRepository creates a new instance of PgxEmployeeRepository
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryWithTx {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
		db:             pool,
	}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryWithTx
var _ portsrepo.EmployeeRepositoryWithTx = (*PgxEmployeeRepository)(nil)

const (
	selectEmployeeFields = `
		employee_id, name, email, credential, hire_date, team_id, role_id
	`

	insertEmployeeQuery = `
		INSERT INTO employees (employee_id, name, email, credential, hire_date, team_id, role_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	findEmployeeByIDQuery = `
		SELECT ` + selectEmployeeFields + `
		FROM employees
		WHERE employee_id = $1;
	`

	findEmployeeByEmailQuery = `
		SELECT ` + selectEmployeeFields + `
		FROM employees
		WHERE email = $1;
	`

	findEmployeesQuery = `
		SELECT ` + selectEmployeeFields + `
		FROM employees
		ORDER BY name;
	`

	updateEmployeeQuery = `
		UPDATE employees
		SET name = $1, email = $2, credential = $3, hire_date = $4, team_id = $5, role_id = $6
		WHERE employee_id = $7;
	`

	deleteEmployeeQuery = `
		DELETE FROM employees
		WHERE employee_id = $1;
	`
)

// scanEmployee scans an employee row in select field order.
func scanEmployee(row pgx.Row) (*models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.Name,
		&m.Email,
		&m.Credential,
		&m.HireDate,
		&m.TeamID,
		&m.RoleID,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	cmdTag, err := r.db.Exec(ctx, insertEmployeeQuery,
		m.EmployeeID,
		m.Name,
		m.Email,
		m.Credential,
		m.HireDate,
		m.TeamID,
		m.RoleID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: employee with email %s already exists", apperrors.ErrDuplicate, m.Email)
		}
		return writeError("failed to save employee", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: employee row was not written", apperrors.ErrPersistence)
	}
	return nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	m, err := scanEmployee(r.db.QueryRow(ctx, findEmployeeByIDQuery, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}

	d := mapping.ToDomainEmployee(*m)
	return &d, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	m, err := scanEmployee(r.db.QueryRow(ctx, findEmployeeByEmailQuery, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by email: %w", err)
	}

	d := mapping.ToDomainEmployee(*m)
	return &d, nil
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.Query(ctx, findEmployeesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	modelEmployees := []models.Employee{}
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		modelEmployees = append(modelEmployees, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", rows.Err())
	}

	return mapping.ToDomainEmployeeSlice(modelEmployees), nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	cmdTag, err := r.db.Exec(ctx, updateEmployeeQuery,
		m.Name,
		m.Email,
		m.Credential,
		m.HireDate,
		m.TeamID,
		m.RoleID,
		m.EmployeeID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: employee with email %s already exists", apperrors.ErrDuplicate, m.Email)
		}
		return writeError("failed to update employee", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	cmdTag, err := r.db.Exec(ctx, deleteEmployeeQuery, employeeID)
	if err != nil {
		return writeError("failed to delete employee", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// WithTx returns a repository whose operations run inside the given transaction
func (r *PgxEmployeeRepository) WithTx(tx pgx.Tx) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{
		BaseRepository: r.BaseRepository,
		db:             tx,
	}
}
