package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vivabem/wellbeing_tracker_app/internal/apperrors"
	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	portsrepo "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/services"
	"github.com/vivabem/wellbeing_tracker_app/internal/dto"
	"github.com/vivabem/wellbeing_tracker_app/internal/middleware"
	"github.com/vivabem/wellbeing_tracker_app/internal/utils"
)

const hireDateLayout = "2006-01-02"

// EmployeeService handles business logic related to employees: HR-gated
// registration, email uniqueness, login, and the transactional cascade
// delete across mood entries and favorite links.
type EmployeeService struct {
	employeeRepo portsrepo.EmployeeRepositoryWithTx
	moodRepo     portsrepo.MoodEntryRepositoryWithTx
	resourceRepo portsrepo.ResourceRepositoryWithTx
	access       portssvc.AccessControlSvc
	now          func() time.Time
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(
	employeeRepo portsrepo.EmployeeRepositoryWithTx,
	moodRepo portsrepo.MoodEntryRepositoryWithTx,
	resourceRepo portsrepo.ResourceRepositoryWithTx,
	access portssvc.AccessControlSvc,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		moodRepo:     moodRepo,
		resourceRepo: resourceRepo,
		access:       access,
		now:          time.Now,
	}
}

// Ensure EmployeeService implements the portssvc.EmployeeSvcFacade interface
var _ portssvc.EmployeeSvcFacade = (*EmployeeService)(nil)

// RegisterEmployee creates a new employee on behalf of actorID. Only HR
// actors may register, and the email must not collide with any existing
// employee. A write the store does not acknowledge surfaces as
// ErrPersistence, distinct from the uniqueness failure.
func (s *EmployeeService) RegisterEmployee(ctx context.Context, req dto.RegisterEmployeeRequest, actorID string) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.employeeRepo.FindEmployeeByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Registration attempted by unknown actor", slog.String("actor_id", actorID))
			return nil, fmt.Errorf("%w: only HR may register employees", apperrors.ErrForbidden)
		}
		logger.Error("Failed to resolve registering actor", slog.String("error", err.Error()), slog.String("actor_id", actorID))
		return nil, fmt.Errorf("failed to resolve actor: %w", err)
	}
	if !s.access.CanRegisterEmployee(actor.RoleID) {
		logger.Warn("Registration denied", slog.String("actor_id", actorID), slog.Int("role_id", actor.RoleID))
		return nil, fmt.Errorf("%w: only HR may register employees", apperrors.ErrForbidden)
	}

	existing, err := s.employeeRepo.FindEmployeeByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check email uniqueness", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing != nil {
		logger.Warn("Registration rejected: email already in use", slog.String("email", req.Email))
		return nil, fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, req.Email)
	}

	hireDate, err := time.Parse(hireDateLayout, req.HireDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hire date %q", apperrors.ErrValidation, req.HireDate)
	}
	if hireDate.After(s.now()) {
		return nil, fmt.Errorf("%w: hire date cannot be in the future", apperrors.ErrValidation)
	}

	employee := domain.Employee{
		EmployeeID: uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Credential: req.Password,
		HireDate:   hireDate,
		TeamID:     req.TeamID,
		RoleID:     req.RoleID,
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, req.Email)
		}
		if errors.Is(err, apperrors.ErrPersistence) {
			logger.Error("Store did not acknowledge the employee write", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: employee was not saved", apperrors.ErrPersistence)
		}
		logger.Error("Failed to save employee", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	logger.Info("Employee registered", slog.String("employee_id", employee.EmployeeID), slog.String("registered_by", actorID))
	return &employee, nil
}

// Authenticate returns the employee whose email and credential match exactly.
// The credential comparison happens in exactly one place (utils.CompareCredential)
// so the storage scheme can change without touching callers.
func (s *EmployeeService) Authenticate(ctx context.Context, email, credential string) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employee, err := s.employeeRepo.FindEmployeeByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to look up employee for login", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up employee for login: %w", err)
	}

	if !utils.CompareCredential(credential, employee.Credential) {
		logger.Warn("Login rejected: credential mismatch", slog.String("employee_id", employee.EmployeeID))
		return nil, apperrors.ErrUnauthorized
	}

	logger.Info("Employee authenticated", slog.String("employee_id", employee.EmployeeID))
	return employee, nil
}

// GetEmployeeByID retrieves an employee by ID.
func (s *EmployeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find employee by ID", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		}
		return nil, err
	}
	return employee, nil
}

// GetEmployeeByEmail retrieves an employee by email.
func (s *EmployeeService) GetEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find employee by email", slog.String("error", err.Error()))
		}
		return nil, err
	}
	return employee, nil
}

// ListEmployees retrieves all employees.
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list employees", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

// UpdateEmployee updates an existing employee. The email collision check
// excludes the employee's own row, so re-saving an unchanged email succeeds.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != "" {
		other, err := s.employeeRepo.FindEmployeeByEmail(ctx, *req.Email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to check email uniqueness for update", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if other != nil && other.EmployeeID != employeeID {
			logger.Warn("Update rejected: email belongs to another employee", slog.String("email", *req.Email))
			return nil, fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, *req.Email)
		}
		employee.Email = *req.Email
	}
	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Password != nil && *req.Password != "" {
		employee.Credential = *req.Password
	}
	if req.HireDate != nil {
		hireDate, err := time.Parse(hireDateLayout, *req.HireDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid hire date %q", apperrors.ErrValidation, *req.HireDate)
		}
		employee.HireDate = hireDate
	}
	if req.TeamID != nil {
		employee.TeamID = *req.TeamID
	}
	if req.RoleID != nil {
		employee.RoleID = *req.RoleID
	}

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		logger.Error("Failed to update employee", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	logger.Info("Employee updated", slog.String("employee_id", employeeID))
	return employee, nil
}

// DeleteEmployee removes the employee and everything they own. The three
// deletes run in a fixed order (mood entries, favorite links, employee row)
// inside ONE transaction, so a failure in any step leaves nothing purged.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.employeeRepo.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin cascade delete transaction", slog.String("error", err.Error()))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// No-op when the transaction committed.
		_ = s.employeeRepo.Rollback(ctx, tx)
	}()

	moodTx := s.moodRepo.WithTx(tx)
	resourceTx := s.resourceRepo.WithTx(tx)
	employeeTx := s.employeeRepo.WithTx(tx)

	if err := moodTx.DeleteEntriesByEmployee(ctx, employeeID); err != nil {
		logger.Error("Failed to delete employee checkins", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return fmt.Errorf("failed to delete employee checkins: %w", err)
	}
	if err := resourceTx.DeleteFavoritesByEmployee(ctx, employeeID); err != nil {
		logger.Error("Failed to delete employee favorites", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return fmt.Errorf("failed to delete employee favorites: %w", err)
	}
	if err := employeeTx.DeleteEmployee(ctx, employeeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Cascade delete found no employee row", slog.String("employee_id", employeeID))
			return apperrors.ErrNotFound
		}
		logger.Error("Failed to delete employee", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if err := s.employeeRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit cascade delete", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return fmt.Errorf("failed to commit cascade delete: %w", err)
	}

	logger.Info("Employee deleted with dependents", slog.String("employee_id", employeeID))
	return nil
}
