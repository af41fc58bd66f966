package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	portsrepo "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/repositories"
)

// --- Mock EmployeeRepository ---

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	args := m.Called(ctx, email)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockEmployeeRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// WithTx returns the mock itself; the tests only care about the calls made
// through the returned facade.
func (m *MockEmployeeRepository) WithTx(tx pgx.Tx) portsrepo.EmployeeRepositoryFacade {
	return m
}

// --- Mock MoodEntryRepository ---

type MockMoodEntryRepository struct {
	mock.Mock
}

func (m *MockMoodEntryRepository) FindEntryByEmployeeAndDate(ctx context.Context, employeeID string, checkinDate time.Time) (*domain.MoodEntry, error) {
	args := m.Called(ctx, employeeID, checkinDate)
	var entry *domain.MoodEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.MoodEntry)
	}
	return entry, args.Error(1)
}

func (m *MockMoodEntryRepository) FindAllEntries(ctx context.Context) ([]domain.MoodEntry, error) {
	args := m.Called(ctx)
	var entries []domain.MoodEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.MoodEntry)
	}
	return entries, args.Error(1)
}

func (m *MockMoodEntryRepository) SaveEntry(ctx context.Context, entry domain.MoodEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockMoodEntryRepository) DeleteEntriesByEmployee(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

func (m *MockMoodEntryRepository) WithTx(tx pgx.Tx) portsrepo.MoodEntryRepositoryFacade {
	return m
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetTeamMoodAverages(ctx context.Context) ([]domain.TeamMoodReport, error) {
	args := m.Called(ctx)
	var reports []domain.TeamMoodReport
	if args.Get(0) != nil {
		reports = args.Get(0).([]domain.TeamMoodReport)
	}
	return reports, args.Error(1)
}

// --- Mock ResourceRepository ---

type MockResourceRepository struct {
	mock.Mock
}

func (m *MockResourceRepository) FindResourceByID(ctx context.Context, resourceID string) (*domain.WellbeingResource, error) {
	args := m.Called(ctx, resourceID)
	var resource *domain.WellbeingResource
	if args.Get(0) != nil {
		resource = args.Get(0).(*domain.WellbeingResource)
	}
	return resource, args.Error(1)
}

func (m *MockResourceRepository) FindResources(ctx context.Context) ([]domain.WellbeingResource, error) {
	args := m.Called(ctx)
	var resources []domain.WellbeingResource
	if args.Get(0) != nil {
		resources = args.Get(0).([]domain.WellbeingResource)
	}
	return resources, args.Error(1)
}

func (m *MockResourceRepository) SaveResource(ctx context.Context, resource domain.WellbeingResource) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}

func (m *MockResourceRepository) UpdateResource(ctx context.Context, resource domain.WellbeingResource) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}

func (m *MockResourceRepository) DeleteResource(ctx context.Context, resourceID string) error {
	args := m.Called(ctx, resourceID)
	return args.Error(0)
}

func (m *MockResourceRepository) AddFavorite(ctx context.Context, employeeID, resourceID string) error {
	args := m.Called(ctx, employeeID, resourceID)
	return args.Error(0)
}

func (m *MockResourceRepository) RemoveFavorite(ctx context.Context, employeeID, resourceID string) error {
	args := m.Called(ctx, employeeID, resourceID)
	return args.Error(0)
}

func (m *MockResourceRepository) FindFavoritesByEmployee(ctx context.Context, employeeID string) ([]domain.WellbeingResource, error) {
	args := m.Called(ctx, employeeID)
	var resources []domain.WellbeingResource
	if args.Get(0) != nil {
		resources = args.Get(0).([]domain.WellbeingResource)
	}
	return resources, args.Error(1)
}

func (m *MockResourceRepository) DeleteFavoritesByEmployee(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

func (m *MockResourceRepository) WithTx(tx pgx.Tx) portsrepo.ResourceRepositoryFacade {
	return m
}

// --- Mock TeamRepository ---

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) FindTeamByID(ctx context.Context, teamID string) (*domain.Team, error) {
	args := m.Called(ctx, teamID)
	var team *domain.Team
	if args.Get(0) != nil {
		team = args.Get(0).(*domain.Team)
	}
	return team, args.Error(1)
}

func (m *MockTeamRepository) FindTeams(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	var teams []domain.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]domain.Team)
	}
	return teams, args.Error(1)
}

// --- Mock RoleRepository ---

type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindRoleByID(ctx context.Context, roleID int) (*domain.Role, error) {
	args := m.Called(ctx, roleID)
	var role *domain.Role
	if args.Get(0) != nil {
		role = args.Get(0).(*domain.Role)
	}
	return role, args.Error(1)
}

func (m *MockRoleRepository) FindRoles(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)
	var roles []domain.Role
	if args.Get(0) != nil {
		roles = args.Get(0).([]domain.Role)
	}
	return roles, args.Error(1)
}
