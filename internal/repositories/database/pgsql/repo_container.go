package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository against the given pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		EmployeeRepo:  newPgxEmployeeRepository(dbPool),
		MoodRepo:      newPgxMoodEntryRepository(dbPool),
		ResourceRepo:  newPgxResourceRepository(dbPool),
		ReportingRepo: newPgxReportingRepository(dbPool),
		TeamRepo:      newPgxTeamRepository(dbPool),
		RoleRepo:      newPgxRoleRepository(dbPool),
	}
}
