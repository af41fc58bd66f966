package repositories

import (
	"context"

	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
)

// TeamRepository defines read operations over team reference data.
type TeamRepository interface {
	// FindTeamByID retrieves a team by ID.
	FindTeamByID(ctx context.Context, teamID string) (*domain.Team, error)

	// FindTeams retrieves all teams ordered by name.
	FindTeams(ctx context.Context) ([]domain.Team, error)
}

// RoleRepository defines read operations over role reference data.
type RoleRepository interface {
	// FindRoleByID retrieves a role by ID.
	FindRoleByID(ctx context.Context, roleID int) (*domain.Role, error)

	// FindRoles retrieves all roles ordered by ID.
	FindRoles(ctx context.Context) ([]domain.Role, error)
}
