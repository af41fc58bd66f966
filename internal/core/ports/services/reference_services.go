package services

import (
	"context"
	"time"

	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
)

// TeamReaderSvc exposes team reference data.
type TeamReaderSvc interface {
	// GetTeamByID retrieves a team by ID.
	GetTeamByID(ctx context.Context, teamID string) (*domain.Team, error)

	// ListTeams retrieves all teams.
	ListTeams(ctx context.Context) ([]domain.Team, error)
}

// RoleReaderSvc exposes role reference data.
type RoleReaderSvc interface {
	// GetRoleByID retrieves a role by ID.
	GetRoleByID(ctx context.Context, roleID int) (*domain.Role, error)

	// ListRoles retrieves all roles.
	ListRoles(ctx context.Context) ([]domain.Role, error)
}

// TokenSvc issues access tokens for authenticated employees.
type TokenSvc interface {
	// GenerateAccessToken creates a signed JWT whose subject is the employee
	// ID, returning the token and its expiry time.
	GenerateAccessToken(ctx context.Context, employee *domain.Employee) (string, time.Time, error)
}
