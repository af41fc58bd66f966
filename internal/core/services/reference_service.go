package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vivabem/wellbeing_tracker_app/internal/apperrors"
	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	portsrepo "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/services"
)

// TeamService exposes team reference data.
type TeamService struct {
	teamRepo portsrepo.TeamRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo portsrepo.TeamRepository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

var _ portssvc.TeamReaderSvc = (*TeamService)(nil)

// GetTeamByID retrieves a team by ID.
func (s *TeamService) GetTeamByID(ctx context.Context, teamID string) (*domain.Team, error) {
	team, err := s.teamRepo.FindTeamByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// ListTeams retrieves all teams.
func (s *TeamService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	teams, err := s.teamRepo.FindTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	if teams == nil {
		return []domain.Team{}, nil
	}
	return teams, nil
}

// RoleService exposes role reference data.
type RoleService struct {
	roleRepo portsrepo.RoleRepository
}

// NewRoleService creates a new RoleService.
func NewRoleService(roleRepo portsrepo.RoleRepository) *RoleService {
	return &RoleService{roleRepo: roleRepo}
}

var _ portssvc.RoleReaderSvc = (*RoleService)(nil)

// GetRoleByID retrieves a role by ID.
func (s *RoleService) GetRoleByID(ctx context.Context, roleID int) (*domain.Role, error) {
	role, err := s.roleRepo.FindRoleByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return role, nil
}

// ListRoles retrieves all roles.
func (s *RoleService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roleRepo.FindRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	if roles == nil {
		return []domain.Role{}, nil
	}
	return roles, nil
}
