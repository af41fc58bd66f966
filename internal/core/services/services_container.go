package services

import (
	portsrepo "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/services"
	"github.com/vivabem/wellbeing_tracker_app/pkg/config"
)

// NewServiceContainer wires every service with its repository dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	accessControl := NewAccessControlService(cfg)

	return &portssvc.ServiceContainer{
		AccessControl: accessControl,
		Employee:      NewEmployeeService(repos.EmployeeRepo, repos.MoodRepo, repos.ResourceRepo, accessControl),
		Mood:          NewMoodCheckinService(repos.MoodRepo, repos.ReportingRepo, repos.EmployeeRepo, accessControl),
		Favorites:     NewFavoritesService(repos.ResourceRepo),
		Resource:      NewResourceService(repos.ResourceRepo),
		Team:          NewTeamService(repos.TeamRepo),
		Role:          NewRoleService(repos.RoleRepo),
		Token:         NewTokenService(cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer),
	}
}
