package services

import (
	"slices"

	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	portssvc "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/services"
	"github.com/vivabem/wellbeing_tracker_app/pkg/config"
)

// AccessControlService decides what an actor's role may do. It is pure:
// the role IDs it compares against are injected from configuration at
// construction time and it never touches storage.
type AccessControlService struct {
	hrRoleID       int
	managerRoleIDs []int
}

// NewAccessControlService creates an AccessControlService from the configured role IDs.
func NewAccessControlService(cfg *config.Config) portssvc.AccessControlSvc {
	return &AccessControlService{
		hrRoleID:       cfg.HRRoleID,
		managerRoleIDs: cfg.ManagerRoleIDs,
	}
}

// Ensure AccessControlService implements the portssvc.AccessControlSvc interface
var _ portssvc.AccessControlSvc = (*AccessControlService)(nil)

// CanViewRawHistory reports whether the role may read checkin history. HR only.
func (s *AccessControlService) CanViewRawHistory(roleID int) bool {
	return roleID == s.hrRoleID
}

// CanViewDashboard reports whether the role may read the team dashboard.
func (s *AccessControlService) CanViewDashboard(roleID int) bool {
	return roleID == s.hrRoleID || s.isManager(roleID)
}

// CanRegisterEmployee reports whether the role may create employees. HR only.
func (s *AccessControlService) CanRegisterEmployee(roleID int) bool {
	return roleID == s.hrRoleID
}

// VisibleTeamScope returns the dashboard visibility for the role: every team
// for HR, the actor's own team for manager tiers, nothing otherwise.
func (s *AccessControlService) VisibleTeamScope(roleID int, actorTeamID string) (domain.TeamScope, bool) {
	switch {
	case roleID == s.hrRoleID:
		return domain.TeamScope{AllTeams: true}, true
	case s.isManager(roleID):
		return domain.TeamScope{TeamID: actorTeamID}, true
	default:
		return domain.TeamScope{}, false
	}
}

func (s *AccessControlService) isManager(roleID int) bool {
	return slices.Contains(s.managerRoleIDs, roleID)
}
