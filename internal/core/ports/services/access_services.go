package services

import "github.com/vivabem/wellbeing_tracker_app/internal/core/domain"

// AccessControlSvc decides what an actor's role permits. Implementations
// are pure: no storage access, no side effects. Denial is expressed through
// the returned values; callers translate it into apperrors.ErrForbidden.
type AccessControlSvc interface {
	// CanViewRawHistory reports whether the role may read identified or
	// anonymized checkin history. HR only.
	CanViewRawHistory(roleID int) bool

	// CanViewDashboard reports whether the role may read the team dashboard.
	// HR and manager tiers.
	CanViewDashboard(roleID int) bool

	// CanRegisterEmployee reports whether the role may create employees. HR only.
	CanRegisterEmployee(roleID int) bool

	// VisibleTeamScope returns the teams the role may see on the dashboard:
	// all teams for HR, the actor's own team for manager tiers. The second
	// return is false when the role has no dashboard visibility at all.
	VisibleTeamScope(roleID int, actorTeamID string) (domain.TeamScope, bool)
}
