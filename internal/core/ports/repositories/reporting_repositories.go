package repositories

import (
	"context"

	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
)

// ReportingRepository exposes the aggregation query behind the dashboard.
type ReportingRepository interface {
	// GetTeamMoodAverages computes, per team, the average energy level and
	// entry count across all mood entries, ordered by average descending.
	GetTeamMoodAverages(ctx context.Context) ([]domain.TeamMoodReport, error)
}
