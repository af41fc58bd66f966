package services

import (
	"context"

	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	"github.com/vivabem/wellbeing_tracker_app/internal/dto"
)

// MoodCheckinWriterSvc defines the daily checkin submission.
type MoodCheckinWriterSvc interface {
	// SubmitCheckin persists a new mood entry, enforcing the one-entry-per-
	// employee-per-day rule. A second submission for the same date returns
	// ErrDuplicate and leaves the stored entry untouched.
	SubmitCheckin(ctx context.Context, req dto.SubmitCheckinRequest) (*domain.MoodEntry, error)
}

// MoodHistoryReaderSvc defines permission-gated history reads.
type MoodHistoryReaderSvc interface {
	// GetRawHistory returns every checkin with employee identity, newest
	// first. HR only; others get ErrForbidden.
	GetRawHistory(ctx context.Context, actorID string) ([]domain.MoodEntry, error)

	// GetAnonymizedHistory returns the same history with employee identity
	// stripped. Gated by the same permission as GetRawHistory.
	GetAnonymizedHistory(ctx context.Context, actorID string) ([]domain.AnonymousMoodEntry, error)
}

// MoodDashboardSvc defines the team-scoped aggregate view.
type MoodDashboardSvc interface {
	// GetTeamDashboard returns per-team mood averages visible to the actor:
	// all teams for HR, only the actor's team for manager tiers. An empty
	// visible result returns ErrNotFound.
	GetTeamDashboard(ctx context.Context, actorID string) ([]domain.TeamMoodReport, error)
}

// MoodCheckinSvcFacade combines all mood-checkin service interfaces
type MoodCheckinSvcFacade interface {
	MoodCheckinWriterSvc
	MoodHistoryReaderSvc
	MoodDashboardSvc
}
