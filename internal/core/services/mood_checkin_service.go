package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vivabem/wellbeing_tracker_app/internal/apperrors"
	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	portsrepo "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/services"
	"github.com/vivabem/wellbeing_tracker_app/internal/dto"
	"github.com/vivabem/wellbeing_tracker_app/internal/middleware"
)

const checkinDateLayout = "2006-01-02"

// MoodCheckinService handles business logic for the daily mood questionnaire:
// the one-entry-per-employee-per-day rule, the permission-gated history reads
// and the team-scoped dashboard.
type MoodCheckinService struct {
	moodRepo      portsrepo.MoodEntryRepositoryWithTx
	reportingRepo portsrepo.ReportingRepository
	employeeRepo  portsrepo.EmployeeReader
	access        portssvc.AccessControlSvc
	now           func() time.Time
}

// NewMoodCheckinService creates a new MoodCheckinService.
func NewMoodCheckinService(
	moodRepo portsrepo.MoodEntryRepositoryWithTx,
	reportingRepo portsrepo.ReportingRepository,
	employeeRepo portsrepo.EmployeeReader,
	access portssvc.AccessControlSvc,
) *MoodCheckinService {
	return &MoodCheckinService{
		moodRepo:      moodRepo,
		reportingRepo: reportingRepo,
		employeeRepo:  employeeRepo,
		access:        access,
		now:           time.Now,
	}
}

// Ensure MoodCheckinService implements the portssvc.MoodCheckinSvcFacade interface
var _ portssvc.MoodCheckinSvcFacade = (*MoodCheckinService)(nil)

// SubmitCheckin persists a new mood entry after enforcing the daily-uniqueness
// rule: the lookup by (employee, date) must come back empty before anything is
// written. The unique constraint on the table catches the race where two
// concurrent submissions both pass this check; the repository reports that
// violation as ErrDuplicate as well.
func (s *MoodCheckinService) SubmitCheckin(ctx context.Context, req dto.SubmitCheckinRequest) (*domain.MoodEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	checkinDate, err := time.Parse(checkinDateLayout, req.CheckinDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid checkin date %q", apperrors.ErrValidation, req.CheckinDate)
	}
	if today := s.today(); checkinDate.After(today) {
		logger.Warn("Checkin rejected: date is in the future", slog.String("checkin_date", req.CheckinDate))
		return nil, fmt.Errorf("%w: checkin date cannot be in the future", apperrors.ErrValidation)
	}

	existing, err := s.moodRepo.FindEntryByEmployeeAndDate(ctx, req.EmployeeID, checkinDate)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for existing checkin", slog.String("error", err.Error()), slog.String("employee_id", req.EmployeeID))
		return nil, fmt.Errorf("failed to check for existing checkin: %w", err)
	}
	if existing != nil {
		logger.Warn("Checkin rejected: entry already exists for this date",
			slog.String("employee_id", req.EmployeeID), slog.String("checkin_date", req.CheckinDate))
		return nil, fmt.Errorf("%w: checkin already registered for %s", apperrors.ErrDuplicate, req.CheckinDate)
	}

	entry := domain.MoodEntry{
		EntryID:            uuid.NewString(),
		EmployeeID:         req.EmployeeID,
		CheckinDate:        checkinDate,
		EnergyLevel:        req.EnergyLevel,
		Feeling:            req.Feeling,
		DemandVolume:       req.DemandVolume,
		Blockers:           req.Blockers,
		WorkLifeDisconnect: req.WorkLifeDisconnect,
		ConnectionLevel:    req.ConnectionLevel,
		InteractionQuality: req.InteractionQuality,
		SleepQuality:       req.SleepQuality,
		PauseStatus:        req.PauseStatus,
		SmallWin:           req.SmallWin,
	}

	if err := s.moodRepo.SaveEntry(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the race against a concurrent submission for the same day.
			logger.Warn("Checkin rejected by storage uniqueness backstop",
				slog.String("employee_id", req.EmployeeID), slog.String("checkin_date", req.CheckinDate))
			return nil, fmt.Errorf("%w: checkin already registered for %s", apperrors.ErrDuplicate, req.CheckinDate)
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Checkin rejected: employee does not exist", slog.String("employee_id", req.EmployeeID))
			return nil, fmt.Errorf("%w: employee %s does not exist", apperrors.ErrNotFound, req.EmployeeID)
		}
		logger.Error("Failed to save checkin", slog.String("error", err.Error()), slog.String("employee_id", req.EmployeeID))
		return nil, fmt.Errorf("failed to save checkin: %w", err)
	}

	logger.Info("Checkin registered", slog.String("entry_id", entry.EntryID), slog.String("employee_id", entry.EmployeeID))
	return &entry, nil
}

// GetRawHistory returns every stored checkin with employee identity, newest
// first. Only HR actors may read it; the denial happens before mood storage
// is touched.
func (s *MoodCheckinService) GetRawHistory(ctx context.Context, actorID string) ([]domain.MoodEntry, error) {
	if err := s.authorizeHistoryAccess(ctx, actorID); err != nil {
		return nil, err
	}

	entries, err := s.moodRepo.FindAllEntries(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list checkin history", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list checkin history: %w", err)
	}
	if entries == nil {
		entries = []domain.MoodEntry{}
	}
	return entries, nil
}

// GetAnonymizedHistory returns the checkin history with employee identity
// stripped, behind the same permission check as GetRawHistory.
func (s *MoodCheckinService) GetAnonymizedHistory(ctx context.Context, actorID string) ([]domain.AnonymousMoodEntry, error) {
	entries, err := s.GetRawHistory(ctx, actorID)
	if err != nil {
		return nil, err
	}

	anonymized := make([]domain.AnonymousMoodEntry, len(entries))
	for i, entry := range entries {
		anonymized[i] = entry.Anonymize()
	}
	return anonymized, nil
}

// GetTeamDashboard computes per-team averages and filters them to the teams
// visible to the actor. An empty visible result is reported as ErrNotFound,
// not as a silent empty list.
func (s *MoodCheckinService) GetTeamDashboard(ctx context.Context, actorID string) ([]domain.TeamMoodReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.employeeRepo.FindEmployeeByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Dashboard request from unknown actor", slog.String("actor_id", actorID))
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to resolve dashboard actor", slog.String("error", err.Error()), slog.String("actor_id", actorID))
		return nil, fmt.Errorf("failed to resolve actor: %w", err)
	}

	if !s.access.CanViewDashboard(actor.RoleID) {
		logger.Warn("Dashboard access denied", slog.String("actor_id", actorID), slog.Int("role_id", actor.RoleID))
		return nil, fmt.Errorf("%w: only managers and HR may view the dashboard", apperrors.ErrForbidden)
	}

	reports, err := s.reportingRepo.GetTeamMoodAverages(ctx)
	if err != nil {
		logger.Error("Failed to compute team mood averages", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to compute team mood averages: %w", err)
	}

	scope, ok := s.access.VisibleTeamScope(actor.RoleID, actor.TeamID)
	if !ok {
		return nil, fmt.Errorf("%w: no dashboard visibility for role", apperrors.ErrForbidden)
	}

	visible := reports
	if !scope.AllTeams {
		visible = make([]domain.TeamMoodReport, 0, len(reports))
		for _, report := range reports {
			if report.TeamID == scope.TeamID {
				visible = append(visible, report)
			}
		}
	}

	if len(visible) == 0 {
		logger.Info("Dashboard empty for actor", slog.String("actor_id", actorID))
		return nil, fmt.Errorf("%w: no dashboard data for the visible teams", apperrors.ErrNotFound)
	}

	return visible, nil
}

// authorizeHistoryAccess resolves the actor and checks the raw-history
// permission. Unknown actors are denied the same way as non-HR actors.
func (s *MoodCheckinService) authorizeHistoryAccess(ctx context.Context, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.employeeRepo.FindEmployeeByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("History request from unknown actor", slog.String("actor_id", actorID))
			return fmt.Errorf("%w: only HR may view the checkin history", apperrors.ErrForbidden)
		}
		logger.Error("Failed to resolve history actor", slog.String("error", err.Error()), slog.String("actor_id", actorID))
		return fmt.Errorf("failed to resolve actor: %w", err)
	}

	if !s.access.CanViewRawHistory(actor.RoleID) {
		logger.Warn("History access denied", slog.String("actor_id", actorID), slog.Int("role_id", actor.RoleID))
		return fmt.Errorf("%w: only HR may view the checkin history", apperrors.ErrForbidden)
	}
	return nil
}

// today truncates the clock to a calendar day so a same-day checkin with a
// later wall-clock time is not mistaken for a future date.
func (s *MoodCheckinService) today() time.Time {
	year, month, day := s.now().UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
