package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vivabem/wellbeing_tracker_app/internal/apperrors"
	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	portsrepo "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/repositories"
	"github.com/vivabem/wellbeing_tracker_app/internal/models"
	"github.com/vivabem/wellbeing_tracker_app/internal/utils/mapping"
)

type PgxMoodEntryRepository struct {
	BaseRepository
	db querier
}

// newPgxMoodEntryRepository creates a new instance of PgxMoodEntryRepository
func newPgxMoodEntryRepository(pool *pgxpool.Pool) portsrepo.MoodEntryRepositoryWithTx {
	return &PgxMoodEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
		db:             pool,
	}
}

// Ensure PgxMoodEntryRepository implements portsrepo.MoodEntryRepositoryWithTx
var _ portsrepo.MoodEntryRepositoryWithTx = (*PgxMoodEntryRepository)(nil)

const (
	selectMoodEntryFields = `
		entry_id, employee_id, checkin_date, energy_level, feeling,
		demand_volume, blockers, work_life_disconnect, connection_level,
		interaction_quality, sleep_quality, pause_status, small_win
	`

	insertMoodEntryQuery = `
		INSERT INTO mood_entries (
			entry_id, employee_id, checkin_date, energy_level, feeling,
			demand_volume, blockers, work_life_disconnect, connection_level,
			interaction_quality, sleep_quality, pause_status, small_win
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`

	findMoodEntryByEmployeeAndDateQuery = `
		SELECT ` + selectMoodEntryFields + `
		FROM mood_entries
		WHERE employee_id = $1 AND checkin_date = $2;
	`

	findAllMoodEntriesQuery = `
		SELECT ` + selectMoodEntryFields + `
		FROM mood_entries
		ORDER BY checkin_date DESC, entry_id;
	`

	deleteMoodEntriesByEmployeeQuery = `
		DELETE FROM mood_entries
		WHERE employee_id = $1;
	`
)

// scanMoodEntry scans a mood entry row in select field order.
func scanMoodEntry(row pgx.Row) (*models.MoodEntry, error) {
	var m models.MoodEntry
	err := row.Scan(
		&m.EntryID,
		&m.EmployeeID,
		&m.CheckinDate,
		&m.EnergyLevel,
		&m.Feeling,
		&m.DemandVolume,
		&m.Blockers,
		&m.WorkLifeDisconnect,
		&m.ConnectionLevel,
		&m.InteractionQuality,
		&m.SleepQuality,
		&m.PauseStatus,
		&m.SmallWin,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxMoodEntryRepository) SaveEntry(ctx context.Context, entry domain.MoodEntry) error {
	m := mapping.ToModelMoodEntry(entry)
	cmdTag, err := r.db.Exec(ctx, insertMoodEntryQuery,
		m.EntryID,
		m.EmployeeID,
		m.CheckinDate,
		m.EnergyLevel,
		m.Feeling,
		m.DemandVolume,
		m.Blockers,
		m.WorkLifeDisconnect,
		m.ConnectionLevel,
		m.InteractionQuality,
		m.SleepQuality,
		m.PauseStatus,
		m.SmallWin,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: checkin already recorded for this day", apperrors.ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: employee %s does not exist", apperrors.ErrNotFound, m.EmployeeID)
		}
		return writeError("failed to save mood entry", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: mood entry row was not written", apperrors.ErrPersistence)
	}
	return nil
}

func (r *PgxMoodEntryRepository) FindEntryByEmployeeAndDate(ctx context.Context, employeeID string, checkinDate time.Time) (*domain.MoodEntry, error) {
	m, err := scanMoodEntry(r.db.QueryRow(ctx, findMoodEntryByEmployeeAndDateQuery, employeeID, checkinDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find mood entry for employee %s: %w", employeeID, err)
	}

	d := mapping.ToDomainMoodEntry(*m)
	return &d, nil
}

func (r *PgxMoodEntryRepository) FindAllEntries(ctx context.Context) ([]domain.MoodEntry, error) {
	rows, err := r.db.Query(ctx, findAllMoodEntriesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query mood entries: %w", err)
	}
	defer rows.Close()

	modelEntries := []models.MoodEntry{}
	for rows.Next() {
		m, err := scanMoodEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mood entry row: %w", err)
		}
		modelEntries = append(modelEntries, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating mood entry rows: %w", rows.Err())
	}

	return mapping.ToDomainMoodEntrySlice(modelEntries), nil
}

func (r *PgxMoodEntryRepository) DeleteEntriesByEmployee(ctx context.Context, employeeID string) error {
	if _, err := r.db.Exec(ctx, deleteMoodEntriesByEmployeeQuery, employeeID); err != nil {
		return writeError("failed to delete mood entries for employee "+employeeID, err)
	}
	return nil
}

// WithTx returns a repository whose operations run inside the given transaction
func (r *PgxMoodEntryRepository) WithTx(tx pgx.Tx) portsrepo.MoodEntryRepositoryFacade {
	return &PgxMoodEntryRepository{
		BaseRepository: r.BaseRepository,
		db:             tx,
	}
}
