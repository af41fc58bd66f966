package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	portsrepo "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	db *pgxpool.Pool
}

// newPgxReportingRepository creates a new instance of PgxReportingRepository
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{db: pool}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

const teamMoodAveragesQuery = `
	SELECT t.team_id, t.name, AVG(m.energy_level)::float8, COUNT(m.entry_id)
	FROM mood_entries m
	JOIN employees e ON e.employee_id = m.employee_id
	JOIN teams t ON t.team_id = e.team_id
	GROUP BY t.team_id, t.name
	ORDER BY AVG(m.energy_level) DESC, t.name;
`

// GetTeamMoodAverages aggregates mood entries per team. Teams without any
// entries produce no row.
func (r *PgxReportingRepository) GetTeamMoodAverages(ctx context.Context) ([]domain.TeamMoodReport, error) {
	rows, err := r.db.Query(ctx, teamMoodAveragesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query team mood averages: %w", err)
	}
	defer rows.Close()

	reports := []domain.TeamMoodReport{}
	for rows.Next() {
		var report domain.TeamMoodReport
		err := rows.Scan(
			&report.TeamID,
			&report.TeamName,
			&report.AverageEnergy,
			&report.CheckinCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team mood average row: %w", err)
		}
		reports = append(reports, report)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating team mood average rows: %w", rows.Err())
	}

	return reports, nil
}
