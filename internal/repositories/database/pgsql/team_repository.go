package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vivabem/wellbeing_tracker_app/internal/apperrors"
	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	portsrepo "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/repositories"
	"github.com/vivabem/wellbeing_tracker_app/internal/models"
	"github.com/vivabem/wellbeing_tracker_app/internal/utils/mapping"
)

type PgxTeamRepository struct {
	db *pgxpool.Pool
}

// newPgxTeamRepository creates a new instance of PgxTeamRepository
func newPgxTeamRepository(pool *pgxpool.Pool) portsrepo.TeamRepository {
	return &PgxTeamRepository{db: pool}
}

// Ensure PgxTeamRepository implements portsrepo.TeamRepository
var _ portsrepo.TeamRepository = (*PgxTeamRepository)(nil)

const (
	findTeamByIDQuery = `
		SELECT team_id, name, code, sector
		FROM teams
		WHERE team_id = $1;
	`

	findTeamsQuery = `
		SELECT team_id, name, code, sector
		FROM teams
		ORDER BY name;
	`
)

func (r *PgxTeamRepository) FindTeamByID(ctx context.Context, teamID string) (*domain.Team, error) {
	var m models.Team
	err := r.db.QueryRow(ctx, findTeamByIDQuery, teamID).Scan(&m.TeamID, &m.Name, &m.Code, &m.Sector)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find team by ID %s: %w", teamID, err)
	}

	d := mapping.ToDomainTeam(m)
	return &d, nil
}

func (r *PgxTeamRepository) FindTeams(ctx context.Context) ([]domain.Team, error) {
	rows, err := r.db.Query(ctx, findTeamsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	modelTeams := []models.Team{}
	for rows.Next() {
		var m models.Team
		if err := rows.Scan(&m.TeamID, &m.Name, &m.Code, &m.Sector); err != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", err)
		}
		modelTeams = append(modelTeams, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating team rows: %w", rows.Err())
	}

	return mapping.ToDomainTeamSlice(modelTeams), nil
}
