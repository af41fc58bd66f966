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

type PgxRoleRepository struct {
	db *pgxpool.Pool
}

// newPgxRoleRepository creates a new instance of PgxRoleRepository
func newPgxRoleRepository(pool *pgxpool.Pool) portsrepo.RoleRepository {
	return &PgxRoleRepository{db: pool}
}

// Ensure PgxRoleRepository implements portsrepo.RoleRepository
var _ portsrepo.RoleRepository = (*PgxRoleRepository)(nil)

const (
	findRoleByIDQuery = `
		SELECT role_id, name
		FROM roles
		WHERE role_id = $1;
	`

	findRolesQuery = `
		SELECT role_id, name
		FROM roles
		ORDER BY role_id;
	`
)

func (r *PgxRoleRepository) FindRoleByID(ctx context.Context, roleID int) (*domain.Role, error) {
	var m models.Role
	err := r.db.QueryRow(ctx, findRoleByIDQuery, roleID).Scan(&m.RoleID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find role by ID %d: %w", roleID, err)
	}

	d := mapping.ToDomainRole(m)
	return &d, nil
}

func (r *PgxRoleRepository) FindRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.db.Query(ctx, findRolesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	modelRoles := []models.Role{}
	for rows.Next() {
		var m models.Role
		if err := rows.Scan(&m.RoleID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan role row: %w", err)
		}
		modelRoles = append(modelRoles, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating role rows: %w", rows.Err())
	}

	return mapping.ToDomainRoleSlice(modelRoles), nil
}
