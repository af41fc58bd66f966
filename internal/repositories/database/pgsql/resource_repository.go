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

type PgxResourceRepository struct {
	BaseRepository
	db querier
}

// newPgxResourceRepository creates a new instance of PgxResourceRepository
func newPgxResourceRepository(pool *pgxpool.Pool) portsrepo.ResourceRepositoryWithTx {
	return &PgxResourceRepository{
		BaseRepository: BaseRepository{Pool: pool},
		db:             pool,
	}
}

// Ensure PgxResourceRepository implements portsrepo.ResourceRepositoryWithTx
var _ portsrepo.ResourceRepositoryWithTx = (*PgxResourceRepository)(nil)

const (
	selectResourceFields = `resource_id, name, kind, link`

	insertResourceQuery = `
		INSERT INTO wellbeing_resources (resource_id, name, kind, link)
		VALUES ($1, $2, $3, $4);
	`

	findResourceByIDQuery = `
		SELECT ` + selectResourceFields + `
		FROM wellbeing_resources
		WHERE resource_id = $1;
	`

	findResourcesQuery = `
		SELECT ` + selectResourceFields + `
		FROM wellbeing_resources
		ORDER BY name;
	`

	updateResourceQuery = `
		UPDATE wellbeing_resources
		SET name = $1, kind = $2, link = $3
		WHERE resource_id = $4;
	`

	deleteResourceQuery = `
		DELETE FROM wellbeing_resources
		WHERE resource_id = $1;
	`

	insertFavoriteQuery = `
		INSERT INTO employee_favorite_resources (employee_id, resource_id)
		VALUES ($1, $2);
	`

	deleteFavoriteQuery = `
		DELETE FROM employee_favorite_resources
		WHERE employee_id = $1 AND resource_id = $2;
	`

	findFavoritesByEmployeeQuery = `
		SELECT r.resource_id, r.name, r.kind, r.link
		FROM wellbeing_resources r
		JOIN employee_favorite_resources f ON f.resource_id = r.resource_id
		WHERE f.employee_id = $1
		ORDER BY r.name;
	`

	deleteFavoritesByEmployeeQuery = `
		DELETE FROM employee_favorite_resources
		WHERE employee_id = $1;
	`
)

// scanResource scans a resource row in select field order.
func scanResource(row pgx.Row) (*models.WellbeingResource, error) {
	var m models.WellbeingResource
	if err := row.Scan(&m.ResourceID, &m.Name, &m.Kind, &m.Link); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxResourceRepository) SaveResource(ctx context.Context, resource domain.WellbeingResource) error {
	m := mapping.ToModelResource(resource)
	cmdTag, err := r.db.Exec(ctx, insertResourceQuery, m.ResourceID, m.Name, m.Kind, m.Link)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: resource with ID %s already exists", apperrors.ErrDuplicate, m.ResourceID)
		}
		return writeError("failed to save resource", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: resource row was not written", apperrors.ErrPersistence)
	}
	return nil
}

func (r *PgxResourceRepository) FindResourceByID(ctx context.Context, resourceID string) (*domain.WellbeingResource, error) {
	m, err := scanResource(r.db.QueryRow(ctx, findResourceByIDQuery, resourceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find resource by ID %s: %w", resourceID, err)
	}

	d := mapping.ToDomainResource(*m)
	return &d, nil
}

func (r *PgxResourceRepository) FindResources(ctx context.Context) ([]domain.WellbeingResource, error) {
	rows, err := r.db.Query(ctx, findResourcesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query resources: %w", err)
	}
	defer rows.Close()

	modelResources := []models.WellbeingResource{}
	for rows.Next() {
		m, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resource row: %w", err)
		}
		modelResources = append(modelResources, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating resource rows: %w", rows.Err())
	}

	return mapping.ToDomainResourceSlice(modelResources), nil
}

func (r *PgxResourceRepository) UpdateResource(ctx context.Context, resource domain.WellbeingResource) error {
	m := mapping.ToModelResource(resource)
	cmdTag, err := r.db.Exec(ctx, updateResourceQuery, m.Name, m.Kind, m.Link, m.ResourceID)
	if err != nil {
		return writeError("failed to update resource", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("resource not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxResourceRepository) DeleteResource(ctx context.Context, resourceID string) error {
	cmdTag, err := r.db.Exec(ctx, deleteResourceQuery, resourceID)
	if err != nil {
		return writeError("failed to delete resource", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("resource not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxResourceRepository) AddFavorite(ctx context.Context, employeeID, resourceID string) error {
	_, err := r.db.Exec(ctx, insertFavoriteQuery, employeeID, resourceID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: favorite already exists", apperrors.ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: employee or resource does not exist", apperrors.ErrNotFound)
		}
		return writeError("failed to add favorite", err)
	}
	return nil
}

func (r *PgxResourceRepository) RemoveFavorite(ctx context.Context, employeeID, resourceID string) error {
	cmdTag, err := r.db.Exec(ctx, deleteFavoriteQuery, employeeID, resourceID)
	if err != nil {
		return writeError("failed to remove favorite", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("favorite not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxResourceRepository) FindFavoritesByEmployee(ctx context.Context, employeeID string) ([]domain.WellbeingResource, error) {
	rows, err := r.db.Query(ctx, findFavoritesByEmployeeQuery, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	modelResources := []models.WellbeingResource{}
	for rows.Next() {
		m, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite row: %w", err)
		}
		modelResources = append(modelResources, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating favorite rows: %w", rows.Err())
	}

	return mapping.ToDomainResourceSlice(modelResources), nil
}

func (r *PgxResourceRepository) DeleteFavoritesByEmployee(ctx context.Context, employeeID string) error {
	if _, err := r.db.Exec(ctx, deleteFavoritesByEmployeeQuery, employeeID); err != nil {
		return writeError("failed to delete favorites for employee "+employeeID, err)
	}
	return nil
}

// WithTx returns a repository whose operations run inside the given transaction
func (r *PgxResourceRepository) WithTx(tx pgx.Tx) portsrepo.ResourceRepositoryFacade {
	return &PgxResourceRepository{
		BaseRepository: r.BaseRepository,
		db:             tx,
	}
}
