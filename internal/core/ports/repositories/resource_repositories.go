package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
)

// ResourceReader defines read operations for well-being resources
type ResourceReader interface {
	// FindResourceByID retrieves a resource by ID.
	FindResourceByID(ctx context.Context, resourceID string) (*domain.WellbeingResource, error)

	// FindResources retrieves all resources ordered by name.
	FindResources(ctx context.Context) ([]domain.WellbeingResource, error)
}

// ResourceWriter defines write operations for well-being resources
type ResourceWriter interface {
	// SaveResource persists a new resource.
	SaveResource(ctx context.Context, resource domain.WellbeingResource) error

	// UpdateResource updates an existing resource.
	UpdateResource(ctx context.Context, resource domain.WellbeingResource) error

	// DeleteResource removes a resource. Returns ErrNotFound when no row was affected.
	DeleteResource(ctx context.Context, resourceID string) error
}

// FavoriteLinkManager defines operations on the employee<->resource association.
type FavoriteLinkManager interface {
	// AddFavorite inserts the (employeeID, resourceID) pair.
	// Returns ErrDuplicate when the pair already exists.
	AddFavorite(ctx context.Context, employeeID, resourceID string) error

	// RemoveFavorite deletes the pair. Returns ErrNotFound when no row existed.
	RemoveFavorite(ctx context.Context, employeeID, resourceID string) error

	// FindFavoritesByEmployee lists the employee's bookmarked resources ordered by name.
	FindFavoritesByEmployee(ctx context.Context, employeeID string) ([]domain.WellbeingResource, error)

	// DeleteFavoritesByEmployee removes all of the employee's favorite links.
	// Removing zero rows is not an error.
	DeleteFavoritesByEmployee(ctx context.Context, employeeID string) error
}

// ResourceRepositoryFacade combines all resource-related repository interfaces
type ResourceRepositoryFacade interface {
	ResourceReader
	ResourceWriter
	FavoriteLinkManager
}

// ResourceRepositoryWithTx extends the facade with transaction capabilities
type ResourceRepositoryWithTx interface {
	ResourceRepositoryFacade

	// WithTx returns a facade whose operations run inside the given transaction
	WithTx(tx pgx.Tx) ResourceRepositoryFacade
}
