package services

import (
	"context"

	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
)

// FavoritesSvc manages the employee <-> resource bookmark association.
type FavoritesSvc interface {
	// AddFavorite links a resource to the employee's favorites.
	// An existing pair returns ErrDuplicate.
	AddFavorite(ctx context.Context, employeeID, resourceID string) error

	// RemoveFavorite unlinks the pair. A missing pair returns ErrNotFound.
	RemoveFavorite(ctx context.Context, employeeID, resourceID string) error

	// ListFavorites returns the employee's bookmarked resources ordered by name.
	ListFavorites(ctx context.Context, employeeID string) ([]domain.WellbeingResource, error)
}
