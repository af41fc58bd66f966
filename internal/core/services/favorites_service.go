package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vivabem/wellbeing_tracker_app/internal/apperrors"
	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	portsrepo "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/services"
	"github.com/vivabem/wellbeing_tracker_app/internal/middleware"
)

// FavoritesService manages the employee <-> resource bookmark association.
type FavoritesService struct {
	resourceRepo portsrepo.ResourceRepositoryWithTx
}

// NewFavoritesService creates a new FavoritesService.
func NewFavoritesService(resourceRepo portsrepo.ResourceRepositoryWithTx) *FavoritesService {
	return &FavoritesService{resourceRepo: resourceRepo}
}

// Ensure FavoritesService implements the portssvc.FavoritesSvc interface
var _ portssvc.FavoritesSvc = (*FavoritesService)(nil)

// AddFavorite links a resource to the employee's favorites. An existing pair
// is reported as ErrDuplicate so callers can tell it apart from a storage fault.
func (s *FavoritesService) AddFavorite(ctx context.Context, employeeID, resourceID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.resourceRepo.AddFavorite(ctx, employeeID, resourceID); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Favorite already linked", slog.String("employee_id", employeeID), slog.String("resource_id", resourceID))
			return fmt.Errorf("%w: resource is already a favorite", apperrors.ErrDuplicate)
		}
		logger.Error("Failed to add favorite", slog.String("error", err.Error()), slog.String("employee_id", employeeID), slog.String("resource_id", resourceID))
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	logger.Info("Favorite linked", slog.String("employee_id", employeeID), slog.String("resource_id", resourceID))
	return nil
}

// RemoveFavorite unlinks the pair. A pair that never existed is ErrNotFound.
func (s *FavoritesService) RemoveFavorite(ctx context.Context, employeeID, resourceID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.resourceRepo.RemoveFavorite(ctx, employeeID, resourceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		logger.Error("Failed to remove favorite", slog.String("error", err.Error()), slog.String("employee_id", employeeID), slog.String("resource_id", resourceID))
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	logger.Info("Favorite unlinked", slog.String("employee_id", employeeID), slog.String("resource_id", resourceID))
	return nil
}

// ListFavorites returns the employee's bookmarked resources ordered by name.
func (s *FavoritesService) ListFavorites(ctx context.Context, employeeID string) ([]domain.WellbeingResource, error) {
	resources, err := s.resourceRepo.FindFavoritesByEmployee(ctx, employeeID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list favorites", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	if resources == nil {
		return []domain.WellbeingResource{}, nil
	}
	return resources, nil
}
