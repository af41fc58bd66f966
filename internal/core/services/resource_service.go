package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vivabem/wellbeing_tracker_app/internal/apperrors"
	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	portsrepo "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/services"
	"github.com/vivabem/wellbeing_tracker_app/internal/dto"
	"github.com/vivabem/wellbeing_tracker_app/internal/middleware"
)

// ResourceService manages the well-being resource catalog.
type ResourceService struct {
	resourceRepo portsrepo.ResourceRepositoryWithTx
}

// NewResourceService creates a new ResourceService.
func NewResourceService(resourceRepo portsrepo.ResourceRepositoryWithTx) *ResourceService {
	return &ResourceService{resourceRepo: resourceRepo}
}

// Ensure ResourceService implements the portssvc.ResourceSvcFacade interface
var _ portssvc.ResourceSvcFacade = (*ResourceService)(nil)

// CreateResource persists a new catalog entry.
func (s *ResourceService) CreateResource(ctx context.Context, req dto.CreateResourceRequest) (*domain.WellbeingResource, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	resource := domain.WellbeingResource{
		ResourceID: uuid.New().String(),
		Name:       req.Name,
		Kind:       req.Kind,
		Link:       req.Link,
	}
	if err := s.resourceRepo.SaveResource(ctx, resource); err != nil {
		logger.Error("Failed to create resource", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	logger.Info("Resource created", slog.String("resource_id", resource.ResourceID))
	return &resource, nil
}

// GetResourceByID retrieves a resource by ID.
func (s *ResourceService) GetResourceByID(ctx context.Context, resourceID string) (*domain.WellbeingResource, error) {
	resource, err := s.resourceRepo.FindResourceByID(ctx, resourceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}
	return resource, nil
}

// ListResources retrieves the whole catalog ordered by name.
func (s *ResourceService) ListResources(ctx context.Context) ([]domain.WellbeingResource, error) {
	resources, err := s.resourceRepo.FindResources(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	if resources == nil {
		return []domain.WellbeingResource{}, nil
	}
	return resources, nil
}

// UpdateResource applies the provided fields to an existing resource.
func (s *ResourceService) UpdateResource(ctx context.Context, resourceID string, req dto.UpdateResourceRequest) (*domain.WellbeingResource, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	resource, err := s.resourceRepo.FindResourceByID(ctx, resourceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get resource for update: %w", err)
	}

	if req.Name != nil {
		resource.Name = *req.Name
	}
	if req.Kind != nil {
		resource.Kind = *req.Kind
	}
	if req.Link != nil {
		resource.Link = *req.Link
	}

	if err := s.resourceRepo.UpdateResource(ctx, *resource); err != nil {
		logger.Error("Failed to update resource", slog.String("error", err.Error()), slog.String("resource_id", resourceID))
		return nil, fmt.Errorf("failed to update resource: %w", err)
	}

	logger.Info("Resource updated", slog.String("resource_id", resourceID))
	return resource, nil
}

// DeleteResource removes a catalog entry.
func (s *ResourceService) DeleteResource(ctx context.Context, resourceID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.resourceRepo.DeleteResource(ctx, resourceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		logger.Error("Failed to delete resource", slog.String("error", err.Error()), slog.String("resource_id", resourceID))
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	logger.Info("Resource deleted", slog.String("resource_id", resourceID))
	return nil
}
