package services

import (
	"context"

	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	"github.com/vivabem/wellbeing_tracker_app/internal/dto"
)

// ResourceReaderSvc defines read operations for well-being resources
type ResourceReaderSvc interface {
	// GetResourceByID retrieves a resource by ID.
	GetResourceByID(ctx context.Context, resourceID string) (*domain.WellbeingResource, error)

	// ListResources retrieves all resources.
	ListResources(ctx context.Context) ([]domain.WellbeingResource, error)
}

// ResourceWriterSvc defines write operations for well-being resources
type ResourceWriterSvc interface {
	// CreateResource persists a new resource.
	CreateResource(ctx context.Context, req dto.CreateResourceRequest) (*domain.WellbeingResource, error)

	// UpdateResource updates an existing resource.
	UpdateResource(ctx context.Context, resourceID string, req dto.UpdateResourceRequest) (*domain.WellbeingResource, error)

	// DeleteResource removes a resource.
	DeleteResource(ctx context.Context, resourceID string) error
}

// ResourceSvcFacade combines all resource-related service interfaces
type ResourceSvcFacade interface {
	ResourceReaderSvc
	ResourceWriterSvc
}
