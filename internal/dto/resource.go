package dto

import "github.com/vivabem/wellbeing_tracker_app/internal/core/domain"

// CreateResourceRequest defines the data required to create a well-being resource.
type CreateResourceRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Kind string `json:"kind" binding:"required,max=50"`
	Link string `json:"link" binding:"required,url"`
}

// UpdateResourceRequest defines the data allowed for updating a resource.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateResourceRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
	Kind *string `json:"kind" binding:"omitempty,max=50"`
	Link *string `json:"link" binding:"omitempty,url"`
}

// ResourceResponse is the outward representation of a well-being resource.
type ResourceResponse struct {
	ResourceID string `json:"resourceID"`
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Link       string `json:"link"`
}

// ToResourceResponse converts a domain.WellbeingResource to its response DTO.
func ToResourceResponse(r *domain.WellbeingResource) ResourceResponse {
	return ResourceResponse{
		ResourceID: r.ResourceID,
		Name:       r.Name,
		Kind:       r.Kind,
		Link:       r.Link,
	}
}

// ListResourcesResponse wraps a list of resources.
type ListResourcesResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// ToListResourcesResponse converts a slice of domain.WellbeingResource to its response DTO.
func ToListResourcesResponse(resources []domain.WellbeingResource) ListResourcesResponse {
	responses := make([]ResourceResponse, len(resources))
	for i := range resources {
		responses[i] = ToResourceResponse(&resources[i])
	}
	return ListResourcesResponse{Resources: responses}
}
