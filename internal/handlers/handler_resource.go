package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vivabem/wellbeing_tracker_app/internal/apperrors"
	portssvc "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/services"
	"github.com/vivabem/wellbeing_tracker_app/internal/dto"
	"github.com/vivabem/wellbeing_tracker_app/internal/middleware"
)

// resourceHandler handles HTTP requests related to the well-being resource catalog.
type resourceHandler struct {
	resourceService portssvc.ResourceSvcFacade
}

// newResourceHandler creates a new resourceHandler.
func newResourceHandler(rs portssvc.ResourceSvcFacade) *resourceHandler {
	return &resourceHandler{resourceService: rs}
}

// registerResourceRoutes registers all resource catalog routes.
func registerResourceRoutes(rg *gin.RouterGroup, resourceService portssvc.ResourceSvcFacade) {
	h := newResourceHandler(resourceService)

	resources := rg.Group("/resources")
	{
		resources.POST("", h.createResource)
		resources.GET("", h.listResources)
		resources.GET("/:id", h.getResource)
		resources.PUT("/:id", h.updateResource)
		resources.DELETE("/:id", h.deleteResource)
	}
}

// createResource godoc
// @Summary Create a well-being resource
// @Tags resources
// @Accept json
// @Produce json
// @Param resource body dto.CreateResourceRequest true "Resource details"
// @Success 201 {object} dto.ResourceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to create resource"
// @Security BearerAuth
// @Router /resources [post]
func (h *resourceHandler) createResource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for resource creation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resource, err := h.resourceService.CreateResource(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create resource", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create resource"})
		return
	}

	logger.Info("Resource created", slog.String("resource_id", resource.ResourceID))
	c.JSON(http.StatusCreated, dto.ToResourceResponse(resource))
}

// getResource godoc
// @Summary Get a resource by ID
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} dto.ResourceResponse
// @Failure 404 {object} ErrorResponse "Resource not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve resource"
// @Security BearerAuth
// @Router /resources/{id} [get]
func (h *resourceHandler) getResource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	resourceID := c.Param("id")

	resource, err := h.resourceService.GetResourceByID(c.Request.Context(), resourceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
			return
		}
		logger.Error("Failed to get resource", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve resource"})
		return
	}

	c.JSON(http.StatusOK, dto.ToResourceResponse(resource))
}

// listResources godoc
// @Summary List well-being resources
// @Tags resources
// @Produce json
// @Success 200 {object} dto.ListResourcesResponse
// @Failure 500 {object} ErrorResponse "Failed to list resources"
// @Security BearerAuth
// @Router /resources [get]
func (h *resourceHandler) listResources(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resources, err := h.resourceService.ListResources(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list resources", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list resources"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListResourcesResponse(resources))
}

// updateResource godoc
// @Summary Update a resource
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Param resource body dto.UpdateResourceRequest true "Fields to update"
// @Success 200 {object} dto.ResourceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Resource not found"
// @Failure 500 {object} ErrorResponse "Failed to update resource"
// @Security BearerAuth
// @Router /resources/{id} [put]
func (h *resourceHandler) updateResource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	resourceID := c.Param("id")

	var req dto.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for resource update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resource, err := h.resourceService.UpdateResource(c.Request.Context(), resourceID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
			return
		}
		logger.Error("Failed to update resource", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update resource"})
		return
	}

	logger.Info("Resource updated", slog.String("resource_id", resourceID))
	c.JSON(http.StatusOK, dto.ToResourceResponse(resource))
}

// deleteResource godoc
// @Summary Delete a resource
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Resource not found"
// @Failure 500 {object} ErrorResponse "Failed to delete resource"
// @Security BearerAuth
// @Router /resources/{id} [delete]
func (h *resourceHandler) deleteResource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	resourceID := c.Param("id")

	if err := h.resourceService.DeleteResource(c.Request.Context(), resourceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
			return
		}
		logger.Error("Failed to delete resource", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete resource"})
		return
	}

	logger.Info("Resource deleted", slog.String("resource_id", resourceID))
	c.Status(http.StatusNoContent)
}
