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

// employeeHandler handles HTTP requests related to employees and their
// favorite resources.
type employeeHandler struct {
	employeeService  portssvc.EmployeeSvcFacade
	favoritesService portssvc.FavoritesSvc
}

// newEmployeeHandler creates a new employeeHandler.
func newEmployeeHandler(es portssvc.EmployeeSvcFacade, fs portssvc.FavoritesSvc) *employeeHandler {
	return &employeeHandler{
		employeeService:  es,
		favoritesService: fs,
	}
}

// registerEmployeeRoutes registers all employee-related routes.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade, favoritesService portssvc.FavoritesSvc) {
	h := newEmployeeHandler(employeeService, favoritesService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.registerEmployee) // HR only
		employees.GET("", h.listEmployees)
		employees.GET("/:id", h.getEmployee)
		employees.PUT("/:id", h.updateEmployee)
		employees.DELETE("/:id", h.deleteEmployee)

		employees.GET("/:id/favorites", h.listFavorites)
		employees.POST("/:id/favorites/:resourceID", h.addFavorite)
		employees.DELETE("/:id/favorites/:resourceID", h.removeFavorite)
	}
}

// registerEmployee godoc
// @Summary Register a new employee
// @Description Creates a new employee record. Only HR actors may register employees.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.RegisterEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse "Failed to register employee"
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) registerEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for employee registration", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	employee, err := h.employeeService.RegisterEmployee(c.Request.Context(), req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			logger.Warn("Actor forbidden to register employees")
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already registered"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrPersistence):
			logger.Error("Employee registration not acknowledged by store", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Employee was not saved"})
		default:
			logger.Error("Failed to register employee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register employee"})
		}
		return
	}

	logger.Info("Employee registered", slog.String("new_employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// getEmployee godoc
// @Summary Get an employee by ID
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve employee"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
			return
		}
		logger.Error("Failed to get employee", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve employee"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 500 {object} ErrorResponse "Failed to list employees"
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list employees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list employees"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(employees))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Applies the provided fields to an existing employee. The email uniqueness check ignores the employee's own current address.
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse "Failed to update employee"
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for employee update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already registered"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update employee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update employee"})
		}
		return
	}

	logger.Info("Employee updated", slog.String("employee_id", employeeID))
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Description Removes the employee together with their checkins and favorite links in one transaction.
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse "Failed to delete employee"
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), employeeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
			return
		}
		logger.Error("Failed to delete employee", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete employee"})
		return
	}

	logger.Info("Employee deleted", slog.String("employee_id", employeeID))
	c.Status(http.StatusNoContent)
}

// listFavorites godoc
// @Summary List an employee's favorite resources
// @Tags favorites
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.ListResourcesResponse
// @Failure 500 {object} ErrorResponse "Failed to list favorites"
// @Security BearerAuth
// @Router /employees/{id}/favorites [get]
func (h *employeeHandler) listFavorites(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	resources, err := h.favoritesService.ListFavorites(c.Request.Context(), employeeID)
	if err != nil {
		logger.Error("Failed to list favorites", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list favorites"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListResourcesResponse(resources))
}

// addFavorite godoc
// @Summary Mark a resource as a favorite
// @Tags favorites
// @Produce json
// @Param id path string true "Employee ID"
// @Param resourceID path string true "Resource ID"
// @Success 201 "Created"
// @Failure 409 {object} ErrorResponse "Resource is already a favorite"
// @Failure 500 {object} ErrorResponse "Failed to add favorite"
// @Security BearerAuth
// @Router /employees/{id}/favorites/{resourceID} [post]
func (h *employeeHandler) addFavorite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")
	resourceID := c.Param("resourceID")

	if err := h.favoritesService.AddFavorite(c.Request.Context(), employeeID, resourceID); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Resource is already a favorite"})
			return
		}
		logger.Error("Failed to add favorite", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add favorite"})
		return
	}

	c.Status(http.StatusCreated)
}

// removeFavorite godoc
// @Summary Remove a resource from favorites
// @Tags favorites
// @Produce json
// @Param id path string true "Employee ID"
// @Param resourceID path string true "Resource ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Favorite not found"
// @Failure 500 {object} ErrorResponse "Failed to remove favorite"
// @Security BearerAuth
// @Router /employees/{id}/favorites/{resourceID} [delete]
func (h *employeeHandler) removeFavorite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")
	resourceID := c.Param("resourceID")

	if err := h.favoritesService.RemoveFavorite(c.Request.Context(), employeeID, resourceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Favorite not found"})
			return
		}
		logger.Error("Failed to remove favorite", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove favorite"})
		return
	}

	c.Status(http.StatusNoContent)
}
