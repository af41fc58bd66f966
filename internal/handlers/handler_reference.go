package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vivabem/wellbeing_tracker_app/internal/apperrors"
	portssvc "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/services"
	"github.com/vivabem/wellbeing_tracker_app/internal/dto"
	"github.com/vivabem/wellbeing_tracker_app/internal/middleware"
)

// referenceHandler serves team and role reference data.
type referenceHandler struct {
	teamService portssvc.TeamReaderSvc
	roleService portssvc.RoleReaderSvc
}

// registerReferenceRoutes registers the reference data routes.
func registerReferenceRoutes(rg *gin.RouterGroup, teamService portssvc.TeamReaderSvc, roleService portssvc.RoleReaderSvc) {
	h := &referenceHandler{teamService: teamService, roleService: roleService}

	rg.GET("/teams", h.listTeams)
	rg.GET("/teams/:id", h.getTeam)
	rg.GET("/roles", h.listRoles)
	rg.GET("/roles/:id", h.getRole)
}

// listTeams godoc
// @Summary List teams
// @Tags reference
// @Produce json
// @Success 200 {object} dto.ListTeamsResponse
// @Failure 500 {object} ErrorResponse "Failed to list teams"
// @Security BearerAuth
// @Router /teams [get]
func (h *referenceHandler) listTeams(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	teams, err := h.teamService.ListTeams(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list teams", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list teams"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTeamsResponse(teams))
}

// getTeam godoc
// @Summary Get a team by ID
// @Tags reference
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} dto.TeamResponse
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve team"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *referenceHandler) getTeam(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	teamID := c.Param("id")

	team, err := h.teamService.GetTeamByID(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Team not found"})
			return
		}
		logger.Error("Failed to get team", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve team"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamResponse(team))
}

// listRoles godoc
// @Summary List roles
// @Tags reference
// @Produce json
// @Success 200 {object} dto.ListRolesResponse
// @Failure 500 {object} ErrorResponse "Failed to list roles"
// @Security BearerAuth
// @Router /roles [get]
func (h *referenceHandler) listRoles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	roles, err := h.roleService.ListRoles(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list roles", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list roles"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRolesResponse(roles))
}

// getRole godoc
// @Summary Get a role by ID
// @Tags reference
// @Produce json
// @Param id path int true "Role ID"
// @Success 200 {object} dto.RoleResponse
// @Failure 400 {object} ErrorResponse "Invalid role ID"
// @Failure 404 {object} ErrorResponse "Role not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve role"
// @Security BearerAuth
// @Router /roles/{id} [get]
func (h *referenceHandler) getRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	roleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Role ID must be an integer"})
		return
	}

	role, err := h.roleService.GetRoleByID(c.Request.Context(), roleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Role not found"})
			return
		}
		logger.Error("Failed to get role", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve role"})
		return
	}

	c.JSON(http.StatusOK, dto.RoleResponse{RoleID: role.RoleID, Name: role.Name})
}
