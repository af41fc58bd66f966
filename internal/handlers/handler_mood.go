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

// moodHandler handles HTTP requests related to mood checkins.
type moodHandler struct {
	moodService portssvc.MoodCheckinSvcFacade
}

// newMoodHandler creates a new moodHandler.
func newMoodHandler(ms portssvc.MoodCheckinSvcFacade) *moodHandler {
	return &moodHandler{moodService: ms}
}

// RegisterMoodRoutes registers all checkin-related routes.
func RegisterMoodRoutes(rg *gin.RouterGroup, moodService portssvc.MoodCheckinSvcFacade) {
	h := newMoodHandler(moodService)

	checkins := rg.Group("/checkins")
	{
		checkins.POST("", h.submitCheckin)
		checkins.GET("/history", h.getHistory)
		checkins.GET("/history/anonymous", h.getAnonymizedHistory)
		checkins.GET("/dashboard", h.getDashboard)
	}
}

// submitCheckin godoc
// @Summary Submit a daily mood checkin
// @Description Records the actor's questionnaire answers for one calendar day. A second submission for the same day is rejected.
// @Tags checkins
// @Accept json
// @Produce json
// @Param checkin body dto.SubmitCheckinRequest true "Checkin answers"
// @Success 201 {object} dto.CheckinResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 409 {object} ErrorResponse "Checkin already recorded for this day"
// @Failure 500 {object} ErrorResponse "Failed to submit checkin"
// @Security BearerAuth
// @Router /checkins [post]
func (h *moodHandler) submitCheckin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitCheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for checkin submission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.moodService.SubmitCheckin(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate checkin rejected", slog.String("employee_id", req.EmployeeID), slog.String("checkin_date", req.CheckinDate))
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Checkin already recorded for this day"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
		case errors.Is(err, apperrors.ErrPersistence):
			logger.Error("Checkin not acknowledged by store", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Checkin was not saved"})
		default:
			logger.Error("Failed to submit checkin", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit checkin"})
		}
		return
	}

	logger.Info("Checkin submitted", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToCheckinResponse(entry))
}

// getHistory godoc
// @Summary Get the identified checkin history
// @Description Returns every checkin with employee identity, newest first. HR only.
// @Tags checkins
// @Produce json
// @Success 200 {object} dto.ListCheckinsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to retrieve history"
// @Security BearerAuth
// @Router /checkins/history [get]
func (h *moodHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.moodService.GetRawHistory(c.Request.Context(), actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("Actor forbidden to view identified history")
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
			return
		}
		logger.Error("Failed to get checkin history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCheckinsResponse(entries))
}

// getAnonymizedHistory godoc
// @Summary Get the anonymized checkin history
// @Description Returns the checkin history with employee identity stripped. HR only.
// @Tags checkins
// @Produce json
// @Success 200 {object} dto.ListAnonymousCheckinsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to retrieve history"
// @Security BearerAuth
// @Router /checkins/history/anonymous [get]
func (h *moodHandler) getAnonymizedHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.moodService.GetAnonymizedHistory(c.Request.Context(), actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("Actor forbidden to view anonymized history")
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
			return
		}
		logger.Error("Failed to get anonymized history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAnonymousCheckinsResponse(entries))
}

// getDashboard godoc
// @Summary Get the team mood dashboard
// @Description Returns per-team mood averages visible to the actor: every team for HR, only the actor's own team for managers.
// @Tags checkins
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "No dashboard data"
// @Failure 500 {object} ErrorResponse "Failed to build dashboard"
// @Security BearerAuth
// @Router /checkins/dashboard [get]
func (h *moodHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reports, err := h.moodService.GetTeamDashboard(c.Request.Context(), actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		case errors.Is(err, apperrors.ErrForbidden):
			logger.Warn("Actor forbidden to view dashboard")
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No dashboard data for the visible teams"})
		default:
			logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build dashboard"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(reports))
}
