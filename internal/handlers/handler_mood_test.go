package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vivabem/wellbeing_tracker_app/internal/apperrors"
	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	portssvc "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/services"
	"github.com/vivabem/wellbeing_tracker_app/internal/dto"
	"github.com/vivabem/wellbeing_tracker_app/internal/handlers"
	"github.com/vivabem/wellbeing_tracker_app/internal/middleware"
)

// --- Mock MoodCheckinService ---
type MockMoodCheckinService struct {
	mock.Mock
}

func (m *MockMoodCheckinService) SubmitCheckin(ctx context.Context, req dto.SubmitCheckinRequest) (*domain.MoodEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoodEntry), args.Error(1)
}

func (m *MockMoodCheckinService) GetRawHistory(ctx context.Context, actorID string) ([]domain.MoodEntry, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MoodEntry), args.Error(1)
}

func (m *MockMoodCheckinService) GetAnonymizedHistory(ctx context.Context, actorID string) ([]domain.AnonymousMoodEntry, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnonymousMoodEntry), args.Error(1)
}

func (m *MockMoodCheckinService) GetTeamDashboard(ctx context.Context, actorID string) ([]domain.TeamMoodReport, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMoodReport), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.MoodCheckinSvcFacade = (*MockMoodCheckinService)(nil)

// --- Test Suite ---
type MoodHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockMoodService *MockMoodCheckinService
	jwtSecret       string
}

// generateTestToken creates a signed JWT for the given employee.
func (suite *MoodHandlerTestSuite) generateTestToken(employeeID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "wellbeing-test",
		Subject:   employeeID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *MoodHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockMoodService = new(MockMoodCheckinService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterMoodRoutes(v1, suite.mockMoodService)
}

func (suite *MoodHandlerTestSuite) doRequest(method, url, actorID string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(actorID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *MoodHandlerTestSuite) TestSubmitCheckin_Success() {
	employeeID := uuid.NewString()
	checkinDate := time.Now().UTC().Format("2006-01-02")
	reqBody := dto.SubmitCheckinRequest{
		EmployeeID:         employeeID,
		CheckinDate:        checkinDate,
		EnergyLevel:        4,
		Feeling:            "motivado",
		DemandVolume:       "adequado",
		WorkLifeDisconnect: "consigo desconectar",
		ConnectionLevel:    3,
		InteractionQuality: "boa",
		SleepQuality:       "boa",
		PauseStatus:        "fiz pausas",
	}
	parsedDate, _ := time.Parse("2006-01-02", checkinDate)
	entry := &domain.MoodEntry{
		EntryID:     uuid.NewString(),
		EmployeeID:  employeeID,
		CheckinDate: parsedDate,
		EnergyLevel: 4,
		Feeling:     "motivado",
	}

	suite.mockMoodService.On("SubmitCheckin",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(r dto.SubmitCheckinRequest) bool {
			return r.EmployeeID == employeeID && r.CheckinDate == checkinDate
		}),
	).Return(entry, nil).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.doRequest(http.MethodPost, "/api/v1/checkins", employeeID, body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.CheckinResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(entry.EntryID, resp.EntryID)
	suite.mockMoodService.AssertExpectations(suite.T())
}

func (suite *MoodHandlerTestSuite) TestSubmitCheckin_DuplicateIsConflict() {
	employeeID := uuid.NewString()
	reqBody := dto.SubmitCheckinRequest{
		EmployeeID:         employeeID,
		CheckinDate:        time.Now().UTC().Format("2006-01-02"),
		EnergyLevel:        4,
		Feeling:            "motivado",
		DemandVolume:       "adequado",
		WorkLifeDisconnect: "consigo desconectar",
		ConnectionLevel:    3,
		InteractionQuality: "boa",
		SleepQuality:       "boa",
		PauseStatus:        "fiz pausas",
	}

	suite.mockMoodService.On("SubmitCheckin", mock.Anything, mock.AnythingOfType("dto.SubmitCheckinRequest")).
		Return(nil, apperrors.ErrDuplicate).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.doRequest(http.MethodPost, "/api/v1/checkins", employeeID, body)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *MoodHandlerTestSuite) TestSubmitCheckin_MissingFieldsRejected() {
	employeeID := uuid.NewString()
	// EnergyLevel and most questionnaire answers are absent.
	body := []byte(`{"employeeID":"` + employeeID + `","checkinDate":"2025-08-20"}`)

	w := suite.doRequest(http.MethodPost, "/api/v1/checkins", employeeID, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockMoodService.AssertNotCalled(suite.T(), "SubmitCheckin", mock.Anything, mock.Anything)
}

func (suite *MoodHandlerTestSuite) TestGetHistory_ForbiddenForNonHR() {
	actorID := uuid.NewString()

	suite.mockMoodService.On("GetRawHistory", mock.Anything, actorID).
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/checkins/history", actorID, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *MoodHandlerTestSuite) TestGetHistory_MissingTokenUnauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/checkins/history", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockMoodService.AssertNotCalled(suite.T(), "GetRawHistory", mock.Anything, mock.Anything)
}

func (suite *MoodHandlerTestSuite) TestGetDashboard_Success() {
	actorID := uuid.NewString()
	reports := []domain.TeamMoodReport{
		{TeamID: "team-1", TeamName: "Vendas", AverageEnergy: 4.2, CheckinCount: 12},
		{TeamID: "team-2", TeamName: "Engenharia", AverageEnergy: 3.5, CheckinCount: 30},
	}

	suite.mockMoodService.On("GetTeamDashboard", mock.Anything, actorID).Return(reports, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/checkins/dashboard", actorID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.DashboardResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Reports, 2)
	suite.Equal("Vendas", resp.Reports[0].TeamName)
}

func (suite *MoodHandlerTestSuite) TestGetDashboard_EmptyVisibleIsNotFound() {
	actorID := uuid.NewString()

	suite.mockMoodService.On("GetTeamDashboard", mock.Anything, actorID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/checkins/dashboard", actorID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Test Suite ---
func TestMoodHandler(t *testing.T) {
	suite.Run(t, new(MoodHandlerTestSuite))
}
