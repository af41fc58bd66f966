package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vivabem/wellbeing_tracker_app/internal/apperrors"
	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	portssvc "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/services"
	"github.com/vivabem/wellbeing_tracker_app/internal/core/services"
	"github.com/vivabem/wellbeing_tracker_app/internal/dto"
)

type MoodCheckinServiceTestSuite struct {
	suite.Suite
	mockMoodRepo      *MockMoodEntryRepository
	mockReportingRepo *MockReportingRepository
	mockEmployeeRepo  *MockEmployeeRepository
	service           portssvc.MoodCheckinSvcFacade
}

func (suite *MoodCheckinServiceTestSuite) SetupTest() {
	suite.mockMoodRepo = new(MockMoodEntryRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewMoodCheckinService(
		suite.mockMoodRepo,
		suite.mockReportingRepo,
		suite.mockEmployeeRepo,
		newAccessControl(),
	)
}

func todayString() string {
	return time.Now().UTC().Format("2006-01-02")
}

func validCheckinRequest(employeeID string) dto.SubmitCheckinRequest {
	return dto.SubmitCheckinRequest{
		EmployeeID:         employeeID,
		CheckinDate:        todayString(),
		EnergyLevel:        4,
		Feeling:            "motivado",
		DemandVolume:       "adequado",
		Blockers:           "",
		WorkLifeDisconnect: "consigo desconectar",
		ConnectionLevel:    3,
		InteractionQuality: "boa",
		SleepQuality:       "boa",
		PauseStatus:        "fiz pausas",
		SmallWin:           "terminei o relatorio",
	}
}

// --- SubmitCheckin ---

func (suite *MoodCheckinServiceTestSuite) TestSubmitCheckin_Success() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	req := validCheckinRequest(employeeID)
	parsedDate, _ := time.Parse("2006-01-02", req.CheckinDate)

	suite.mockMoodRepo.On("FindEntryByEmployeeAndDate", ctx, employeeID, parsedDate).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockMoodRepo.On("SaveEntry", ctx, mock.MatchedBy(func(entry domain.MoodEntry) bool {
		return entry.EmployeeID == employeeID &&
			entry.CheckinDate.Equal(parsedDate) &&
			entry.EnergyLevel == 4 &&
			entry.EntryID != ""
	})).Return(nil).Once()

	entry, err := suite.service.SubmitCheckin(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(employeeID, entry.EmployeeID)
	suite.NotEmpty(entry.EntryID)
	suite.Equal("motivado", entry.Feeling)
	suite.mockMoodRepo.AssertExpectations(suite.T())
}

func (suite *MoodCheckinServiceTestSuite) TestSubmitCheckin_SecondSameDayRejected() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	req := validCheckinRequest(employeeID)
	parsedDate, _ := time.Parse("2006-01-02", req.CheckinDate)

	stored := &domain.MoodEntry{
		EntryID:     uuid.NewString(),
		EmployeeID:  employeeID,
		CheckinDate: parsedDate,
		EnergyLevel: 2,
	}
	suite.mockMoodRepo.On("FindEntryByEmployeeAndDate", ctx, employeeID, parsedDate).
		Return(stored, nil).Once()

	entry, err := suite.service.SubmitCheckin(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	// The stored entry must stay untouched: no write may happen.
	suite.mockMoodRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
	suite.mockMoodRepo.AssertExpectations(suite.T())
}

func (suite *MoodCheckinServiceTestSuite) TestSubmitCheckin_FutureDateRejected() {
	ctx := context.Background()
	req := validCheckinRequest(uuid.NewString())
	req.CheckinDate = time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

	entry, err := suite.service.SubmitCheckin(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMoodRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *MoodCheckinServiceTestSuite) TestSubmitCheckin_MalformedDateRejected() {
	ctx := context.Background()
	req := validCheckinRequest(uuid.NewString())
	req.CheckinDate = "11-05-2025"

	entry, err := suite.service.SubmitCheckin(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MoodCheckinServiceTestSuite) TestSubmitCheckin_StorageBackstopMapsToDuplicate() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	req := validCheckinRequest(employeeID)
	parsedDate, _ := time.Parse("2006-01-02", req.CheckinDate)

	suite.mockMoodRepo.On("FindEntryByEmployeeAndDate", ctx, employeeID, parsedDate).
		Return(nil, apperrors.ErrNotFound).Once()
	// Two submissions race past the read check; storage wins the argument.
	suite.mockMoodRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.MoodEntry")).
		Return(apperrors.ErrDuplicate).Once()

	entry, err := suite.service.SubmitCheckin(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockMoodRepo.AssertExpectations(suite.T())
}

func (suite *MoodCheckinServiceTestSuite) TestSubmitCheckin_UnknownEmployeeRejected() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	req := validCheckinRequest(employeeID)
	parsedDate, _ := time.Parse("2006-01-02", req.CheckinDate)

	suite.mockMoodRepo.On("FindEntryByEmployeeAndDate", ctx, employeeID, parsedDate).
		Return(nil, apperrors.ErrNotFound).Once()
	// The insert trips the employee foreign key.
	suite.mockMoodRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.MoodEntry")).
		Return(apperrors.ErrNotFound).Once()

	entry, err := suite.service.SubmitCheckin(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.NotErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *MoodCheckinServiceTestSuite) TestSubmitCheckin_StoreWriteNotAcknowledged() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	req := validCheckinRequest(employeeID)
	parsedDate, _ := time.Parse("2006-01-02", req.CheckinDate)

	suite.mockMoodRepo.On("FindEntryByEmployeeAndDate", ctx, employeeID, parsedDate).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockMoodRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.MoodEntry")).
		Return(apperrors.ErrPersistence).Once()

	entry, err := suite.service.SubmitCheckin(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrPersistence)
}

// --- History ---

func (suite *MoodCheckinServiceTestSuite) TestGetRawHistory_HRAllowed() {
	ctx := context.Background()
	actorID := uuid.NewString()
	hr := &domain.Employee{EmployeeID: actorID, RoleID: 5, TeamID: "team-hr"}
	entries := []domain.MoodEntry{
		{EntryID: uuid.NewString(), EmployeeID: uuid.NewString(), EnergyLevel: 4},
		{EntryID: uuid.NewString(), EmployeeID: uuid.NewString(), EnergyLevel: 2},
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actorID).Return(hr, nil).Once()
	suite.mockMoodRepo.On("FindAllEntries", ctx).Return(entries, nil).Once()

	got, err := suite.service.GetRawHistory(ctx, actorID)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
	suite.mockMoodRepo.AssertExpectations(suite.T())
}

func (suite *MoodCheckinServiceTestSuite) TestGetRawHistory_ManagerForbidden() {
	ctx := context.Background()
	actorID := uuid.NewString()
	manager := &domain.Employee{EmployeeID: actorID, RoleID: 4, TeamID: "team-2"}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actorID).Return(manager, nil).Once()

	got, err := suite.service.GetRawHistory(ctx, actorID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockMoodRepo.AssertNotCalled(suite.T(), "FindAllEntries", mock.Anything)
}

func (suite *MoodCheckinServiceTestSuite) TestGetRawHistory_UnknownActorForbidden() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actorID).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetRawHistory(ctx, actorID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *MoodCheckinServiceTestSuite) TestGetAnonymizedHistory_StripsIdentity() {
	ctx := context.Background()
	actorID := uuid.NewString()
	hr := &domain.Employee{EmployeeID: actorID, RoleID: 5}
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	entries := []domain.MoodEntry{
		{EntryID: uuid.NewString(), EmployeeID: uuid.NewString(), CheckinDate: day, EnergyLevel: 4, Feeling: "bem"},
		{EntryID: uuid.NewString(), EmployeeID: uuid.NewString(), CheckinDate: day, EnergyLevel: 1, Feeling: "cansado"},
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actorID).Return(hr, nil).Once()
	suite.mockMoodRepo.On("FindAllEntries", ctx).Return(entries, nil).Once()

	got, err := suite.service.GetAnonymizedHistory(ctx, actorID)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal(4, got[0].EnergyLevel)
	suite.Equal("cansado", got[1].Feeling)
	suite.Equal(day, got[0].CheckinDate)
}

func (suite *MoodCheckinServiceTestSuite) TestGetAnonymizedHistory_SameGateAsRaw() {
	ctx := context.Background()
	actorID := uuid.NewString()
	analyst := &domain.Employee{EmployeeID: actorID, RoleID: 1}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actorID).Return(analyst, nil).Once()

	got, err := suite.service.GetAnonymizedHistory(ctx, actorID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- Dashboard ---

func dashboardReports() []domain.TeamMoodReport {
	return []domain.TeamMoodReport{
		{TeamID: "team-1", TeamName: "Vendas", AverageEnergy: 4.2, CheckinCount: 12},
		{TeamID: "team-2", TeamName: "Engenharia", AverageEnergy: 3.5, CheckinCount: 30},
		{TeamID: "team-3", TeamName: "Suporte", AverageEnergy: 2.8, CheckinCount: 7},
	}
}

func (suite *MoodCheckinServiceTestSuite) TestGetTeamDashboard_HRSeesAllTeams() {
	ctx := context.Background()
	actorID := uuid.NewString()
	hr := &domain.Employee{EmployeeID: actorID, RoleID: 5, TeamID: "team-hr"}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actorID).Return(hr, nil).Once()
	suite.mockReportingRepo.On("GetTeamMoodAverages", ctx).Return(dashboardReports(), nil).Once()

	got, err := suite.service.GetTeamDashboard(ctx, actorID)

	suite.Require().NoError(err)
	suite.Len(got, 3)
}

func (suite *MoodCheckinServiceTestSuite) TestGetTeamDashboard_ManagerScopedToOwnTeam() {
	ctx := context.Background()
	actorID := uuid.NewString()
	manager := &domain.Employee{EmployeeID: actorID, RoleID: 4, TeamID: "team-2"}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actorID).Return(manager, nil).Once()
	suite.mockReportingRepo.On("GetTeamMoodAverages", ctx).Return(dashboardReports(), nil).Once()

	got, err := suite.service.GetTeamDashboard(ctx, actorID)

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal("team-2", got[0].TeamID)
	suite.Equal("Engenharia", got[0].TeamName)
}

func (suite *MoodCheckinServiceTestSuite) TestGetTeamDashboard_EmptyVisibleIsNotFound() {
	ctx := context.Background()
	actorID := uuid.NewString()
	manager := &domain.Employee{EmployeeID: actorID, RoleID: 3, TeamID: "team-without-checkins"}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actorID).Return(manager, nil).Once()
	suite.mockReportingRepo.On("GetTeamMoodAverages", ctx).Return(dashboardReports(), nil).Once()

	got, err := suite.service.GetTeamDashboard(ctx, actorID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MoodCheckinServiceTestSuite) TestGetTeamDashboard_AnalystForbidden() {
	ctx := context.Background()
	actorID := uuid.NewString()
	analyst := &domain.Employee{EmployeeID: actorID, RoleID: 1, TeamID: "team-1"}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actorID).Return(analyst, nil).Once()

	got, err := suite.service.GetTeamDashboard(ctx, actorID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetTeamMoodAverages", mock.Anything)
}

func (suite *MoodCheckinServiceTestSuite) TestGetTeamDashboard_UnknownActorUnauthorized() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actorID).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetTeamDashboard(ctx, actorID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *MoodCheckinServiceTestSuite) TestGetTeamDashboard_RepoError() {
	ctx := context.Background()
	actorID := uuid.NewString()
	hr := &domain.Employee{EmployeeID: actorID, RoleID: 5}
	expectedErr := assert.AnError

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, actorID).Return(hr, nil).Once()
	suite.mockReportingRepo.On("GetTeamMoodAverages", ctx).Return(nil, expectedErr).Once()

	got, err := suite.service.GetTeamDashboard(ctx, actorID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, expectedErr)
}

func TestMoodCheckinServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MoodCheckinServiceTestSuite))
}
