package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/vivabem/wellbeing_tracker_app/internal/apperrors"
	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	portssvc "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/services"
	"github.com/vivabem/wellbeing_tracker_app/internal/core/services"
)

type FavoritesServiceTestSuite struct {
	suite.Suite
	mockResourceRepo *MockResourceRepository
	service          portssvc.FavoritesSvc
}

func (suite *FavoritesServiceTestSuite) SetupTest() {
	suite.mockResourceRepo = new(MockResourceRepository)
	suite.service = services.NewFavoritesService(suite.mockResourceRepo)
}

func (suite *FavoritesServiceTestSuite) TestAddFavorite_Success() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	resourceID := uuid.NewString()

	suite.mockResourceRepo.On("AddFavorite", ctx, employeeID, resourceID).Return(nil).Once()

	err := suite.service.AddFavorite(ctx, employeeID, resourceID)

	suite.Require().NoError(err)
	suite.mockResourceRepo.AssertExpectations(suite.T())
}

func (suite *FavoritesServiceTestSuite) TestAddFavorite_AlreadyLinked() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	resourceID := uuid.NewString()

	suite.mockResourceRepo.On("AddFavorite", ctx, employeeID, resourceID).
		Return(apperrors.ErrDuplicate).Once()

	err := suite.service.AddFavorite(ctx, employeeID, resourceID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *FavoritesServiceTestSuite) TestRemoveFavorite_Success() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	resourceID := uuid.NewString()

	suite.mockResourceRepo.On("RemoveFavorite", ctx, employeeID, resourceID).Return(nil).Once()

	err := suite.service.RemoveFavorite(ctx, employeeID, resourceID)

	suite.Require().NoError(err)
}

func (suite *FavoritesServiceTestSuite) TestRemoveFavorite_MissingPairIsNotFound() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	resourceID := uuid.NewString()

	suite.mockResourceRepo.On("RemoveFavorite", ctx, employeeID, resourceID).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.RemoveFavorite(ctx, employeeID, resourceID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *FavoritesServiceTestSuite) TestListFavorites_Success() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	resources := []domain.WellbeingResource{
		{ResourceID: uuid.NewString(), Name: "Guia de pausas"},
		{ResourceID: uuid.NewString(), Name: "Meditacao guiada"},
	}

	suite.mockResourceRepo.On("FindFavoritesByEmployee", ctx, employeeID).Return(resources, nil).Once()

	got, err := suite.service.ListFavorites(ctx, employeeID)

	suite.Require().NoError(err)
	suite.Len(got, 2)
}

func (suite *FavoritesServiceTestSuite) TestListFavorites_EmptyIsNotAnError() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockResourceRepo.On("FindFavoritesByEmployee", ctx, employeeID).Return(nil, nil).Once()

	got, err := suite.service.ListFavorites(ctx, employeeID)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *FavoritesServiceTestSuite) TestListFavorites_RepoError() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockResourceRepo.On("FindFavoritesByEmployee", ctx, employeeID).Return(nil, expectedErr).Once()

	got, err := suite.service.ListFavorites(ctx, employeeID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, expectedErr)
}

func TestFavoritesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FavoritesServiceTestSuite))
}
