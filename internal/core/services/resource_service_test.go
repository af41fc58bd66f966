package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vivabem/wellbeing_tracker_app/internal/apperrors"
	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	portssvc "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/services"
	"github.com/vivabem/wellbeing_tracker_app/internal/core/services"
	"github.com/vivabem/wellbeing_tracker_app/internal/dto"
)

type ResourceServiceTestSuite struct {
	suite.Suite
	mockResourceRepo *MockResourceRepository
	service          portssvc.ResourceSvcFacade
}

func (suite *ResourceServiceTestSuite) SetupTest() {
	suite.mockResourceRepo = new(MockResourceRepository)
	suite.service = services.NewResourceService(suite.mockResourceRepo)
}

func (suite *ResourceServiceTestSuite) TestCreateResource_Success() {
	ctx := context.Background()
	req := dto.CreateResourceRequest{
		Name: "Guia de pausas ativas",
		Kind: "artigo",
		Link: "https://vivabem.example/guia-pausas",
	}

	suite.mockResourceRepo.On("SaveResource", ctx, mock.MatchedBy(func(r domain.WellbeingResource) bool {
		return r.Name == req.Name && r.Kind == req.Kind && r.ResourceID != ""
	})).Return(nil).Once()

	resource, err := suite.service.CreateResource(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resource)
	suite.NotEmpty(resource.ResourceID)
	suite.Equal(req.Link, resource.Link)
	suite.mockResourceRepo.AssertExpectations(suite.T())
}

func (suite *ResourceServiceTestSuite) TestGetResourceByID_NotFound() {
	ctx := context.Background()
	resourceID := uuid.NewString()

	suite.mockResourceRepo.On("FindResourceByID", ctx, resourceID).Return(nil, apperrors.ErrNotFound).Once()

	resource, err := suite.service.GetResourceByID(ctx, resourceID)

	suite.Require().Error(err)
	suite.Nil(resource)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ResourceServiceTestSuite) TestListResources_EmptyCatalog() {
	ctx := context.Background()

	suite.mockResourceRepo.On("FindResources", ctx).Return(nil, nil).Once()

	resources, err := suite.service.ListResources(ctx)

	suite.Require().NoError(err)
	suite.NotNil(resources)
	suite.Empty(resources)
}

func (suite *ResourceServiceTestSuite) TestUpdateResource_AppliesOnlyProvidedFields() {
	ctx := context.Background()
	resourceID := uuid.NewString()
	current := &domain.WellbeingResource{
		ResourceID: resourceID,
		Name:       "Meditacao guiada",
		Kind:       "video",
		Link:       "https://vivabem.example/meditacao",
	}
	newLink := "https://vivabem.example/meditacao-v2"
	req := dto.UpdateResourceRequest{Link: &newLink}

	suite.mockResourceRepo.On("FindResourceByID", ctx, resourceID).Return(current, nil).Once()
	suite.mockResourceRepo.On("UpdateResource", ctx, mock.MatchedBy(func(r domain.WellbeingResource) bool {
		return r.ResourceID == resourceID && r.Link == newLink && r.Name == "Meditacao guiada"
	})).Return(nil).Once()

	resource, err := suite.service.UpdateResource(ctx, resourceID, req)

	suite.Require().NoError(err)
	suite.Equal(newLink, resource.Link)
	suite.Equal("video", resource.Kind)
	suite.mockResourceRepo.AssertExpectations(suite.T())
}

func (suite *ResourceServiceTestSuite) TestDeleteResource_NotFound() {
	ctx := context.Background()
	resourceID := uuid.NewString()

	suite.mockResourceRepo.On("DeleteResource", ctx, resourceID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteResource(ctx, resourceID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestResourceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceServiceTestSuite))
}
