package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	"github.com/vivabem/wellbeing_tracker_app/internal/core/services"
	"github.com/vivabem/wellbeing_tracker_app/internal/utils"
)

const testJWTSecret = "unit-test-secret"

type TokenServiceTestSuite struct {
	suite.Suite
	service *services.TokenService
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.service = services.NewTokenService(testJWTSecret, time.Hour, "wellbeing-tracker")
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_RoundTrip() {
	ctx := context.Background()
	employee := &domain.Employee{EmployeeID: uuid.NewString()}

	token, expiresAt, err := suite.service.GenerateAccessToken(ctx, employee)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.True(expiresAt.After(time.Now()))

	claims, err := utils.ParseAndValidateJWT(token, testJWTSecret)
	suite.Require().NoError(err)
	suite.Equal(employee.EmployeeID, claims.Subject)
	suite.Equal("wellbeing-tracker", claims.Issuer)
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_WrongSecretRejected() {
	ctx := context.Background()
	employee := &domain.Employee{EmployeeID: uuid.NewString()}

	token, _, err := suite.service.GenerateAccessToken(ctx, employee)
	suite.Require().NoError(err)

	claims, err := utils.ParseAndValidateJWT(token, "another-secret")
	suite.Require().Error(err)
	suite.Nil(claims)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
