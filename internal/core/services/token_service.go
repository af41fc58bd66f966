package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vivabem/wellbeing_tracker_app/internal/core/domain"
	portssvc "github.com/vivabem/wellbeing_tracker_app/internal/core/ports/services"
	"github.com/vivabem/wellbeing_tracker_app/internal/middleware"
	"github.com/vivabem/wellbeing_tracker_app/internal/utils"
)

// TokenService issues signed access tokens for authenticated employees.
type TokenService struct {
	jwtSecret      string
	expiryDuration time.Duration
	issuer         string
	now            func() time.Time
}

// NewTokenService creates a new TokenService.
func NewTokenService(jwtSecret string, expiryDuration time.Duration, issuer string) *TokenService {
	return &TokenService{
		jwtSecret:      jwtSecret,
		expiryDuration: expiryDuration,
		issuer:         issuer,
		now:            time.Now,
	}
}

var _ portssvc.TokenSvc = (*TokenService)(nil)

// GenerateAccessToken creates a signed JWT whose subject is the employee ID.
func (s *TokenService) GenerateAccessToken(ctx context.Context, employee *domain.Employee) (string, time.Time, error) {
	expiresAt := s.now().Add(s.expiryDuration)

	token, err := utils.GenerateJWT(employee.EmployeeID, s.jwtSecret, s.expiryDuration, s.issuer)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to sign access token", slog.String("error", err.Error()), slog.String("employee_id", employee.EmployeeID))
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return token, expiresAt, nil
}
