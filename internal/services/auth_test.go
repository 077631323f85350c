// Plik: internal/services/auth_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"operaty-system/internal/dto"
	"operaty-system/internal/repositories"
	"operaty-system/pkg/constants"
	apperrors "operaty-system/pkg/errors"
	"operaty-system/pkg/service"
	"operaty-system/pkg/utils"
	"operaty-system/seeders"
)

func newAuthService(t *testing.T) (AuthServiceInterface, service.JWTService) {
	t.Helper()
	logger := zap.NewNop()
	userRepo := repositories.NewUserRepository()
	zlecenieRepo := repositories.NewZlecenieRepository()
	require.NoError(t, seeders.Run(context.Background(), userRepo, zlecenieRepo, logger))

	jwtSvc := service.NewJWTService("sekret-testowy", 15*time.Minute, 24*time.Hour, logger)
	return NewAuthService(userRepo, jwtSvc, logger), jwtSvc
}

func TestLoginSuccess(t *testing.T) {
	svc, jwtSvc := newAuthService(t)

	res, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@wyceny.pl",
		Password: "admin",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, "admin@wyceny.pl", res.User.Email)

	claims, err := jwtSvc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.False(t, claims.IsRefreshToken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@wyceny.pl",
		Password: "złe-hasło",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	// Ta sama odpowiedź co przy błędnym haśle.
	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "nieistnieje@wyceny.pl",
		Password: "admin",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc, _ := newAuthService(t)

	login, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "rzeczoznawca1@firma.pl",
		Password: "user",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "rzeczoznawca1@firma.pl", refreshed.User.Email)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	svc, _ := newAuthService(t)

	login, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@wyceny.pl",
		Password: "admin",
	})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)
}

func TestGetCurrentUser(t *testing.T) {
	svc, _ := newAuthService(t)

	ctx := utils.ContextWithUser(context.Background(), "4", constants.RolePracownik)
	user, err := svc.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pracownik@wyceny.pl", user.Email)
	assert.Equal(t, "Piotr", user.FirstName)
}
