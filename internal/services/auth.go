// Plik: internal/services/auth.go
package services

import (
	"context"

	"go.uber.org/zap"

	"operaty-system/internal/dto"
	"operaty-system/internal/entities"
	"operaty-system/internal/repositories"
	apperrors "operaty-system/pkg/errors"
	"operaty-system/pkg/service"
	"operaty-system/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponseDTO, error)
	GetCurrentUser(ctx context.Context) (*dto.UserDTO, error)
}

// AuthService - logowanie przez dokładne porównanie emaila i hasła
// z katalogiem użytkowników. Hasła trzymamy otwartym tekstem - katalog jest
// atrapą i tak ma zostać. Udane logowanie wydaje parę tokenów JWT.
type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{userRepo: userRepo, jwtService: jwtService, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	user, err := s.userRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		// Ta sama odpowiedź dla nieistniejącego konta i błędnego hasła.
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.Password != payload.Password {
		s.logger.Warn("nieudane logowanie", zap.String("email", payload.Email))
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponseDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	return s.issueTokens(user)
}

func (s *AuthService) GetCurrentUser(ctx context.Context) (*dto.UserDTO, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	userDTO := ToUserDTO(user)
	return &userDTO, nil
}

func (s *AuthService) issueTokens(user *entities.User) (*dto.AuthResponseDTO, error) {
	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		s.logger.Error("nie udało się wygenerować tokenów", zap.Error(err))
		return nil, err
	}
	return &dto.AuthResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         ToUserDTO(user),
	}, nil
}
