// Plik: internal/services/user.go
package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"operaty-system/internal/dto"
	"operaty-system/internal/entities"
	"operaty-system/internal/repositories"
	"operaty-system/pkg/constants"
	apperrors "operaty-system/pkg/errors"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context) ([]dto.UserDTO, error)
	GetAppraisers(ctx context.Context) ([]dto.UserDTO, error)
	GetUserByID(ctx context.Context, id string) (*dto.UserDTO, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id string, payload dto.UpdateUserDTO) (*dto.UserDTO, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toUserDTOs(users), nil
}

func (s *UserService) GetAppraisers(ctx context.Context) ([]dto.UserDTO, error) {
	appraisers, err := s.userRepo.GetAppraisers(ctx)
	if err != nil {
		return nil, err
	}
	return toUserDTOs(appraisers), nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	userDTO := ToUserDTO(user)
	return &userDTO, nil
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	role := constants.UserRole(payload.Role)
	if role == constants.RoleRzeczoznawca {
		for _, v := range payload.AssignedVoivodeships {
			if !constants.IsKnownVoivodeship(v) {
				return nil, apperrors.NewInvalidInputError("nieznane województwo: %s", v)
			}
		}
	}

	user := &entities.User{
		ID:                   fmt.Sprintf("user-%d", time.Now().UnixMilli()),
		Email:                payload.Email,
		Password:             payload.Password,
		Role:                 role,
		FirstName:            payload.FirstName,
		LastName:             payload.LastName,
		City:                 payload.City,
		Phone:                payload.Phone,
		AssignedVoivodeships: payload.AssignedVoivodeships,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("dodano użytkownika",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("role", user.Role.String()),
	)
	userDTO := ToUserDTO(user)
	return &userDTO, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.FirstName.Valid {
		user.FirstName = payload.FirstName.String
	}
	if payload.LastName.Valid {
		user.LastName = payload.LastName.String
	}
	if payload.City.Valid {
		city := payload.City.String
		user.City = &city
	}
	if payload.Phone.Valid {
		phone := payload.Phone.String
		user.Phone = &phone
	}
	if payload.AssignedVoivodeships != nil {
		for _, v := range payload.AssignedVoivodeships {
			if !constants.IsKnownVoivodeship(v) {
				return nil, apperrors.NewInvalidInputError("nieznane województwo: %s", v)
			}
		}
		user.AssignedVoivodeships = payload.AssignedVoivodeships
	}
	if payload.NotificationPreferences != nil {
		user.NotificationPreferences = &entities.NotificationPreferences{
			NewOrders:     payload.NotificationPreferences.NewOrders,
			StatusChanges: payload.NotificationPreferences.StatusChanges,
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	userDTO := ToUserDTO(user)
	return &userDTO, nil
}

// ToUserDTO - publiczna projekcja użytkownika; hasło zostaje w encji.
func ToUserDTO(user *entities.User) dto.UserDTO {
	userDTO := dto.UserDTO{
		ID:                   user.ID,
		Email:                user.Email,
		Role:                 user.Role,
		FirstName:            user.FirstName,
		LastName:             user.LastName,
		City:                 user.City,
		Phone:                user.Phone,
		AssignedVoivodeships: user.AssignedVoivodeships,
	}
	if user.NotificationPreferences != nil {
		userDTO.NotificationPreferences = &dto.NotificationPreferencesDTO{
			NewOrders:     user.NotificationPreferences.NewOrders,
			StatusChanges: user.NotificationPreferences.StatusChanges,
		}
	}
	return userDTO
}

func toUserDTOs(users []*entities.User) []dto.UserDTO {
	result := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, ToUserDTO(u))
	}
	return result
}
