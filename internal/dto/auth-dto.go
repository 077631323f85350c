package dto

import "operaty-system/pkg/constants"

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthResponseDTO struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}

// UserDTO - publiczna projekcja użytkownika, bez hasła.
type UserDTO struct {
	ID                      string                      `json:"id"`
	Email                   string                      `json:"email"`
	Role                    constants.UserRole          `json:"role"`
	FirstName               string                      `json:"first_name"`
	LastName                string                      `json:"last_name"`
	City                    *string                     `json:"city,omitempty"`
	Phone                   *string                     `json:"phone,omitempty"`
	AssignedVoivodeships    []string                    `json:"assigned_voivodeships,omitempty"`
	NotificationPreferences *NotificationPreferencesDTO `json:"notification_preferences,omitempty"`
}

type NotificationPreferencesDTO struct {
	NewOrders     []string `json:"new_orders" validate:"dive,oneof=email sms"`
	StatusChanges []string `json:"status_changes" validate:"dive,oneof=email sms"`
}
