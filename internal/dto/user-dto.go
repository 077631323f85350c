package dto

import "github.com/aarondl/null/v8"

type CreateUserDTO struct {
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=4"`
	Role      string   `json:"role" validate:"required,oneof=Admin Pracownik Rzeczoznawca"`
	FirstName string   `json:"first_name" validate:"required"`
	LastName  string   `json:"last_name" validate:"required"`
	City      *string  `json:"city,omitempty"`
	Phone     *string  `json:"phone,omitempty" validate:"omitempty,phone_PL"`

	AssignedVoivodeships []string `json:"assigned_voivodeships,omitempty"`
}

// UpdateUserDTO - częściowa aktualizacja profilu; pola nieprzysłane
// zostają nietknięte.
type UpdateUserDTO struct {
	FirstName null.String `json:"first_name"`
	LastName  null.String `json:"last_name"`
	City      null.String `json:"city"`
	Phone     null.String `json:"phone"`

	AssignedVoivodeships    []string                    `json:"assigned_voivodeships,omitempty"`
	NotificationPreferences *NotificationPreferencesDTO `json:"notification_preferences,omitempty"`
}
