package entities

import "operaty-system/pkg/constants"

// NotificationPreferences - kanały, którymi rzeczoznawca chce dostawać
// informacje o nowych zleceniach i zmianach statusów.
type NotificationPreferences struct {
	NewOrders     []string `json:"new_orders"`      // "email" | "sms"
	StatusChanges []string `json:"status_changes"`
}

type User struct {
	ID       string             `json:"id"`
	Email    string             `json:"email"`
	Password string             `json:"-"` // porównanie wprost; świadome uproszczenie atrapy katalogu
	Role     constants.UserRole `json:"role"`

	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	City      *string `json:"city,omitempty"`
	Phone     *string `json:"phone,omitempty"`

	// Tylko rzeczoznawcy. Pusta lista = brak ograniczenia regionalnego.
	AssignedVoivodeships    []string                 `json:"assigned_voivodeships,omitempty"`
	NotificationPreferences *NotificationPreferences `json:"notification_preferences,omitempty"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) Clone() *User {
	cp := *u
	cp.City = clonePtr(u.City)
	cp.Phone = clonePtr(u.Phone)
	cp.AssignedVoivodeships = append([]string(nil), u.AssignedVoivodeships...)
	if u.NotificationPreferences != nil {
		np := NotificationPreferences{
			NewOrders:     append([]string(nil), u.NotificationPreferences.NewOrders...),
			StatusChanges: append([]string(nil), u.NotificationPreferences.StatusChanges...),
		}
		cp.NotificationPreferences = &np
	}
	return &cp
}
