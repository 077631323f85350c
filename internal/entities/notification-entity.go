package entities

import "time"

type NotificationLink struct {
	View   string `json:"view"` // na razie tylko "zlecenia"
	ItemID string `json:"item_id"`
}

// Notification powstaje wyłącznie jako efekt uboczny operacji domenowych.
// Jedyna dozwolona mutacja to przestawienie IsRead.
type Notification struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Message   string            `json:"message"`
	IsRead    bool              `json:"is_read"`
	Link      *NotificationLink `json:"link,omitempty"`
}
