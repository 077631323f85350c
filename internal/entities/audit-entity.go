package entities

import "time"

// AuditLogEntry - niezmienny rekord dziennika audytu. Lista rośnie od początku
// (najnowsze wpisy na górze), nic nie jest edytowane ani kasowane.
type AuditLogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
	UserEmail string    `json:"user_email"`
	Action    string    `json:"action"`  // np. "Utworzono leada", "Zmiana statusu zlecenia"
	Details   string    `json:"details"` // np. "Zlecenie #5: Nowe -> Zarezerwowane"
}
