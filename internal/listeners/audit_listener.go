// Plik: internal/listeners/audit_listener.go
package listeners

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"operaty-system/internal/entities"
	"operaty-system/internal/events"
	"operaty-system/internal/repositories"
	"operaty-system/pkg/eventbus"
)

// AuditListener przekłada zdarzenia domenowe na wpisy dziennika audytu.
// Jest subskrybentem każdego zdarzenia zlecenia - dziennik ma być kompletny.
type AuditListener struct {
	auditRepo repositories.AuditRepositoryInterface
	logger    *zap.Logger
}

func NewAuditListener(auditRepo repositories.AuditRepositoryInterface, logger *zap.Logger) *AuditListener {
	return &AuditListener{auditRepo: auditRepo, logger: logger}
}

func (l *AuditListener) Register(bus *eventbus.Bus) {
	for _, name := range []string{
		events.LeadCreated,
		events.LeadConverted,
		events.StatusChanged,
		events.Cancelled,
		events.AppraiserAssigned,
		events.SubStatusChanged,
		events.ResponseAdded,
		events.AttachmentAdded,
		events.OperatSubmitted,
		events.ChecklistUpdated,
		events.Finalized,
		events.Updated,
		events.EntryAdded,
	} {
		bus.Subscribe(name, l.Handle)
	}
}

// Handle mapuje zdarzenie na akcję i szczegóły wpisu.
func (l *AuditListener) Handle(ctx context.Context, event eventbus.Event) error {
	var (
		actor   events.Actor
		action  string
		details string
	)

	switch e := event.(type) {
	case events.LeadCreatedEvent:
		actor = e.Actor
		action = "Utworzono leada"
		details = fmt.Sprintf("Lead #%s: %s", e.Zlecenie.ID, e.Zlecenie.LocationString)
	case events.LeadConvertedEvent:
		actor = e.Actor
		action = "Przekształcono leada w zlecenie"
		details = fmt.Sprintf("Zlecenie #%s opublikowano na giełdzie", e.ZlecenieID)
	case events.StatusChangedEvent:
		actor = e.Actor
		action = "Zmiana statusu zlecenia"
		details = fmt.Sprintf("Zlecenie #%s: %s -> %s", e.ZlecenieID, e.OldStatus, e.NewStatus)
	case events.CancelledEvent:
		actor = e.Actor
		action = "Anulowano zlecenie"
		details = fmt.Sprintf("Zlecenie #%s. Powód: %s", e.ZlecenieID, e.Reason)
	case events.AppraiserAssignedEvent:
		actor = e.Actor
		action = "Przypisano rzeczoznawcę i zmieniono status"
		details = fmt.Sprintf("Zlecenie #%s: %s (%s -> %s)", e.ZlecenieID, e.AppraiserEmail, e.OldStatus, e.NewStatus)
	case events.SubStatusChangedEvent:
		actor = e.Actor
		action = "Zmiana podstatusu zlecenia"
		if e.SubStatus != nil {
			details = fmt.Sprintf("Zlecenie #%s: %s", e.ZlecenieID, *e.SubStatus)
		} else {
			details = fmt.Sprintf("Zlecenie #%s: usunięto podstatus", e.ZlecenieID)
		}
	case events.ResponseAddedEvent:
		actor = e.Actor
		action = "Odpowiedź rzeczoznawcy"
		details = fmt.Sprintf("Zlecenie #%s: %s (%s)", e.ZlecenieID, e.AppraiserEmail, e.ResponseStatus)
	case events.AttachmentAddedEvent:
		actor = e.Actor
		action = "Dodano załącznik"
		details = fmt.Sprintf("Zlecenie #%s: %s", e.ZlecenieID, e.FileName)
	case events.OperatSubmittedEvent:
		actor = e.Actor
		action = "Przekazano operat"
		details = fmt.Sprintf("Zlecenie #%s: %s", e.ZlecenieID, e.FileName)
	case events.ChecklistUpdatedEvent:
		actor = e.Actor
		action = "Aktualizacja checklisty rozliczenia"
		details = fmt.Sprintf("Zlecenie #%s: %s = %t", e.ZlecenieID, e.Item, e.Value)
	case events.FinalizedEvent:
		actor = e.Actor
		action = "Zakończono zlecenie"
		details = fmt.Sprintf("Zlecenie #%s przeniesiono do archiwum", e.ZlecenieID)
	case events.UpdatedEvent:
		actor = e.Actor
		action = "Edycja zlecenia"
		details = fmt.Sprintf("Zlecenie #%s", e.ZlecenieID)
	case events.EntryAddedEvent:
		actor = e.Actor
		action = "Wpis w dzienniku komunikacji"
		details = fmt.Sprintf("Zlecenie #%s", e.ZlecenieID)
	default:
		l.logger.Warn("nieznane zdarzenie w audycie", zap.String("event", event.Name()))
		return nil
	}

	entry := &entities.AuditLogEntry{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		UserID:    actor.UserID,
		UserEmail: actor.Email,
		Action:    action,
		Details:   details,
	}
	return l.auditRepo.Create(ctx, entry)
}
