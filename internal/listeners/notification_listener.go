// Plik: internal/listeners/notification_listener.go
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

// NotificationListener zamienia wybrane zdarzenia domenowe na powiadomienia
// w dzwonku. Nie każde zdarzenie generuje powiadomienie - edycje pól
// i wpisy dziennika zostają tylko w audycie.
type NotificationListener struct {
	notificationRepo repositories.NotificationRepositoryInterface
	logger           *zap.Logger
}

func NewNotificationListener(
	notificationRepo repositories.NotificationRepositoryInterface,
	logger *zap.Logger,
) *NotificationListener {
	return &NotificationListener{notificationRepo: notificationRepo, logger: logger}
}

func (l *NotificationListener) Register(bus *eventbus.Bus) {
	for _, name := range []string{
		events.LeadCreated,
		events.LeadConverted,
		events.StatusChanged,
		events.Cancelled,
		events.AppraiserAssigned,
		events.ResponseAdded,
		events.OperatSubmitted,
		events.Finalized,
	} {
		bus.Subscribe(name, l.Handle)
	}
}

func (l *NotificationListener) Handle(ctx context.Context, event eventbus.Event) error {
	var (
		message string
		itemID  string
	)

	switch e := event.(type) {
	case events.LeadCreatedEvent:
		message = fmt.Sprintf("Dodano nowego leada #%s", e.Zlecenie.ID)
		itemID = e.Zlecenie.ID
	case events.LeadConvertedEvent:
		message = fmt.Sprintf("Zlecenie #%s zostało opublikowane na giełdzie.", e.ZlecenieID)
		itemID = e.ZlecenieID
	case events.StatusChangedEvent:
		message = fmt.Sprintf("Status zlecenia #%s zmieniono na: %s", e.ZlecenieID, e.NewStatus)
		itemID = e.ZlecenieID
	case events.CancelledEvent:
		message = fmt.Sprintf("Zlecenie #%s zostało anulowane.", e.ZlecenieID)
		itemID = e.ZlecenieID
	case events.AppraiserAssignedEvent:
		message = fmt.Sprintf("Zlecenie #%s przypisano do rzeczoznawcy %s.", e.ZlecenieID, e.AppraiserEmail)
		itemID = e.ZlecenieID
	case events.ResponseAddedEvent:
		message = fmt.Sprintf("Rzeczoznawca %s odpowiedział na zlecenie #%s.", e.AppraiserEmail, e.ZlecenieID)
		itemID = e.ZlecenieID
	case events.OperatSubmittedEvent:
		message = fmt.Sprintf("Operat dla zlecenia #%s został przekazany do rozliczenia.", e.ZlecenieID)
		itemID = e.ZlecenieID
	case events.FinalizedEvent:
		message = fmt.Sprintf("Zlecenie #%s zostało zakończone.", e.ZlecenieID)
		itemID = e.ZlecenieID
	default:
		return nil
	}

	notification := &entities.Notification{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Message:   message,
		IsRead:    false,
		Link:      &entities.NotificationLink{View: "zlecenia", ItemID: itemID},
	}

	l.logger.Debug("nowe powiadomienie", zap.String("message", message))
	return l.notificationRepo.Create(ctx, notification)
}
