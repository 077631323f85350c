// Plik: internal/events/zlecenie_events.go
package events

import (
	"operaty-system/internal/entities"
	"operaty-system/pkg/constants"
)

const (
	LeadCreated       = "zlecenie.lead_created"
	LeadConverted     = "zlecenie.lead_converted"
	StatusChanged     = "zlecenie.status_changed"
	Cancelled         = "zlecenie.cancelled"
	AppraiserAssigned = "zlecenie.appraiser_assigned"
	SubStatusChanged  = "zlecenie.sub_status_changed"
	ResponseAdded     = "zlecenie.response_added"
	AttachmentAdded   = "zlecenie.attachment_added"
	AttachmentRemoved = "zlecenie.attachment_removed"
	OperatSubmitted   = "zlecenie.operat_submitted"
	ChecklistUpdated  = "zlecenie.checklist_updated"
	Finalized         = "zlecenie.finalized"
	Updated           = "zlecenie.updated"
	EntryAdded        = "zlecenie.entry_added"
)

// Actor - kto wykonał operację. Wpisy audytu i treści powiadomień biorą
// stąd email, nie z bieżącej sesji.
type Actor struct {
	UserID string
	Email  string
}

type LeadCreatedEvent struct {
	Zlecenie *entities.Zlecenie
	Actor    Actor
}

func (e LeadCreatedEvent) Name() string { return LeadCreated }

type LeadConvertedEvent struct {
	ZlecenieID string
	Actor      Actor
}

func (e LeadConvertedEvent) Name() string { return LeadConverted }

type StatusChangedEvent struct {
	ZlecenieID string
	OldStatus  constants.ZlecenieStatus
	NewStatus  constants.ZlecenieStatus
	Actor      Actor
}

func (e StatusChangedEvent) Name() string { return StatusChanged }

type CancelledEvent struct {
	ZlecenieID string
	OldStatus  constants.ZlecenieStatus
	Reason     string
	Actor      Actor
}

func (e CancelledEvent) Name() string { return Cancelled }

type AppraiserAssignedEvent struct {
	ZlecenieID     string
	AppraiserID    string
	AppraiserEmail string
	OldStatus      constants.ZlecenieStatus
	NewStatus      constants.ZlecenieStatus
	Actor          Actor
}

func (e AppraiserAssignedEvent) Name() string { return AppraiserAssigned }

type SubStatusChangedEvent struct {
	ZlecenieID string
	SubStatus  *constants.SubStatus // nil = podstatus zdjęty
	Actor      Actor
}

func (e SubStatusChangedEvent) Name() string { return SubStatusChanged }

type ResponseAddedEvent struct {
	ZlecenieID     string
	AppraiserEmail string
	ResponseStatus string // "accepted" | "counter-offer"
	Actor          Actor
}

func (e ResponseAddedEvent) Name() string { return ResponseAdded }

type AttachmentAddedEvent struct {
	ZlecenieID string
	FileName   string
	Actor      Actor
}

func (e AttachmentAddedEvent) Name() string { return AttachmentAdded }

type AttachmentRemovedEvent struct {
	ZlecenieID string
	FileName   string
	Actor      Actor
}

func (e AttachmentRemovedEvent) Name() string { return AttachmentRemoved }

type OperatSubmittedEvent struct {
	ZlecenieID string
	FileName   string
	Actor      Actor
}

func (e OperatSubmittedEvent) Name() string { return OperatSubmitted }

type ChecklistUpdatedEvent struct {
	ZlecenieID string
	Item       string
	Value      bool
	Actor      Actor
}

func (e ChecklistUpdatedEvent) Name() string { return ChecklistUpdated }

type FinalizedEvent struct {
	ZlecenieID string
	Actor      Actor
}

func (e FinalizedEvent) Name() string { return Finalized }

type UpdatedEvent struct {
	ZlecenieID string
	Actor      Actor
}

func (e UpdatedEvent) Name() string { return Updated }

type EntryAddedEvent struct {
	ZlecenieID string
	Actor      Actor
}

func (e EntryAddedEvent) Name() string { return EntryAdded }
