package dto

import (
	"github.com/aarondl/null/v8"

	"operaty-system/internal/entities"
)

// CreateLeadDTO - minimalny zestaw pól do zarejestrowania leada.
// Reszta rekordu dochodzi w trakcie obróbki.
type CreateLeadDTO struct {
	LocationString   string  `json:"location_string" validate:"required"`
	PropertyType     string  `json:"property_type" validate:"required"`
	ValuationPurpose string  `json:"valuation_purpose" validate:"required"`
	Source           *string `json:"source,omitempty"`
	KWNumber         *string `json:"kw_number,omitempty" validate:"omitempty,kw_number"`
	AdditionalNotes  *string `json:"additional_notes,omitempty"`

	ClientFullName      string  `json:"client_full_name" validate:"required"`
	ClientPhone         string  `json:"client_phone" validate:"required,phone_PL"`
	ClientEmail         *string `json:"client_email,omitempty" validate:"omitempty,email"`
	ClientAppraisalForm string  `json:"client_appraisal_form" validate:"required"`
}

// UpdateZlecenieDTO - częściowa edycja pól merytorycznych. Pola przepływu
// (status, przypisanie, checklista) mają własne operacje i tu nie wchodzą.
type UpdateZlecenieDTO struct {
	LocationString   null.String `json:"location_string"`
	KWNumber         null.String `json:"kw_number" validate:"omitempty,kw_number"`
	PropertyType     null.String `json:"property_type"`
	ValuationPurpose null.String `json:"valuation_purpose"`
	Source           null.String `json:"source"`
	AdditionalNotes  null.String `json:"additional_notes"`

	ClientFullName      null.String `json:"client_full_name"`
	ClientPhone         null.String `json:"client_phone" validate:"omitempty,phone_PL"`
	ClientEmail         null.String `json:"client_email" validate:"omitempty,email"`
	ClientAppraisalForm null.String `json:"client_appraisal_form"`

	ClientPrice            null.Float64 `json:"client_price"`
	ProposedPrice          null.Float64 `json:"proposed_price"`
	ProposedCompletionDate null.String  `json:"proposed_completion_date" validate:"omitempty,date_only"`
}

type ChangeStatusDTO struct {
	Status string `json:"status" validate:"required"`
}

type CancelZlecenieDTO struct {
	Reason string `json:"reason" validate:"required"`
}

type AssignAppraiserDTO struct {
	AppraiserID string `json:"appraiser_id" validate:"required"`
	Status      string `json:"status" validate:"required,oneof='W trakcie' 'Do rozliczenia'"`
}

type UpdateSubStatusDTO struct {
	SubStatus *string `json:"sub_status" validate:"omitempty,oneof='Oczekuje na oględziny' 'Oględziny wykonane' 'Operat w przygotowaniu'"`
}

type AppraiserResponseDTO struct {
	ProposedPrice  *float64 `json:"proposed_price,omitempty" validate:"omitempty,gt=0"`
	CompletionDate string   `json:"completion_date" validate:"required,date_only"`
	Questions      string   `json:"questions"`
	Status         string   `json:"status" validate:"required,oneof=accepted counter-offer"`
}

type CommunicationEntryDTO struct {
	Content string `json:"content" validate:"required"`
}

type SubmitOperatDTO struct {
	ActualCompletionDate string `form:"actual_completion_date" validate:"required,date_only"`
}

type UpdateChecklistItemDTO struct {
	Item  string `json:"item" validate:"required,oneof=operatPobrany fakturaWystawiona fakturaOplacona operatPrzekazany rozliczonoZRzeczoznawca"`
	Value bool   `json:"value"`
}

// ZlecenieFilterDTO - parametry zapytania listy zleceń. Filtry listowe są
// koniunkcyjne, pusta lista oznacza brak filtra.
type ZlecenieFilterDTO struct {
	Tab              string   `query:"tab" validate:"omitempty,oneof=zlecenia gielda"`
	Status           []string `query:"status"`
	PropertyType     []string `query:"property_type"`
	ValuationPurpose []string `query:"valuation_purpose"`
	SortBy           string   `query:"sort_by" validate:"omitempty,oneof=date_asc date_desc price_asc price_desc"`
}

// ZlecenieListDTO - odpowiedź listy z licznikiem po filtrach.
type ZlecenieListDTO struct {
	Total    int                  `json:"total"`
	Zlecenia []*entities.Zlecenie `json:"zlecenia"`
}
