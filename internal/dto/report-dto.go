package dto

// SettlementRowDTO - jeden wiersz zestawienia rozliczeń (zlecenia w statusie
// "Do rozliczenia" i zakończone).
type SettlementRowDTO struct {
	ZlecenieID           string   `json:"zlecenie_id"`
	LocationString       string   `json:"location_string"`
	Status               string   `json:"status"`
	AppraiserName        string   `json:"appraiser_name"`
	ClientPrice          *float64 `json:"client_price,omitempty"`
	ProposedPrice        *float64 `json:"proposed_price,omitempty"`
	Margin               *float64 `json:"margin,omitempty"`
	ChecklistDone        int      `json:"checklist_done"`
	ChecklistTotal       int      `json:"checklist_total"`
	ActualCompletionDate *string  `json:"actual_completion_date,omitempty"`
}
