package entities

import (
	"time"

	"operaty-system/pkg/constants"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ClientDetails struct {
	FullName      string  `json:"full_name"`
	Phone         string  `json:"phone"`
	Email         *string `json:"email,omitempty"`
	AppraisalForm string  `json:"appraisal_form"`
}

// AppraiserResponse - odpowiedź rzeczoznawcy na zlecenie z giełdy:
// akceptacja albo kontroferta.
type AppraiserResponse struct {
	ID             string    `json:"id"`
	AuthorID       string    `json:"author_id"`
	Author         string    `json:"author"`
	ProposedPrice  *float64  `json:"proposed_price,omitempty"`
	CompletionDate string    `json:"completion_date"`
	Questions      string    `json:"questions"`
	Status         string    `json:"status"` // "accepted" | "counter-offer"
	CreatedAt      time.Time `json:"created_at"`
}

type FileAttachment struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// CommunicationEntry - wpis dziennika komunikacji zlecenia. Dziennik jest
// append-only: wpisów nigdy nie edytujemy ani nie usuwamy.
type CommunicationEntry struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Author  string    `json:"author"` // "System" albo email użytkownika
	Content string    `json:"content"`
}

// SettlementChecklist - pięć niezależnych bramek rozliczenia. Powstaje leniwie
// przy pierwszym wejściu w status "Do rozliczenia" i nigdy nie znika.
type SettlementChecklist struct {
	OperatPobrany           bool `json:"operatPobrany"`
	FakturaWystawiona       bool `json:"fakturaWystawiona"`
	FakturaOplacona         bool `json:"fakturaOplacona"`
	OperatPrzekazany        bool `json:"operatPrzekazany"`
	RozliczonoZRzeczoznawca bool `json:"rozliczonoZRzeczoznawca"`
}

func (c *SettlementChecklist) IsComplete() bool {
	return c.OperatPobrany && c.FakturaWystawiona && c.FakturaOplacona &&
		c.OperatPrzekazany && c.RozliczonoZRzeczoznawca
}

// ChecklistItems - nazwy pozycji, pod którymi frontend odhacza checklistę.
var ChecklistItems = []string{
	"operatPobrany",
	"fakturaWystawiona",
	"fakturaOplacona",
	"operatPrzekazany",
	"rozliczonoZRzeczoznawca",
}

// Set ustawia pozycję checklisty po nazwie. Zwraca false dla nieznanej pozycji.
func (c *SettlementChecklist) Set(item string, value bool) bool {
	switch item {
	case "operatPobrany":
		c.OperatPobrany = value
	case "fakturaWystawiona":
		c.FakturaWystawiona = value
	case "fakturaOplacona":
		c.FakturaOplacona = value
	case "operatPrzekazany":
		c.OperatPrzekazany = value
	case "rozliczonoZRzeczoznawca":
		c.RozliczonoZRzeczoznawca = value
	default:
		return false
	}
	return true
}

// Zlecenie - centralna encja systemu. Lead i zlecenie to ten sam rekord,
// różnią się statusem oraz prefiksem identyfikatora ("L-...").
type Zlecenie struct {
	ID              string                   `json:"id"`
	CreationDate    time.Time                `json:"creation_date"`
	PublicationDate *time.Time               `json:"publication_date,omitempty"`
	Status          constants.ZlecenieStatus `json:"status"`
	SubStatus       *constants.SubStatus     `json:"sub_status,omitempty"`
	Source          *string                  `json:"source,omitempty"`

	LocationString string       `json:"location_string"`
	KWNumber       *string      `json:"kw_number,omitempty"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
	Voivodeship    *string      `json:"voivodeship,omitempty"`

	PropertyType     string `json:"property_type"`
	ValuationPurpose string `json:"valuation_purpose"`

	ClientDetails          ClientDetails `json:"client_details"`
	ClientPrice            *float64      `json:"client_price,omitempty"`
	ProposedPrice          *float64      `json:"proposed_price,omitempty"` // cena dla rzeczoznawcy
	ProposedCompletionDate *string       `json:"proposed_completion_date,omitempty"`
	ActualCompletionDate   *string       `json:"actual_completion_date,omitempty"`
	AdditionalNotes        *string       `json:"additional_notes,omitempty"`

	AssignedAppraiserID *string              `json:"assigned_appraiser_id,omitempty"`
	Responses           []AppraiserResponse  `json:"responses"`
	Attachments         []FileAttachment     `json:"attachments"`
	CommunicationLog    []CommunicationEntry `json:"communication_log"`
	SettlementChecklist *SettlementChecklist `json:"settlement_checklist,omitempty"`
}

// IsLead rozpoznaje rekordy będące jeszcze leadami po prefiksie identyfikatora.
func (z *Zlecenie) IsLead() bool {
	return len(z.ID) > 0 && z.ID[0] == 'L'
}

// HasOperatAttachment sprawdza, czy do zlecenia trafił już operat
// (załącznik z prefiksem operatu).
func (z *Zlecenie) HasOperatAttachment() bool {
	for _, a := range z.Attachments {
		if len(a.ID) >= len(constants.OperatAttachmentIDPrefix) &&
			a.ID[:len(constants.OperatAttachmentIDPrefix)] == constants.OperatAttachmentIDPrefix {
			return true
		}
	}
	return false
}

// EffectiveDate - data publikacji, a gdy jej brak, data utworzenia.
// Po niej sortuje giełda.
func (z *Zlecenie) EffectiveDate() time.Time {
	if z.PublicationDate != nil {
		return *z.PublicationDate
	}
	return z.CreationDate
}

// Clone wykonuje głęboką kopię rekordu. Każda operacja domenowa mutuje kopię
// i podmienia rekord w repozytorium w całości - nie ma stanów częściowych.
func (z *Zlecenie) Clone() *Zlecenie {
	cp := *z

	cp.SubStatus = clonePtr(z.SubStatus)
	cp.Source = clonePtr(z.Source)
	cp.KWNumber = clonePtr(z.KWNumber)
	cp.Coordinates = clonePtr(z.Coordinates)
	cp.Voivodeship = clonePtr(z.Voivodeship)
	cp.ClientPrice = clonePtr(z.ClientPrice)
	cp.ProposedPrice = clonePtr(z.ProposedPrice)
	cp.ProposedCompletionDate = clonePtr(z.ProposedCompletionDate)
	cp.ActualCompletionDate = clonePtr(z.ActualCompletionDate)
	cp.AdditionalNotes = clonePtr(z.AdditionalNotes)
	cp.AssignedAppraiserID = clonePtr(z.AssignedAppraiserID)
	cp.PublicationDate = clonePtr(z.PublicationDate)
	cp.SettlementChecklist = clonePtr(z.SettlementChecklist)
	cp.ClientDetails.Email = clonePtr(z.ClientDetails.Email)

	cp.Responses = append([]AppraiserResponse(nil), z.Responses...)
	for i := range cp.Responses {
		cp.Responses[i].ProposedPrice = clonePtr(z.Responses[i].ProposedPrice)
	}
	cp.Attachments = append([]FileAttachment(nil), z.Attachments...)
	cp.CommunicationLog = append([]CommunicationEntry(nil), z.CommunicationLog...)

	return &cp
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
