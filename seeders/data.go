// Plik: seeders/data.go
package seeders

import (
	"time"

	"operaty-system/internal/entities"
	"operaty-system/pkg/constants"
)

func mockUsers() []*entities.User {
	return []*entities.User{
		{
			ID: "1", Email: "admin@wyceny.pl", Password: "admin", Role: constants.RoleAdmin,
			FirstName: "Adam", LastName: "Nowak", City: ptr("Warszawa"), Phone: ptr("111-222-333"),
		},
		{
			ID: "2", Email: "rzeczoznawca1@firma.pl", Password: "user", Role: constants.RoleRzeczoznawca,
			FirstName: "Jan", LastName: "Kowalski", City: ptr("Warszawa"), Phone: ptr("123-456-789"),
			AssignedVoivodeships: []string{"mazowieckie"},
			NotificationPreferences: &entities.NotificationPreferences{
				NewOrders:     []string{"email"},
				StatusChanges: []string{"email", "sms"},
			},
		},
		{
			ID: "3", Email: "rzeczoznawca2@firma.pl", Password: "user", Role: constants.RoleRzeczoznawca,
			FirstName: "Anna", LastName: "Wiśniewska", City: ptr("Kraków"), Phone: ptr("987-654-321"),
			AssignedVoivodeships: []string{"małopolskie"},
			NotificationPreferences: &entities.NotificationPreferences{
				NewOrders:     []string{"sms"},
				StatusChanges: []string{"email"},
			},
		},
		{
			ID: "4", Email: "pracownik@wyceny.pl", Password: "user", Role: constants.RolePracownik,
			FirstName: "Piotr", LastName: "Zieliński", City: ptr("Warszawa"), Phone: ptr("444-555-666"),
		},
	}
}

// mockZlecenia - przykładowy zestaw rekordów pokrywający każdy etap przepływu:
// giełda, rezerwacja, realizacja, rozliczenie, archiwum, leady i anulacja.
func mockZlecenia(now time.Time) []*entities.Zlecenie {
	daysAgo := func(days float64) time.Time {
		return now.Add(-time.Duration(days*24) * time.Hour)
	}
	subStatus := constants.SubStatusOgledzinyWykonane

	return []*entities.Zlecenie{
		{
			ID: "1", CreationDate: daysAgo(1), PublicationDate: tptr(daysAgo(1)),
			Status: constants.StatusNowe, LocationString: "ul. Marszałkowska 1, Warszawa",
			Coordinates: &entities.Coordinates{Lat: 52.23, Lng: 21.01}, Voivodeship: ptr("mazowieckie"),
			PropertyType: "Mieszkanie", ValuationPurpose: "Kredyt hipoteczny",
			ProposedPrice:          fptr(1000),
			ProposedCompletionDate: ptr(now.Add(10 * 24 * time.Hour).Format("2006-01-02")),
			ClientDetails: entities.ClientDetails{
				FullName: "Jan Nowak", Phone: "111-000-111", AppraisalForm: "Elektroniczny",
			},
			Responses: []entities.AppraiserResponse{}, Attachments: []entities.FileAttachment{},
			CommunicationLog: []entities.CommunicationEntry{},
		},
		{
			ID: "3", CreationDate: daysAgo(3), PublicationDate: tptr(daysAgo(3)),
			Status: constants.StatusNowe, LocationString: "Aleje Jerozolimskie 90, Warszawa",
			Coordinates: &entities.Coordinates{Lat: 52.228, Lng: 21.00}, Voivodeship: ptr("mazowieckie"),
			PropertyType: "Lokal usługowy", ValuationPurpose: "Kredyt hipoteczny",
			ProposedPrice: fptr(2500),
			ClientDetails: entities.ClientDetails{
				FullName: "Firma XYZ", Phone: "111-000-333", AppraisalForm: "Elektroniczny",
			},
			Responses: []entities.AppraiserResponse{}, Attachments: []entities.FileAttachment{},
			CommunicationLog: []entities.CommunicationEntry{},
		},
		{
			ID: "4", CreationDate: daysAgo(32), PublicationDate: tptr(daysAgo(32)),
			Status: constants.StatusZakonczone, LocationString: "ul. Długa 4, Gdańsk",
			Coordinates: &entities.Coordinates{Lat: 54.34, Lng: 18.65}, Voivodeship: ptr("pomorskie"),
			PropertyType: "Mieszkanie", ValuationPurpose: "Postępowanie spadkowe",
			ProposedPrice: fptr(900), AssignedAppraiserID: ptr("2"),
			ActualCompletionDate: ptr(daysAgo(30).Format("2006-01-02")),
			ClientDetails: entities.ClientDetails{
				FullName: "Anna Kowalska", Phone: "111-000-444", AppraisalForm: "Elektroniczny",
			},
			Responses: []entities.AppraiserResponse{}, Attachments: []entities.FileAttachment{},
			CommunicationLog: []entities.CommunicationEntry{},
		},
		{
			ID: "5", CreationDate: daysAgo(15), PublicationDate: tptr(daysAgo(15)),
			Status: constants.StatusDoRozliczenia, LocationString: "Rynek Główny 1, Kraków",
			Coordinates: &entities.Coordinates{Lat: 50.061, Lng: 19.937}, Voivodeship: ptr("małopolskie"),
			PropertyType: "Lokal usługowy", ValuationPurpose: "Sprzedaż",
			ProposedPrice: fptr(3200), AssignedAppraiserID: ptr("3"),
			ActualCompletionDate: ptr(daysAgo(2).Format("2006-01-02")),
			SettlementChecklist: &entities.SettlementChecklist{
				OperatPobrany:     true,
				FakturaWystawiona: true,
			},
			ClientDetails: entities.ClientDetails{
				FullName: "Piotr Wiśniewski", Phone: "111-000-555", AppraisalForm: "Elektroniczny",
			},
			Responses: []entities.AppraiserResponse{}, Attachments: []entities.FileAttachment{},
			CommunicationLog: []entities.CommunicationEntry{},
		},
		{
			ID: "6", CreationDate: daysAgo(10), PublicationDate: tptr(daysAgo(10)),
			Status: constants.StatusWTrakcie, SubStatus: &subStatus,
			LocationString: "ul. Piotrkowska 100, Łódź",
			Coordinates:    &entities.Coordinates{Lat: 51.76, Lng: 19.45}, Voivodeship: ptr("łódzkie"),
			PropertyType: "Mieszkanie", ValuationPurpose: "Podział majątku",
			ProposedPrice: fptr(750), AssignedAppraiserID: ptr("3"),
			ClientDetails: entities.ClientDetails{
				FullName: "Katarzyna Zielińska", Phone: "111-000-666", AppraisalForm: "Elektroniczny",
			},
			Responses: []entities.AppraiserResponse{}, Attachments: []entities.FileAttachment{},
			CommunicationLog: []entities.CommunicationEntry{},
		},
		{
			ID: "2", CreationDate: daysAgo(3), PublicationDate: tptr(daysAgo(2)),
			Status: constants.StatusZarezerwowane, Source: ptr("Formularz"),
			LocationString: "ul. Floriańska 15, Kraków", KWNumber: ptr("KR1P/00055555/5"),
			Coordinates: &entities.Coordinates{Lat: 50.06, Lng: 19.94}, Voivodeship: ptr("małopolskie"),
			PropertyType: "Dom", ValuationPurpose: "Sprzedaż",
			ClientPrice: fptr(2200), ProposedPrice: fptr(1500), AssignedAppraiserID: ptr("3"),
			ClientDetails: entities.ClientDetails{
				FullName: "Ewa Dąbrowska", Phone: "602-333-444", AppraisalForm: "Obydwa",
			},
			Responses: []entities.AppraiserResponse{{
				ID: "resp1", AuthorID: "3", Author: "rzeczoznawca2@firma.pl",
				CompletionDate: "2024-08-10", Questions: "Czy jest dostęp do poddasza?",
				Status: "accepted", CreatedAt: daysAgo(2),
			}},
			Attachments: []entities.FileAttachment{},
			CommunicationLog: []entities.CommunicationEntry{
				{ID: "logL3-1", Date: daysAgo(3), Author: constants.SystemAuthor, Content: "Lead utworzony."},
				{ID: "logL3-2", Date: daysAgo(2), Author: constants.SystemAuthor, Content: "Lead skonwertowany na zlecenie #2."},
			},
		},
		{
			ID: "L1", CreationDate: daysAgo(1), Status: constants.StatusLead, Source: ptr("Telefon"),
			LocationString: "ul. Słoneczna 10, Warszawa, Mokotów", KWNumber: ptr("WA1M/00012345/6"),
			PropertyType: "Mieszkanie", ValuationPurpose: "Kredyt hipoteczny",
			ClientPrice: fptr(1200), ProposedPrice: fptr(850),
			AdditionalNotes: ptr("Pilne, klientowi zależy na czasie."),
			ClientDetails: entities.ClientDetails{
				FullName: "Jan Kowalski (tel)", Phone: "501-111-222",
				Email: ptr("jan.kowalski@example.com"), AppraisalForm: "Elektroniczny",
			},
			Responses: []entities.AppraiserResponse{}, Attachments: []entities.FileAttachment{},
			CommunicationLog: []entities.CommunicationEntry{
				{ID: "logL1", Date: daysAgo(1), Author: constants.SystemAuthor, Content: "Lead utworzony."},
			},
		},
		{
			ID: "L4", CreationDate: daysAgo(4), Status: constants.StatusAnulowane, Source: ptr("Telefon"),
			LocationString: "Poznań", PropertyType: "Dom", ValuationPurpose: "Inny",
			ClientPrice:     fptr(0),
			AdditionalNotes: ptr("Klient tylko pytał o orientacyjną cenę, nie był zainteresowany zleceniem."),
			ClientDetails: entities.ClientDetails{
				FullName: "Klient Niezainteresowany", Phone: "Brak danych", AppraisalForm: "Elektroniczny",
			},
			Responses: []entities.AppraiserResponse{}, Attachments: []entities.FileAttachment{},
			CommunicationLog: []entities.CommunicationEntry{
				{ID: "logL4-1", Date: daysAgo(4), Author: constants.SystemAuthor, Content: "Lead utworzony."},
				{ID: "logL4-2", Date: daysAgo(4), Author: constants.SystemAuthor, Content: "Zmieniono status na: Anulowane."},
			},
		},
		{
			ID: "L9", CreationDate: daysAgo(2.5), Status: constants.StatusLead, Source: ptr("Telefon"),
			LocationString: "Katowice, okolice Spodka", PropertyType: "Inny", ValuationPurpose: "Inny",
			ClientPrice:     fptr(1300),
			AdditionalNotes: ptr("Klient dzwonił w sprawie wyceny garażu podziemnego."),
			ClientDetails: entities.ClientDetails{
				FullName: "Klient Garaż", Phone: "222-444-666", AppraisalForm: "Elektroniczny",
			},
			Responses: []entities.AppraiserResponse{}, Attachments: []entities.FileAttachment{},
			CommunicationLog: []entities.CommunicationEntry{
				{ID: "logL9", Date: daysAgo(2.5), Author: constants.SystemAuthor, Content: "Lead utworzony."},
			},
		},
	}
}

func ptr(s string) *string        { return &s }
func fptr(f float64) *float64     { return &f }
func tptr(t time.Time) *time.Time { return &t }
