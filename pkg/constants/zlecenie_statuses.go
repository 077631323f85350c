package constants

// --- STATUSY ZLECEŃ ---
// Wartości są jednocześnie etykietami widocznymi dla użytkownika,
// dokładnie tak jak w dzienniku komunikacji ("Zmieniono status z 'X' na 'Y'.").
type ZlecenieStatus string

const (
	StatusLead          ZlecenieStatus = "Lead"
	StatusDoAkceptacji  ZlecenieStatus = "Do akceptacji"
	StatusNowe          ZlecenieStatus = "Nowe"
	StatusZarezerwowane ZlecenieStatus = "Zarezerwowane"
	StatusWTrakcie      ZlecenieStatus = "W trakcie"
	StatusDoRozliczenia ZlecenieStatus = "Do rozliczenia"
	StatusZakonczone    ZlecenieStatus = "Zakończone"
	StatusAnulowane     ZlecenieStatus = "Anulowane"
)

func (s ZlecenieStatus) String() string { return string(s) }

var ZlecenieStatuses = []ZlecenieStatus{
	StatusLead,
	StatusDoAkceptacji,
	StatusNowe,
	StatusZarezerwowane,
	StatusWTrakcie,
	StatusDoRozliczenia,
	StatusZakonczone,
	StatusAnulowane,
}

// Statusy terminalne
var FinalStatuses = []ZlecenieStatus{
	StatusZakonczone,
	StatusAnulowane,
}

func IsFinalStatus(s ZlecenieStatus) bool {
	for _, fs := range FinalStatuses {
		if fs == s {
			return true
		}
	}
	return false
}

func IsValidStatus(s ZlecenieStatus) bool {
	for _, vs := range ZlecenieStatuses {
		if vs == s {
			return true
		}
	}
	return false
}

// --- PODSTATUSY (tylko dla statusu "W trakcie") ---
type SubStatus string

const (
	SubStatusOczekujeNaOgledziny  SubStatus = "Oczekuje na oględziny"
	SubStatusOgledzinyWykonane    SubStatus = "Oględziny wykonane"
	SubStatusOperatWPrzygotowaniu SubStatus = "Operat w przygotowaniu"
)

var SubStatuses = []SubStatus{
	SubStatusOczekujeNaOgledziny,
	SubStatusOgledzinyWykonane,
	SubStatusOperatWPrzygotowaniu,
}

func IsValidSubStatus(s SubStatus) bool {
	for _, vs := range SubStatuses {
		if vs == s {
			return true
		}
	}
	return false
}
