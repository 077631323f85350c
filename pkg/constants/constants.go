// Plik: pkg/constants/constants.go
package constants

//============== ROLE UŻYTKOWNIKÓW ==============

type UserRole string

const (
	RoleAdmin        UserRole = "Admin"
	RolePracownik    UserRole = "Pracownik"
	RoleRzeczoznawca UserRole = "Rzeczoznawca"
)

func (r UserRole) String() string { return string(r) }

// IsInternal - pracownicy biura widzą pełną pulę zleceń.
func (r UserRole) IsInternal() bool {
	return r == RoleAdmin || r == RolePracownik
}

//============== SŁOWNIKI ==============

var PropertyTypes = []string{
	"Mieszkanie",
	"Dom",
	"Działka",
	"Lokal usługowy",
	"Inny",
}

var ValuationPurposes = []string{
	"Kredyt hipoteczny",
	"Sprzedaż",
	"Podział majątku",
	"Postępowanie spadkowe",
	"Inny",
}

var AppraisalForms = []string{
	"Elektroniczny",
	"Papierowy",
	"Obydwa",
}

var LeadSources = []string{
	"Telefon",
	"Email",
	"Formularz",
}

// Klucze województw: małe litery, pełne znaki diakrytyczne. Geokoder musi
// zwracać nazwy dokładnie w tej postaci, inaczej filtrowanie po regionie
// rzeczoznawcy przestaje działać.
var Voivodeships = []string{
	"dolnośląskie",
	"kujawsko-pomorskie",
	"lubelskie",
	"lubuskie",
	"łódzkie",
	"małopolskie",
	"mazowieckie",
	"opolskie",
	"podkarpackie",
	"podlaskie",
	"pomorskie",
	"śląskie",
	"świętokrzyskie",
	"warmińsko-mazurskie",
	"wielkopolskie",
	"zachodniopomorskie",
}

func IsKnownVoivodeship(name string) bool {
	for _, v := range Voivodeships {
		if v == name {
			return true
		}
	}
	return false
}

//============== ZAŁĄCZNIKI ==============

// Prefiksy identyfikatorów plików. Załącznik z prefiksem operatu jest
// rozpoznawany przy zakładaniu checklisty rozliczeniowej.
const (
	AttachmentIDPrefix       = "file-"
	OperatAttachmentIDPrefix = "file-operat-"
)

//============== AUTOR WPISÓW SYSTEMOWYCH ==============

const SystemAuthor = "System"
