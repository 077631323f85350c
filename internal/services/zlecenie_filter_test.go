// Plik: internal/services/zlecenie_filter_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"operaty-system/internal/dto"
	"operaty-system/internal/entities"
	"operaty-system/pkg/constants"
)

func filterFixture() []*entities.Zlecenie {
	base := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	day := func(n int) time.Time { return base.AddDate(0, 0, n) }
	strp := func(s string) *string { return &s }
	fp := func(f float64) *float64 { return &f }

	return []*entities.Zlecenie{
		{
			ID: "A", CreationDate: day(0), Status: constants.StatusNowe,
			Voivodeship: strp("mazowieckie"), PropertyType: "Mieszkanie",
			ValuationPurpose: "Kredyt hipoteczny", ProposedPrice: fp(100),
		},
		{
			ID: "B", CreationDate: day(1), Status: constants.StatusNowe,
			Voivodeship: strp("małopolskie"), PropertyType: "Dom",
			ValuationPurpose: "Sprzedaż",
		},
		{
			ID: "C", CreationDate: day(2), Status: constants.StatusWTrakcie,
			Voivodeship: strp("mazowieckie"), PropertyType: "Mieszkanie",
			ValuationPurpose: "Kredyt hipoteczny", ProposedPrice: fp(300),
			AssignedAppraiserID: strp("2"),
		},
		{
			ID: "D", CreationDate: day(3), Status: constants.StatusZakonczone,
			Voivodeship: strp("pomorskie"), PropertyType: "Lokal usługowy",
			ValuationPurpose: "Sprzedaż", ProposedPrice: fp(200),
			AssignedAppraiserID: strp("3"),
		},
	}
}

func staffUser() *entities.User {
	return &entities.User{ID: "1", Role: constants.RoleAdmin}
}

func appraiserUser(id string, voivodeships ...string) *entities.User {
	return &entities.User{ID: id, Role: constants.RoleRzeczoznawca, AssignedVoivodeships: voivodeships}
}

func ids(zlecenia []*entities.Zlecenie) []string {
	out := make([]string, 0, len(zlecenia))
	for _, z := range zlecenia {
		out = append(out, z.ID)
	}
	return out
}

func TestFilterStaffSeesAll(t *testing.T) {
	result := FilterZlecenia(filterFixture(), dto.ZlecenieFilterDTO{}, staffUser())
	// Domyślne sortowanie: data malejąco.
	assert.Equal(t, []string{"D", "C", "B", "A"}, ids(result))
}

func TestFilterIsIdempotent(t *testing.T) {
	filters := dto.ZlecenieFilterDTO{SortBy: "price_desc", Status: []string{"Nowe", "W trakcie"}}
	first := FilterZlecenia(filterFixture(), filters, staffUser())
	second := FilterZlecenia(first, filters, staffUser())
	assert.Equal(t, ids(first), ids(second))
}

func TestFilterPriceDescMissingPriceAsZero(t *testing.T) {
	result := FilterZlecenia(filterFixture(), dto.ZlecenieFilterDTO{SortBy: "price_desc"}, staffUser())
	// Brak ceny (B) liczy się jako 0, więc ląduje na końcu.
	assert.Equal(t, []string{"C", "D", "A", "B"}, ids(result))
}

func TestFilterGieldaTabForAppraiser(t *testing.T) {
	user := appraiserUser("2", "mazowieckie")
	result := FilterZlecenia(filterFixture(), dto.ZlecenieFilterDTO{Tab: "gielda"}, user)

	// Tylko "Nowe" z przypisanego województwa.
	require.Len(t, result, 1)
	assert.Equal(t, "A", result[0].ID)
}

func TestFilterGieldaTabWithoutRegionRestriction(t *testing.T) {
	user := appraiserUser("2")
	result := FilterZlecenia(filterFixture(), dto.ZlecenieFilterDTO{Tab: "gielda"}, user)

	// Brak przypisanych województw = pełna giełda.
	assert.Equal(t, []string{"B", "A"}, ids(result))
}

func TestFilterOwnOrdersTabForAppraiser(t *testing.T) {
	user := appraiserUser("2", "mazowieckie")
	result := FilterZlecenia(filterFixture(), dto.ZlecenieFilterDTO{Tab: "zlecenia"}, user)

	require.Len(t, result, 1)
	assert.Equal(t, "C", result[0].ID)
}

func TestFilterConjunctiveCriteria(t *testing.T) {
	filters := dto.ZlecenieFilterDTO{
		PropertyType:     []string{"Mieszkanie"},
		ValuationPurpose: []string{"Kredyt hipoteczny"},
		Status:           []string{"Nowe"},
	}
	result := FilterZlecenia(filterFixture(), filters, staffUser())

	require.Len(t, result, 1)
	assert.Equal(t, "A", result[0].ID)
}

func TestFilterStableTieBreak(t *testing.T) {
	fixture := filterFixture()
	// Te same ceny - kolejność wejściowa musi przetrwać sortowanie.
	price := 500.0
	for _, z := range fixture {
		z.ProposedPrice = &price
	}
	result := FilterZlecenia(fixture, dto.ZlecenieFilterDTO{SortBy: "price_asc"}, staffUser())
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids(result))
}

func TestFilterSortsByPublicationDateWhenPresent(t *testing.T) {
	fixture := filterFixture()
	pub := fixture[0].CreationDate.AddDate(0, 0, 10)
	fixture[0].PublicationDate = &pub // "A" opublikowane najpóźniej

	result := FilterZlecenia(fixture, dto.ZlecenieFilterDTO{SortBy: "date_asc"}, staffUser())
	assert.Equal(t, []string{"B", "C", "D", "A"}, ids(result))
}
