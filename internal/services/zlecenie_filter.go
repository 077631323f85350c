// Plik: internal/services/zlecenie_filter.go
package services

import (
	"sort"

	"operaty-system/internal/dto"
	"operaty-system/internal/entities"
	"operaty-system/pkg/constants"
)

// FilterZlecenia to czysta funkcja: (zlecenia, filtry, użytkownik) -> widok.
// Dla identycznych wejść zwraca identyczną kolejność; sortowanie jest stabilne,
// więc remisy zachowują kolejność z kolekcji wejściowej.
func FilterZlecenia(zlecenia []*entities.Zlecenie, filters dto.ZlecenieFilterDTO, user *entities.User) []*entities.Zlecenie {
	filtered := make([]*entities.Zlecenie, 0, len(zlecenia))
	filtered = append(filtered, zlecenia...)

	// 1. Selekcja bazowa po roli i zakładce. Pracownicy biura widzą pełną pulę.
	if user.Role == constants.RoleRzeczoznawca {
		if filters.Tab == "gielda" {
			filtered = keep(filtered, func(z *entities.Zlecenie) bool {
				return z.Status == constants.StatusNowe
			})
			if len(user.AssignedVoivodeships) > 0 {
				filtered = keep(filtered, func(z *entities.Zlecenie) bool {
					return z.Voivodeship != nil && contains(user.AssignedVoivodeships, *z.Voivodeship)
				})
			}
		} else {
			filtered = keep(filtered, func(z *entities.Zlecenie) bool {
				return z.AssignedAppraiserID != nil && *z.AssignedAppraiserID == user.ID
			})
		}
	}

	// 2. Niezależne filtry koniunkcyjne; pusta lista = brak filtra.
	if len(filters.PropertyType) > 0 {
		filtered = keep(filtered, func(z *entities.Zlecenie) bool {
			return contains(filters.PropertyType, z.PropertyType)
		})
	}
	if len(filters.ValuationPurpose) > 0 {
		filtered = keep(filtered, func(z *entities.Zlecenie) bool {
			return contains(filters.ValuationPurpose, z.ValuationPurpose)
		})
	}
	if len(filters.Status) > 0 {
		filtered = keep(filtered, func(z *entities.Zlecenie) bool {
			return contains(filters.Status, string(z.Status))
		})
	}

	// 3. Sortowanie; brak ceny liczy się jako 0, domyślnie data malejąco.
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		switch filters.SortBy {
		case "date_asc":
			return a.EffectiveDate().Before(b.EffectiveDate())
		case "price_asc":
			return priceOrZero(a) < priceOrZero(b)
		case "price_desc":
			return priceOrZero(a) > priceOrZero(b)
		default: // "date_desc" i wszystko inne
			return a.EffectiveDate().After(b.EffectiveDate())
		}
	})

	return filtered
}

func keep(zlecenia []*entities.Zlecenie, pred func(*entities.Zlecenie) bool) []*entities.Zlecenie {
	result := zlecenia[:0:0]
	for _, z := range zlecenia {
		if pred(z) {
			result = append(result, z)
		}
	}
	return result
}

func contains(values []string, v string) bool {
	for _, item := range values {
		if item == v {
			return true
		}
	}
	return false
}

func priceOrZero(z *entities.Zlecenie) float64 {
	if z.ProposedPrice == nil {
		return 0
	}
	return *z.ProposedPrice
}
