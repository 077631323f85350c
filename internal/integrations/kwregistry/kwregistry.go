// Plik: internal/integrations/kwregistry/kwregistry.go
package kwregistry

import (
	"context"
	"fmt"
)

// Provider zwraca raport weryfikacji księgi wieczystej w formacie markdown.
type Provider interface {
	Verify(ctx context.Context, kwNumber string) (string, error)
}

// MockProvider - atrapa weryfikacji KW. Zwraca przykładowy raport; właściwa
// integracja z EKW wymaga umowy i tu jej nie ma.
type MockProvider struct{}

func NewMockProvider() Provider {
	return &MockProvider{}
}

func (p *MockProvider) Verify(ctx context.Context, kwNumber string) (string, error) {
	report := fmt.Sprintf(`To jest przykładowa weryfikacja dla numeru KW: **%s**.

## Dział I-O - Oznaczenie nieruchomości
Brak wzmianek. Oznaczenie zgodne z ewidencją gruntów.

## Dział II - Własność
Brak wzmianek o zmianie właściciela.

## Dział III - Prawa, roszczenia i ograniczenia
Nie ujawniono służebności ani roszczeń.

## Dział IV - Hipoteka
Nie ujawniono wpisów hipotecznych.

*Raport wygenerowany automatycznie. Przed wydaniem operatu zweryfikuj stan w EKW.*`, kwNumber)
	return report, nil
}
