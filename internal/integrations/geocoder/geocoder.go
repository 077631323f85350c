// Plik: internal/integrations/geocoder/geocoder.go
package geocoder

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"operaty-system/pkg/constants"
)

// Result - współrzędne i województwo (małymi literami) dla adresu.
type Result struct {
	Lat         float64
	Lng         float64
	Voivodeship string
}

// Provider geokoduje opis lokalizacji na współrzędne i województwo.
type Provider interface {
	Geocode(ctx context.Context, location string) (*Result, error)
}

// MockProvider - deterministyczna atrapa geokodera. Rozpoznaje kilka
// największych miast po podciągu adresu, a w pozostałych przypadkach zwraca
// centrum Warszawy. Produkcja podmienia ją na prawdziwego dostawcę
// przez konfigurację.
type MockProvider struct {
	logger *zap.Logger
}

func NewMockProvider(logger *zap.Logger) Provider {
	return &MockProvider{logger: logger}
}

var knownCities = []struct {
	substr      string
	lat, lng    float64
	voivodeship string
}{
	{"warszaw", 52.2297, 21.0122, "mazowieckie"},
	{"krak", 50.0647, 19.9450, "małopolskie"},
	{"wrocław", 51.1079, 17.0385, "dolnośląskie"},
	{"pozna", 52.4064, 16.9252, "wielkopolskie"},
	{"gdań", 54.3520, 18.6466, "pomorskie"},
	{"łód", 51.7592, 19.4560, "łódzkie"},
	{"katowic", 50.2649, 19.0238, "śląskie"},
	{"lublin", 51.2465, 22.5684, "lubelskie"},
	{"szczecin", 53.4285, 14.5528, "zachodniopomorskie"},
	{"białyst", 53.1325, 23.1688, "podlaskie"},
}

func (p *MockProvider) Geocode(ctx context.Context, location string) (*Result, error) {
	normalized := strings.ToLower(strings.TrimSpace(location))

	for _, city := range knownCities {
		if strings.Contains(normalized, city.substr) {
			return &Result{Lat: city.lat, Lng: city.lng, Voivodeship: city.voivodeship}, nil
		}
	}

	p.logger.Debug("geokoder: adres nierozpoznany, zwracam położenie domyślne",
		zap.String("location", location))
	return &Result{Lat: 52.2297, Lng: 21.0122, Voivodeship: "mazowieckie"}, nil
}

// Normalize sprowadza nazwę województwa do postaci słownikowej. Zwraca też
// informację, czy nazwa jest znana - nieznane województwo nie blokuje zapisu,
// ale warstwa wyżej powinna je odnotować w logu.
func Normalize(voivodeship string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(voivodeship))
	return normalized, constants.IsKnownVoivodeship(normalized)
}
