// Plik: internal/services/verification_service.go
package services

import (
	"context"

	"go.uber.org/zap"

	"operaty-system/internal/dto"
	"operaty-system/internal/integrations/geocoder"
	"operaty-system/internal/integrations/kwregistry"
	apperrors "operaty-system/pkg/errors"
)

type VerificationServiceInterface interface {
	VerifyKW(ctx context.Context, kwNumber string) (*dto.KWVerificationDTO, error)
	Geocode(ctx context.Context, location string) (*dto.GeocodeResultDTO, error)
}

// VerificationService opakowuje zewnętrznych dostawców: rejestr ksiąg
// wieczystych i geokoder. Błąd dostawcy wraca do użytkownika jako komunikat
// z prośbą o ponowienie - nie ponawiamy automatycznie.
type VerificationService struct {
	kwProvider  kwregistry.Provider
	geoProvider geocoder.Provider
	logger      *zap.Logger
}

func NewVerificationService(
	kwProvider kwregistry.Provider,
	geoProvider geocoder.Provider,
	logger *zap.Logger,
) VerificationServiceInterface {
	return &VerificationService{kwProvider: kwProvider, geoProvider: geoProvider, logger: logger}
}

func (s *VerificationService) VerifyKW(ctx context.Context, kwNumber string) (*dto.KWVerificationDTO, error) {
	report, err := s.kwProvider.Verify(ctx, kwNumber)
	if err != nil {
		s.logger.Error("weryfikacja KW nie powiodła się", zap.String("kw", kwNumber), zap.Error(err))
		return nil, apperrors.NewHttpError(502, "Weryfikacja księgi wieczystej nie powiodła się. Spróbuj ponownie.", err, nil)
	}
	return &dto.KWVerificationDTO{KWNumber: kwNumber, Report: report}, nil
}

func (s *VerificationService) Geocode(ctx context.Context, location string) (*dto.GeocodeResultDTO, error) {
	result, err := s.geoProvider.Geocode(ctx, location)
	if err != nil {
		s.logger.Error("geokodowanie nie powiodło się", zap.String("location", location), zap.Error(err))
		return nil, apperrors.NewHttpError(502, "Geokodowanie nie powiodło się. Spróbuj ponownie.", err, nil)
	}
	voivodeship, _ := geocoder.Normalize(result.Voivodeship)
	return &dto.GeocodeResultDTO{Lat: result.Lat, Lng: result.Lng, Voivodeship: voivodeship}, nil
}
