// Plik: pkg/customvalidator/validator.go

package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations rejestruje wszystkie nasze reguły walidacji
// w przekazanym egzemplarzu walidatora.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("kw_number", isKWNumber); err != nil {
		return err
	}
	if err := v.RegisterValidation("phone_PL", isPolishPhoneNumber); err != nil {
		return err
	}
	if err := v.RegisterValidation("date_only", isDateOnly); err != nil {
		return err
	}
	return nil
}

// Numer księgi wieczystej: kod wydziału / 8 cyfr / cyfra kontrolna,
// np. "WA1M/00012345/6".
var kwRegex = regexp.MustCompile(`^[A-Z]{2}\d[A-Z]/\d{8}/\d$`)

func isKWNumber(fl validator.FieldLevel) bool {
	return kwRegex.MatchString(fl.Field().String())
}

// Telefony przyjmujemy w formacie krajowym z separatorami albo bez,
// tak jak wpisują je pracownicy biura ("501-111-222", "111 000 111").
var phoneRegex = regexp.MustCompile(`^(\+48[- ]?)?\d{3}[- ]?\d{3}[- ]?\d{3}$`)

func isPolishPhoneNumber(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

var dateOnlyRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func isDateOnly(fl validator.FieldLevel) bool {
	return dateOnlyRegex.MatchString(fl.Field().String())
}
