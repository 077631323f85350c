package errors

import (
	"fmt"
	"net/http"
)

var (
	// Tokeny i sesja
	ErrInvalidSigningMethod = fmt.Errorf("nieprawidłowa metoda podpisu tokenu")
	ErrInvalidToken         = fmt.Errorf("niedozwolony token")
	ErrTokenExpired         = fmt.Errorf("token wygasł")
	ErrTokenNotYetValid     = fmt.Errorf("token jeszcze nieaktywny")
	ErrTokenIsNotAccess     = fmt.Errorf("token nie jest tokenem dostępowym")
	ErrTokenIsNotRefresh    = fmt.Errorf("token nie jest tokenem odświeżającym")

	// Autoryzacja
	ErrEmptyAuthHeader    = fmt.Errorf("brak nagłówka autoryzacji")
	ErrInvalidAuthHeader  = fmt.Errorf("nieprawidłowy format nagłówka autoryzacji")
	ErrInvalidCredentials = fmt.Errorf("Nieprawidłowy email lub hasło.")
	ErrUnauthorized       = fmt.Errorf("brak autoryzacji")
	ErrForbidden          = fmt.Errorf("dostęp zabroniony")

	// Kontekst
	ErrUserIDNotFoundInContext = fmt.Errorf("UserID nie znaleziono w kontekście żądania")

	// Ogólne
	ErrNotFound   = fmt.Errorf("rekord nie znaleziony")
	ErrBadRequest = fmt.Errorf("nieprawidłowe żądanie")
)

// HttpError niesie kod HTTP razem z komunikatem dla użytkownika.
// Szczegóły techniczne (Err) trafiają tylko do logów, nigdy do odpowiedzi.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]string
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]string) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// InvalidOperationError - naruszenie reguły przejścia statusu albo innej
// blokady domenowej. Mapowane na 409.
type InvalidOperationError struct {
	Message string
}

func (e *InvalidOperationError) Error() string { return e.Message }

func NewInvalidOperationError(format string, args ...interface{}) error {
	return &InvalidOperationError{Message: fmt.Sprintf(format, args...)}
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...interface{}) error {
	return NewHttpError(http.StatusNotFound, fmt.Sprintf(format, args...), ErrNotFound, nil)
}
