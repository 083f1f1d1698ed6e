package httpx

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// Sentinel errors for the service layer.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("No encontrado")
	// ErrValidation indicates malformed or missing input, detected before
	// touching storage.
	ErrValidation = errors.New("Datos inválidos")
	// ErrBusiness indicates a business-rule rejection (insufficient stock,
	// protected record, missing reference) detected during a transaction.
	ErrBusiness = errors.New("operación rechazada")
)

type taggedError struct {
	msg      string
	sentinel error
}

func (e taggedError) Error() string        { return e.msg }
func (e taggedError) Is(target error) bool { return target == e.sentinel }

// Validationf builds an input-validation error with its own message that still
// matches ErrValidation under errors.Is.
func Validationf(format string, args ...any) error {
	return taggedError{msg: fmt.Sprintf(format, args...), sentinel: ErrValidation}
}

// Businessf builds a business-rule error that matches ErrBusiness.
func Businessf(format string, args ...any) error {
	return taggedError{msg: fmt.Sprintf(format, args...), sentinel: ErrBusiness}
}

// Error maps a service error to the failure envelope. Validation and business
// errors surface their message with a 400; not-found maps to 404. Anything
// else is an infrastructure failure: the detail is logged server-side only and
// the client gets a generic 500.
func Error(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrBusiness):
		Fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		Fail(w, http.StatusNotFound, err.Error())
	default:
		if logger != nil {
			logger.Error("unexpected error", slog.Any("error", err))
		}
		Fail(w, http.StatusInternalServerError, "Error interno")
	}
}
