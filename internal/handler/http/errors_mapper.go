package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-expense-tracker/internal/app"
	"github.com/MKhiriev/go-expense-tracker/internal/service"
	"github.com/MKhiriev/go-expense-tracker/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrPasswordMismatch:    http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrIncorrectOTP:        http.StatusUnauthorized,
	service.ErrNotAuthenticated:    http.StatusUnauthorized,
	service.ErrRecoveryNotVerified: http.StatusForbidden,
	service.ErrDelivery:            http.StatusBadGateway,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrChartNotFound:      http.StatusNotFound,
	store.ErrStoreUnavailable:   http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage pairs a sentinel error with the text shown to the user.
type errorMessage struct {
	err     error
	message string
}

var (
	loginMessages = []errorMessage{
		{service.ErrInvalidCredentials, app.MsgInvalidCredential},
		{service.ErrInvalidDataProvided, app.MsgInvalidCredential},
	}

	registerMessages = []errorMessage{
		{service.ErrPasswordMismatch, app.MsgPasswordIsNotMatching},
		{service.ErrInvalidDataProvided, app.MsgInvalidCredential},
		{store.ErrEmailAlreadyExists, app.MsgEmailAlreadyRegistered},
	}

	ledgerMessages = []errorMessage{
		{service.ErrInvalidDataProvided, app.MsgInvalidDataFound},
	}

	recoveryMessages = []errorMessage{
		{service.ErrIncorrectOTP, app.MsgIncorrectOTP},
		{service.ErrPasswordMismatch, app.MsgPasswordNotMatching},
		{service.ErrInvalidDataProvided, app.MsgInvalidDataFound},
	}
)

// messageFor returns the message of the first entry matching err, or
// fallback.
func messageFor(err error, messages []errorMessage, fallback string) string {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return fallback
}
