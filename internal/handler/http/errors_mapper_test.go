package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-expense-tracker/internal/app"
	"github.com/MKhiriev/go-expense-tracker/internal/service"
	"github.com/MKhiriev/go-expense-tracker/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: name is empty", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{store.ErrEmailAlreadyExists, http.StatusConflict},
		{fmt.Errorf("%w: smtp down", service.ErrDelivery), http.StatusBadGateway},
		{fmt.Errorf("%w: dial tcp", store.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFor(t *testing.T) {
	assert.Equal(t, app.MsgPasswordIsNotMatching, messageFor(service.ErrPasswordMismatch, registerMessages, app.MsgSomethingWentWrong))
	assert.Equal(t, app.MsgEmailAlreadyRegistered, messageFor(store.ErrEmailAlreadyExists, registerMessages, app.MsgSomethingWentWrong))
	assert.Equal(t, app.MsgIncorrectOTP, messageFor(service.ErrIncorrectOTP, recoveryMessages, app.MsgSomethingWentWrong))
	assert.Equal(t, app.MsgSomethingWentWrong, messageFor(store.ErrStoreUnavailable, loginMessages, app.MsgSomethingWentWrong))
}
