package service

import "errors"

var (
	// ErrInvalidDataProvided wraps the field-level error reported by the
	// form validator.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrPasswordMismatch    = errors.New("password and confirmation do not match")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrNotAuthenticated = errors.New("not authenticated")

	ErrIncorrectOTP        = errors.New("incorrect otp")
	ErrRecoveryNotVerified = errors.New("password recovery is not verified")
	ErrDelivery            = errors.New("failed to send OTP")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
