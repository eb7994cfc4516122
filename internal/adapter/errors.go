package adapter

import "errors"

var (
	ErrMailNotConfigured = errors.New("mail delivery is not configured")
	ErrInvalidMessage    = errors.New("invalid mail message")
	ErrSendFailed        = errors.New("mail send failed")

	ErrBadRequest          = errors.New("relay rejected the request")
	ErrUnauthorized        = errors.New("relay unauthorized")
	ErrForbidden           = errors.New("relay forbidden")
	ErrNotFound            = errors.New("relay endpoint not found")
	ErrTooManyRequests     = errors.New("relay rate limit exceeded")
	ErrBadGateway          = errors.New("relay bad gateway")
	ErrInternalServerError = errors.New("relay internal error")
)
