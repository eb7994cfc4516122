package crypto

import "errors"

var (
	ErrPasswordMismatch = errors.New("password does not match hash")
	ErrEmptyPassword    = errors.New("password is empty")
	ErrRandomSource     = errors.New("random source failed")
)
