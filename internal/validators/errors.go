package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName            = errors.New("name is required")
	ErrEmptyEmail           = errors.New("email is required")
	ErrEmptyPassword        = errors.New("password is required")
	ErrEmptyConfirmPassword = errors.New("password confirmation is required")
	ErrPasswordsDoNotMatch  = errors.New("passwords do not match")

	ErrEmptyTitle      = errors.New("title is required")
	ErrEmptyCategory   = errors.New("category is required")
	ErrTitleTooLong    = errors.New("title is too long")
	ErrCategoryTooLong = errors.New("category is too long")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidAmount   = errors.New("amount must be a positive whole number")
	ErrInvalidBudget   = errors.New("budget amount must be a whole number")
)
