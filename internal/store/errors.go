package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a new user collides with an
	// existing record on the unique email key.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no record matches the email.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrOTPMismatch is returned by ConsumeOTP when the code is wrong,
	// expired, already used or was never issued.
	ErrOTPMismatch = errors.New("otp mismatch")

	// ErrStoreUnavailable wraps every unexpected driver or connection error.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrChartNotFound is returned when a user has no rendered chart.
	ErrChartNotFound = errors.New("chart not found")
)

// Low-level errors raised before a query reaches the database.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrEncodingExpenses is returned when the expense history cannot be
	// encoded to or decoded from its JSON column.
	ErrEncodingExpenses = errors.New("error encoding expenses")

	// ErrUnsupportedDSN is returned when the DSN scheme matches no backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
