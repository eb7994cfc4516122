package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-expense-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential and ledger store. Every mutating method is
// a single atomic single-record update; methods returning a [models.User]
// return the record as it is after the update.
type UserRepository interface {
	// CreateUser inserts a new record. Returns [ErrEmailAlreadyExists] when
	// the email is taken.
	CreateUser(ctx context.Context, user models.User) error

	// FindUserByEmail returns [ErrNoUserWasFound] when no record matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// AppendExpense pushes expense onto the history and adds its amount to
	// spent in one update.
	AppendExpense(ctx context.Context, email string, expense models.Expense) (models.User, error)

	// IncrementBudget adds amount (which may be negative) to budget.
	IncrementBudget(ctx context.Context, email string, amount int64) (models.User, error)

	// ResetTotals sets budget and spent to zero. The history is untouched.
	ResetTotals(ctx context.Context, email string) (models.User, error)

	// SetPasswordHash replaces the stored password hash.
	SetPasswordHash(ctx context.Context, email, passwordHash string) error

	// SetOTP stores otp on the record, replacing any previous one.
	SetOTP(ctx context.Context, email string, otp models.OTP) error

	// ConsumeOTP clears the stored OTP if it equals code and has not expired
	// at now. Returns [ErrOTPMismatch] otherwise.
	ConsumeOTP(ctx context.Context, email, code string, now time.Time) error
}

// ChartStorage keeps one rendered chart image per user.
type ChartStorage interface {
	// SaveChart writes png under a file name derived from the user's display
	// name and email, and returns that file name.
	SaveChart(ctx context.Context, name, email string, png []byte) (string, error)

	// OpenChart returns [ErrChartNotFound] when no chart was saved.
	OpenChart(ctx context.Context, name, email string) (ChartFile, error)

	// DeleteChart removes the chart. A missing file is not an error.
	DeleteChart(ctx context.Context, name, email string) error
}

// ChartFile is an opened chart image.
type ChartFile struct {
	io.ReadSeekCloser
	Name    string
	ModTime time.Time
}
