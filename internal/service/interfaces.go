package service

import (
	"context"

	"github.com/MKhiriev/go-expense-tracker/internal/store"
	"github.com/MKhiriev/go-expense-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers accounts and checks credentials.
type AuthService interface {
	// Register creates an account with an empty ledger. It does not log the
	// user in.
	Register(ctx context.Context, form models.RegistrationForm) error

	// Login returns the session view of the account on success and
	// [ErrInvalidCredentials] for an unknown email or a wrong password.
	Login(ctx context.Context, form models.LoginForm) (models.SessionView, error)
}

// LedgerService applies budget and expense mutations. Every method takes the
// current session and returns its replacement, whose view is rebuilt from the
// record returned by the store update.
type LedgerService interface {
	AddExpense(ctx context.Context, session models.Session, form models.ExpenseForm) (models.Session, error)
	AddBudget(ctx context.Context, session models.Session, form models.BudgetForm) (models.Session, error)
	ResetAll(ctx context.Context, session models.Session) (models.Session, error)
	Logout(ctx context.Context, session models.Session) (models.Session, error)
}

// RecoveryService drives the password recovery flow bound to a session:
// idle, awaiting OTP, verified, idle again.
type RecoveryService interface {
	RequestReset(ctx context.Context, session models.Session, email string) (models.Session, error)
	SubmitOTP(ctx context.Context, session models.Session, email, code string) (models.Session, error)
	SetNewPassword(ctx context.Context, session models.Session, form models.PasswordResetForm) (models.Session, error)
}

// ReportService exports the history and maintains the per-user chart.
type ReportService interface {
	ExportCSV(ctx context.Context, email string, window models.ExportWindow) (models.CSVFile, error)

	// RenderChart redraws the chart of the logged-in user. Callers treat
	// failures as best-effort.
	RenderChart(ctx context.Context, view models.SessionView) (models.ChartResult, error)
	OpenChart(ctx context.Context, view models.SessionView) (store.ChartFile, error)
	DeleteChart(ctx context.Context, view models.SessionView) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionInfo
}
