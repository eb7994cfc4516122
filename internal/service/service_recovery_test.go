package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-expense-tracker/internal/adapter"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/mock"
	"github.com/MKhiriev/go-expense-tracker/internal/store"
	"github.com/MKhiriev/go-expense-tracker/internal/validators"
	"github.com/MKhiriev/go-expense-tracker/models"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

type recoveryFixture struct {
	repo   *mock.MockUserRepository
	mail   *mock.MockMailSender
	otp    *mock.MockOTPGenerator
	hasher *mock.MockPasswordHasher
	svc    RecoveryService
}

func newRecoveryFixture(t *testing.T) recoveryFixture {
	ctrl := gomock.NewController(t)
	f := recoveryFixture{
		repo:   mock.NewMockUserRepository(ctrl),
		mail:   mock.NewMockMailSender(ctrl),
		otp:    mock.NewMockOTPGenerator(ctrl),
		hasher: mock.NewMockPasswordHasher(ctrl),
	}
	svc := NewRecoveryService(f.repo, f.mail, f.otp, f.hasher, validators.NewFormValidator(), 10*time.Minute, logger.Nop())
	svc.(*recoveryService).now = func() time.Time { return fixedNow }
	f.svc = svc
	return f
}

func awaiting(email string) models.Session {
	return models.Session{Recovery: models.Recovery{Email: email, Stage: models.RecoveryAwaitingOTP}}
}

func verified(email string) models.Session {
	return models.Session{Recovery: models.Recovery{Email: email, Stage: models.RecoveryVerified}}
}

// ─────────────────────────────────────────────
// RequestReset
// ─────────────────────────────────────────────

func TestRequestReset_PersistsThenSends(t *testing.T) {
	f := newRecoveryFixture(t)

	gomock.InOrder(
		f.repo.EXPECT().FindUserByEmail(gomock.Any(), "ann@x.io").Return(models.User{Email: "ann@x.io"}, nil),
		f.otp.EXPECT().Generate().Return("4821", nil),
		f.repo.EXPECT().SetOTP(gomock.Any(), "ann@x.io", models.OTP{Code: "4821", ExpiresAt: fixedNow.Add(10 * time.Minute)}).Return(nil),
		f.mail.EXPECT().Send(gomock.Any(), adapter.NewOTPMessage("ann@x.io", "4821")).Return(nil),
	)

	sess, err := f.svc.RequestReset(context.Background(), models.Session{}, " ann@x.io ")

	require.NoError(t, err)
	assert.Equal(t, awaiting("ann@x.io"), sess)
}

func TestRequestReset_UnknownEmailIsIndistinguishable(t *testing.T) {
	f := newRecoveryFixture(t)

	f.repo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@x.io").Return(models.User{}, store.ErrNoUserWasFound)

	sess, err := f.svc.RequestReset(context.Background(), models.Session{}, "ghost@x.io")

	require.NoError(t, err)
	assert.Equal(t, awaiting("ghost@x.io"), sess)
}

func TestRequestReset_DeliveryFailure(t *testing.T) {
	f := newRecoveryFixture(t)

	f.repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{Email: "ann@x.io"}, nil)
	f.otp.EXPECT().Generate().Return("1111", nil)
	f.repo.EXPECT().SetOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.mail.EXPECT().Send(gomock.Any(), gomock.Any()).Return(adapter.ErrSendFailed)

	sess, err := f.svc.RequestReset(context.Background(), models.Session{}, "ann@x.io")

	assert.ErrorIs(t, err, ErrDelivery)
	assert.ErrorIs(t, err, adapter.ErrSendFailed)
	assert.Equal(t, models.Session{}, sess)
}

func TestRequestReset_StoreFailureSendsNothing(t *testing.T) {
	f := newRecoveryFixture(t)

	f.repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{Email: "ann@x.io"}, nil)
	f.otp.EXPECT().Generate().Return("1111", nil)
	f.repo.EXPECT().SetOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrStoreUnavailable)

	_, err := f.svc.RequestReset(context.Background(), models.Session{}, "ann@x.io")

	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

func TestRequestReset_GeneratorFailure(t *testing.T) {
	f := newRecoveryFixture(t)
	boom := errors.New("entropy")

	f.repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{Email: "ann@x.io"}, nil)
	f.otp.EXPECT().Generate().Return("", boom)

	_, err := f.svc.RequestReset(context.Background(), models.Session{}, "ann@x.io")

	assert.ErrorIs(t, err, boom)
}

func TestRequestReset_EmptyEmail(t *testing.T) {
	f := newRecoveryFixture(t)

	_, err := f.svc.RequestReset(context.Background(), models.Session{}, "  ")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// SubmitOTP
// ─────────────────────────────────────────────

func TestSubmitOTP_Verifies(t *testing.T) {
	f := newRecoveryFixture(t)

	f.repo.EXPECT().ConsumeOTP(gomock.Any(), "ann@x.io", "4821", fixedNow).Return(nil)

	sess, err := f.svc.SubmitOTP(context.Background(), awaiting("ann@x.io"), "ann@x.io", " 4821 ")

	require.NoError(t, err)
	assert.Equal(t, verified("ann@x.io"), sess)
}

func TestSubmitOTP_Mismatch(t *testing.T) {
	f := newRecoveryFixture(t)

	f.repo.EXPECT().ConsumeOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrOTPMismatch)

	sess, err := f.svc.SubmitOTP(context.Background(), awaiting("ann@x.io"), "ann@x.io", "0000")

	assert.ErrorIs(t, err, ErrIncorrectOTP)
	assert.Equal(t, awaiting("ann@x.io"), sess)
}

func TestSubmitOTP_OutsideFlow(t *testing.T) {
	tests := []struct {
		name    string
		session models.Session
		email   string
		code    string
	}{
		{"idle session", models.Session{}, "ann@x.io", "1234"},
		{"other email", awaiting("ann@x.io"), "bob@x.io", "1234"},
		{"already verified", verified("ann@x.io"), "ann@x.io", "1234"},
		{"empty code", awaiting("ann@x.io"), "ann@x.io", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRecoveryFixture(t)

			_, err := f.svc.SubmitOTP(context.Background(), tt.session, tt.email, tt.code)

			assert.ErrorIs(t, err, ErrIncorrectOTP)
		})
	}
}

func TestSubmitOTP_StoreFailure(t *testing.T) {
	f := newRecoveryFixture(t)

	f.repo.EXPECT().ConsumeOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrStoreUnavailable)

	_, err := f.svc.SubmitOTP(context.Background(), awaiting("ann@x.io"), "ann@x.io", "1234")

	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrIncorrectOTP)
}

// ─────────────────────────────────────────────
// SetNewPassword
// ─────────────────────────────────────────────

func TestSetNewPassword_StoresHashAndClearsSession(t *testing.T) {
	f := newRecoveryFixture(t)

	f.hasher.EXPECT().Hash("n3w").Return("$2a$new", nil)
	f.repo.EXPECT().SetPasswordHash(gomock.Any(), "ann@x.io", "$2a$new").Return(nil)

	sess, err := f.svc.SetNewPassword(context.Background(), verified("ann@x.io"), models.PasswordResetForm{NewPassword: "n3w", ConfirmPassword: "n3w"})

	require.NoError(t, err)
	assert.Equal(t, models.Session{}, sess)
}

func TestSetNewPassword_RequiresVerified(t *testing.T) {
	f := newRecoveryFixture(t)
	form := models.PasswordResetForm{NewPassword: "x", ConfirmPassword: "x"}

	for _, sess := range []models.Session{{}, awaiting("ann@x.io")} {
		_, err := f.svc.SetNewPassword(context.Background(), sess, form)
		assert.ErrorIs(t, err, ErrRecoveryNotVerified)
	}
}

func TestSetNewPassword_Mismatch(t *testing.T) {
	f := newRecoveryFixture(t)

	sess, err := f.svc.SetNewPassword(context.Background(), verified("ann@x.io"), models.PasswordResetForm{NewPassword: "a", ConfirmPassword: "b"})

	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Equal(t, verified("ann@x.io"), sess, "binding survives a mismatch")
}

func TestSetNewPassword_Empty(t *testing.T) {
	f := newRecoveryFixture(t)

	_, err := f.svc.SetNewPassword(context.Background(), verified("ann@x.io"), models.PasswordResetForm{})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSetNewPassword_StoreFailure(t *testing.T) {
	f := newRecoveryFixture(t)

	f.hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)
	f.repo.EXPECT().SetPasswordHash(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrStoreUnavailable)

	sess, err := f.svc.SetNewPassword(context.Background(), verified("ann@x.io"), models.PasswordResetForm{NewPassword: "a", ConfirmPassword: "a"})

	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	assert.Equal(t, verified("ann@x.io"), sess)
}
