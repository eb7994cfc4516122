package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-expense-tracker/internal/adapter"
	"github.com/MKhiriev/go-expense-tracker/internal/crypto"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/store"
	"github.com/MKhiriev/go-expense-tracker/internal/validators"
	"github.com/MKhiriev/go-expense-tracker/models"
)

// recoveryService implements RecoveryService.
//
// The session carries the recovery stage and the bound email; the OTP itself
// lives only on the user record, with an expiry of otpTTL.
type recoveryService struct {
	userRepository store.UserRepository
	mailSender     adapter.MailSender
	otpGenerator   crypto.OTPGenerator
	hasher         crypto.PasswordHasher
	validator      validators.Validator

	otpTTL time.Duration
	now    func() time.Time

	logger *logger.Logger
}

func NewRecoveryService(
	userRepository store.UserRepository,
	mailSender adapter.MailSender,
	otpGenerator crypto.OTPGenerator,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	otpTTL time.Duration,
	logger *logger.Logger,
) RecoveryService {
	return &recoveryService{
		userRepository: userRepository,
		mailSender:     mailSender,
		otpGenerator:   otpGenerator,
		hasher:         hasher,
		validator:      validator,
		otpTTL:         otpTTL,
		now:            time.Now,
		logger:         logger,
	}
}

// RequestReset issues a fresh OTP for email and mails it.
//
// The returned session is bound to email in the awaiting stage whether or not
// the account exists, so the response does not reveal registered addresses.
// The OTP is stored before it is sent; a delivery failure yields ErrDelivery
// and leaves the session unchanged.
func (s *recoveryService) RequestReset(ctx context.Context, session models.Session, email string) (models.Session, error) {
	log := logger.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" {
		return session, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyEmail)
	}

	awaiting := session
	awaiting.Recovery = models.Recovery{Email: email, Stage: models.RecoveryAwaitingOTP}

	if _, err := s.userRepository.FindUserByEmail(ctx, email); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", email).Msg("password recovery requested for unknown email")
			return awaiting, nil
		}
		return session, fmt.Errorf("user search by email failed: %w", err)
	}

	code, err := s.otpGenerator.Generate()
	if err != nil {
		log.Err(err).Msg("otp generation failed")
		return session, fmt.Errorf("otp generation failed: %w", err)
	}

	otp := models.OTP{Code: code, ExpiresAt: s.now().Add(s.otpTTL)}
	if err = s.userRepository.SetOTP(ctx, email, otp); err != nil {
		log.Err(err).Str("email", email).Msg("storing otp failed")
		return session, fmt.Errorf("storing otp failed: %w", err)
	}

	if err = s.mailSender.Send(ctx, adapter.NewOTPMessage(email, code)); err != nil {
		log.Err(err).Str("email", email).Msg("otp delivery failed")
		return session, fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	log.Info().Str("email", email).Msg("otp sent")

	return awaiting, nil
}

// SubmitOTP consumes the stored OTP of the email bound to the session. A
// wrong, expired or already used code, or an email the session is not
// awaiting, yields ErrIncorrectOTP.
func (s *recoveryService) SubmitOTP(ctx context.Context, session models.Session, email, code string) (models.Session, error) {
	log := logger.FromContext(ctx)

	email, code = strings.TrimSpace(email), strings.TrimSpace(code)
	if session.Recovery.Stage != models.RecoveryAwaitingOTP || session.Recovery.Email != email || code == "" {
		log.Info().Str("email", email).Str("stage", string(session.Recovery.Stage)).Msg("otp submitted outside of recovery flow")
		return session, ErrIncorrectOTP
	}

	if err := s.userRepository.ConsumeOTP(ctx, email, code, s.now()); err != nil {
		if errors.Is(err, store.ErrOTPMismatch) || errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", email).Msg("incorrect otp")
			return session, ErrIncorrectOTP
		}
		return session, fmt.Errorf("otp verification failed: %w", err)
	}
	log.Info().Str("email", email).Msg("otp verified")

	session.Recovery.Stage = models.RecoveryVerified
	return session, nil
}

// SetNewPassword stores the bcrypt hash of the new password for the verified
// email and returns an empty session.
func (s *recoveryService) SetNewPassword(ctx context.Context, session models.Session, form models.PasswordResetForm) (models.Session, error) {
	log := logger.FromContext(ctx)

	if session.Recovery.Stage != models.RecoveryVerified || session.Recovery.Email == "" {
		return session, ErrRecoveryNotVerified
	}

	if err := s.validator.Validate(ctx, form); err != nil {
		if errors.Is(err, validators.ErrPasswordsDoNotMatch) {
			return session, ErrPasswordMismatch
		}
		return session, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := s.hasher.Hash(form.NewPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return session, fmt.Errorf("password hashing failed: %w", err)
	}

	email := session.Recovery.Email
	if err = s.userRepository.SetPasswordHash(ctx, email, hash); err != nil {
		log.Err(err).Str("email", email).Msg("updating password failed")
		return session, fmt.Errorf("updating password failed: %w", err)
	}
	log.Info().Str("email", email).Msg("password reset")

	return models.Session{}, nil
}
