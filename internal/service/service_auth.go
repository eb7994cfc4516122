package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-expense-tracker/internal/crypto"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/store"
	"github.com/MKhiriev/go-expense-tracker/internal/validators"
	"github.com/MKhiriev/go-expense-tracker/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes produced by hasher.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and password hasher.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		logger:         logger,
	}
}

// Register creates a new account.
//
// Fields are trimmed before use. Returns:
//   - ErrPasswordMismatch if password and confirmation differ;
//   - ErrInvalidDataProvided (wrapping the validator error) if a field is empty;
//   - store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) Register(ctx context.Context, form models.RegistrationForm) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, form); err != nil {
		log.Info().Err(err).Str("email", form.Email).Msg("invalid registration data provided")
		if errors.Is(err, validators.ErrPasswordsDoNotMatch) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := strings.TrimSpace(form.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Info().Str("email", email).Msg("email already registered")
		return store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		return fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := a.hasher.Hash(strings.TrimSpace(form.Password))
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Email:        email,
		Name:         strings.TrimSpace(form.Name),
		PasswordHash: hash,
		Expenses:     []models.Expense{},
		CreatedAt:    time.Now(),
	}
	if err = a.userRepository.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return store.ErrEmailAlreadyExists
		}
		return fmt.Errorf("user creation ended with error: %w", err)
	}
	log.Info().Str("email", email).Msg("user registered")

	return nil
}

// Login authenticates an existing user and returns its session view.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials;
// only the log entry tells them apart.
func (a *authService) Login(ctx context.Context, form models.LoginForm) (models.SessionView, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, form); err != nil {
		log.Info().Err(err).Msg("invalid login data provided")
		return models.SessionView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := strings.TrimSpace(form.Email)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", email).Msg("login with unknown email")
			return models.SessionView{}, ErrInvalidCredentials
		}
		return models.SessionView{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.hasher.Compare(user.PasswordHash, form.Password); err != nil {
		log.Info().Str("email", email).Msg("login with wrong password")
		return models.SessionView{}, ErrInvalidCredentials
	}
	log.Info().Str("email", email).Msg("login successful")

	return models.NewSessionView(user), nil
}
