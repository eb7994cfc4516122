// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/store"
	"github.com/MKhiriev/go-expense-tracker/internal/validators"
	"github.com/MKhiriev/go-expense-tracker/models"
)

// ledgerService implements LedgerService. It keeps no state: the session
// passed in is the only source of the user's identity, and the record
// returned by each store update is the only source of the new view.
type ledgerService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewLedgerService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) LedgerService {
	return &ledgerService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// AddExpense appends the expense and adds its amount to spent in one update.
// Retrying a successful call records the expense twice.
func (l *ledgerService) AddExpense(ctx context.Context, session models.Session, form models.ExpenseForm) (models.Session, error) {
	log := logger.FromContext(ctx)

	if !session.Authenticated() {
		return session, ErrNotAuthenticated
	}

	if err := l.validator.Validate(ctx, form); err != nil {
		log.Info().Err(err).Str("email", session.User.Email).Msg("invalid expense data provided")
		return session, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	amount, err := validators.ParseExpenseAmount(form.Amount)
	if err != nil {
		return session, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	expense := models.Expense{
		Date:     strings.TrimSpace(form.Date),
		Amount:   amount,
		Title:    strings.TrimSpace(form.Title),
		Category: strings.TrimSpace(form.Category),
	}

	updated, err := l.userRepository.AppendExpense(ctx, session.User.Email, expense)
	if err != nil {
		log.Err(err).Str("email", session.User.Email).Msg("adding expense failed")
		return session, fmt.Errorf("adding expense failed: %w", err)
	}
	log.Info().Str("email", updated.Email).Int64("spent", updated.Spent).Msg("expense added")

	return session.WithUser(models.NewSessionView(updated)), nil
}

// AddBudget adds a signed amount to the budget. The balance of the new view
// is derived from the total budget after the increment.
func (l *ledgerService) AddBudget(ctx context.Context, session models.Session, form models.BudgetForm) (models.Session, error) {
	log := logger.FromContext(ctx)

	if !session.Authenticated() {
		return session, ErrNotAuthenticated
	}

	amount, err := validators.ParseBudgetAmount(form.Amount)
	if err != nil {
		log.Info().Err(err).Str("email", session.User.Email).Msg("invalid budget amount provided")
		return session, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := l.userRepository.IncrementBudget(ctx, session.User.Email, amount)
	if err != nil {
		log.Err(err).Str("email", session.User.Email).Msg("adding budget failed")
		return session, fmt.Errorf("adding budget failed: %w", err)
	}
	log.Info().Str("email", updated.Email).Int64("budget", updated.Budget).Msg("budget added")

	return session.WithUser(models.NewSessionView(updated)), nil
}

// ResetAll zeroes budget and spent. The expense history is kept.
func (l *ledgerService) ResetAll(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	if !session.Authenticated() {
		return session, ErrNotAuthenticated
	}

	updated, err := l.userRepository.ResetTotals(ctx, session.User.Email)
	if err != nil {
		log.Err(err).Str("email", session.User.Email).Msg("reset failed")
		return session, fmt.Errorf("reset failed: %w", err)
	}
	log.Info().Str("email", updated.Email).Msg("totals reset")

	return session.WithUser(models.NewSessionView(updated)), nil
}

// Logout returns an empty session. Nothing is written to the store.
func (l *ledgerService) Logout(ctx context.Context, session models.Session) (models.Session, error) {
	if !session.Authenticated() {
		return session, ErrNotAuthenticated
	}
	logger.FromContext(ctx).Info().Str("email", session.User.Email).Msg("logged out")

	return models.Session{}, nil
}
