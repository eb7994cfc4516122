package validators

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-expense-tracker/models"
)

// Field names accepted by [FormValidator.Validate] to restrict validation to
// a subset of a form. They match the HTML form field names.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldNewPassword     = "new_password"
	FieldTitle           = "title"
	FieldAmount          = "amount"
	FieldDate            = "date"
	FieldCategory        = "category"
	FieldBudgetAmount    = "budget_amount"
)

// MaxTextLength is the longest expense title or category accepted, in runes.
const MaxTextLength = 100

// FormValidator validates the raw HTML forms of the application. Values are
// checked after trimming surrounding whitespace.
type FormValidator struct {
}

func NewFormValidator() Validator {
	return &FormValidator{}
}

func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegistrationForm:
		return v.validateRegistration(value, fields...)
	case *models.RegistrationForm:
		return v.validateRegistration(*value, fields...)

	case models.LoginForm:
		return v.validateLogin(value, fields...)
	case *models.LoginForm:
		return v.validateLogin(*value, fields...)

	case models.ExpenseForm:
		return v.validateExpense(value, fields...)
	case *models.ExpenseForm:
		return v.validateExpense(*value, fields...)

	case models.BudgetForm:
		return v.validateBudget(value, fields...)
	case *models.BudgetForm:
		return v.validateBudget(*value, fields...)

	case models.PasswordResetForm:
		return v.validatePasswordReset(value, fields...)
	case *models.PasswordResetForm:
		return v.validatePasswordReset(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// Password confirmation is checked before emptiness so a mismatching pair
// reports the mismatch.
func (v *FormValidator) validateRegistration(form models.RegistrationForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldConfirmPassword, FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldConfirmPassword:
			if strings.TrimSpace(form.Password) != strings.TrimSpace(form.ConfirmPassword) {
				return ErrPasswordsDoNotMatch
			}
			if blank(form.ConfirmPassword) {
				return ErrEmptyConfirmPassword
			}
		case FieldName:
			if blank(form.Name) {
				return ErrEmptyName
			}
		case FieldEmail:
			if blank(form.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if blank(form.Password) {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateLogin(form models.LoginForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if blank(form.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if form.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateExpense(form models.ExpenseForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldAmount, FieldDate, FieldCategory}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if blank(form.Title) {
				return ErrEmptyTitle
			}
			if tooLong(form.Title) {
				return ErrTitleTooLong
			}
		case FieldAmount:
			if _, err := ParseExpenseAmount(form.Amount); err != nil {
				return err
			}
		case FieldDate:
			if _, err := time.Parse(models.DateLayout, strings.TrimSpace(form.Date)); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidDate, form.Date)
			}
		case FieldCategory:
			if blank(form.Category) {
				return ErrEmptyCategory
			}
			if tooLong(form.Category) {
				return ErrCategoryTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateBudget(form models.BudgetForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBudgetAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldBudgetAmount:
			if _, err := ParseBudgetAmount(form.Amount); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validatePasswordReset(form models.PasswordResetForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldConfirmPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldConfirmPassword:
			if form.NewPassword != form.ConfirmPassword {
				return ErrPasswordsDoNotMatch
			}
		case FieldNewPassword:
			if blank(form.NewPassword) {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ParseExpenseAmount parses a base-10 integer greater than zero.
func ParseExpenseAmount(raw string) (int64, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || amount <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	return amount, nil
}

// ParseBudgetAmount parses a base-10 integer of any sign.
func ParseBudgetAmount(raw string) (int64, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBudget, raw)
	}

	return amount, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func tooLong(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) > MaxTextLength
}
