package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/models"
)

// userRepository is the SQL implementation of [UserRepository], shared by
// PostgreSQL and SQLite. Queries differ only in placeholders and in the JSON
// append expression, both supplied by [DB].
//
// The expense history lives in one JSON column so every ledger mutation is a
// single UPDATE ... RETURNING statement.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	expenses, err := encodeExpenses(user.Expenses)
	if err != nil {
		return err
	}

	query, args, err := r.db.insertUserQuery(user.Email, user.Name, user.PasswordHash, user.Budget, user.Spent, expenses, storedTime(user.CreatedAt))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return r.storeError(ctx, "*userRepository.CreateUser", err)
	}

	return nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := r.db.selectUserQuery(email)
	if err != nil {
		return models.User{}, err
	}

	return r.queryUser(ctx, "*userRepository.FindUserByEmail", query, args)
}

func (r *userRepository) AppendExpense(ctx context.Context, email string, expense models.Expense) (models.User, error) {
	payload, err := json.Marshal(expense)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrEncodingExpenses, err)
	}

	query, args, err := r.db.appendExpenseQuery(email, expense.Amount, string(payload))
	if err != nil {
		return models.User{}, err
	}

	return r.queryUser(ctx, "*userRepository.AppendExpense", query, args)
}

func (r *userRepository) IncrementBudget(ctx context.Context, email string, amount int64) (models.User, error) {
	query, args, err := r.db.incrementBudgetQuery(email, amount)
	if err != nil {
		return models.User{}, err
	}

	return r.queryUser(ctx, "*userRepository.IncrementBudget", query, args)
}

func (r *userRepository) ResetTotals(ctx context.Context, email string) (models.User, error) {
	query, args, err := r.db.resetTotalsQuery(email)
	if err != nil {
		return models.User{}, err
	}

	return r.queryUser(ctx, "*userRepository.ResetTotals", query, args)
}

func (r *userRepository) SetPasswordHash(ctx context.Context, email, passwordHash string) error {
	query, args, err := r.db.setPasswordHashQuery(email, passwordHash)
	if err != nil {
		return err
	}

	return r.execOne(ctx, "*userRepository.SetPasswordHash", query, args, ErrNoUserWasFound)
}

func (r *userRepository) SetOTP(ctx context.Context, email string, otp models.OTP) error {
	query, args, err := r.db.setOTPQuery(email, otp.Code, storedTime(otp.ExpiresAt))
	if err != nil {
		return err
	}

	return r.execOne(ctx, "*userRepository.SetOTP", query, args, ErrNoUserWasFound)
}

func (r *userRepository) ConsumeOTP(ctx context.Context, email, code string, now time.Time) error {
	query, args, err := r.db.consumeOTPQuery(email, code, storedTime(now))
	if err != nil {
		return err
	}

	return r.execOne(ctx, "*userRepository.ConsumeOTP", query, args, ErrOTPMismatch)
}

// queryUser runs a statement returning one user row.
func (r *userRepository) queryUser(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	row := r.db.QueryRowContext(ctx, query, args...)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, ErrEncodingExpenses) {
			logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("stored expenses are corrupted")
			return models.User{}, err
		}
		return models.User{}, r.storeError(ctx, funcName, err)
	}

	return user, nil
}

// execOne runs a statement expected to touch exactly one row; zero affected
// rows yields notFound.
func (r *userRepository) execOne(ctx context.Context, funcName, query string, args []any, notFound error) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.storeError(ctx, funcName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.storeError(ctx, funcName, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}

// storeError translates a driver error into a store sentinel error.
func (r *userRepository) storeError(ctx context.Context, funcName string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoUserWasFound
	}

	log := logger.FromContext(ctx)

	if r.db.errorClassificator != nil {
		switch classified := r.db.errorClassificator.Classify(err); {
		case errors.Is(classified, ErrEmailAlreadyExists):
			log.Debug().Err(err).Str("func", funcName).Msg("unique email violated")
			return ErrEmailAlreadyExists
		case classified != nil:
			log.Err(err).Str("func", funcName).Msg("database is unavailable")
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	log.Err(err).Str("func", funcName).Msg("unexpected DB error")
	return fmt.Errorf("%w: unexpected DB error: %w", ErrStoreUnavailable, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user         models.User
		expenses     []byte
		otpCode      sql.NullString
		otpExpiresAt scannedTime
		createdAt    scannedTime
	)

	err := row.Scan(
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.Budget,
		&user.Spent,
		&expenses,
		&otpCode,
		&otpExpiresAt,
		&createdAt,
	)
	if err != nil {
		return models.User{}, err
	}
	user.CreatedAt = createdAt.Time

	user.Expenses = []models.Expense{}
	if len(expenses) > 0 {
		if err = json.Unmarshal(expenses, &user.Expenses); err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrEncodingExpenses, err)
		}
	}

	if otpCode.Valid {
		user.OTP = &models.OTP{Code: otpCode.String, ExpiresAt: otpExpiresAt.Time}
	}

	return user, nil
}

// scannedTime reads a nullable timestamp. SQLite hands back text instead of
// time.Time for columns of a RETURNING clause.
type scannedTime struct {
	Time  time.Time
	Valid bool
}

func (t *scannedTime) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*t = scannedTime{}
		return nil
	case time.Time:
		*t = scannedTime{Time: v, Valid: true}
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("unsupported timestamp type %T", value)
	}
}

func (t *scannedTime) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*t = scannedTime{Time: parsed, Valid: true}
			return nil
		}
	}

	return fmt.Errorf("cannot parse timestamp %q", s)
}

func encodeExpenses(expenses []models.Expense) (string, error) {
	if expenses == nil {
		expenses = []models.Expense{}
	}

	b, err := json.Marshal(expenses)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingExpenses, err)
	}

	return string(b), nil
}
