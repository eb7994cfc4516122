package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-expense-tracker/migrations"
)

const usersTable = "users"

// userColumns is the column order read by scanUser.
var userColumns = []string{
	"email",
	"name",
	"password_hash",
	"budget",
	"spent",
	"expenses",
	"otp_code",
	"otp_expires_at",
	"created_at",
}

var returningUser = "RETURNING " + strings.Join(userColumns, ", ")

// appendExpenseExpr returns the dialect's expression appending one JSON
// object to the expenses array.
func appendExpenseExpr(dialect migrations.Dialect) string {
	if dialect == migrations.Postgres {
		return "expenses || jsonb_build_array(?::jsonb)"
	}
	return "json_insert(expenses, '$[#]', json(?))"
}

func (db *DB) insertUserQuery(email, name, passwordHash string, budget, spent int64, expenses string, createdAt time.Time) (string, []any, error) {
	return wrapBuild(db.builder.
		Insert(usersTable).
		Columns("email", "name", "password_hash", "budget", "spent", "expenses", "created_at").
		Values(email, name, passwordHash, budget, spent, expenses, createdAt).
		ToSql())
}

func (db *DB) selectUserQuery(email string) (string, []any, error) {
	return wrapBuild(db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql())
}

func (db *DB) appendExpenseQuery(email string, amount int64, expenseJSON string) (string, []any, error) {
	return wrapBuild(db.builder.
		Update(usersTable).
		Set("expenses", sq.Expr(appendExpenseExpr(db.dialect), expenseJSON)).
		Set("spent", sq.Expr("spent + ?", amount)).
		Where(sq.Eq{"email": email}).
		Suffix(returningUser).
		ToSql())
}

func (db *DB) incrementBudgetQuery(email string, amount int64) (string, []any, error) {
	return wrapBuild(db.builder.
		Update(usersTable).
		Set("budget", sq.Expr("budget + ?", amount)).
		Where(sq.Eq{"email": email}).
		Suffix(returningUser).
		ToSql())
}

func (db *DB) resetTotalsQuery(email string) (string, []any, error) {
	return wrapBuild(db.builder.
		Update(usersTable).
		Set("budget", 0).
		Set("spent", 0).
		Where(sq.Eq{"email": email}).
		Suffix(returningUser).
		ToSql())
}

func (db *DB) setPasswordHashQuery(email, passwordHash string) (string, []any, error) {
	return wrapBuild(db.builder.
		Update(usersTable).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"email": email}).
		ToSql())
}

func (db *DB) setOTPQuery(email, code string, expiresAt time.Time) (string, []any, error) {
	return wrapBuild(db.builder.
		Update(usersTable).
		Set("otp_code", code).
		Set("otp_expires_at", expiresAt).
		Where(sq.Eq{"email": email}).
		ToSql())
}

// consumeOTPQuery clears the OTP only while it matches and is unexpired, so
// a code can be used once.
func (db *DB) consumeOTPQuery(email, code string, now time.Time) (string, []any, error) {
	return wrapBuild(db.builder.
		Update(usersTable).
		Set("otp_code", nil).
		Set("otp_expires_at", nil).
		Where(sq.Eq{"email": email, "otp_code": code}).
		Where(sq.Gt{"otp_expires_at": now}).
		ToSql())
}

func wrapBuild(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// storedTime normalises timestamps written to and compared in the database.
// SQLite compares them as text, so they share one zone and precision.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
