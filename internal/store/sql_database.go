package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/migrations"
)

// ErrorClassifier maps a driver error onto a store sentinel error, or
// returns nil when the error has no domain meaning.
type ErrorClassifier interface {
	Classify(err error) error
}

// DB is a database/sql connection bound to one SQL dialect.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassifier
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect migrations.Dialect, classifier ErrorClassifier, log *logger.Logger) *DB {
	var placeholders sq.PlaceholderFormat = sq.Question
	if dialect == migrations.Postgres {
		placeholders = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholders),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Migrate applies the embedded schema migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
