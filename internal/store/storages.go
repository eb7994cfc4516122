package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-expense-tracker/internal/config"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
)

// Backend names the user store implementation selected by a DSN.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendMongo    Backend = "mongo"
	BackendSQLite   Backend = "sqlite"
)

// Storages groups every persistence component of the server.
type Storages struct {
	UserRepository UserRepository
	ChartStorage   ChartStorage

	closers []func(ctx context.Context) error
}

// NewStorages connects the user store chosen by the DSN scheme, applies SQL
// migrations where the backend has them and sets up the chart directory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	backend, dsn, err := BackendFromDSN(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	storages := &Storages{
		ChartStorage: NewChartFileStorage(cfg.Files.ChartDir, log),
	}

	switch backend {
	case BackendMongo:
		db, err := NewConnectMongo(ctx, dsn, cfg.DB.DatabaseName, log)
		if err != nil {
			return nil, fmt.Errorf("mongo connection error: %w", err)
		}
		storages.UserRepository = NewMongoUserRepository(db, log)
		storages.closers = append(storages.closers, db.Close)
	default:
		var db *DB
		if backend == BackendPostgres {
			db, err = NewConnectPostgres(ctx, dsn, log)
		} else {
			db, err = NewConnectSQLite(ctx, dsn, log)
		}
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", backend, err)
		}

		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		storages.UserRepository = NewUserRepository(db, log)
		storages.closers = append(storages.closers, func(context.Context) error { return db.Close() })
	}
	log.Info().Str("backend", string(backend)).Msg("storages created")

	return storages, nil
}

// Close releases every open connection.
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	for _, closeFn := range s.closers {
		errs = append(errs, closeFn(ctx))
	}

	return errors.Join(errs...)
}

// BackendFromDSN picks the backend for dsn and returns the DSN in the form its
// driver expects.
func BackendFromDSN(dsn string) (Backend, string, error) {
	dsn = strings.TrimSpace(dsn)

	switch {
	case dsn == "":
		return "", "", fmt.Errorf("%w: empty DSN", ErrUnsupportedDSN)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres, dsn, nil
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		return BackendMongo, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return BackendSQLite, strings.TrimPrefix(dsn, "sqlite://"), nil
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return BackendSQLite, dsn, nil
	case strings.Contains(dsn, "://"):
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	default:
		return BackendSQLite, dsn, nil
	}
}
