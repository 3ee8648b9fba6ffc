package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/campus-coffee/internal/config"
	"github.com/MKhiriev/campus-coffee/internal/logger"
)

// Storages groups the persistence adapters the service layer depends on.
type Storages struct {
	UserDataService UserDataService

	// db is nil for the in-memory backend.
	db *DB
}

// NewStorages picks a backend from cfg.DB.DSN:
//
//	""/"memory"                  in-memory
//	postgres://, postgresql://   PostgreSQL via pgx
//	sqlite://, file:             SQLite via go-sqlite3
//
// When cfg.DB.Migrate is set the embedded schema migrations are applied
// before the repository is returned.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := cfg.DB.DSN

	var (
		db  *DB
		err error
	)
	switch {
	case dsn == "", dsn == "memory":
		log.Info().Str("func", "NewStorages").Msg("using in-memory storage")
		return &Storages{UserDataService: NewMemoryUserRepository(log)}, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case strings.HasPrefix(dsn, sqliteScheme), strings.HasPrefix(dsn, "file:"):
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, ErrUnsupportedDSN
	}
	if err != nil {
		return nil, err
	}

	if cfg.DB.Migrate {
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			_ = db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
		log.Info().Str("func", "NewStorages").Str("dialect", db.dialect.name).Msg("migrations applied")
	}

	return &Storages{
		UserDataService: NewSQLUserRepository(db, log),
		db:              db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
