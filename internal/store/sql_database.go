package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/campus-coffee/internal/logger"
	"github.com/MKhiriev/campus-coffee/migrations"
)

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// dialect captures what differs between the supported SQL backends.
type dialect struct {
	// name is the goose dialect used for migrations.
	name string

	// placeholder is the bind-variable style of the driver.
	placeholder sq.PlaceholderFormat

	// isUniqueViolation reports whether err is a unique-constraint failure.
	isUniqueViolation func(err error) bool
}

var (
	postgresDialect = dialect{
		name:              migrations.DialectPostgres,
		placeholder:       sq.Dollar,
		isUniqueViolation: isPostgresUniqueViolation,
	}

	sqliteDialect = dialect{
		name:              migrations.DialectSQLite,
		placeholder:       sq.Question,
		isUniqueViolation: isSQLiteUniqueViolation,
	}
)

type DB struct {
	*sql.DB
	dialect            dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.name)
}

// builder returns a squirrel statement builder bound to the dialect's placeholders.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.placeholder)
}

// retryable reports whether the classifier considers err transient.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
