package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/mesto-api/internal/store"
)

// PostgreSQL error codes
const (
	uniqueViolationCode         = "23505"
	foreignKeyViolationCode     = "23503"
	checkViolationCode          = "23514"
	notNullViolationCode        = "23502"
	stringDataRightTruncateCode = "22001"
	invalidTextRepresentation   = "22P02"
)

// codeSentinels maps PostgreSQL error codes onto store sentinels.
// Codes not listed here pass through unchanged and end up as internal errors.
var codeSentinels = map[string]error{
	uniqueViolationCode:         store.ErrDuplicate,
	checkViolationCode:          store.ErrInvalidEntity,
	notNullViolationCode:        store.ErrInvalidEntity,
	stringDataRightTruncateCode: store.ErrInvalidEntity,
	invalidTextRepresentation:   store.ErrInvalidReference,
	foreignKeyViolationCode:     store.ErrInvalidReference,
}

// MapError maps a database error to the matching store sentinel, wrapping
// the original so it stays available for logging.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, ok := codeSentinels[pgErr.Code]; ok {
			return fmt.Errorf("%w: %s (%s): %v", sentinel, pgErr.Code, constraintOrColumn(pgErr), err)
		}
	}

	return err
}

func constraintOrColumn(pgErr *pgconn.PgError) string {
	if pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}
	return pgErr.ColumnName
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolationCode)
}

// IsForeignKeyViolation checks if the given error is a PostgreSQL foreign key
// violation, optionally restricted to a named constraint.
func IsForeignKeyViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != foreignKeyViolationCode {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// CheckRowsAffected returns notFound when result reports zero affected rows.
// UPDATE and DELETE use it to detect a missing target.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}
