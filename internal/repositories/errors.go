package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrKindMismatch is returned when an update targets a record owned by the other update path.
	ErrKindMismatch = errors.New("record kind does not allow this update")
)

// UniqueViolationError reports which unique constraint an insert collided with.
type UniqueViolationError struct {
	Constraint string
	Err        error
}

func (e *UniqueViolationError) Error() string {
	return "unique constraint violation: " + e.Constraint
}

func (e *UniqueViolationError) Unwrap() error {
	return e.Err
}

// uniqueViolationCode is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolationCode = "23505"

// mapPgError turns PostgreSQL unique violations into *UniqueViolationError.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return &UniqueViolationError{Constraint: pgErr.ConstraintName, Err: err}
	}
	return err
}
