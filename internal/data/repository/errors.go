package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint violations reported by the store. Use cases match them with
// errors.Is to turn a lost check-then-insert race into the same error the
// application-level check would have produced.
var (
	ErrDuplicate  = errors.New("duplicate key")
	ErrForeignKey = errors.New("referenced row does not exist")
)

// classify wraps err with ErrDuplicate or ErrForeignKey when it carries the
// matching SQLSTATE, and returns it unchanged otherwise.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w (%s): %w", ErrDuplicate, pgErr.ConstraintName, err)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w (%s): %w", ErrForeignKey, pgErr.ConstraintName, err)
	default:
		return err
	}
}
