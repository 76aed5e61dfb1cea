package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}
	foreign := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "courses_instructor_id_fkey"}
	check := &pgconn.PgError{Code: pgerrcode.CheckViolation}
	plain := errors.New("connection refused")

	assert.ErrorIs(t, classify(unique), ErrDuplicate)
	assert.ErrorIs(t, classify(unique), unique)
	assert.Contains(t, classify(unique).Error(), "users_email_key")

	assert.ErrorIs(t, classify(foreign), ErrForeignKey)
	assert.NotErrorIs(t, classify(foreign), ErrDuplicate)

	assert.Same(t, error(check), classify(check))
	assert.Same(t, plain, classify(plain))
}
