package postgres

import (
	"testing"

	domainerrors "cognify/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	// Translated sentinel, possibly wrapped on the way up
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert failed")))

	// Raw driver error carrying the unique_violation code
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"}
	assert.True(t, isUniqueConstraintViolation(pgErr))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(pgErr, "insert failed")))

	// Anything else is not a unique violation
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
	assert.False(t, isUniqueConstraintViolation(gorm.ErrRecordNotFound))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23502"}))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.True(t, isNotNullConstraintViolation(
		errors.New(`null value in column "username" violates not-null constraint`)))

	assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
	assert.False(t, isNotNullConstraintViolation(gorm.ErrDuplicatedKey))
}

func TestDuplicateFieldError(t *testing.T) {
	// Driver error with the constraint name intact
	usernameErr := errors.Wrap(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_users_username",
	}, "insert failed")
	assert.True(t, errors.Is(duplicateFieldError(usernameErr), domainerrors.ErrDuplicateUsername))

	emailErr := errors.Wrap(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_users_email",
	}, "insert failed")
	assert.True(t, errors.Is(duplicateFieldError(emailErr), domainerrors.ErrDuplicateEmail))

	// Constraint name only present in the error text
	textErr := errors.Wrap(gorm.ErrDuplicatedKey,
		`duplicate key value violates unique constraint "idx_users_username"`)
	assert.True(t, errors.Is(duplicateFieldError(textErr), domainerrors.ErrDuplicateUsername))

	textErr = errors.Wrap(gorm.ErrDuplicatedKey,
		`duplicate key value violates unique constraint "idx_users_email"`)
	assert.True(t, errors.Is(duplicateFieldError(textErr), domainerrors.ErrDuplicateEmail))
}
