package postgres

import (
	"strings"

	domainerrors "cognify/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolationCode  = "23505"
	pgNotNullViolationCode = "23502"
)

// Helper functions for PostgreSQL error checking

func isUniqueConstraintViolation(err error) bool {
	// GORM translates the pgx duplicate key error when TranslateError is on.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}

func isNotNullConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgNotNullViolationCode {
		return true
	}

	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, pgNotNullViolationCode)
}

// duplicateFieldError maps a unique violation onto the duplicate-username or
// duplicate-email domain error by the violated index name. The name is read
// from the driver error when it survives translation; otherwise Postgres
// reports the constraint name in the error text.
func duplicateFieldError(err error) error {
	constraint := strings.ToLower(err.Error())

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName != "" {
		constraint = strings.ToLower(pgErr.ConstraintName)
	}

	if strings.Contains(constraint, "username") {
		return domainerrors.ErrDuplicateUsername.WrapMessage("username unique constraint violated")
	}

	return domainerrors.ErrDuplicateEmail.WrapMessage("email unique constraint violated")
}
