// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cognify/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
// Find* methods return at most one match; Save is an upsert keyed by id
// (a zero id means insert).
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint64) (*entity.User, error)

	// FindByUsername retrieves a single user by their username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByUsername reports whether an account with this username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether an account with this email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindAll retrieves every account. Ordering follows the storage default.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Save persists the user, inserting when the id is unset and updating otherwise.
	// The entity is updated in place with the assigned id and timestamps.
	Save(ctx context.Context, user *entity.User) error

	// Delete removes the account permanently.
	Delete(ctx context.Context, id uint64) error
}
