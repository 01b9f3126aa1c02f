// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cognify/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
	Profile  *ProfileInput
}

// ProfileInput carries the optional descriptive fields of a registration.
// Empty strings are treated as absent.
type ProfileInput struct {
	FirstName  string
	LastName   string
	SchoolName string
	Phone      string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Username string
	Password string
}

// UpdateInput defines the mutable account fields. Nil pointers mean
// "leave unchanged". The password hash and role are deliberately not
// reachable through this path.
type UpdateInput struct {
	Email      *string
	FirstName  *string
	LastName   *string
	SchoolName *string
	Phone      *string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued tokens after a successful login.
// ExpiresIn is the access token lifetime in seconds.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	User         *entity.User
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetByID(ctx context.Context, id uint64) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, id uint64, input *UpdateInput) (*entity.User, error)
	Activate(ctx context.Context, id uint64) error
	Deactivate(ctx context.Context, id uint64) error
	Delete(ctx context.Context, id uint64) error
}
