// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"cognify/internal/domain/entity"
	domainerrors "cognify/internal/domain/errors"
	"cognify/internal/domain/repository"
	"cognify/internal/domain/service"
	"cognify/internal/usecase"

	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register orchestrates the complete account registration process.
// The checks run in a fixed order: taken username, taken email, then the role,
// so a registration that trips several of them always reports the first.
// The duplicate pre-checks give a clean error message; the unique constraints
// in the database remain the enforcement backstop against concurrent
// registration of the same username or email.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting registration", "username", input.Username)

	var registeredUser *entity.User

	// Execute the entire creation process within a single database transaction
	// to ensure data consistency (atomicity).
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Reject an already-taken username before anything else.
		usernameTaken, err := userRepo.ExistsByUsername(ctx, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username existence")
		}
		if usernameTaken {
			return domainerrors.ErrDuplicateUsername.WrapMessage("registration failed")
		}

		// 2. Same for the email address.
		emailTaken, err := userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email existence")
		}
		if emailTaken {
			return domainerrors.ErrDuplicateEmail.WrapMessage("registration failed")
		}

		// 3. Only a known role may be registered.
		role, err := entity.ParseRole(input.Role)
		if err != nil {
			return domainerrors.ErrInvalidRole.WithDetails(input.Role)
		}

		// 4. Hash the credential once the input is known to be acceptable.
		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during registration")
		}

		// 5. Create the account; new accounts always start active.
		newUser := &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Role:         role,
			IsActive:     true,
			Profile:      toProfile(input.Profile),
		}

		if err := userRepo.Save(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Warn("Registration failed", "username", input.Username, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("User registered successfully", "userID", registeredUser.ID)

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login authenticates the credentials and issues an access/refresh token pair.
// "No such user" and "wrong password" collapse into the same error so callers
// cannot enumerate registered usernames.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", "username", input.Username)

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err := srv.tokenService.GenerateRefreshToken(user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	srv.logger.Debug("User logged in successfully", "userID", user.ID)

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(srv.tokenService.AccessTokenTTL().Seconds()),
		User:         user,
	}, nil
}

// GetByID fetches a single account.
func (srv *accountService) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("get user failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// List fetches every account. Ordering follows the storage default.
func (srv *accountService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// Update merges the provided fields onto the existing account. The id, the
// password hash and the role never change through this path.
func (srv *accountService) Update(ctx context.Context, id uint64, input *usecase.UpdateInput) (*entity.User, error) {
	srv.logger.Info("Updating user", "userID", id)

	var updatedUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("update failed")
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.FirstName != nil {
			user.Profile.FirstName = input.FirstName
		}
		if input.LastName != nil {
			user.Profile.LastName = input.LastName
		}
		if input.SchoolName != nil {
			user.Profile.SchoolName = input.SchoolName
		}
		if input.Phone != nil {
			user.Profile.Phone = input.Phone
		}

		if err := userRepo.Save(ctx, user); err != nil {
			return errors.WithStack(err)
		}
		updatedUser = user

		return nil
	})

	if err != nil {
		srv.logger.Warn("Update failed", "userID", id, "error", err.Error())

		return nil, err
	}

	return updatedUser, nil
}

// Activate flips the account's activity flag to true.
func (srv *accountService) Activate(ctx context.Context, id uint64) error {
	return srv.setActive(ctx, id, true)
}

// Deactivate flips the account's activity flag to false.
func (srv *accountService) Deactivate(ctx context.Context, id uint64) error {
	return srv.setActive(ctx, id, false)
}

// setActive loads the account and persists the requested activity state.
// Activation and deactivation are the only transitions of the state machine.
func (srv *accountService) setActive(ctx context.Context, id uint64, active bool) error {
	srv.logger.Info("Changing user activity", "userID", id, "active", active)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("activity change failed")
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		user.IsActive = active

		return errors.WithStack(userRepo.Save(ctx, user))
	})
	if err != nil {
		srv.logger.Warn("Activity change failed", "userID", id, "error", err.Error())

		return err
	}

	return nil
}

// Delete removes the account permanently.
func (srv *accountService) Delete(ctx context.Context, id uint64) error {
	srv.logger.Info("Deleting user", "userID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := userRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("delete failed")
			}

			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Delete failed", "userID", id, "error", err.Error())

		return err
	}

	return nil
}

// toProfile converts the optional registration profile into the entity form,
// treating empty strings as absent.
func toProfile(input *usecase.ProfileInput) entity.Profile {
	if input == nil {
		return entity.Profile{}
	}

	return entity.Profile{
		FirstName:  optional(input.FirstName),
		LastName:   optional(input.LastName),
		SchoolName: optional(input.SchoolName),
		Phone:      optional(input.Phone),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
