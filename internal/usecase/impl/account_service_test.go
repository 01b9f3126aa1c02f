package impl

import (
	"context"
	"testing"
	"time"

	"cognify/internal/domain/entity"
	domainerrors "cognify/internal/domain/errors"
	"cognify/internal/domain/repository"
	mockRepo "cognify/internal/mocks/repository"
	"cognify/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password123",
		Role:     "student",
		Profile: &usecase.ProfileInput{
			FirstName:  "Alice",
			LastName:   "Smith",
			SchoolName: "Springfield High",
		},
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				ExistsByUsername(ctx, input.Username).
				Return(false, nil)
			mockUserRepo.EXPECT().
				ExistsByEmail(ctx, input.Email).
				Return(false, nil)

			mockUserRepo.EXPECT().
				Save(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = 42
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, uint64(42), output.User.ID)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	// Role parsing is case-insensitive and normalizes to the canonical form
	assert.Equal(t, entity.RoleStudent, output.User.Role)
	// New accounts always start active
	assert.True(t, output.User.IsActive)
	require.NotNil(t, output.User.Profile.FirstName)
	assert.Equal(t, "Alice", *output.User.Profile.FirstName)
	// Empty profile fields stay absent
	assert.Nil(t, output.User.Profile.Phone)
}

func TestAccountService_Register_InvalidRole(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password123",
		Role:     "headmaster",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				ExistsByUsername(ctx, input.Username).
				Return(false, nil)
			mockUserRepo.EXPECT().
				ExistsByEmail(ctx, input.Email).
				Return(false, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidRole.WithDetails("headmaster"))

	// The role is rejected after the existence checks, before hashing
	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))
}

func TestAccountService_Register_TakenUsernameWithInvalidRole(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password123",
		Role:     "headmaster",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				ExistsByUsername(ctx, input.Username).
				Return(true, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrDuplicateUsername.WrapMessage("registration failed"))

	// When several checks would fail, the taken username wins: the checks run
	// username, email, role, in that order
	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidRole))
}

func TestAccountService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password123",
		Role:     "TEACHER",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				ExistsByUsername(ctx, input.Username).
				Return(true, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrDuplicateUsername.WrapMessage("registration failed"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password123",
		Role:     "ADMIN",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				ExistsByUsername(ctx, input.Username).
				Return(false, nil)
			mockUserRepo.EXPECT().
				ExistsByEmail(ctx, input.Email).
				Return(true, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrDuplicateEmail.WrapMessage("registration failed"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "alice",
		Password: "Password123",
	}

	user := &entity.User{
		ID:           42,
		Username:     "alice",
		PasswordHash: "hashed_password",
		Role:         entity.RoleStudent,
		IsActive:     true,
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(user.Username).Return("access_token", nil)
	fx.tokenService.EXPECT().GenerateRefreshToken(user.Username).Return("refresh_token", nil)
	fx.tokenService.EXPECT().AccessTokenTTL().Return(time.Hour)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	// ExpiresIn is the access TTL expressed in seconds
	assert.Equal(t, int64(3600), output.ExpiresIn)
	assert.Equal(t, user, output.User)
}

func TestAccountService_Login_UserNotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "ghost",
		Password: "Password123",
	}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, input.Username).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	// An unknown username is indistinguishable from a wrong password
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Username: "alice",
		Password: "not-the-password",
	}

	user := &entity.User{
		ID:           42,
		Username:     "alice",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_GetByID_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: 42, Username: "alice"}

	fx.userRepo.EXPECT().FindByID(ctx, uint64(42)).Return(user, nil)

	found, err := fx.service.GetByID(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, user, found)
}

func TestAccountService_GetByID_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, uint64(999)).
		Return(nil, repository.ErrUserNotFound)

	found, err := fx.service.GetByID(ctx, 999)

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_List_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	users := []*entity.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}

	fx.userRepo.EXPECT().FindAll(ctx).Return(users, nil)

	found, err := fx.service.List(ctx)

	require.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Equal(t, users, found)
}

func TestAccountService_Update_MergesFields(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	existing := &entity.User{
		ID:           42,
		Username:     "alice",
		Email:        "old@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleStudent,
		IsActive:     true,
		Profile: entity.Profile{
			FirstName: strPtr("Alice"),
			LastName:  strPtr("Smith"),
		},
	}

	input := &usecase.UpdateInput{
		Email:     strPtr("new@example.com"),
		FirstName: strPtr("Alicia"),
		Phone:     strPtr("555-0100"),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, uint64(42)).Return(existing, nil)
			mockUserRepo.EXPECT().
				Save(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.Update(ctx, 42, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "new@example.com", updated.Email)
	require.NotNil(t, updated.Profile.FirstName)
	assert.Equal(t, "Alicia", *updated.Profile.FirstName)
	require.NotNil(t, updated.Profile.Phone)
	assert.Equal(t, "555-0100", *updated.Profile.Phone)

	// Fields not present in the input keep their previous values
	require.NotNil(t, updated.Profile.LastName)
	assert.Equal(t, "Smith", *updated.Profile.LastName)

	// Credentials and role never change through this path
	assert.Equal(t, "hashed_password", updated.PasswordHash)
	assert.Equal(t, entity.RoleStudent, updated.Role)
}

func TestAccountService_Update_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.UpdateInput{Email: strPtr("new@example.com")}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByID(ctx, uint64(999)).
				Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserNotFound.WrapMessage("update failed"))

	updated, err := fx.service.Update(ctx, 999, input)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_Activate_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	existing := &entity.User{ID: 42, Username: "alice", IsActive: false}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, uint64(42)).Return(existing, nil)
			mockUserRepo.EXPECT().
				Save(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.True(t, user.IsActive)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Activate(ctx, 42)
	assert.NoError(t, err)
}

func TestAccountService_Deactivate_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	existing := &entity.User{ID: 42, Username: "alice", IsActive: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, uint64(42)).Return(existing, nil)
			mockUserRepo.EXPECT().
				Save(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.False(t, user.IsActive)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Deactivate(ctx, 42)
	assert.NoError(t, err)
}

func TestAccountService_Activate_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByID(ctx, uint64(999)).
				Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserNotFound.WrapMessage("activity change failed"))

	err := fx.service.Activate(ctx, 999)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_Delete_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().Delete(ctx, uint64(42)).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Delete(ctx, 42)
	assert.NoError(t, err)
}

func TestAccountService_Delete_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Delete(ctx, uint64(999)).
				Return(repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserNotFound.WrapMessage("delete failed"))

	err := fx.service.Delete(ctx, 999)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
