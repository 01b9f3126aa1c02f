// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"cognify/internal/delivery/http/response"
	"cognify/internal/domain/entity"
	"cognify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.AccountUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Request DTOs ---

type registerRequest struct {
	Username string          `json:"username" validate:"required,min=3,max=50"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     string          `json:"role" validate:"required"`
	Profile  *profileRequest `json:"profile"`
}

type profileRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	SchoolName string `json:"schoolName"`
	Phone      string `json:"phone"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateRequest struct {
	Email      *string `json:"email" validate:"omitempty,email"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	SchoolName *string `json:"schoolName"`
	Phone      *string `json:"phone"`
}

// --- Response DTOs ---

// accountResponse is the client-facing account shape. The password hash never
// leaves the usecase boundary through this type.
type accountResponse struct {
	ID         uint64  `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	IsActive   bool    `json:"isActive"`
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	SchoolName *string `json:"schoolName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
}

// loginResponse is the flat login payload.
type loginResponse struct {
	Success      bool          `json:"success"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	User         loginUserInfo `json:"user"`
}

type loginUserInfo struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func toAccountResponse(user *entity.User) accountResponse {
	return accountResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role.String(),
		IsActive:   user.IsActive,
		FirstName:  user.Profile.FirstName,
		LastName:   user.Profile.LastName,
		SchoolName: user.Profile.SchoolName,
		Phone:      user.Profile.Phone,
	}
}

// --- Handlers ---

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
	if req.Profile != nil {
		input.Profile = &usecase.ProfileInput{
			FirstName:  req.Profile.FirstName,
			LastName:   req.Profile.LastName,
			SchoolName: req.Profile.SchoolName,
			Phone:      req.Profile.Phone,
		}
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(output.User), "User registered successfully")
}

// Login handles the login request and returns the issued token pair.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success:      true,
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		ExpiresIn:    output.ExpiresIn,
		User: loginUserInfo{
			ID:       output.User.ID,
			Username: output.User.Username,
			Role:     output.User.Role.Lower(),
		},
	})
}

// GetUser handles the request for a single account.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	user, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(user), "User retrieved successfully")
}

// ListUsers handles the request for every account.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	accounts := make([]accountResponse, 0, len(users))
	for _, user := range users {
		accounts = append(accounts, toAccountResponse(user))
	}

	return response.Success(c, http.StatusOK, accounts, "Users retrieved successfully")
}

// UpdateUser handles the partial-update request for an account.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Update(c.Request().Context(), id, &usecase.UpdateInput{
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		SchoolName: req.SchoolName,
		Phone:      req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(user), "User updated successfully")
}

// DeleteUser handles the permanent removal of an account.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ActivateUser flips the account's activity flag to true.
func (h *UserHandler) ActivateUser(c echo.Context) error {
	id, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	if err := h.uc.Activate(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeactivateUser flips the account's activity flag to false.
func (h *UserHandler) DeactivateUser(c echo.Context) error {
	id, err := parseUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	if err := h.uc.Deactivate(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

func parseUserID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("userId"), 10, 64)
}
