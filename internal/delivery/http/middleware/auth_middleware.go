package middleware

import (
	"strings"

	"cognify/internal/delivery/http/response"
	"cognify/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUsername is where the authenticated subject is stored on the echo context.
const ContextKeyUsername = "username"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
// Signature failures and expiry are reported as distinct error codes; no claim
// data from an unverified token ever reaches a handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_INVALID", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		subject, err := m.tokenSvc.ExtractSubject(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token")
		}

		if m.tokenSvc.IsExpired(tokenString) {
			return response.Unauthorized(c, "TOKEN_EXPIRED", "Token has expired")
		}

		// Set the authenticated subject on the context for handlers to use
		c.Set(ContextKeyUsername, subject)

		return next(c)
	}
}
