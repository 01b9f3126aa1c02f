package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the claim set carried by both access and refresh tokens.
// The subject is the account's username.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating signed,
// time-bounded tokens. Tokens are not stored server-side; validity is
// determined purely by signature and expiry at verification time.
type TokenService interface {
	// GenerateAccessToken creates a short-lived access token for the subject.
	GenerateAccessToken(subject string) (string, error)

	// GenerateRefreshToken creates a long-lived refresh token for the subject.
	// Its lifetime is always 24x the access token lifetime.
	GenerateRefreshToken(subject string) (string, error)

	// ExtractSubject verifies the token signature and returns the subject claim.
	// A token whose signature fails verification never yields claims.
	ExtractSubject(token string) (string, error)

	// ExtractExpiry verifies the token signature and returns the expiry timestamp.
	ExtractExpiry(token string) (time.Time, error)

	// IsExpired reports whether the token's expiry has passed. Tokens that
	// cannot be verified read as expired.
	IsExpired(token string) bool

	// Validate reports whether the token has a valid signature, carries exactly
	// the expected subject, and has not expired.
	Validate(token string, expectedSubject string) bool

	// AccessTokenTTL returns the configured access token lifetime.
	AccessTokenTTL() time.Duration
}
