// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"cognify/config"
	domainerrors "cognify/internal/domain/errors"
	"cognify/internal/domain/service"
)

// refreshTTLMultiplier fixes the refresh token lifetime at 24x the access
// token lifetime. There is no independent refresh TTL configuration.
const refreshTTLMultiplier = 24

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The signing key and TTLs are captured once at construction and never change
// for the process lifetime.
type jwtService struct {
	secret     []byte        // Symmetric key for HMAC-SHA256 signing and verification.
	accessTTL  time.Duration // Time-to-live for access tokens.
	refreshTTL time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT == nil || cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.JWT.AccessTTLMillis <= 0 {
		return nil, errors.New("jwt access TTL must be positive")
	}

	accessTTL := time.Duration(cfg.JWT.AccessTTLMillis) * time.Millisecond

	return &jwtService{
		secret:     []byte(cfg.JWT.Secret),
		accessTTL:  accessTTL,
		refreshTTL: accessTTL * refreshTTLMultiplier,
	}, nil
}

// GenerateAccessToken creates a short-lived access token for the subject.
func (s *jwtService) GenerateAccessToken(subject string) (string, error) {
	return s.generateToken(subject, s.accessTTL)
}

// GenerateRefreshToken creates a long-lived refresh token for the subject.
func (s *jwtService) GenerateRefreshToken(subject string) (string, error) {
	return s.generateToken(subject, s.refreshTTL)
}

// ExtractSubject verifies the signature and returns the subject claim.
func (s *jwtService) ExtractSubject(tokenString string) (string, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", domainerrors.ErrTokenInvalid.WrapMessage("token has no subject claim")
	}

	return claims.Subject, nil
}

// ExtractExpiry verifies the signature and returns the expiry timestamp.
func (s *jwtService) ExtractExpiry(tokenString string) (time.Time, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, domainerrors.ErrTokenInvalid.WrapMessage("token has no expiry claim")
	}

	return claims.ExpiresAt.Time, nil
}

// IsExpired reports whether the token's expiry has passed.
// Tokens that cannot be verified read as expired.
func (s *jwtService) IsExpired(tokenString string) bool {
	claims, err := s.parseClaims(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return true
	}

	// Strict wall-clock comparison, no skew tolerance: expired at or after exp.
	return !time.Now().Before(claims.ExpiresAt.Time)
}

// Validate reports whether the token carries a valid signature, the expected
// subject, and an expiry in the future.
func (s *jwtService) Validate(tokenString string, expectedSubject string) bool {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return false
	}
	if claims.Subject != expectedSubject {
		return false
	}
	if claims.ExpiresAt == nil || !time.Now().Before(claims.ExpiresAt.Time) {
		return false
	}

	return true
}

// AccessTokenTTL returns the configured access token lifetime.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// generateToken is a private helper to create a signed JWT with the standard claim set.
func (s *jwtService) generateToken(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,                       // Subject (who the token is for)
			IssuedAt:  jwt.NewNumericDate(now),       // Issued At
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)), // Expiration Time
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// parseClaims verifies the token structure and signature before exposing any
// claim data; a token that fails verification never yields claims. Expiry is
// deliberately not validated here so expired-but-authentic tokens stay
// readable for IsExpired and ExtractExpiry.
func (s *jwtService) parseClaims(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token signature verification failed")
	}

	return claims, nil
}
