package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cognify/config"
	domainerrors "cognify/internal/domain/errors"
)

func testJWTConfig(ttlMillis int64) *config.Config {
	return &config.Config{
		JWT: &config.JWTConfig{
			Secret:          "test_secret_key_very_long_for_testing",
			AccessTTLMillis: ttlMillis,
		},
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	tokenService, err := NewJWTService(testJWTConfig(3600000))
	assert.NoError(t, err)
	assert.NotNil(t, tokenService)

	subject := "alice"

	accessToken, err := tokenService.GenerateAccessToken(subject)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	refreshToken, err := tokenService.GenerateRefreshToken(subject)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshToken)

	// Both tokens carry the subject and validate for it
	extracted, err := tokenService.ExtractSubject(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, subject, extracted)

	extracted, err = tokenService.ExtractSubject(refreshToken)
	assert.NoError(t, err)
	assert.Equal(t, subject, extracted)

	assert.True(t, tokenService.Validate(accessToken, subject))
	assert.True(t, tokenService.Validate(refreshToken, subject))
	assert.False(t, tokenService.IsExpired(accessToken))

	// Validation is strict on the subject
	assert.False(t, tokenService.Validate(accessToken, "bob"))
	assert.False(t, tokenService.Validate(accessToken, ""))
}

func TestJWTService_ExtractExpiry(t *testing.T) {
	tokenService, err := NewJWTService(testJWTConfig(3600000))
	assert.NoError(t, err)

	before := time.Now()
	accessToken, err := tokenService.GenerateAccessToken("alice")
	assert.NoError(t, err)

	expiry, err := tokenService.ExtractExpiry(accessToken)
	assert.NoError(t, err)

	// Expiry lands one access TTL after issuance, within JWT second precision
	expected := before.Add(time.Hour)
	assert.WithinDuration(t, expected, expiry, 5*time.Second)
}

func TestJWTService_RefreshTokenLivesLonger(t *testing.T) {
	tokenService, err := NewJWTService(testJWTConfig(3600000))
	assert.NoError(t, err)

	accessToken, err := tokenService.GenerateAccessToken("alice")
	assert.NoError(t, err)
	refreshToken, err := tokenService.GenerateRefreshToken("alice")
	assert.NoError(t, err)

	accessExpiry, err := tokenService.ExtractExpiry(accessToken)
	assert.NoError(t, err)
	refreshExpiry, err := tokenService.ExtractExpiry(refreshToken)
	assert.NoError(t, err)

	// Refresh lifetime is fixed at 24x the access lifetime
	expected := accessExpiry.Add(23 * time.Hour)
	assert.WithinDuration(t, expected, refreshExpiry, 5*time.Second)
}

func TestJWTService_InvalidToken(t *testing.T) {
	tokenService, err := NewJWTService(testJWTConfig(3600000))
	assert.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	invalidToken := "clearly-not-a-jwt-token-format"

	_, err = tokenService.ExtractSubject(invalidToken)
	assert.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)

	_, err = tokenService.ExtractExpiry(invalidToken)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)

	// Unverifiable tokens read as expired and never validate
	assert.True(t, tokenService.IsExpired(invalidToken))
	assert.False(t, tokenService.Validate(invalidToken, "alice"))
}

func TestJWTService_TamperedSignature(t *testing.T) {
	tokenService, err := NewJWTService(testJWTConfig(3600000))
	assert.NoError(t, err)

	accessToken, err := tokenService.GenerateAccessToken("alice")
	assert.NoError(t, err)

	// Corrupt the signature segment
	tampered := accessToken[:len(accessToken)-4] + "AAAA"

	_, err = tokenService.ExtractSubject(tampered)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.False(t, tokenService.Validate(tampered, "alice"))
	assert.True(t, tokenService.IsExpired(tampered))
}

func TestJWTService_WrongSecret(t *testing.T) {
	tokenService, err := NewJWTService(testJWTConfig(3600000))
	assert.NoError(t, err)

	otherService, err := NewJWTService(&config.Config{
		JWT: &config.JWTConfig{
			Secret:          "a_completely_different_secret_key",
			AccessTTLMillis: 3600000,
		},
	})
	assert.NoError(t, err)

	accessToken, err := tokenService.GenerateAccessToken("alice")
	assert.NoError(t, err)

	// A token signed under one key never yields claims under another
	_, err = otherService.ExtractSubject(accessToken)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.False(t, otherService.Validate(accessToken, "alice"))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// 1ms TTL so the token is already stale by the time we check it
	tokenService, err := NewJWTService(testJWTConfig(1))
	assert.NoError(t, err)

	subject := "alice"
	accessToken, err := tokenService.GenerateAccessToken(subject)
	assert.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	// Expired-but-authentic tokens still yield their claims
	extracted, err := tokenService.ExtractSubject(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, subject, extracted)

	expiry, err := tokenService.ExtractExpiry(accessToken)
	assert.NoError(t, err)
	assert.True(t, expiry.Before(time.Now()))

	// But they read as expired and fail validation
	assert.True(t, tokenService.IsExpired(accessToken))
	assert.False(t, tokenService.Validate(accessToken, subject))
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{
		JWT: &config.JWTConfig{
			Secret:          "",
			AccessTTLMillis: 3600000,
		},
	}

	// Should fail to create service
	tokenService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, tokenService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_NonPositiveTTL(t *testing.T) {
	tokenService, err := NewJWTService(testJWTConfig(0))
	assert.Error(t, err)
	assert.Nil(t, tokenService)

	tokenService, err = NewJWTService(testJWTConfig(-1000))
	assert.Error(t, err)
	assert.Nil(t, tokenService)
}

func TestJWTService_AccessTokenTTL(t *testing.T) {
	tokenService, err := NewJWTService(testJWTConfig(3600000))
	assert.NoError(t, err)

	// TTL is configured in milliseconds
	assert.Equal(t, time.Hour, tokenService.AccessTokenTTL())
}
