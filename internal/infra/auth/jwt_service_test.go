package auth

import (
	"testing"
	"time"

	"mall/config"
	"mall/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	accountID := uuid.New()

	token, err := jwtService.GenerateToken(accountID, entity.RoleVendor)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, entity.RoleVendor, claims.Role)
	assert.Equal(t, accountID.String(), claims.Subject)
}

func TestJWTService_MissingSecret(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_for_testing"
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := jwtService.GenerateToken(uuid.New(), entity.RoleAdmin)
	assert.NoError(t, err)

	claims, err := otherService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	// Default TTL when no auth section is configured.
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)
	assert.Equal(t, defaultAccessTokenTTL, jwtService.AccessTokenDuration())

	// Configured TTL wins.
	cfg := testJWTConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 2 * time.Hour}
	jwtService, err = NewJWTService(cfg)
	assert.NoError(t, err)
	assert.Equal(t, 2*time.Hour, jwtService.AccessTokenDuration())
}
