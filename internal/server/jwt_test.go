package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hire3x/talent-match/internal/config"
)

func newJWTService(secret string) *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: secret, ExpirationHours: 1})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := newJWTService("test-secret")

	token, err := service.GenerateToken("client-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "client-1", claims.ClientID)
	assert.Equal(t, "client-1", claims.GetClientID())
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := newJWTService("secret-a").GenerateToken("client-1")
	require.NoError(t, err)

	_, err = newJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsEmptyAndMalformedTokens(t *testing.T) {
	service := newJWTService("test-secret")

	_, err := service.ValidateToken("")
	assert.Error(t, err)

	_, err = service.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestAsTokenValidator_ExposesClientID(t *testing.T) {
	service := newJWTService("test-secret")
	token, err := service.GenerateToken("client-1")
	require.NoError(t, err)

	claims, err := service.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "client-1", claims.GetClientID())
}
