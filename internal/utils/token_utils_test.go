package utils_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lavadero-app/lavadero-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	userID := uuid.NewString()
	secret := "test-secret"

	token, err := utils.GenerateJWT(userID, "ana@lavadero.com", "admin", secret, time.Hour, "lavadero-backend")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "ana@lavadero.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "lavadero-backend", claims.Issuer)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT(uuid.NewString(), "ana@lavadero.com", "secretario", "secret-a", time.Hour, "lavadero-backend")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret-b")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT(uuid.NewString(), "ana@lavadero.com", "admin", "secret", -time.Minute, "lavadero-backend")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret")
	assert.Error(t, err)
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := utils.HashPassword("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", hash)

	assert.True(t, utils.CheckPasswordHash("secreto123", hash))
	assert.False(t, utils.CheckPasswordHash("otra", hash))
}
