package jwt

import (
	"testing"
	"time"

	"github.com/corehr/hrms-backend-go/internal/domain/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAndDecodeToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, expiresAt, err := svc.GenerateToken(42, account.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	id, role, err := svc.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, account.RoleAdmin, role)
}

func TestDecodeTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(testSecret, "1h")
	verifier := NewJWTService("a-different-secret", "1h")

	token, _, err := issuer.GenerateToken(7, account.RoleEmployee)
	require.NoError(t, err)

	_, _, err = verifier.DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService(testSecret, "-2m")

	token, _, err := svc.GenerateToken(7, account.RoleEmployee)
	require.NoError(t, err)

	_, _, err = svc.DecodeToken(token)
	assert.Error(t, err)
}

func TestGenerateTokenInvalidExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration")

	_, _, err := svc.GenerateToken(7, account.RoleEmployee)
	assert.Error(t, err)
}

func TestClaimsIdentity(t *testing.T) {
	id, role, err := ClaimsIdentity(map[string]interface{}{
		"id":   float64(99),
		"role": "super_admin",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), id)
	assert.Equal(t, account.RoleSuperAdmin, role)

	_, _, err = ClaimsIdentity(map[string]interface{}{"id": float64(99), "role": "root"})
	assert.Error(t, err)

	_, _, err = ClaimsIdentity(map[string]interface{}{"role": "admin"})
	assert.Error(t, err)
}
