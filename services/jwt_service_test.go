package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret", expiry: sessionExpiry()}

	token, err := svc.GenerateUserJWT(7, "jdoe", "jdoe@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyUserJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.UserID)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, "jdoe@example.com", claims.Email)
	assert.Equal(t, "velora-storefront", claims.Issuer)
}

func TestJWTService_RejectsEmptyUsername(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret", expiry: sessionExpiry()}

	_, err := svc.GenerateUserJWT(1, "", "a@b.com")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	signer := &JWTService{secretKey: "secret-a", expiry: sessionExpiry()}
	verifier := &JWTService{secretKey: "secret-b", expiry: sessionExpiry()}

	token, err := signer.GenerateUserJWT(1, "jdoe", "a@b.com")
	require.NoError(t, err)

	_, err = verifier.VerifyUserJWT(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbageToken(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret", expiry: sessionExpiry()}

	_, err := svc.VerifyUserJWT("not.a.token")
	assert.Error(t, err)
}

func TestInitJWTService_RequiresSecret(t *testing.T) {
	assert.Error(t, InitJWTService(""))
	assert.NoError(t, InitJWTService("test-secret"))
}
