package services

import (
	"testing"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRegistry_SeedsDemoAccount(t *testing.T) {
	registry := NewUserRegistry()

	user, err := registry.Authenticate("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "admin@example.com", user.Email)
}

func TestUserRegistry_RegisterAndAuthenticate(t *testing.T) {
	registry := NewUserRegistry()

	created, err := registry.Register(models.RegisterRequest{
		Username:  "jdoe",
		Password:  "hunter22",
		Email:     "jdoe@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	user, err := registry.Authenticate("jdoe", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, created, user)

	_, err = registry.Authenticate("jdoe", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = registry.Authenticate("ghost", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserRegistry_UsernameIsCaseInsensitiveAndUnique(t *testing.T) {
	registry := NewUserRegistry()

	_, err := registry.Register(models.RegisterRequest{Username: "ADMIN", Password: "whatever"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	user, err := registry.Authenticate("ADMIN", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
}

func TestUserRegistry_Lookup(t *testing.T) {
	registry := NewUserRegistry()

	user, found := registry.Lookup("Admin")
	require.True(t, found)
	assert.Equal(t, "admin", user.Username)

	_, found = registry.Lookup("ghost")
	assert.False(t, found)
}
