package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthieukhl/giftlab/internal/models"
)

func TestUserRoundTrip(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)

	user := models.User{Email: "alice@example.com", Password: "hash", Name: "Alice"}
	require.NoError(t, users.CreateUser(&user))
	require.NotZero(t, user.ID)

	byEmail, err := users.GetUserByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.Password)
	assert.False(t, byEmail.IsAdmin)

	byID, err := users.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)

	first := models.User{Email: "alice@example.com", Password: "hash", Name: "Alice"}
	require.NoError(t, users.CreateUser(&first))

	second := models.User{Email: "alice@example.com", Password: "other", Name: "Impostor"}
	assert.ErrorIs(t, users.CreateUser(&second), ErrConflict)
}

func TestGetUserNotFound(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)

	_, err := users.GetUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = users.GetUserByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetAdmin(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)

	user := models.User{Email: "alice@example.com", Password: "hash", Name: "Alice"}
	require.NoError(t, users.CreateUser(&user))

	require.NoError(t, users.SetAdmin(user.ID, true))
	got, err := users.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)

	assert.ErrorIs(t, users.SetAdmin(9999, true), ErrNotFound)
}
