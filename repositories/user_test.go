package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mealmatch/errors"
)

func Test_CreateUser_And_Fetch(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openTestDB(t))

	id, err := repository.CreateUser("alice@example.com", "$argon2id$fake")
	req.NoError(err)
	req.NotEmpty(id)

	user, err := repository.GetUserByEmail("alice@example.com")
	req.NoError(err)
	req.Equal(id, user.ID)
	req.Equal("alice@example.com", user.Email)
	req.Equal("$argon2id$fake", user.PasswordHash)
	req.Equal([]string{"user"}, user.Roles)
}

func Test_CreateUser_Duplicate_Email(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openTestDB(t))

	_, err := repository.CreateUser("alice@example.com", "hash-1")
	req.NoError(err)

	id, err := repository.CreateUser("alice@example.com", "hash-2")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)
	req.Empty(id)

	// The first registration still stands
	user, err := repository.GetUserByEmail("alice@example.com")
	req.NoError(err)
	req.Equal("hash-1", user.PasswordHash)
}

func Test_GetUserByEmail_Unknown(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openTestDB(t))

	_, err := repository.GetUserByEmail("ghost@example.com")
	req.ErrorIs(err, errors.ErrNotFound)
}
