package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_CreateUser(t *testing.T) {
	env := setupServiceTestEnv(t)

	user, err := env.users.CreateUser(context.Background(), CreateUserInput{
		Email:    "ada@example.com",
		Name:     "Ada",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NotEqual(t, "secret123", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func TestUserService_CreateUserDuplicateEmail(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	input := CreateUserInput{Email: "ada@example.com", Name: "Ada", Password: "secret123"}
	_, err := env.users.CreateUser(ctx, input)
	require.NoError(t, err)

	_, err = env.users.CreateUser(ctx, input)
	require.ErrorIs(t, err, ErrUniquenessViolation)
}

func TestUserService_CreateUserValidation(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateUserInput
		field string
	}{
		{"bad email", CreateUserInput{Email: "not-an-email", Name: "Ada", Password: "secret123"}, "email"},
		{"missing name", CreateUserInput{Email: "ada@example.com", Password: "secret123"}, "name"},
		{"short password", CreateUserInput{Email: "ada@example.com", Name: "Ada", Password: "12345"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.users.CreateUser(ctx, tt.input)
			require.ErrorIs(t, err, ErrInvalidInput)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.field, verr.Field)
		})
	}
}
