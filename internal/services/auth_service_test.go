package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"stonevault-backend/internal/dto"
	"stonevault-backend/internal/models"
)

func TestRegisterCreatesUserRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register(&dto.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "supersecret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("supersecret")))
}

func TestRegisterDuplicateEmailLeavesAccountUntouched(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	first, err := svc.Register(&dto.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Impostor",
		Password: "otherpassword",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	var stored models.User
	require.NoError(t, db.First(&stored, "email = ?", "alice@example.com").Error)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "Alice", stored.Name)
	assert.Equal(t, first.Password, stored.Password)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmailIndistinguishable(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSuccess(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	registered, err := svc.Register(&dto.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "supersecret",
	})
	require.NoError(t, err)

	user, err := svc.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}
