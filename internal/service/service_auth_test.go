// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/store"
	"github.com/MKhiriev/go-ad-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestAuthService(repo *mockUserRepository) AuthService {
	return NewAuthService(repo, logger.Nop())
}

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "john_doe", user.Username)
			assert.NotEqual(t, "secret", user.PasswordHash, "password must be stored hashed")
			assert.False(t, user.CreatedAt.IsZero())
			user.UserID = 42
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.RegisterUser(context.Background(), "john_doe", "secret")

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.UserID)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
}

func TestAuthService_RegisterUser_EmptyFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "secret"},
		{name: "empty password", username: "john_doe", password: ""},
		{name: "both empty", username: "", password: ""},
		{name: "too long username", username: strings.Repeat("x", models.UsernameMaxLen+1), password: "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.username, tt.password)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), "john_doe", "secret")

	require.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAuthService_RegisterUser_StorageError(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, errStorage
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), "john_doe", "secret")

	require.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func loginTestUser(t *testing.T, password string) models.User {
	t.Helper()

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return models.User{UserID: 7, Username: "john_doe", PasswordHash: string(digest)}
}

func TestAuthService_Login_Success(t *testing.T) {
	stored := loginTestUser(t, "secret")
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			assert.Equal(t, "john_doe", username)
			return stored, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), "john_doe", "secret")

	require.NoError(t, err)
	assert.Equal(t, stored.UserID, user.UserID)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "ghost", "secret")

	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	stored := loginTestUser(t, "secret")
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return stored, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "john_doe", "not-the-password")

	require.ErrorIs(t, err, ErrInvalidCredentials)
}

// Unknown username and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_ErrorsAreIndistinguishable(t *testing.T) {
	stored := loginTestUser(t, "secret")

	unknownRepo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	wrongPassRepo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return stored, nil
		},
	}

	_, errUnknown := newTestAuthService(unknownRepo).Login(context.Background(), "ghost", "secret")
	_, errWrongPass := newTestAuthService(wrongPassRepo).Login(context.Background(), "john_doe", "nope")

	assert.Equal(t, errUnknown, errWrongPass)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	called := false
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			called = true
			return models.User{}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "", "")

	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, called, "storage must not be hit for empty credentials")
}

func TestAuthService_Login_StorageError(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errStorage
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "john_doe", "secret")

	require.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
