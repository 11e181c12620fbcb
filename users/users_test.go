package users_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-wiki-client/users"
	"github.com/stretchr/testify/require"
)

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		wantErr  string
	}{
		{"Short1", "at least 8 characters"},
		{"alllowercase1", "uppercase"},
		{"ALLUPPERCASE1", "lowercase"},
		{"NoNumbersHere", "number"},
		{"Password123", ""},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := users.ValidatePasswordStrength(tt.password)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	hash, err := users.HashPassword("Password123")
	require.NoError(t, err)

	u := &users.User{Username: "admin", PasswordHash: hash}
	require.True(t, u.Authenticate("Password123"))
	require.False(t, u.Authenticate("password123"))
	require.True(t, u.CanWrite())

	u.ReadOnly = true
	require.False(t, u.CanWrite())

	u.Blocked = true
	require.False(t, u.Authenticate("Password123"))
}

func TestInMemoryRepo(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	original := users.NowTimeFunc
	users.NowTimeFunc = func() time.Time { return now }
	t.Cleanup(func() { users.NowTimeFunc = original })

	repo := users.NewInMemoryRepo()
	_, err := repo.GetByUsername("admin")
	require.ErrorIs(t, err, users.ErrNotFound)
	require.ErrorIs(t, repo.SetLastLogin("admin"), users.ErrNotFound)

	u := &users.User{Username: "admin"}
	require.NoError(t, repo.Upsert(u))
	require.NotEmpty(t, u.ID)
	require.Equal(t, now, u.DateJoined)

	require.NoError(t, repo.SetLastLogin("admin"))
	got, err := repo.GetByUsername("admin")
	require.NoError(t, err)
	require.Equal(t, now, got.LastLogin)
}
