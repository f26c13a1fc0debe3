package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/hrms/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestNewClaims(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c := jwtx.NewClaims("u1", "hr", "u1@example.com", "hrms", time.Hour, now)

	require.Equal(t, "u1", c.Subject)
	require.Equal(t, "hr", c.Role)
	require.Equal(t, "u1@example.com", c.Email)
	require.Equal(t, "hrms", c.Issuer)
	require.Equal(t, now, c.IssuedAt.Time)
	require.Equal(t, now.Add(time.Hour), c.ExpiresAt.Time)
	require.NotEmpty(t, c.ID)
}

func TestValidateIdentity(t *testing.T) {
	t.Run("subject and role present", func(t *testing.T) {
		c := jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}, Role: "employee"}
		require.NoError(t, c.ValidateIdentity())
	})

	t.Run("missing role", func(t *testing.T) {
		c := jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}}
		require.ErrorIs(t, c.ValidateIdentity(), jwtx.ErrMissingIdentity)
	})

	t.Run("missing subject", func(t *testing.T) {
		c := jwtx.Claims{Role: "admin"}
		require.ErrorIs(t, c.ValidateIdentity(), jwtx.ErrMissingIdentity)
	})
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid token", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(1 * time.Minute)),
			},
		}
		require.NoError(t, claims.ValidateExpiry(now))
	})

	t.Run("expired token", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(now), jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				NotBefore: jwt.NewNumericDate(now.Add(1 * time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(now), jwtx.ErrNotYetValid)
	})

	// Tokens without exp never expire, which we don't hand out.
	t.Run("no exp", func(t *testing.T) {
		claims := &jwtx.Claims{}
		require.ErrorIs(t, claims.ValidateExpiry(now), jwtx.ErrExpired)
	})
}
