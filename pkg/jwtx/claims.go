package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of an access token issued at login. A
// working day plus margin, so people are not kicked out mid-shift.
const DefaultTokenTTL = 24 * time.Hour

// Claims are the access-token claims shared by the HRMS API and anything
// issuing tokens for it.
type Claims struct {
	jwt.RegisteredClaims

	// Role is the single role label of the subject ("admin", "hr", "employee").
	Role string `json:"role"`

	// Email is a secondary identity claim, handy for audit logs and the UI.
	Email string `json:"email,omitempty"`
}

// NewClaims builds minimally-correct claims for subject with the given role.
func NewClaims(subject, role, email, issuer string, ttl time.Duration, now time.Time) Claims {
	now = now.UTC()
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Role:  role,
		Email: email,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIdentity makes sure the token actually says who and what the
// caller is. A token without a subject or role is useless to the role gate.
func (c *Claims) ValidateIdentity() error {
	if c.Subject == "" || c.Role == "" {
		return ErrMissingIdentity
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used before
// nbf, relative to now.
func (c *Claims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt == nil {
		return ErrExpired
	}
	if !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
