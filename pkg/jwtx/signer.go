package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// AlgorithmHS256 is the only algorithm the HRMS tokens are signed with.
const AlgorithmHS256 = "HS256"

// ErrEmptySecret is returned when a signer or verifier is built without a key.
var ErrEmptySecret = errors.New("jwtx: empty secret")

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// HS256Signer signs claims with a shared HMAC-SHA256 secret.
type HS256Signer struct {
	secret []byte
}

// NewSignerHS256 creates a signer for the given shared secret. The slice is
// copied so later changes by the caller don't leak into issued tokens.
func NewSignerHS256(secret []byte) (*HS256Signer, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &HS256Signer{secret: append([]byte(nil), secret...)}, nil
}

func (s *HS256Signer) Alg() string { return AlgorithmHS256 }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}
