package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// ErrInvalidToken is the only error class a Verifier reports. Whether the
// token was malformed, forged or expired is kept out of the error chain so
// callers can't turn it into an oracle; the cause survives only as text for
// server-side logs.
var ErrInvalidToken = errors.New("jwtx: invalid or expired token")

var (
	ErrExpired         = errors.New("jwtx: token expired")
	ErrNotYetValid     = errors.New("jwtx: token not yet valid")
	ErrMissingIdentity = errors.New("jwtx: token missing subject or role")
)

// VerifyOptions captures the expectations of an HS256Verifier.
type VerifyOptions struct {
	// Issuer the token must have (claims.iss). Empty means "don't care".
	Issuer string

	// Leeway allows small clock skew when validating exp/nbf.
	Leeway time.Duration

	// Now is the clock used for expiry checks. Defaults to time.Now.
	Now func() time.Time
}

// HS256Verifier validates tokens signed with a shared HMAC-SHA256 secret.
type HS256Verifier struct {
	secret []byte
	issuer string
	leeway time.Duration
	now    func() time.Time
}

// NewVerifierHS256 creates a verifier bound to secret. Like the signer, it
// keeps its own copy of the key.
func NewVerifierHS256(secret []byte, opts VerifyOptions) (*HS256Verifier, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &HS256Verifier{
		secret: append([]byte(nil), secret...),
		issuer: opts.Issuer,
		leeway: opts.Leeway,
		now:    now,
	}, nil
}

// Verify validates the JWT string and returns its parsed Claims.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{AlgorithmHS256}),
		jwt.WithTimeFunc(v.now),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.issuer))
	}
	parser := jwt.NewParser(parserOpts...)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, invalid(err)
	}
	if !token.Valid {
		return Claims{}, invalid(errors.New("token not valid"))
	}

	if err := claims.ValidateIdentity(); err != nil {
		return Claims{}, invalid(err)
	}

	return *claims, nil
}

// Inspect checks the algorithm, signature and issuer of tokenStr but not its
// lifetime, so an expired token can still be examined. Callers decide on
// lifetime with Claims.ValidateExpiry. Never use it to authorize a request.
func (v *HS256Verifier) Inspect(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{AlgorithmHS256}),
		jwt.WithoutClaimsValidation(),
	)

	claims := &Claims{}
	if _, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}); err != nil {
		return Claims{}, invalid(err)
	}
	if v.issuer != "" && claims.Issuer != v.issuer {
		return Claims{}, invalid(fmt.Errorf("issuer %q", claims.Issuer))
	}
	return *claims, nil
}

// invalid flattens cause into ErrInvalidToken. %v on purpose: the cause must
// not be reachable through errors.Is/As.
func invalid(cause error) error {
	return fmt.Errorf("%w: %v", ErrInvalidToken, cause)
}
