package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/store"
	"github.com/aussiebroadwan/hrms/pkg/cryptox"
	"github.com/aussiebroadwan/hrms/pkg/jwtx"
	"github.com/aussiebroadwan/hrms/pkg/slogx"
)

// AuthService issues tokens for employees and manages their passwords.
type AuthService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
	Now    func() time.Time

	dummyOnce sync.Once
	dummy     string
}

// IssuedToken is a freshly signed token.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// dummyHash is verified against when the email is unknown so a miss costs
// the same as a wrong password. It is built with the service's own Hasher so
// the pepper and cost match real hashes.
func (s *AuthService) dummyHash(ctx context.Context) string {
	s.dummyOnce.Do(func() {
		h, err := s.Hasher.Hash("not-a-real-password")
		if err != nil {
			slogx.FromContext(ctx).Error("failed to build dummy password hash", "error", err)
			return
		}
		s.dummy = h
	})
	return s.dummy
}

// Login checks credentials and returns a signed token for the employee.
// Unknown emails, wrong passwords and inactive accounts are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (IssuedToken, domain.Employee, error) {
	l := slogx.FromContext(ctx)
	email = NormalizeEmail(email)

	e, err := s.Store.Employees().GetByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		_ = s.Hasher.Verify(password, s.dummyHash(ctx))
		l.Info("login failed", "reason", "unknown_email")
		return IssuedToken{}, domain.Employee{}, ErrInvalidCredentials
	}
	if err != nil {
		return IssuedToken{}, domain.Employee{}, err
	}

	if err := s.Hasher.Verify(password, e.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Error("stored password hash unreadable", "employee", e.ID, "error", err)
		}
		l.Info("login failed", "reason", "bad_password", "employee", e.ID)
		return IssuedToken{}, domain.Employee{}, ErrInvalidCredentials
	}
	if !e.Active() {
		l.Info("login failed", "reason", "inactive", "employee", e.ID)
		return IssuedToken{}, domain.Employee{}, ErrInvalidCredentials
	}

	tok, err := s.Issue(e.ID, e.Role, e.Email)
	if err != nil {
		return IssuedToken{}, domain.Employee{}, err
	}
	l.Info("login succeeded", "employee", e.ID, "role", e.Role)
	return tok, e, nil
}

// Issue signs a token for subject with role.
func (s *AuthService) Issue(subject, role, email string) (IssuedToken, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}
	claims := jwtx.NewClaims(subject, role, email, s.Issuer, ttl, clockOrNow(s.Now))
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return IssuedToken{}, err
	}
	return IssuedToken{Token: token, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// ChangePassword replaces the caller's password after checking the current one.
func (s *AuthService) ChangePassword(ctx context.Context, employeeID, current, next string) error {
	e, err := s.Store.Employees().GetByID(ctx, employeeID)
	if err != nil {
		return mapStoreErr(err, "employee")
	}
	if err := s.Hasher.Verify(current, e.PasswordHash); err != nil {
		return newError(ErrInvalidInput, "current password is incorrect")
	}
	if err := validatePassword(next); err != nil {
		return err
	}
	if current == next {
		return invalid("new password must differ from the current one")
	}

	hash, err := s.Hasher.Hash(next)
	if err != nil {
		return err
	}
	if err := s.Store.Employees().UpdatePasswordHash(ctx, employeeID, hash); err != nil {
		return mapStoreErr(err, "employee")
	}
	slogx.FromContext(ctx).Info("password changed", "employee", employeeID)
	return nil
}
