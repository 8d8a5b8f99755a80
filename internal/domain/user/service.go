package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/bedboard/bedboard/internal/platform/apperr"
	"github.com/bedboard/bedboard/internal/platform/auth"
)

const bcryptCost = 10

type Service struct {
	repo   Repository
	issuer *auth.Issuer
}

func NewService(repo Repository, issuer *auth.Issuer) *Service {
	return &Service{repo: repo, issuer: issuer}
}

func (s *Service) Signup(ctx context.Context, username, password, role string) (Public, error) {
	if username == "" || password == "" {
		return Public{}, apperr.E(apperr.KindValidation, "Username and password are required.")
	}
	if role == "" {
		role = auth.RoleStaff
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return Public{}, apperr.Wrap(apperr.KindInternal, "hash password", err)
	}
	u := &User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         strings.ToUpper(role),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return Public{}, err
	}
	return u.Public(), nil
}

// Login returns the same Unauthorized error for an unknown username and a
// wrong password, so callers cannot probe which usernames exist.
func (s *Service) Login(ctx context.Context, username, password string) (string, Public, error) {
	if username == "" || password == "" {
		return "", Public{}, apperr.E(apperr.KindValidation, "Username and password are required.")
	}
	invalid := apperr.E(apperr.KindUnauthorized, "Invalid username or password.")

	u, err := s.repo.GetByUsername(ctx, username)
	if apperr.KindOf(err) == apperr.KindNotFound {
		return "", Public{}, invalid
	}
	if err != nil {
		return "", Public{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", Public{}, invalid
	}

	token, err := s.issuer.Issue(u.UserID, u.Role)
	if err != nil {
		return "", Public{}, apperr.Wrap(apperr.KindInternal, "issue token", err)
	}
	return token, u.Public(), nil
}

func (s *Service) ResetPassword(ctx context.Context, actingRole, targetUsername, newPassword string) error {
	if !auth.Allow(actingRole, auth.RoleAdmin) {
		return apperr.E(apperr.KindForbidden, "Access denied. Admin only.")
	}
	if targetUsername == "" || newPassword == "" {
		return apperr.E(apperr.KindValidation, "Target username and new password are required.")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "hash password", err)
	}
	return s.repo.UpdatePasswordHash(ctx, targetUsername, string(hash))
}
