package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/rhythmicmansion/server/internal/domain/entity"
	"github.com/rhythmicmansion/server/internal/domain/repository"
	"github.com/rhythmicmansion/server/internal/errs"
)

// UserService owns user records and role resolution.
type UserService struct {
	repo   repository.UserRepository
	logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.repo.List(ctx)
}

// Register stores a user record on first sign-in. Uniqueness by email is a
// check-then-insert, not an atomic upsert: two concurrent first-time logins
// can slip past the existence check and both insert. That window is inherited
// behavior the frontend tolerates.
func (s *UserService) Register(ctx context.Context, u *entity.User) (string, error) {
	_, err := s.repo.FindByEmail(ctx, u.Email)
	if err == nil {
		return "", errs.ErrAlreadyExists
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return "", err
	}
	if err := s.repo.Insert(ctx, u); err != nil {
		return "", err
	}
	s.logger.WithFields(logrus.Fields{"id": u.ID, "email": u.Email}).Info("user registered")
	return u.ID, nil
}

// Role resolves the current role for an email. An absent record resolves to
// RoleNone; it is not an error.
func (s *UserService) Role(ctx context.Context, email string) (entity.Role, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, errs.ErrNotFound) {
		return entity.RoleNone, nil
	}
	if err != nil {
		return entity.RoleNone, err
	}
	return u.Role, nil
}

// GrantRole unconditionally sets the role on a user record and returns the
// number of rows matched. Granting to a missing id is not an error.
func (s *UserService) GrantRole(ctx context.Context, id string, role entity.Role) (int64, error) {
	n, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return 0, err
	}
	s.logger.WithFields(logrus.Fields{"id": id, "role": role, "matched": n}).Info("role granted")
	return n, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (int64, error) {
	return s.repo.Delete(ctx, id)
}
