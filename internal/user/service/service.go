package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	usermetrics "rolodex/internal/user/metrics"
	"rolodex/internal/user/models"
	dErrors "rolodex/pkg/domain-errors"
	"rolodex/pkg/platform/sentinel"
)

// Store is the persistence contract for user records. Create reports
// sentinel.ErrConflict when the username is taken; lookups report
// sentinel.ErrNotFound.
type Store interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByToken(ctx context.Context, token string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// Service owns the account lifecycle: registration, credential verification,
// session token issuance, profile updates, and logout.
type Service struct {
	users   Store
	metrics *usermetrics.Metrics
}

func New(users Store, metrics *usermetrics.Metrics) *Service {
	return &Service{users: users, metrics: metrics}
}

type RegisterParams struct {
	Username string
	Password string
	Name     string
}

type LoginParams struct {
	Username string
	Password string
}

// UpdateParams carries the optional profile fields; empty means leave
// unchanged.
type UpdateParams struct {
	Name     string
	Password string
}

// Register creates an account with a bcrypt-hashed password. The returned
// record carries no token.
func (s *Service) Register(ctx context.Context, p RegisterParams) (*models.User, error) {
	hash, err := hashPassword(p.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: p.Username, Name: p.Name, Password: hash}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "username already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}

	s.metrics.IncRegistered()
	return user, nil
}

// Login verifies credentials and rotates the session token. Unknown usernames
// and wrong passwords produce the identical error so the endpoint cannot be
// used to probe for accounts.
func (s *Service) Login(ctx context.Context, p LoginParams) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, p.Username)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, errInvalidCredentials()
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(p.Password)) != nil {
		return nil, errInvalidCredentials()
	}

	user.Token = uuid.NewString()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist session token")
	}

	s.metrics.IncLogins()
	return user, nil
}

// Update overwrites name and/or password when present; the password is
// re-hashed. Absent fields are left untouched.
func (s *Service) Update(ctx context.Context, user *models.User, p UpdateParams) (*models.User, error) {
	if p.Name != "" {
		user.Name = p.Name
	}
	if p.Password != "" {
		hash, err := hashPassword(p.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update user")
	}
	return user, nil
}

// Logout clears the stored session token, invalidating it immediately.
func (s *Service) Logout(ctx context.Context, user *models.User) error {
	user.Token = ""
	if err := s.users.Update(ctx, user); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear session token")
	}
	return nil
}

// ResolveToken maps a presented X-API-TOKEN value to its user. It backs the
// auth middleware; any failure is a generic unauthorized.
func (s *Service) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "unauthorized")
	}
	user, err := s.users.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "unauthorized")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve token")
	}
	return user, nil
}

func errInvalidCredentials() error {
	return dErrors.New(dErrors.CodeUnauthorized, "username or password is wrong")
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", dErrors.Wrap(fmt.Errorf("hash password: %w", err), dErrors.CodeInternal, "failed to hash password")
	}
	return string(hash), nil
}
