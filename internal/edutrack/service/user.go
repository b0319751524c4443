package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/opencampus/edutrack/internal/edutrack/domain"
	"github.com/opencampus/edutrack/internal/edutrack/store"
	"github.com/opencampus/edutrack/pkg/cryptox"
	"github.com/opencampus/edutrack/pkg/idx"
	"github.com/opencampus/edutrack/pkg/slogx"
)

// ErrInvalidCredentials deliberately conflates "no such user" and "wrong
// password" so login responses never reveal whether an email is
// registered.
var ErrInvalidCredentials = errors.New("invalid_credentials")

type UserService struct {
	Store store.Store
}

// Register hashes the password and inserts the user. The role value is
// stored as given; routes only ever gate on the known role names, so an
// unknown role simply grants access to nothing.
func (s *UserService) Register(
	ctx context.Context,
	name, email, password string,
	role domain.Role,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("role", role.String()),
	)
	return user, nil
}

// Login verifies the email/password pair and returns the matched user.
// Both lookup misses and digest mismatches come back as
// ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("login failed", slog.String("user_id", user.ID))
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
