package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, name, email, password string) (int, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
	GetByID(ctx context.Context, id int) (User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With(slog.String("component", "user_service")),
	}
}

// Register validates the input, rejects duplicate emails and stores the new
// user with a hashed password. Nothing is written on any failure path.
func (s *Service) Register(ctx context.Context, name, email, password string) (int, error) {
	if err := s.validator.ValidateRegister(name, email, password); err != nil {
		s.log.Debug("registration rejected", "email", email, "error", err)
		return 0, err
	}

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return 0, ErrExists
	}
	if !errors.Is(err, ErrNotFound) {
		s.log.Error("failed to check existing email", "error", err)
		return 0, fmt.Errorf("find user by email: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		s.log.Error("failed to hash password", "error", err)
		return 0, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.repo.Create(ctx, name, email, hash)
	if err != nil {
		if errors.Is(err, ErrExists) {
			return 0, ErrExists
		}
		s.log.Error("failed to create user", "error", err)
		return 0, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "user_id", userID)
	return userID, nil
}

// Authenticate reports the same ErrInvalidCredentials for an unknown email
// and a wrong password, so callers cannot probe which field was wrong.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	if err := s.validator.ValidateLogin(email, password); err != nil {
		return User{}, err
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		s.log.Error("failed to look up user", "error", err)
		return User{}, fmt.Errorf("find user by email: %w", err)
	}

	if !CheckPassword(password, u.Password) {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		s.log.Error("failed to get user", "user_id", id, "error", err)
		return User{}, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}
