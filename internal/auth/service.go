package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/davidjulakidze/lolly-law-assessment/internal/shared"
)

// Service wraps authentication business rules.
type Service struct {
	repo   Repository
	hasher *PasswordHasher
}

// NewService constructs a new Service.
func NewService(repo Repository, hasher *PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// Signup registers a new account. The email must be unused; password length
// is validated at the boundary before this is called.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, shared.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
	}
	id, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	user.ID = id
	return &user, nil
}

// Login validates email/password credentials. An unknown email surfaces as
// ErrNotFound and a wrong password as ErrInvalidCredentials; the handler
// maps them to distinct status codes.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, shared.ErrInvalidCredentials
	}
	return user, nil
}

// CurrentUser resolves an authenticated identity back to a user record. The
// token being valid does not guarantee the user still exists.
func (s *Service) CurrentUser(ctx context.Context, id int64) (*User, error) {
	return s.repo.FindByID(ctx, id)
}
