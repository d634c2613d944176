package server

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/careerpath/internal/config"
	"github.com/jonathan/careerpath/internal/errs"
	"github.com/jonathan/careerpath/internal/session"
	"github.com/jonathan/careerpath/internal/storage"
	"github.com/jonathan/careerpath/internal/types"
)

// UserService provides business logic for account and session operations
type UserService struct {
	users          storage.Users
	sessions       session.Store
	passwordConfig *config.PasswordConfig
	jwtService     *JWTService
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(users storage.Users, sessions session.Store, passwordConfig *config.PasswordConfig, jwtService *JWTService) *UserService {
	return &UserService{
		users:          users,
		sessions:       sessions,
		passwordConfig: passwordConfig,
		jwtService:     jwtService,
	}
}

// Register creates a new account with a hashed password
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	existing, err := s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("username %q: %w", req.Username, errs.ErrAlreadyExists)
	}

	hash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, types.NewUser{Username: req.Username, Password: hash})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login authenticates a user. Unknown usernames and wrong passwords fail the same way.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	user, err := s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	if user == nil || !s.passwordConfig.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// StartSession records a new session for user and returns a token bound to it.
func (s *UserService) StartSession(ctx context.Context, user *types.User) (string, error) {
	id := storage.NewID()
	ttl := s.jwtService.TTL()
	if err := s.sessions.Set(ctx, id, session.Session{UserID: user.ID, CreatedAt: time.Now()}, ttl); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID, id)
	if err != nil {
		_ = s.sessions.Destroy(ctx, id)
		return "", err
	}
	return token, nil
}

// EndSession destroys the session so its token stops working before it expires.
func (s *UserService) EndSession(ctx context.Context, sessionID string) error {
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

// Current returns the authenticated account.
func (s *UserService) Current(ctx context.Context, userID string) (*types.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, errs.ErrNotFound)
	}
	return user, nil
}
