package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"advocate-backend/models"
	"advocate-backend/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	defaultSessionTTL = 24 * time.Hour
)

// AuthService handles registration and bearer-token sessions
type AuthService struct {
	users      UserStore
	sessions   SessionStore
	sessionTTL time.Duration
	bcryptCost int
	logger     *zap.Logger
}

// AuthServiceOption is a functional option for AuthService
type AuthServiceOption func(*AuthService)

// AuthWithUserStore sets the user store
func AuthWithUserStore(store UserStore) AuthServiceOption {
	return func(s *AuthService) {
		s.users = store
	}
}

// AuthWithSessionStore sets the session store
func AuthWithSessionStore(store SessionStore) AuthServiceOption {
	return func(s *AuthService) {
		s.sessions = store
	}
}

// AuthWithSessionTTL sets the lifetime of issued tokens
func AuthWithSessionTTL(ttl time.Duration) AuthServiceOption {
	return func(s *AuthService) {
		s.sessionTTL = ttl
	}
}

// AuthWithBcryptCost sets the password hashing cost
func AuthWithBcryptCost(cost int) AuthServiceOption {
	return func(s *AuthService) {
		s.bcryptCost = cost
	}
}

// AuthWithLogger sets the logger
func AuthWithLogger(logger *zap.Logger) AuthServiceOption {
	return func(s *AuthService) {
		s.logger = logger
	}
}

// NewAuthService creates a new auth service
func NewAuthService(opts ...AuthServiceOption) *AuthService {
	s := &AuthService{
		sessionTTL: defaultSessionTTL,
		bcryptCost: bcrypt.DefaultCost,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Email    string
	Password string
	Name     string
}

// RegisterResult represents the created account
type RegisterResult struct {
	User *models.User
}

// Register creates an account with a bcrypt-hashed password
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidRegistration)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidRegistration, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID.String()))
	return &RegisterResult{User: user}, nil
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResult represents an issued session
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

// Login verifies credentials and issues a bearer token
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token := uuid.New().String()
	if err := s.sessions.Create(ctx, token, user.ID, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		User:      user,
	}, nil
}

// Authenticate resolves a bearer token to its user
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// Logout revokes a bearer token
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}
