package service

import (
	"context"
	"errors"

	"github.com/focusflow/focusflow-go/internal/crypto"
	"github.com/focusflow/focusflow-go/internal/model"
	"github.com/focusflow/focusflow-go/internal/repository"
)

var (
	ErrAllFieldsRequired  = errors.New("all fields are required")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore is the persistence surface AuthService depends on.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService handles registration and login.
type AuthService struct {
	store     UserStore
	jwtSecret string
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, secret string) *AuthService {
	return &AuthService{store: store, jwtSecret: secret}
}

// Register creates a new account and returns a bearer token for it.
// The password is stored only as a bcrypt digest, and the token claims
// are signed from the persisted record — the same claims contract as
// Login.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (string, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return "", ErrAllFieldsRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return "", ErrUserExists
		}
		return "", err
	}

	return crypto.GenerateToken(user.ID, user.Name, user.Email, s.jwtSecret)
}

// Login authenticates an account and returns a bearer token plus a
// public-safe projection of the user.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, model.UserResponse, error) {
	if req.Email == "" || req.Password == "" {
		return "", model.UserResponse{}, ErrAllFieldsRequired
	}

	user, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", model.UserResponse{}, ErrUserNotFound
		}
		return "", model.UserResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return "", model.UserResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, user.Name, user.Email, s.jwtSecret)
	if err != nil {
		return "", model.UserResponse{}, err
	}

	return token, model.UserResponse{Name: user.Name, Email: user.Email}, nil
}
