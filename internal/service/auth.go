package service

import (
	"context"
	"errors"

	"github.com/harshit2786/pdf-chat-be/internal/auth"
	"github.com/harshit2786/pdf-chat-be/internal/models"
	"github.com/harshit2786/pdf-chat-be/internal/store"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService implements signup, signin and account maintenance.
type AuthService struct {
	store  *store.Store
	tokens *auth.TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(s *store.Store, tokens *auth.TokenService) *AuthService {
	return &AuthService{store: s, tokens: tokens}
}

// Signup registers a new account and returns the user plus a session token.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (*models.User, string, error) {
	if _, err := s.store.GetUserByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:    email,
		Name:     name,
		Password: string(hashed),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Signin verifies credentials and returns the user plus a session token.
func (s *AuthService) Signin(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// CurrentUser loads the account behind a verified token.
func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateAvatar replaces the avatar reference for an account.
func (s *AuthService) UpdateAvatar(ctx context.Context, userID uint, avatar string) error {
	if _, err := s.store.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.store.UpdateUserAvatar(ctx, userID, avatar)
}
