package store

import (
	"context"

	"github.com/harshit2786/pdf-chat-be/internal/models"
)

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return s.DB.WithContext(ctx).Create(user).Error
}

// GetUserByEmail looks a user up by email address.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID looks a user up by primary key.
func (s *Store) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserAvatar replaces the avatar reference for a user.
func (s *Store) UpdateUserAvatar(ctx context.Context, id uint, avatar string) error {
	return s.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("avatar", avatar).Error
}
