package store

import (
	"golang.org/x/crypto/bcrypt"

	"go-retail-pos/internal/models"
)

// FindUserByUsername looks up one login account.
func (s *Store) FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a login account. The username is unique.
func (s *Store) CreateUser(u *models.User) error {
	return s.db.Create(u).Error
}

// EnsureAdminUser creates the initial admin account when no users exist,
// so a fresh install can log in at all. Existing accounts are left alone.
func (s *Store) EnsureAdminUser(username, password string) error {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.CreateUser(&models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         "admin",
	})
}
