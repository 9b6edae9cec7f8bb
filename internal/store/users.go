package store

import (
	"errors"
	"strings"

	"rentdesk/server/internal/models"

	"gorm.io/gorm"
)

func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", normalizeEmail(email)).First(&user).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *Store) CreateUser(user *models.User) error {
	user.Email = normalizeEmail(user.Email)

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}

	return s.db.Create(user).Error
}

func (s *Store) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetUser(id)
}

// GetProfileByUser returns the profile for a user account, or ErrNotFound
// when none has been created yet.
func (s *Store) GetProfileByUser(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Preload("Property").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (s *Store) CreateProfile(profile *models.Profile) error {
	if profile.UserType == "" {
		profile.UserType = models.UserTypeTenant
	}
	return s.db.Create(profile).Error
}

func (s *Store) UpdateProfile(id uint, updates map[string]interface{}) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, id).Error; err != nil {
		return nil, notFound(err)
	}
	if err := s.db.Model(&profile).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.db.Preload("Property").First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
