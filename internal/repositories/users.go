package repositories

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rohits-web03/plotwise/internal/models"
	"gorm.io/gorm"
)

// CreateUser inserts the account, rejecting duplicate emails with
// ErrEmailTaken. The unique index on email is the arbiter, so two
// registrations racing on the same email resolve to one winner and one
// conflict with no application-level locking.
func (s *Store) CreateUser(user *models.User) error {
	err := s.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return err
}

// UserByEmailAndRole is the login lookup: the role is part of the key,
// so credentials under one role never open a session under another.
func (s *Store) UserByEmailAndRole(email string, role models.Role) (models.User, error) {
	var user models.User
	err := s.db.Where("email = ? AND role = ?", email, role).First(&user).Error
	return user, err
}

func (s *Store) UserByEmail(email string) (models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	return user, err
}

func (s *Store) UserByID(id uuid.UUID) (models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	return user, err
}

// ListUsersByRole returns accounts of the role with their searches
// preloaded, oldest first.
func (s *Store) ListUsersByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	err := s.db.Preload("Searches").
		Where("role = ?", role).
		Order("created_at asc").
		Find(&users).Error
	return users, err
}

func (s *Store) CountUsersByRole(role models.Role) (int64, error) {
	var n int64
	err := s.db.Model(&models.User{}).Where("role = ?", role).Count(&n).Error
	return n, err
}

// UpdateUserProfile changes the name and email of the account currently
// holding oldEmail. Role and credential are untouchable through this
// path. An email change re-checks uniqueness first.
func (s *Store) UpdateUserProfile(oldEmail, newName, newEmail string) error {
	var user models.User
	if err := s.db.Where("email = ?", oldEmail).First(&user).Error; err != nil {
		return err
	}

	if newEmail != oldEmail {
		var existing models.User
		err := s.db.Where("email = ?", newEmail).First(&existing).Error
		switch {
		case err == nil:
			return ErrEmailTaken
		case errors.Is(err, gorm.ErrRecordNotFound):
			// email is free
		default:
			return err
		}
	}

	user.Name = newName
	user.Email = newEmail
	err := s.db.Save(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// A concurrent writer claimed the email between the check and
		// the save; same outcome as losing the pre-check.
		return ErrEmailTaken
	}
	return err
}

// DeleteUserByEmail removes the account and all of its searches in one
// transaction. Admin accounts are protected.
func (s *Store) DeleteUserByEmail(email string) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return err
	}
	if user.Role == models.RoleAdmin {
		return ErrAdminProtected
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Search{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
