package repositories

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the target record does not exist.
	ErrNotFound = gorm.ErrRecordNotFound
	// ErrEmailTaken is returned when a create or edit would duplicate
	// an email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrAdminProtected is returned when a delete targets an admin
	// account.
	ErrAdminProtected = errors.New("admin accounts cannot be deleted")
)
