package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NissanXoX/LinkApp/internal/db"
)

// UserRepository is the read-only view this engine has of the profile
// catalog. Profile writes happen in the onboarding flow, never here.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new repository bound to the given DB connection.
func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

// Get fetches one profile by ID.
// Returns gorm.ErrRecordNotFound for unknown users.
func (r *UserRepository) Get(ctx context.Context, userID uint64) (db.User, error) {
	var user db.User
	err := r.db.WithContext(ctx).First(&user, userID).Error
	return user, err
}

// ListAll returns every active profile in stable ID order. The deck builder
// relies on this enumeration order to break score ties deterministically.
func (r *UserRepository) ListAll(ctx context.Context) ([]db.User, error) {
	var users []db.User
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id ASC").
		Find(&users).Error
	return users, err
}
