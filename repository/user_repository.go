package repository

import (
	"context"
	"time"

	"github.com/Govind-619/TurboLeague/models"
	"gorm.io/gorm"
)

// UserRepository persists accounts and the logout blacklist
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

// FindByID retrieves a user by id
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// List returns every user, newest first
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

// BlacklistToken records a logged-out token. Logging out twice is not an error.
func (r *UserRepository) BlacklistToken(ctx context.Context, token string, expiresAt time.Time) error {
	err := translate(r.db.WithContext(ctx).Create(&models.BlacklistedToken{
		Token:     token,
		ExpiresAt: expiresAt,
	}).Error)
	if err == ErrDuplicate {
		return nil
	}
	return err
}

// IsTokenBlacklisted reports whether token was logged out
func (r *UserRepository) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.BlacklistedToken{}).
		Where("token = ?", token).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// PurgeExpiredTokens drops blacklist entries whose tokens expired before now
func (r *UserRepository) PurgeExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&models.BlacklistedToken{})
	return res.RowsAffected, translate(res.Error)
}
