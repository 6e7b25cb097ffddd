package repositories

import (
	"errors"
	"time"

	"smmehub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ProfileRepository interface {
	FindByUserID(userID string) (*models.SmeProfile, error)
	FindByID(id string) (*models.SmeProfile, error)
	Create(profile *models.SmeProfile) error
	UpdateFields(userID string, updates map[string]interface{}) (*models.SmeProfile, error)
	// ExpireSubscriptions flips expired active subscriptions back to
	// inactive and returns how many rows changed.
	ExpireSubscriptions(now time.Time) (int64, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) FindByUserID(userID string) (*models.SmeProfile, error) {
	var profile models.SmeProfile
	if err := r.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindByID(id string) (*models.SmeProfile, error) {
	var profile models.SmeProfile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Create(profile *models.SmeProfile) error {
	var count int64
	if err := r.db.Model(&models.SmeProfile{}).Where("user_id = ?", profile.UserID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrProfileAlreadyExists
	}
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) UpdateFields(userID string, updates map[string]interface{}) (*models.SmeProfile, error) {
	result := r.db.Model(&models.SmeProfile{}).Where("user_id = ?", userID).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProfileNotFound
	}
	return r.FindByUserID(userID)
}

func (r *ProfileRepositoryImpl) ExpireSubscriptions(now time.Time) (int64, error) {
	result := r.db.Model(&models.SmeProfile{}).
		Where("subscription_status = ? AND subscription_expiry IS NOT NULL AND subscription_expiry < ?",
			models.SubscriptionStatusActive, now).
		Updates(map[string]interface{}{"subscription_status": models.SubscriptionStatusInactive})
	return result.RowsAffected, result.Error
}
