package repositories

import (
	"smmehub_backend/internal/models"

	"gorm.io/gorm"
)

type SocialPostRepository interface {
	CreateBatch(posts []models.SocialPost) error
	ListByProfile(profileID string) ([]models.SocialPost, error)
}

type SocialPostRepositoryImpl struct {
	db *gorm.DB
}

func NewSocialPostRepository(db *gorm.DB) SocialPostRepository {
	return &SocialPostRepositoryImpl{db: db}
}

func (r *SocialPostRepositoryImpl) CreateBatch(posts []models.SocialPost) error {
	if len(posts) == 0 {
		return nil
	}
	return r.db.Create(&posts).Error
}

func (r *SocialPostRepositoryImpl) ListByProfile(profileID string) ([]models.SocialPost, error) {
	var posts []models.SocialPost
	err := r.db.Where("profile_id = ?", profileID).Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
