package repositories

import (
	"errors"

	"smmehub_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrWebsiteNotFound  = errors.New("website draft not found")
	ErrSlugAlreadyTaken = errors.New("slug already taken")
)

type WebsiteRepository interface {
	// UpsertDraft stores the draft for a profile, replacing any previous
	// one. A profile has at most one draft.
	UpsertDraft(draft *models.WebsiteDraft) error
	FindByProfileID(profileID string) (*models.WebsiteDraft, error)
	FindPublishedBySlug(slug string) (*models.WebsiteDraft, error)
	// Publish sets the slug and marks the draft published.
	Publish(profileID, slug string) (*models.WebsiteDraft, error)
}

type WebsiteRepositoryImpl struct {
	db *gorm.DB
}

func NewWebsiteRepository(db *gorm.DB) WebsiteRepository {
	return &WebsiteRepositoryImpl{db: db}
}

func (r *WebsiteRepositoryImpl) UpsertDraft(draft *models.WebsiteDraft) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "profile_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"content":    draft.Content,
			"updated_at": gorm.Expr("now()"),
		}),
	}).Create(draft).Error
}

func (r *WebsiteRepositoryImpl) FindByProfileID(profileID string) (*models.WebsiteDraft, error) {
	var draft models.WebsiteDraft
	if err := r.db.First(&draft, "profile_id = ?", profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWebsiteNotFound
		}
		return nil, err
	}
	return &draft, nil
}

func (r *WebsiteRepositoryImpl) FindPublishedBySlug(slug string) (*models.WebsiteDraft, error) {
	var draft models.WebsiteDraft
	err := r.db.First(&draft, "slug = ? AND is_published = true", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWebsiteNotFound
		}
		return nil, err
	}
	return &draft, nil
}

func (r *WebsiteRepositoryImpl) Publish(profileID, slug string) (*models.WebsiteDraft, error) {
	var taken int64
	err := r.db.Model(&models.WebsiteDraft{}).
		Where("slug = ? AND profile_id <> ?", slug, profileID).
		Count(&taken).Error
	if err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, ErrSlugAlreadyTaken
	}

	result := r.db.Model(&models.WebsiteDraft{}).Where("profile_id = ?", profileID).
		Updates(map[string]interface{}{"slug": slug, "is_published": true})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrWebsiteNotFound
	}
	return r.FindByProfileID(profileID)
}
