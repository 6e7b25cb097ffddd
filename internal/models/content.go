package models

import "gorm.io/datatypes"

// WebsiteDraft holds the generated site content for a profile.
// One draft per profile; regeneration overwrites it.
type WebsiteDraft struct {
	BaseModel
	ProfileID   string         `gorm:"type:uuid;uniqueIndex;not null" json:"profileId"`
	Content     datatypes.JSON `gorm:"type:jsonb;not null" json:"content"`
	Slug        *string        `gorm:"uniqueIndex" json:"slug"`
	IsPublished bool           `gorm:"not null;default:false" json:"isPublished"`
}

type SocialPost struct {
	BaseModel
	ProfileID string `gorm:"type:uuid;not null;index" json:"profileId"`
	Platform  string `gorm:"not null" json:"platform"`
	Content   string `gorm:"not null" json:"content"`
}

type Invoice struct {
	BaseModel
	ProfileID        string         `gorm:"type:uuid;not null;index" json:"profileId"`
	CustomerName     string         `gorm:"not null" json:"customerName"`
	Items            datatypes.JSON `gorm:"type:jsonb;not null" json:"items"`
	TotalAmountCents int64          `gorm:"not null" json:"totalAmountCents"`
}
