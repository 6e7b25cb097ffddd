package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'business'" json:"role"`

	// Relations
	Profile *SmeProfile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}
