package models

import "time"

// SmeProfile is the business-facing record an account creates after
// registration. One profile per account; subscription fields are only
// mutated through voucher redemption and the expiry worker.
type SmeProfile struct {
	BaseModel
	UserID             string             `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	BusinessName       string             `gorm:"not null" json:"businessName"`
	OwnerName          string             `gorm:"not null" json:"ownerName"`
	Phone              string             `gorm:"not null" json:"phone"`
	Email              string             `gorm:"not null" json:"email"`
	Location           string             `gorm:"not null" json:"location"`
	Industry           string             `gorm:"not null" json:"industry"`
	ProductsServices   string             `gorm:"not null" json:"productsServices"`
	PopiaConsent       bool               `gorm:"not null;default:false" json:"popiaConsent"`
	SubscriptionStatus SubscriptionStatus `gorm:"type:varchar(20);not null;default:'inactive'" json:"subscriptionStatus"`
	SubscriptionExpiry *time.Time         `json:"subscriptionExpiry"`
}
