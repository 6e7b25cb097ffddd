package models

import "time"

// Voucher is a single-use subscription code. It moves active -> redeemed
// exactly once, atomically with the redeeming profile's subscription update.
type Voucher struct {
	BaseModel
	Code                string        `gorm:"uniqueIndex;not null" json:"code"`
	Status              VoucherStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	RedeemedAt          *time.Time    `json:"redeemedAt"`
	RedeemedByProfileID *string       `gorm:"type:uuid" json:"redeemedByProfileId"`
}
