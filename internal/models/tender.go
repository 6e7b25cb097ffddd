package models

import "time"

// Tender is a posted work opportunity. Bids are accepted only while the
// status is "open"; closed/awarded/cancelled are terminal.
type Tender struct {
	BaseModel
	Title           string       `gorm:"not null" json:"title"`
	Description     string       `gorm:"not null" json:"description"`
	Category        *string      `json:"category"`
	Location        *string      `json:"location"`
	BudgetCents     *int64       `json:"budgetCents"`
	Deadline        *time.Time   `json:"deadline"`
	Status          TenderStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	CreatedByUserID string       `gorm:"type:uuid;not null" json:"createdByUserId"`
}

// TenderBid is a profile's proposal against a tender. The composite unique
// index enforces one bid per (tender, bidder); resubmission overwrites the
// row and resets the status to "submitted".
type TenderBid struct {
	BaseModel
	TenderID        string    `gorm:"type:uuid;not null;uniqueIndex:idx_bids_tender_bidder" json:"tenderId"`
	BidderProfileID string    `gorm:"type:uuid;not null;uniqueIndex:idx_bids_tender_bidder" json:"bidderProfileId"`
	AmountCents     *int64    `json:"amountCents"`
	Proposal        string    `gorm:"not null" json:"proposal"`
	Status          BidStatus `gorm:"type:varchar(20);not null;default:'submitted'" json:"status"`
}
