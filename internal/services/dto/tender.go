package dto

import "time"

type CreateTenderRequest struct {
	Title       string     `json:"title" validate:"required,min=3,max=300"`
	Description string     `json:"description" validate:"required,min=10"`
	Category    *string    `json:"category,omitempty"`
	Location    *string    `json:"location,omitempty"`
	BudgetCents *int64     `json:"budgetCents,omitempty" validate:"omitempty,gt=0"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

type UpdateTenderRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=3,max=300"`
	Description *string    `json:"description,omitempty" validate:"omitempty,min=10"`
	Category    *string    `json:"category,omitempty"`
	Location    *string    `json:"location,omitempty"`
	BudgetCents *int64     `json:"budgetCents,omitempty" validate:"omitempty,gt=0"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,tender_status"`
}

type SubmitBidRequest struct {
	Proposal    string `json:"proposal" validate:"required,min=20"`
	AmountCents *int64 `json:"amountCents,omitempty" validate:"omitempty,gt=0"`
}

type UpdateBidStatusRequest struct {
	Status string `json:"status" validate:"required,bid_status"`
}
