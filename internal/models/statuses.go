package models

type UserRole string
type SubscriptionStatus string
type VoucherStatus string
type TenderStatus string
type BidStatus string

const (
	UserRoleBusiness   UserRole = "business"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperadmin UserRole = "superadmin"

	SubscriptionStatusInactive SubscriptionStatus = "inactive"
	SubscriptionStatusActive   SubscriptionStatus = "active"

	VoucherStatusActive   VoucherStatus = "active"
	VoucherStatusRedeemed VoucherStatus = "redeemed"

	TenderStatusOpen      TenderStatus = "open"
	TenderStatusClosed    TenderStatus = "closed"
	TenderStatusAwarded   TenderStatus = "awarded"
	TenderStatusCancelled TenderStatus = "cancelled"

	BidStatusSubmitted   BidStatus = "submitted"
	BidStatusShortlisted BidStatus = "shortlisted"
	BidStatusAccepted    BidStatus = "accepted"
	BidStatusRejected    BidStatus = "rejected"
	BidStatusWithdrawn   BidStatus = "withdrawn"
)

// ValidBidStatuses lists every status an admin may assign to a bid.
// A bidder's resubmission always resets the bid back to "submitted".
var ValidBidStatuses = []BidStatus{
	BidStatusSubmitted,
	BidStatusShortlisted,
	BidStatusAccepted,
	BidStatusRejected,
	BidStatusWithdrawn,
}

// SocialPlatforms are the targets social post generation produces content for.
var SocialPlatforms = []string{"Facebook", "Instagram", "LinkedIn"}
