package repositories

import (
	"errors"

	"smmehub_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrBidNotFound = errors.New("bid not found")

// BidWithProfile is an admin review row: the bid joined with the bidding
// profile's identifying details.
type BidWithProfile struct {
	Bid          models.TenderBid `json:"bid"`
	BusinessName string           `json:"businessName"`
	Email        string           `json:"email"`
}

type BidRepository interface {
	// Upsert inserts the bid or, when a row for (tender, bidder) already
	// exists, overwrites amount and proposal and resets the status to
	// submitted. Single statement so concurrent resubmissions cannot
	// produce duplicate rows.
	Upsert(bid *models.TenderBid) error
	FindByID(id string) (*models.TenderBid, error)
	FindByTenderAndProfile(tenderID, profileID string) (*models.TenderBid, error)
	ListByTenderWithProfiles(tenderID string) ([]BidWithProfile, error)
	UpdateStatus(id string, status models.BidStatus) (*models.TenderBid, error)
}

type BidRepositoryImpl struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) BidRepository {
	return &BidRepositoryImpl{db: db}
}

func (r *BidRepositoryImpl) Upsert(bid *models.TenderBid) error {
	bid.Status = models.BidStatusSubmitted
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tender_id"}, {Name: "bidder_profile_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount_cents": bid.AmountCents,
			"proposal":     bid.Proposal,
			"status":       models.BidStatusSubmitted,
			"updated_at":   gorm.Expr("now()"),
		}),
	}).Create(bid).Error
}

func (r *BidRepositoryImpl) FindByID(id string) (*models.TenderBid, error) {
	var bid models.TenderBid
	if err := r.db.First(&bid, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, err
	}
	return &bid, nil
}

func (r *BidRepositoryImpl) FindByTenderAndProfile(tenderID, profileID string) (*models.TenderBid, error) {
	var bid models.TenderBid
	err := r.db.First(&bid, "tender_id = ? AND bidder_profile_id = ?", tenderID, profileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, err
	}
	return &bid, nil
}

func (r *BidRepositoryImpl) ListByTenderWithProfiles(tenderID string) ([]BidWithProfile, error) {
	var bids []models.TenderBid
	err := r.db.Where("tender_id = ?", tenderID).Order("created_at DESC").Find(&bids).Error
	if err != nil {
		return nil, err
	}

	rows := make([]BidWithProfile, 0, len(bids))
	for _, bid := range bids {
		var profile models.SmeProfile
		if err := r.db.First(&profile, "id = ?", bid.BidderProfileID).Error; err != nil {
			return nil, err
		}
		rows = append(rows, BidWithProfile{
			Bid:          bid,
			BusinessName: profile.BusinessName,
			Email:        profile.Email,
		})
	}
	return rows, nil
}

func (r *BidRepositoryImpl) UpdateStatus(id string, status models.BidStatus) (*models.TenderBid, error) {
	result := r.db.Model(&models.TenderBid{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrBidNotFound
	}
	return r.FindByID(id)
}
