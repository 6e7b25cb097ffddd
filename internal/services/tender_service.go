package services

import (
	"errors"

	"smmehub_backend/internal/models"
	"smmehub_backend/internal/repositories"
	"smmehub_backend/internal/services/dto"
	"smmehub_backend/pkg/apperrors"
)

type TenderService interface {
	Create(createdByUserID string, req *dto.CreateTenderRequest) (*models.Tender, error)
	List() ([]models.Tender, error)
	GetByID(id string) (*models.Tender, error)
	Update(id string, req *dto.UpdateTenderRequest) (*models.Tender, error)

	SubmitBid(userID, tenderID string, req *dto.SubmitBidRequest) (*models.TenderBid, error)
	GetMyBid(userID, tenderID string) (*models.TenderBid, error)
	ListBids(tenderID string) ([]repositories.BidWithProfile, error)
	UpdateBidStatus(bidID string, status models.BidStatus) (*models.TenderBid, error)
}

type TenderServiceImpl struct {
	tenderRepo  repositories.TenderRepository
	bidRepo     repositories.BidRepository
	profileRepo repositories.ProfileRepository
}

func NewTenderService(
	tenderRepo repositories.TenderRepository,
	bidRepo repositories.BidRepository,
	profileRepo repositories.ProfileRepository,
) TenderService {
	return &TenderServiceImpl{
		tenderRepo:  tenderRepo,
		bidRepo:     bidRepo,
		profileRepo: profileRepo,
	}
}

func (s *TenderServiceImpl) Create(createdByUserID string, req *dto.CreateTenderRequest) (*models.Tender, error) {
	tender := &models.Tender{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Location:        req.Location,
		BudgetCents:     req.BudgetCents,
		Deadline:        req.Deadline,
		Status:          models.TenderStatusOpen,
		CreatedByUserID: createdByUserID,
	}
	if err := s.tenderRepo.Create(tender); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tender, nil
}

func (s *TenderServiceImpl) List() ([]models.Tender, error) {
	tenders, err := s.tenderRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tenders, nil
}

func (s *TenderServiceImpl) GetByID(id string) (*models.Tender, error) {
	tender, err := s.tenderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTenderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return tender, nil
}

func (s *TenderServiceImpl) Update(id string, req *dto.UpdateTenderRequest) (*models.Tender, error) {
	tender, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		next := models.TenderStatus(*req.Status)
		if tender.Status != models.TenderStatusOpen && next != tender.Status {
			return nil, apperrors.ErrTenderStatusFinal
		}
		tender.Status = next
	}
	if req.Title != nil {
		tender.Title = *req.Title
	}
	if req.Description != nil {
		tender.Description = *req.Description
	}
	if req.Category != nil {
		tender.Category = req.Category
	}
	if req.Location != nil {
		tender.Location = req.Location
	}
	if req.BudgetCents != nil {
		tender.BudgetCents = req.BudgetCents
	}
	if req.Deadline != nil {
		tender.Deadline = req.Deadline
	}

	if err := s.tenderRepo.Update(tender); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tender, nil
}

func (s *TenderServiceImpl) SubmitBid(userID, tenderID string, req *dto.SubmitBidRequest) (*models.TenderBid, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileRequired
		}
		return nil, apperrors.InternalError(err)
	}

	tender, err := s.GetByID(tenderID)
	if err != nil {
		return nil, err
	}
	if tender.Status != models.TenderStatusOpen {
		return nil, apperrors.ErrTenderNotOpen
	}

	bid := &models.TenderBid{
		TenderID:        tenderID,
		BidderProfileID: profile.ID,
		AmountCents:     req.AmountCents,
		Proposal:        req.Proposal,
	}
	if err := s.bidRepo.Upsert(bid); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Upsert may have updated an existing row; reload so the caller sees
	// the stored state.
	stored, err := s.bidRepo.FindByTenderAndProfile(tenderID, profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stored, nil
}

func (s *TenderServiceImpl) GetMyBid(userID, tenderID string) (*models.TenderBid, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileRequired
		}
		return nil, apperrors.InternalError(err)
	}

	bid, err := s.bidRepo.FindByTenderAndProfile(tenderID, profile.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrBidNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return bid, nil
}

func (s *TenderServiceImpl) ListBids(tenderID string) ([]repositories.BidWithProfile, error) {
	if _, err := s.GetByID(tenderID); err != nil {
		return nil, err
	}
	bids, err := s.bidRepo.ListByTenderWithProfiles(tenderID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return bids, nil
}

func (s *TenderServiceImpl) UpdateBidStatus(bidID string, status models.BidStatus) (*models.TenderBid, error) {
	bid, err := s.bidRepo.UpdateStatus(bidID, status)
	if err != nil {
		if errors.Is(err, repositories.ErrBidNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return bid, nil
}
