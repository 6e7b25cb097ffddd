package services

import (
	"errors"

	"smmehub_backend/internal/models"
	"smmehub_backend/internal/repositories"
	"smmehub_backend/internal/services/dto"
	"smmehub_backend/pkg/apperrors"
)

type ProfileService interface {
	Create(userID string, req *dto.CreateSmeProfileRequest) (*models.SmeProfile, error)
	GetByUserID(userID string) (*models.SmeProfile, error)
	Update(userID string, req *dto.UpdateSmeProfileRequest) (*models.SmeProfile, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) Create(userID string, req *dto.CreateSmeProfileRequest) (*models.SmeProfile, error) {
	if !req.PopiaConsent {
		return nil, apperrors.ErrConsentRequired
	}

	profile := &models.SmeProfile{
		UserID:             userID,
		BusinessName:       req.BusinessName,
		OwnerName:          req.OwnerName,
		Phone:              req.Phone,
		Email:              req.Email,
		Location:           req.Location,
		Industry:           req.Industry,
		ProductsServices:   req.ProductsServices,
		PopiaConsent:       true,
		SubscriptionStatus: models.SubscriptionStatusInactive,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		if errors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrProfileAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) GetByUserID(userID string) (*models.SmeProfile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) Update(userID string, req *dto.UpdateSmeProfileRequest) (*models.SmeProfile, error) {
	updates := make(map[string]interface{})
	if req.BusinessName != nil {
		updates["business_name"] = *req.BusinessName
	}
	if req.OwnerName != nil {
		updates["owner_name"] = *req.OwnerName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Industry != nil {
		updates["industry"] = *req.Industry
	}
	if req.ProductsServices != nil {
		updates["products_services"] = *req.ProductsServices
	}
	if len(updates) == 0 {
		return s.GetByUserID(userID)
	}

	profile, err := s.profileRepo.UpdateFields(userID, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
